// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package main

import (
	"context"
	"errors"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/listkeeper/listkeeper/internal/auth"
	authpg "github.com/listkeeper/listkeeper/internal/auth/postgres"
	"github.com/listkeeper/listkeeper/internal/config"
	"github.com/listkeeper/listkeeper/internal/store"
	"github.com/listkeeper/listkeeper/internal/todo"
)

// Default timeout for seed command.
const defaultSeedTimeout = 30 * time.Second

// seedConfig holds configuration for the seed command.
type seedConfig struct {
	name     string
	email    string
	password string
	timeout  time.Duration
}

// seedDeps holds injectable dependencies for the seed command.
type seedDeps struct {
	users  auth.UserRepository
	hasher auth.PasswordHasher
}

// NewSeedCmd creates the seed subcommand. Registration has no API endpoint,
// so accounts are provisioned from the CLI.
func NewSeedCmd() *cobra.Command {
	cfg := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a user account",
		Long: `Creates a user account with a hashed password.
This command is idempotent - an existing account with the same email is left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, cfg, nil)
		},
	}

	cmd.Flags().StringVar(&cfg.name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&cfg.email, "email", "", "email address (required, unique)")
	cmd.Flags().StringVar(&cfg.password, "password", "", "password (required)")
	cmd.Flags().DurationVar(&cfg.timeout, "timeout", defaultSeedTimeout, "timeout for database operations (e.g., 30s, 1m)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runSeed(cmd *cobra.Command, cfg *seedConfig, deps *seedDeps) error {
	if err := auth.ValidateName(cfg.name); err != nil {
		return err
	}
	if err := auth.ValidateEmail(cfg.email); err != nil {
		return err
	}
	if cfg.password == "" {
		return oops.Code("SEED_INVALID").Errorf("password cannot be empty")
	}

	// Use cmd.Context() to respect SIGINT/SIGTERM signals
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
	defer cancel()

	if deps == nil {
		appCfg, err := config.Load(configFile, nil)
		if err != nil {
			return err
		}
		if appCfg.DatabaseURL == "" {
			return oops.Code("CONFIG_INVALID").Errorf("database-url is required (flag, config file, or DATABASE_URL)")
		}

		cmd.Println("Connecting to database...")
		pool, err := store.Connect(ctx, appCfg.DatabaseURL)
		if err != nil {
			return oops.Code("DB_CONNECT_FAILED").With("operation", "connect to database").Wrap(err)
		}
		defer pool.Close()

		deps = &seedDeps{
			users:  authpg.NewUserRepository(pool),
			hasher: auth.NewArgon2idHasher(),
		}
	}

	hash, err := deps.hasher.Hash(cfg.password)
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "hash password").Wrap(err)
	}

	now := time.Now().UTC()
	user := &auth.User{
		ID:           todo.NewKey(),
		Name:         cfg.name,
		Email:        cfg.email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := deps.users.Create(ctx, user); err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			cmd.Println("Account already exists, skipping seed")
			return nil
		}
		return oops.Code("SEED_FAILED").With("operation", "create user").Wrap(err)
	}

	cmd.Printf("Created user %s (%s)\n", user.ID, user.Email)
	return nil
}
