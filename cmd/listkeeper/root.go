// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the listkeeper CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listkeeper",
		Short: "Listkeeper - a multi-tenant list manager",
		Long: `Listkeeper serves a JSON API for per-user todo lists and items,
guarded by a cookie-carried session token.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}
