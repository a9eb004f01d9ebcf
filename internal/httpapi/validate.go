// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

package httpapi

import (
	"embed"
	"encoding/json"
	"io"
	"net/http"

	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// maxBodyBytes caps request bodies; all payloads in this API are tiny.
const maxBodyBytes = 1 << 20

//go:embed schemas/*.json
var schemasFS embed.FS

// Compiled request-shape schemas. Malformed payloads are rejected here,
// before any service logic runs.
var (
	loginSchema      = mustSchema("login.json")
	listNameSchema   = mustSchema("list_name.json")
	itemCreateSchema = mustSchema("item_create.json")
	itemUpdateSchema = mustSchema("item_update.json")
)

func mustSchema(name string) *jschema.Schema {
	raw, err := schemasFS.ReadFile("schemas/" + name)
	if err != nil {
		panic(err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		panic(err)
	}
	c := jschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		panic(err)
	}
	sch, err := c.Compile(name)
	if err != nil {
		panic(err)
	}
	return sch
}

// decodeBody reads and validates a JSON request body against schema, then
// unmarshals it into dst. Any failure means the payload is a request error.
func decodeBody(r *http.Request, schema *jschema.Schema, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return oops.Code("API_BAD_PAYLOAD").With("operation", "read body").Wrap(err)
	}

	var instance any
	if err := json.Unmarshal(body, &instance); err != nil {
		return oops.Code("API_BAD_PAYLOAD").With("operation", "parse json").Wrap(err)
	}
	if err := schema.Validate(instance); err != nil {
		return oops.Code("API_BAD_PAYLOAD").With("operation", "validate shape").Wrap(err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return oops.Code("API_BAD_PAYLOAD").With("operation", "decode").Wrap(err)
	}
	return nil
}
