// Package schema provides JSON schema generation for bundle manifests.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/scripthost-dev/scripthost-sdk/domain/entities"
)

// GenerateSchema creates a JSON schema from a Go struct.
// It reflects on the struct and generates a standard JSON Schema
// (Draft 2020-12) with definitions expanded inline.
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// ManifestSchema returns the JSON schema for bundle manifest files, for
// host tooling that wants to validate manifests before loading them.
func ManifestSchema() ([]byte, error) {
	return GenerateSchema(&entities.BundleManifest{})
}
