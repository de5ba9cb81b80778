package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the config against the embedded JSON schema.
// Every config key has to be described by the schema and required fields must be set.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := checkKeys(schema, "Config", configMap, ""); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// checkKeys verifies that every key of values is a property of the named schema definition
func checkKeys(schema map[string]any, def string, values map[string]any, prefix string) error {
	defs, _ := schema["$defs"].(map[string]any)
	d, ok := defs[def].(map[string]any)
	if !ok {
		return fmt.Errorf("no definition for %s", def)
	}
	props, _ := d["properties"].(map[string]any)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p, ok := props[k].(map[string]any)
		if !ok {
			return fmt.Errorf("%s%s is not described", prefix, k)
		}
		nested, isObj := values[k].(map[string]any)
		ref, hasRef := p["$ref"].(string)
		if isObj && hasRef {
			if err := checkKeys(schema, refName(ref), nested, prefix+k+"."); err != nil {
				return err
			}
		}
	}
	return nil
}

func refName(ref string) string {
	const prefix = "#/$defs/"
	if len(ref) > len(prefix) && ref[:len(prefix)] == prefix {
		return ref[len(prefix):]
	}
	return ref
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.API.Endpoint == "" {
		return fmt.Errorf("api.endpoint is required")
	}
	if cfg.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
