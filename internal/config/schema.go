package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "schema://objkit/config.json"

// configSchema describes the YAML config file. Every section is optional;
// unknown keys are rejected so typos do not silently fall back to defaults.
const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "parser": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "buffer_size": {"type": "integer", "minimum": 1, "maximum": 1048576}
      }
    },
    "flatten": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "require_attributes": {"type": "boolean"},
        "flip_v": {"type": "boolean"}
      }
    },
    "export": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "format": {"enum": ["cbor", "json"]}
      }
    },
    "cache": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "enabled": {"type": "boolean"},
        "dir": {"type": "string"}
      }
    },
    "check": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "workers": {"type": "integer", "minimum": 1}
      }
    },
    "logging": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "level": {"enum": ["debug", "info", "warn", "error"]},
        "log_file": {"type": "string"},
        "max_size_mb": {"type": "integer", "minimum": 1},
        "max_backups": {"type": "integer", "minimum": 0},
        "max_age_days": {"type": "integer", "minimum": 0},
        "compress": {"type": "boolean"}
      }
    }
  }
}`

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(configSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// Validate checks raw YAML config data against the config schema. An empty
// document is valid.
func Validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	// The validator works on JSON values; round-trip through JSON so YAML
	// scalars get their JSON types.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting config to JSON: %w", err)
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("converting config to JSON: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
