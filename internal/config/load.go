package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "taskboard-config.schema.json"

// configSchema describes the accepted TOML document.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "quiet": {"type": "boolean"},
    "board": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "title": {"type": "string", "minLength": 1}
      }
    },
    "labels": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "todo": {"type": "string", "minLength": 1},
        "doing": {"type": "string", "minLength": 1},
        "done": {"type": "string", "minLength": 1}
      }
    },
    "log": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "level": {"enum": ["debug", "info", "warn", "warning", "error"]},
        "format": {"enum": ["text", "json", "logfmt"]}
      }
    }
  }
}`

// Load builds the configuration in priority order:
// 1. Defaults
// 2. TOML file named by --config, if given
// 3. CLI flags
//
// No environment variables or implicit files are consulted.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := New()

	var (
		configPath string
		quiet      bool
		debug      bool
		logFormat  string
	)
	fs.StringVar(&configPath, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.StringVar(&logFormat, "log-format", "", "")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	if configPath != "" {
		if err := LoadFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	// Flags override the file only when given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quiet":
			cfg.Quiet = quiet
		case "debug":
			if debug {
				cfg.Log.Level = "debug"
			}
		case "log-format":
			cfg.Log.Format = logFormat
		}
	})

	return cfg, nil
}

// LoadFile reads a TOML file, validates it against the config schema, and
// applies its values on top of cfg.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := Validate(string(data)); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.Path = path
	return nil
}

// Validate checks a TOML document against the config schema.
func Validate(doc string) error {
	raw := make(map[string]interface{})
	if _, err := toml.Decode(doc, &raw); err != nil {
		return fmt.Errorf("parse toml: %w", err)
	}

	// Round-trip through JSON so the validator sees plain JSON values.
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config for validation: %w", err)
	}
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("unmarshal config for validation: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(obj); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(configSchema)); err != nil {
		return nil, fmt.Errorf("load config schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}
	return schema, nil
}
