package lox

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config is the optional `.loxrc.yaml` shape: REPL cosmetics and
// native-function toggles. Absence of a config file is not an error —
// Defaults() applies, and cobra flags always override whatever a config
// file sets.
type Config struct {
	Prompt          string `yaml:"prompt"`
	EnableClock     bool   `yaml:"enable_clock"`
	EnableJSON      bool   `yaml:"enable_json"`
	EnableStringOps bool   `yaml:"enable_string_ops"`
	Color           bool   `yaml:"color"`
}

// Defaults returns the configuration used when no file is found.
func Defaults() Config {
	return Config{
		Prompt:          "> ",
		EnableClock:     true,
		EnableJSON:      true,
		EnableStringOps: true,
		Color:           true,
	}
}

// LoadConfig reads path (if non-empty) or, failing that, ~/.loxrc.yaml.
// A missing file of either kind returns Defaults() with no error; a
// present-but-malformed file returns the yaml error.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".loxrc.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
