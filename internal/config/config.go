package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	MetadataPath string `toml:"metadata" yaml:"metadata"`
	DocumentPath string `toml:"document" yaml:"document"`
	DocumentDir  string `toml:"document_dir" yaml:"document_dir"`
	Workers      int    `toml:"workers" yaml:"workers"`
	Policy       string `toml:"policy" yaml:"policy"`     // Value narrowing: "none" or "monotonic"
	Variable     string `toml:"variable" yaml:"variable"` // Frame variable of exported expressions
	Step         int    `toml:"step" yaml:"step"`         // Sampling step of exported eased segments
	ShowStats    bool   `toml:"show_stats" yaml:"show_stats"`
	BuildVersion string `toml:"-" yaml:"-"`
}

// Default returns the settings used when no file or flag overrides them
func Default() *Config {
	return &Config{
		MetadataPath: filepath.Join("input", "metadata.yaml"),
		DocumentDir:  filepath.Join("input", "effects"),
		Workers:      runtime.NumCPU(),
		Policy:       "none",
		Variable:     "n",
		Step:         1,
	}
}

// Load reads a TOML or YAML settings file over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides settings from KEYFRAMES_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("KEYFRAMES_METADATA"); v != "" {
		c.MetadataPath = v
	}
	if v := os.Getenv("KEYFRAMES_DOCUMENTS"); v != "" {
		c.DocumentDir = v
	}
	if v := os.Getenv("KEYFRAMES_POLICY"); v != "" {
		c.Policy = v
	}
	if v := os.Getenv("KEYFRAMES_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("KEYFRAMES_WORKERS: %w", err)
		}
		c.Workers = n
	}
	return nil
}
