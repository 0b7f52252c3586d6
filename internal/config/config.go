package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level server configuration.
type Config struct {
	// Seed fixes the engine RNG when non-zero (useful for balance testing).
	Seed int64 `yaml:"seed" json:"seed"`

	// DataDir is where save files and backups live.
	DataDir string `yaml:"data_dir" json:"data_dir"`

	// CatalogPath optionally points at a YAML content catalog that
	// overrides the built-in one.
	CatalogPath string `yaml:"catalog_path" json:"catalog_path"`

	// TickIntervalMS is the engine tick cadence.
	TickIntervalMS int `yaml:"tick_interval_ms" json:"tick_interval_ms"`

	// AutosaveSec is the autosave cadence.
	AutosaveSec int `yaml:"autosave_sec" json:"autosave_sec"`

	Balance Balance `yaml:"balance" json:"balance"`
}

// ApplyDefaults fills in zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.TickIntervalMS <= 0 {
		c.TickIntervalMS = 100
	}
	if c.AutosaveSec <= 0 {
		c.AutosaveSec = 30
	}
	def := Default()
	if c.Balance.MonstersPerStage <= 0 {
		c.Balance = def
	}
}

// Load reads a YAML config file. A missing file is not an error: the
// defaults are returned so the server can start without one.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c := &Config{Balance: Default()}
			c.ApplyDefaults()
			return c, nil
		}
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.ApplyDefaults()
	return &c, nil
}
