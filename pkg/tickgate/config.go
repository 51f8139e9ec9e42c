package tickgate

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the gate's tuning parameters. It is resolved once, before
// the gate is constructed, and treated as immutable for the session.
type Config struct {
	// Version of the config schema, for future migrations
	Version int `yaml:"version"`

	// Enabled controls whether admission control is active at all
	Enabled bool `yaml:"enabled"`

	// Debug enables the periodic stats reporter
	Debug bool `yaml:"debug"`

	// TargetTickMs is the frame-time budget the controller converges toward
	TargetTickMs int `yaml:"target_tick_ms"`

	// MaxPerTickStep is the per-frame adjustment applied to the quota
	MaxPerTickStep int `yaml:"max_per_tick_step"`

	// CooldownTicksStep is the per-frame adjustment applied to the cooldown
	CooldownTicksStep int `yaml:"cooldown_ticks_step"`

	// CleanupIntervalTicks is how many frames elapse between staleness sweeps
	CleanupIntervalTicks int `yaml:"cleanup_interval_ticks"`

	// MaxExpiredAge is the staleness threshold in frames; entries older
	// than this are swept
	MaxExpiredAge int `yaml:"max_expired_age"`

	// InitialMapReserve is the capacity hint for the timestamp store
	InitialMapReserve int `yaml:"initial_map_reserve"`
}

// NewConfig creates a new Config with the documented defaults.
func NewConfig() *Config {
	return &Config{
		Version:              1,
		Enabled:              true,
		Debug:                false,
		TargetTickMs:         50,
		MaxPerTickStep:       2,
		CooldownTicksStep:    1,
		CleanupIntervalTicks: 100,
		MaxExpiredAge:        600,
		InitialMapReserve:    500,
	}
}

// Normalize clamps out-of-range values back to the documented load-time
// defaults. Bad values are corrected, never rejected: the gate must come
// up with something workable from any file the operator gives it.
func (c *Config) Normalize() {
	if c.CleanupIntervalTicks < 1 {
		c.CleanupIntervalTicks = 100
	}
	if c.MaxExpiredAge < 1 {
		c.MaxExpiredAge = 600
	}
	if c.InitialMapReserve < 1 {
		c.InitialMapReserve = 500
	}
	if c.MaxPerTickStep < 1 {
		c.MaxPerTickStep = 1
	}
	if c.CooldownTicksStep < 1 {
		c.CooldownTicksStep = 1
	}
	if c.TargetTickMs < 1 {
		c.TargetTickMs = 50
	}
}

// Validate checks that a hand-built configuration is usable as-is.
// Configs that went through LoadConfigFromFile are already normalized and
// always pass.
func (c *Config) Validate() error {
	if c.TargetTickMs < 1 {
		return ErrInvalidTarget
	}
	if c.MaxPerTickStep < 1 || c.CooldownTicksStep < 1 {
		return ErrInvalidStep
	}
	if c.CleanupIntervalTicks < 1 || c.MaxExpiredAge < 1 {
		return ErrInvalidInterval
	}
	return nil
}

// LoadConfigFromFile loads configuration from a YAML file and normalizes it.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrInvalidConfig, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %v", ErrInvalidConfig, err)
	}

	config.Normalize()
	return &config, nil
}

// SaveConfigToFile writes the configuration to a YAML file.
func SaveConfigToFile(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal YAML: %v", ErrInvalidConfig, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write config file: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadOrCreateConfig loads configuration from path. When the file does not
// exist, the defaults are written back to path and returned, so the
// operator gets a template to edit and the simulation keeps running either
// way. Only a present-but-unreadable file surfaces an error.
func LoadOrCreateConfig(path string) (*Config, error) {
	config, err := LoadConfigFromFile(path)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrInvalidConfig) {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr == nil {
		// File exists but failed to load; don't clobber it.
		return nil, err
	}

	config = NewConfig()
	if saveErr := SaveConfigToFile(config, path); saveErr != nil {
		return config, saveErr
	}
	return config, nil
}
