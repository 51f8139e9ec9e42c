package tickgate

import "fmt"

// Option is a functional option for configuring a Gate.
type Option func(*Gate) error

// WithConfig sets the full configuration for the gate. The config is
// validated as-is; use LoadConfigFromFile if you want out-of-range values
// clamped instead of rejected.
func WithConfig(config *Config) Option {
	return func(g *Gate) error {
		if config == nil {
			return fmt.Errorf("%w: config cannot be nil", ErrInvalidConfig)
		}
		if err := config.Validate(); err != nil {
			return err
		}
		g.config = config
		return nil
	}
}

// WithConfigFile loads configuration from a YAML file. Out-of-range values
// in the file are clamped to the documented defaults.
func WithConfigFile(path string) Option {
	return func(g *Gate) error {
		config, err := LoadConfigFromFile(path)
		if err != nil {
			return err
		}
		g.config = config
		return nil
	}
}

// WithDefaults sets the three tuning knobs that matter most, keeping the
// documented defaults for everything else. This is a convenience option
// for basic use cases.
func WithDefaults(targetTickMs, quotaStep, cooldownStep int) Option {
	return func(g *Gate) error {
		if targetTickMs < 1 {
			return ErrInvalidTarget
		}
		if quotaStep < 1 || cooldownStep < 1 {
			return ErrInvalidStep
		}
		g.config.TargetTickMs = targetTickMs
		g.config.MaxPerTickStep = quotaStep
		g.config.CooldownTicksStep = cooldownStep
		return nil
	}
}

// WithSweep sets the staleness sweep cadence and threshold, both in ticks.
func WithSweep(intervalTicks, maxExpiredAge int) Option {
	return func(g *Gate) error {
		if intervalTicks < 1 || maxExpiredAge < 1 {
			return ErrInvalidInterval
		}
		g.config.CleanupIntervalTicks = intervalTicks
		g.config.MaxExpiredAge = maxExpiredAge
		return nil
	}
}

// WithMapReserve sets the initial capacity hint for the timestamp store.
func WithMapReserve(n int) Option {
	return func(g *Gate) error {
		if n < 1 {
			return fmt.Errorf("%w: map reserve must be positive", ErrInvalidConfig)
		}
		g.config.InitialMapReserve = n
		return nil
	}
}

// WithDebug toggles the debug flag consumed by the reporter.
func WithDebug(debug bool) Option {
	return func(g *Gate) error {
		g.config.Debug = debug
		return nil
	}
}
