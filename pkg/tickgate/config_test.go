package tickgate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	if config == nil {
		t.Fatal("NewConfig() returned nil")
	}
	if !config.Enabled {
		t.Error("Enabled = false, want true")
	}
	if config.Debug {
		t.Error("Debug = true, want false")
	}
	if config.TargetTickMs != 50 {
		t.Errorf("TargetTickMs = %d, want 50", config.TargetTickMs)
	}
	if config.MaxPerTickStep != 2 {
		t.Errorf("MaxPerTickStep = %d, want 2", config.MaxPerTickStep)
	}
	if config.CooldownTicksStep != 1 {
		t.Errorf("CooldownTicksStep = %d, want 1", config.CooldownTicksStep)
	}
	if config.CleanupIntervalTicks != 100 {
		t.Errorf("CleanupIntervalTicks = %d, want 100", config.CleanupIntervalTicks)
	}
	if config.MaxExpiredAge != 600 {
		t.Errorf("MaxExpiredAge = %d, want 600", config.MaxExpiredAge)
	}
	if config.InitialMapReserve != 500 {
		t.Errorf("InitialMapReserve = %d, want 500", config.InitialMapReserve)
	}
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(*testing.T, *Config)
	}{
		{
			name:   "zero cleanup interval falls back",
			mutate: func(c *Config) { c.CleanupIntervalTicks = 0 },
			check: func(t *testing.T, c *Config) {
				if c.CleanupIntervalTicks != 100 {
					t.Errorf("CleanupIntervalTicks = %d, want 100", c.CleanupIntervalTicks)
				}
			},
		},
		{
			name:   "negative max age falls back",
			mutate: func(c *Config) { c.MaxExpiredAge = -5 },
			check: func(t *testing.T, c *Config) {
				if c.MaxExpiredAge != 600 {
					t.Errorf("MaxExpiredAge = %d, want 600", c.MaxExpiredAge)
				}
			},
		},
		{
			name:   "zero map reserve falls back",
			mutate: func(c *Config) { c.InitialMapReserve = 0 },
			check: func(t *testing.T, c *Config) {
				if c.InitialMapReserve != 500 {
					t.Errorf("InitialMapReserve = %d, want 500", c.InitialMapReserve)
				}
			},
		},
		{
			name:   "zero steps clamp to one",
			mutate: func(c *Config) { c.MaxPerTickStep = 0; c.CooldownTicksStep = -1 },
			check: func(t *testing.T, c *Config) {
				if c.MaxPerTickStep != 1 {
					t.Errorf("MaxPerTickStep = %d, want 1", c.MaxPerTickStep)
				}
				if c.CooldownTicksStep != 1 {
					t.Errorf("CooldownTicksStep = %d, want 1", c.CooldownTicksStep)
				}
			},
		},
		{
			name:   "zero target falls back",
			mutate: func(c *Config) { c.TargetTickMs = 0 },
			check: func(t *testing.T, c *Config) {
				if c.TargetTickMs != 50 {
					t.Errorf("TargetTickMs = %d, want 50", c.TargetTickMs)
				}
			},
		},
		{
			name:   "valid values untouched",
			mutate: func(c *Config) { c.TargetTickMs = 25; c.MaxPerTickStep = 4 },
			check: func(t *testing.T, c *Config) {
				if c.TargetTickMs != 25 {
					t.Errorf("TargetTickMs = %d, want 25", c.TargetTickMs)
				}
				if c.MaxPerTickStep != 4 {
					t.Errorf("MaxPerTickStep = %d, want 4", c.MaxPerTickStep)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewConfig()
			tt.mutate(config)
			config.Normalize()
			tt.check(t, config)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero target",
			mutate:  func(c *Config) { c.TargetTickMs = 0 },
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "zero quota step",
			mutate:  func(c *Config) { c.MaxPerTickStep = 0 },
			wantErr: ErrInvalidStep,
		},
		{
			name:    "negative cooldown step",
			mutate:  func(c *Config) { c.CooldownTicksStep = -1 },
			wantErr: ErrInvalidStep,
		},
		{
			name:    "zero sweep interval",
			mutate:  func(c *Config) { c.CleanupIntervalTicks = 0 },
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "zero max age",
			mutate:  func(c *Config) { c.MaxExpiredAge = 0 },
			wantErr: ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewConfig()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tickgate.yaml")

	yaml := `version: 1
enabled: true
debug: true
target_tick_ms: 25
max_per_tick_step: 3
cooldown_ticks_step: 2
cleanup_interval_ticks: 50
max_expired_age: 300
initial_map_reserve: 1000
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	config, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile() failed: %v", err)
	}
	if !config.Debug {
		t.Error("Debug = false, want true")
	}
	if config.TargetTickMs != 25 {
		t.Errorf("TargetTickMs = %d, want 25", config.TargetTickMs)
	}
	if config.MaxPerTickStep != 3 {
		t.Errorf("MaxPerTickStep = %d, want 3", config.MaxPerTickStep)
	}
	if config.CleanupIntervalTicks != 50 {
		t.Errorf("CleanupIntervalTicks = %d, want 50", config.CleanupIntervalTicks)
	}
}

func TestLoadConfigFromFile_ClampsMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tickgate.yaml")

	// Only a couple of fields present; the rest unmarshal to zero and
	// must be clamped back to the documented defaults.
	if err := os.WriteFile(path, []byte("enabled: true\ntarget_tick_ms: 40\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	config, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile() failed: %v", err)
	}
	if config.TargetTickMs != 40 {
		t.Errorf("TargetTickMs = %d, want 40", config.TargetTickMs)
	}
	if config.CleanupIntervalTicks != 100 {
		t.Errorf("CleanupIntervalTicks = %d, want 100", config.CleanupIntervalTicks)
	}
	if config.MaxExpiredAge != 600 {
		t.Errorf("MaxExpiredAge = %d, want 600", config.MaxExpiredAge)
	}
	if config.InitialMapReserve != 500 {
		t.Errorf("InitialMapReserve = %d, want 500", config.InitialMapReserve)
	}
	if config.MaxPerTickStep != 1 {
		t.Errorf("MaxPerTickStep = %d, want 1 (load-time fallback)", config.MaxPerTickStep)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("normalized config failed Validate(): %v", err)
	}
}

func TestLoadConfigFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFromFile(filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("error = %v, want %v", err, ErrInvalidConfig)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("enabled: [unclosed"), 0o644); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
		_, err := LoadConfigFromFile(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("error = %v, want %v", err, ErrInvalidConfig)
		}
	})
}

func TestSaveConfigToFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tickgate.yaml")

	config := NewConfig()
	config.TargetTickMs = 33
	config.Debug = true

	if err := SaveConfigToFile(config, path); err != nil {
		t.Fatalf("SaveConfigToFile() failed: %v", err)
	}

	loaded, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFromFile() failed: %v", err)
	}
	if *loaded != *config {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, config)
	}
}

func TestLoadOrCreateConfig(t *testing.T) {
	t.Run("missing file writes defaults back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickgate.yaml")

		config, err := LoadOrCreateConfig(path)
		if err != nil {
			t.Fatalf("LoadOrCreateConfig() failed: %v", err)
		}
		if *config != *NewConfig() {
			t.Errorf("config = %+v, want defaults", config)
		}

		// The defaults were persisted as a template for the operator.
		loaded, err := LoadConfigFromFile(path)
		if err != nil {
			t.Fatalf("written file failed to load: %v", err)
		}
		if *loaded != *config {
			t.Errorf("written file = %+v, want %+v", loaded, config)
		}
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickgate.yaml")
		if err := SaveConfigToFile(&Config{Version: 1, TargetTickMs: 30}, path); err != nil {
			t.Fatalf("SaveConfigToFile() failed: %v", err)
		}

		config, err := LoadOrCreateConfig(path)
		if err != nil {
			t.Fatalf("LoadOrCreateConfig() failed: %v", err)
		}
		if config.TargetTickMs != 30 {
			t.Errorf("TargetTickMs = %d, want 30", config.TargetTickMs)
		}
	})

	t.Run("corrupt file is not clobbered", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickgate.yaml")
		if err := os.WriteFile(path, []byte("enabled: [unclosed"), 0o644); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}

		if _, err := LoadOrCreateConfig(path); err == nil {
			t.Fatal("LoadOrCreateConfig() expected error for corrupt file")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() failed: %v", err)
		}
		if string(data) != "enabled: [unclosed" {
			t.Error("corrupt file was overwritten")
		}
	})
}
