package tickgate

import (
	gate "github.com/yourusername/tickgate/pkg/tickgate"
)

// Re-export main types for convenience
type (
	Config   = gate.Config
	Gate     = gate.Gate
	Hooks    = gate.Hooks
	Decision = gate.Decision
	EntityID = gate.EntityID
	Option   = gate.Option
	Snapshot = gate.Snapshot
	Stats    = gate.Stats
)

// Admission decisions
const (
	Allow        = gate.Allow
	DenyThrottle = gate.DenyThrottle
	DenyCooldown = gate.DenyCooldown
)

// New creates a new admission gate
var New = gate.New

// Gate options
var (
	WithConfig     = gate.WithConfig
	WithConfigFile = gate.WithConfigFile
	WithDefaults   = gate.WithDefaults
	WithSweep      = gate.WithSweep
	WithMapReserve = gate.WithMapReserve
	WithDebug      = gate.WithDebug
)

// Configuration helpers
var (
	NewConfig          = gate.NewConfig
	LoadConfigFromFile = gate.LoadConfigFromFile
	SaveConfigToFile   = gate.SaveConfigToFile
	LoadOrCreateConfig = gate.LoadOrCreateConfig
)
