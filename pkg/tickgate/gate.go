package tickgate

import (
	"time"
)

// Decision is the outcome of an admission check.
type Decision int

const (
	// Allow admits the entity's per-tick work this frame
	Allow Decision = iota

	// DenyThrottle skips the work because the per-tick quota is exhausted
	DenyThrottle

	// DenyCooldown skips the work because the entity was processed too recently
	DenyCooldown
)

// Allowed reports whether the decision admits the work.
func (d Decision) Allowed() bool { return d == Allow }

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyThrottle:
		return "deny-throttle"
	case DenyCooldown:
		return "deny-cooldown"
	default:
		return "unknown"
	}
}

// Hooks is the surface the host simulation drives. The host calls
// CheckAdmission once per eligible entity per tick, OnFrameEnd once per
// tick with the measured frame duration, and OnEntityDestroyed whenever an
// eligible entity leaves the world. All three must be called from the
// simulation goroutine; none of them blocks.
type Hooks interface {
	// CheckAdmission decides whether the entity's work runs this tick.
	CheckAdmission(id EntityID, tick uint64) Decision

	// OnFrameEnd feeds the controller one frame's measured duration.
	OnFrameEnd(elapsed time.Duration)

	// OnEntityDestroyed evicts the entity from tracking immediately.
	OnEntityDestroyed(id EntityID)
}

// Gate is the admission controller. It combines a per-tick quota with a
// per-entity cooldown, retunes both each frame from measured frame time,
// and sweeps idle entries from its tracking map on a frame-count cadence.
//
// A Gate owns all of its state and is not safe for concurrent use: every
// method must run on the single goroutine that drives the simulation loop.
type Gate struct {
	config *Config
	store  *TickStore
	ctrl   controller

	enabled bool

	// Per-frame state, reset whenever a new tick id is observed.
	lastTick          uint64
	processedThisTick int
	cleanupCounter    int

	stats Stats
}

var _ Hooks = (*Gate)(nil)

// New creates a Gate from the given options. With no options the
// documented default configuration is used. The gate starts enabled or
// disabled according to the config's enabled flag.
func New(opts ...Option) (*Gate, error) {
	g := &Gate{
		config: NewConfig(),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	g.store = NewTickStore(g.config.InitialMapReserve)
	if g.config.Enabled {
		g.Enable()
	}
	return g, nil
}

// Config returns the resolved configuration the gate was built with.
func (g *Gate) Config() *Config { return g.config }

// Enabled reports whether admission control is active.
func (g *Gate) Enabled() bool { return g.enabled }

// Enable activates admission control and seeds the controller from the
// configured step sizes: quota = step*10, cooldown = step*2. Safe to call
// on an already-enabled gate; the controller is re-seeded.
func (g *Gate) Enable() {
	g.ctrl.reset(g.config.MaxPerTickStep, g.config.CooldownTicksStep)
	g.enabled = true
}

// Disable deactivates admission control and discards all transient state:
// the tracking map, frame state, sweep cadence and counters. The resolved
// configuration is untouched, so Enable brings the gate back fresh.
func (g *Gate) Disable() {
	g.enabled = false
	g.store.Clear()
	g.lastTick = 0
	g.processedThisTick = 0
	g.cleanupCounter = 0
	g.stats = Stats{}
}

// CheckAdmission decides whether the entity's per-tick work runs at tick.
// The host calls it at most once per entity per tick, in any order.
//
// While the gate is disabled it is a pure pass-through: Allow, with no
// state touched and no counters incremented.
func (g *Gate) CheckAdmission(id EntityID, tick uint64) Decision {
	if !g.enabled {
		return Allow
	}

	// Frame boundary: the quota resets exactly once per tick no matter
	// which entity happens to be checked first, and the staleness sweep
	// runs here so it is always frame-aligned, never mid-frame.
	if tick != g.lastTick {
		g.lastTick = tick
		g.processedThisTick = 0

		g.cleanupCounter++
		if g.cleanupCounter >= g.config.CleanupIntervalTicks {
			g.cleanupCounter = 0
			removed := g.store.Sweep(tick, uint64(g.config.MaxExpiredAge))
			g.stats.ExpiredCleaned += uint64(removed)
		}
	}

	if g.processedThisTick >= g.ctrl.maxPerTick {
		g.stats.ThrottleSkipped++
		return DenyThrottle
	}

	last, inserted := g.store.GetOrInsert(id)
	if !inserted && tick-last < uint64(g.ctrl.cooldownTicks) {
		g.stats.CooldownSkipped++
		return DenyCooldown
	}

	// The cooldown window opens from the moment of actual processing, so
	// the timestamp is written only on Allow.
	g.processedThisTick++
	g.store.Touch(id, tick)
	g.stats.Processed++
	return Allow
}

// OnFrameEnd feeds the controller the measured duration of the frame that
// just completed. Over budget, the gate becomes stricter by one step;
// within budget, more permissive by one step. No-op while disabled, so the
// tuned parameters never drift when the gate is off.
func (g *Gate) OnFrameEnd(elapsed time.Duration) {
	if !g.enabled {
		return
	}
	g.ctrl.observe(
		elapsed.Milliseconds(),
		int64(g.config.TargetTickMs),
		g.config.MaxPerTickStep,
		g.config.CooldownTicksStep,
	)
}

// OnEntityDestroyed evicts the entity from tracking immediately, keeping
// the sweep's backlog small. Idempotent: destroying an untracked id is a
// no-op. No-op while disabled.
func (g *Gate) OnEntityDestroyed(id EntityID) {
	if !g.enabled {
		return
	}
	if g.store.Remove(id) {
		g.stats.DespawnCleaned++
	}
}

// MaxPerTick returns the current dynamic per-tick quota.
func (g *Gate) MaxPerTick() int { return g.ctrl.maxPerTick }

// CooldownTicks returns the current dynamic per-entity cooldown.
func (g *Gate) CooldownTicks() int { return g.ctrl.cooldownTicks }

// Tracked returns the number of entities in the timestamp store.
func (g *Gate) Tracked() int { return g.store.Len() }

// Snapshot returns a read-only view of the gate's tuned parameters and
// window counters. Must be called from the simulation goroutine.
func (g *Gate) Snapshot() Snapshot {
	return Snapshot{
		MaxPerTick:    g.ctrl.maxPerTick,
		CooldownTicks: g.ctrl.cooldownTicks,
		Tracked:       g.store.Len(),
		Stats:         g.stats,
	}
}

// SnapshotAndReset returns a snapshot and closes the reporting window,
// zeroing the counters in the same step. Must be called from the
// simulation goroutine.
func (g *Gate) SnapshotAndReset() Snapshot {
	snap := g.Snapshot()
	g.stats = Stats{}
	return snap
}
