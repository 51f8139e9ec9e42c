// Package tickgate provides adaptive admission control for per-tick entity
// processing in simulation loops.
//
// A simulation that ticks thousands of short-lived entities every frame
// (dropped items, particles, projectiles) can blow its frame budget when
// entity counts spike. Tickgate throttles that work with two coupled
// limits: a global per-tick quota on how many entities may be processed in
// one frame, and a per-entity cooldown on how often the same entity may be
// processed. Both limits are retuned every frame from the measured frame
// duration, so the gate converges toward a target frame time instead of
// enforcing a fixed rate.
//
// # Quick Start
//
//	gate, err := tickgate.New(
//	    tickgate.WithDefaults(50, 2, 1), // 50ms budget, quota step 2, cooldown step 1
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// In the simulation loop, once per eligible entity per tick:
//	if gate.CheckAdmission(id, tick).Allowed() {
//	    entity.Tick()
//	}
//
//	// Once per tick, after the frame's work:
//	gate.OnFrameEnd(elapsed)
//
//	// When an entity leaves the world:
//	gate.OnEntityDestroyed(id)
//
// # Admission
//
// CheckAdmission applies, in order: a per-tick quota check, then a
// per-entity cooldown check against the tick at which the entity was last
// processed. A brand-new entity always passes the cooldown check, so first
// contact is only ever limited by the quota. The first check of each new
// tick resets the quota and, on a configurable cadence, sweeps entities
// that have been idle past a staleness threshold out of the tracking map,
// bounding memory without relying on destroy notifications.
//
// # Tuning
//
// OnFrameEnd drives a bang-bang controller: a frame over budget shrinks
// the quota and stretches the cooldown by one configured step, a frame
// within budget does the reverse. Quota is clamped to [8, 200] and
// cooldown to [1, 10]. The controller reacts to the single most recent
// frame only; there is deliberately no smoothing, which makes convergence
// fast and behavior easy to reason about at the cost of step-level jitter
// around the budget boundary.
//
// # Configuration
//
// Load configuration from a YAML file:
//
//	gate, err := tickgate.New(
//	    tickgate.WithConfigFile("tickgate.yaml"),
//	)
//
// Example YAML configuration:
//
//	version: 1
//	enabled: true
//	debug: false
//	target_tick_ms: 50
//	max_per_tick_step: 2
//	cooldown_ticks_step: 1
//	cleanup_interval_ticks: 100
//	max_expired_age: 600
//	initial_map_reserve: 500
//
// Out-of-range values are clamped to the documented defaults at load time,
// never rejected at use time. LoadOrCreateConfig writes the defaults back
// to a missing file so the host keeps running on first boot.
//
// # Concurrency
//
// A Gate is single-threaded by design: every method must be called from
// the goroutine that drives the simulation loop, and no method blocks or
// performs I/O. Out-of-band consumers such as the reporter package hand
// their snapshot requests off to that goroutine instead of reading shared
// state directly.
package tickgate
