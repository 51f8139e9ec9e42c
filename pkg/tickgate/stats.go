package tickgate

// Stats are the counters accumulated between reporting windows. They are
// plain integers owned by the simulation goroutine; reading or resetting
// them from any other goroutine requires handing the access off to that
// goroutine first (see the reporter package). They are informational only
// and never feed back into admission decisions.
type Stats struct {
	// Processed is the number of admissions granted
	Processed uint64 `json:"processed"`

	// CooldownSkipped is the number of denials due to per-entity cooldown
	CooldownSkipped uint64 `json:"cooldown_skipped"`

	// ThrottleSkipped is the number of denials due to the per-tick quota
	ThrottleSkipped uint64 `json:"throttle_skipped"`

	// DespawnCleaned is the number of entries evicted by destroy events
	DespawnCleaned uint64 `json:"despawn_cleaned"`

	// ExpiredCleaned is the number of entries evicted by staleness sweeps
	ExpiredCleaned uint64 `json:"expired_cleaned"`
}

// Total returns the number of admission decisions made in this window.
func (s Stats) Total() uint64 {
	return s.Processed + s.CooldownSkipped + s.ThrottleSkipped
}

// Snapshot is a point-in-time view of the gate for reporting.
type Snapshot struct {
	// MaxPerTick is the current dynamic per-tick quota
	MaxPerTick int `json:"max_per_tick"`

	// CooldownTicks is the current dynamic per-entity cooldown
	CooldownTicks int `json:"cooldown_ticks"`

	// Tracked is the number of entities in the timestamp store
	Tracked int `json:"tracked"`

	// Stats are the window counters at snapshot time
	Stats Stats `json:"stats"`
}

// SkipRate returns the percentage of decisions in the window that were
// denials. Returns 0 when no decisions were made.
func (s Snapshot) SkipRate() float64 {
	total := s.Stats.Total()
	if total == 0 {
		return 0
	}
	skipped := s.Stats.CooldownSkipped + s.Stats.ThrottleSkipped
	return 100.0 * float64(skipped) / float64(total)
}
