package tickgate

// EntityID identifies a trackable entity. IDs are assigned by the host
// simulation and may be reused after an entity is destroyed; the store
// never assumes an id outlives an explicit eviction.
type EntityID int64

// TickStore maps entity ids to the tick at which they were last processed.
// It is owned by the Gate and mutated only on the simulation goroutine,
// so it carries no locking.
type TickStore struct {
	ticks map[EntityID]uint64
}

// NewTickStore creates a store with an initial capacity hint.
// The hint is applied once, up front, to avoid rehash storms when the host
// spawns entities in bursts.
func NewTickStore(reserve int) *TickStore {
	if reserve < 0 {
		reserve = 0
	}
	return &TickStore{
		ticks: make(map[EntityID]uint64, reserve),
	}
}

// GetOrInsert returns the last-processed tick for id, inserting a zero
// entry when the id is unseen. A zero entry makes a brand-new entity
// satisfy any cooldown against a positive current tick, so first contact
// always proceeds to the quota check.
func (s *TickStore) GetOrInsert(id EntityID) (lastTick uint64, inserted bool) {
	if last, ok := s.ticks[id]; ok {
		return last, false
	}
	s.ticks[id] = 0
	return 0, true
}

// Touch records that id was processed at tick.
func (s *TickStore) Touch(id EntityID, tick uint64) {
	s.ticks[id] = tick
}

// Remove evicts id from the store. Returns whether an entry was present;
// removing an absent id is a no-op.
func (s *TickStore) Remove(id EntityID) bool {
	if _, ok := s.ticks[id]; !ok {
		return false
	}
	delete(s.ticks, id)
	return true
}

// Sweep removes every entry whose age exceeds maxAge and returns the
// number removed. The test is strictly greater-than: an entry aged exactly
// maxAge survives. currentTick must be monotonic non-decreasing; the
// subtraction is unsigned and unguarded.
func (s *TickStore) Sweep(currentTick, maxAge uint64) int {
	removed := 0
	for id, last := range s.ticks {
		if currentTick-last > maxAge {
			delete(s.ticks, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked entities.
func (s *TickStore) Len() int {
	return len(s.ticks)
}

// Clear drops every entry, keeping the map allocated.
func (s *TickStore) Clear() {
	clear(s.ticks)
}
