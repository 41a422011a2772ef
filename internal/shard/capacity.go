package shard

// CapacityStats is an immutable snapshot of a shard's capacity accounting
type CapacityStats struct {
	CurrentItems          int     // Number of stored entries
	MaxCapacity           int     // Logical capacity ceiling
	RemainingCapacity     int     // Slots left before the ceiling
	UtilizationPercentage float64 // 0-100 fill ratio
	LoadFactor            float64 // 0.0-1.0 fill ratio
	AllocatedCapacity     int     // Physical slots in the backing slice
	IsFull                bool    // CurrentItems == MaxCapacity
	IsEmpty               bool    // CurrentItems == 0
}

// RemainingCapacity returns the number of slots left before the ceiling
// Never negative given the container invariants
func (s *Shard[K, V]) RemainingCapacity() int {
	return int(s.maxItems) - len(s.entries)
}

// CanAddItem reports whether one more new entry would be admitted
func (s *Shard[K, V]) CanAddItem() bool {
	return len(s.entries) < int(s.maxItems)
}

// IsFull reports whether the shard is at its capacity ceiling
func (s *Shard[K, V]) IsFull() bool {
	return len(s.entries) >= int(s.maxItems)
}

// IsEmpty reports whether the shard holds no entries
func (s *Shard[K, V]) IsEmpty() bool {
	return len(s.entries) == 0
}

// UtilizationPercentage returns the fill ratio as a 0-100 percentage
// Defined as 0 when the capacity ceiling is 0
func (s *Shard[K, V]) UtilizationPercentage() float64 {
	if s.maxItems == 0 {
		return 0
	}
	return float64(len(s.entries)) / float64(s.maxItems) * 100
}

// LoadFactor returns the fill ratio as a 0.0-1.0 factor
// Defined as 0 when the capacity ceiling is 0
func (s *Shard[K, V]) LoadFactor() float64 {
	if s.maxItems == 0 {
		return 0
	}
	return float64(len(s.entries)) / float64(s.maxItems)
}

// IsNearCapacity reports whether utilization has reached the given 0-100
// threshold
// Thresholds at or below current utilization are always true; thresholds
// above 100 are always false
func (s *Shard[K, V]) IsNearCapacity(thresholdPercent float64) bool {
	return s.UtilizationPercentage() >= thresholdPercent
}

// SpaceForNewItems counts how many of the candidate keys are not already
// present, with duplicates among the candidates counted once
// This is the number of new slots an insertion of those keys would consume;
// callers compare it against RemainingCapacity
func (s *Shard[K, V]) SpaceForNewItems(keys []K) int {
	seen := make(map[K]struct{}, len(keys))
	needed := 0
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if !s.Contains(key) {
			needed++
		}
	}
	return needed
}

// ResizeCapacity replaces the capacity ceiling with newMax
// Fails with ErrInvalidCapacity when newMax is below the live item count;
// growing, and shrinking down to the item count, both succeed
// The ceiling never changes as a side effect of any other operation
func (s *Shard[K, V]) ResizeCapacity(newMax uint16) error {
	if int(newMax) < len(s.entries) {
		return ErrInvalidCapacity
	}

	s.maxItems = newMax
	if int(newMax) > cap(s.entries) {
		s.regrow(int(newMax))
	}
	return nil
}

// Reserve requests that the physical allocation accommodate at least
// additional more entries without reallocating
// This is a performance hint: it never changes the capacity ceiling, never
// fails, and no-ops when the allocation is already sufficient
// The allocation is never grown past the capacity ceiling
func (s *Shard[K, V]) Reserve(additional int) {
	if additional <= 0 {
		return
	}

	target := len(s.entries) + additional
	if ceiling := int(s.maxItems); target > ceiling {
		target = ceiling
	}
	if cap(s.entries) >= target {
		return
	}
	s.regrow(target)
}

// ShrinkToFit reduces the physical allocation to the minimum needed for the
// current entries
// The capacity ceiling, item count, and entries are untouched
func (s *Shard[K, V]) ShrinkToFit() {
	if cap(s.entries) == len(s.entries) {
		return
	}

	shrunk := make([]Entry[K, V], len(s.entries))
	copy(shrunk, s.entries)
	s.entries = shrunk
}

// Clear removes every entry while preserving the capacity ceiling and the
// physical allocation
// This is the low-cost reset path, distinct from releasing the shard's
// storage record
func (s *Shard[K, V]) Clear() {
	clear(s.entries) // release references before truncating
	s.entries = s.entries[:0]
	s.itemCount = 0
}

// CapacityStats assembles a snapshot of the shard's capacity accounting
// Never fails
func (s *Shard[K, V]) CapacityStats() CapacityStats {
	return CapacityStats{
		CurrentItems:          s.Len(),
		MaxCapacity:           s.MaxCapacity(),
		RemainingCapacity:     s.RemainingCapacity(),
		UtilizationPercentage: s.UtilizationPercentage(),
		LoadFactor:            s.LoadFactor(),
		AllocatedCapacity:     cap(s.entries),
		IsFull:                s.IsFull(),
		IsEmpty:               s.IsEmpty(),
	}
}

// regrow reallocates the backing slice with exactly target physical slots
func (s *Shard[K, V]) regrow(target int) {
	grown := make([]Entry[K, V], len(s.entries), target)
	copy(grown, s.entries)
	s.entries = grown
}
