package shard

// Lookup is one per-key outcome of a batch read
// Found is false when no entry matched, which is a normal result and not a
// failure
type Lookup[V any] struct {
	Value V
	Found bool
}

// InsertBatch attempts each item in order against the current shard state,
// so items admitted earlier in the batch are visible to the capacity checks
// of later ones
// It returns one result per input, in input order: nil for success, or the
// same error the single-item Insert would have produced
// The batch is non-atomic by design: a later failure never rolls back
// earlier successes, which suits incremental migrations and insert-what-you-
// can workflows
func (s *Shard[K, V]) InsertBatch(items []Entry[K, V]) []error {
	results := make([]error, len(items))
	for i, item := range items {
		results[i] = s.Insert(item.Key, item.Value)
	}
	return results
}

// RemoveBatch attempts to remove each key in order, returning one result per
// input in input order
// An absent key yields ErrKeyNotFound in its slot without affecting the
// other removals
func (s *Shard[K, V]) RemoveBatch(keys []K) []error {
	results := make([]error, len(keys))
	for i, key := range keys {
		results[i] = s.Remove(key)
	}
	return results
}

// GetBatch resolves each key independently, returning one lookup per input
// in input order with no mutation
// Duplicate keys in the input each resolve to the same value
func (s *Shard[K, V]) GetBatch(keys []K) []Lookup[V] {
	results := make([]Lookup[V], len(keys))
	for i, key := range keys {
		results[i].Value, results[i].Found = s.Get(key)
	}
	return results
}

// CanInsertBatch reports whether TryInsertBatch would admit the whole batch,
// without mutating the shard
// Items whose key already exists are updates and need no new slot, and
// duplicate keys within the batch count once
func (s *Shard[K, V]) CanInsertBatch(items []Entry[K, V]) bool {
	return s.newKeysIn(items) <= s.RemainingCapacity()
}

// TryInsertBatch applies the whole batch or none of it
// The admission check runs first: if the distinct new keys in the batch
// exceed the remaining capacity the call fails with ErrShardFull and the
// shard is left completely unmutated
// Otherwise every item is inserted under the same upsert-or-append rule as
// single Insert, and the number of items processed is returned
func (s *Shard[K, V]) TryInsertBatch(items []Entry[K, V]) (int, error) {
	if s.newKeysIn(items) > s.RemainingCapacity() {
		return 0, ErrShardFull
	}

	for _, item := range items {
		// Admission already covered every new key, so this cannot fail
		if err := s.Insert(item.Key, item.Value); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}

// newKeysIn counts the distinct keys in items that are not already present
func (s *Shard[K, V]) newKeysIn(items []Entry[K, V]) int {
	seen := make(map[K]struct{}, len(items))
	count := 0
	for _, item := range items {
		if _, dup := seen[item.Key]; dup {
			continue
		}
		seen[item.Key] = struct{}{}
		if !s.Contains(item.Key) {
			count++
		}
	}
	return count
}
