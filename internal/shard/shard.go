package shard

import "fmt"

// Entry is one key-value pair stored in a shard
// Keys are unique within a shard; values carry no uniqueness constraint
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Shard is a bounded-capacity key-value container
// It caches its item count alongside the entry slice because both fields are
// part of the serialized header of the record that embeds it
type Shard[K comparable, V any] struct {
	id        uint8          // Diagnostic/addressing identifier, not part of equality
	entries   []Entry[K, V]  // Bounded entry slice, order not guaranteed
	itemCount uint16         // Cached count, always equal to len(entries)
	maxItems  uint16         // Logical capacity ceiling
}

// New creates an empty shard with the given id and capacity ceiling
// The entry slice is allocated up front so the shard never reallocates on
// the insert path
func New[K comparable, V any](id uint8, maxItems uint16) *Shard[K, V] {
	return &Shard[K, V]{
		id:       id,
		entries:  make([]Entry[K, V], 0, maxItems),
		maxItems: maxItems,
	}
}

// Restore rebuilds a shard from previously stored parts, validating the
// container invariants before accepting them
// It is the constructor used by the record layer after decoding
func Restore[K comparable, V any](id uint8, maxItems uint16, entries []Entry[K, V]) (*Shard[K, V], error) {
	if len(entries) > int(maxItems) {
		return nil, fmt.Errorf("%d entries exceed capacity %d: %w", len(entries), maxItems, ErrInvalidCapacity)
	}

	seen := make(map[K]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Key]; dup {
			return nil, fmt.Errorf("key %v: %w", e.Key, ErrDuplicateKey)
		}
		seen[e.Key] = struct{}{}
	}

	s := New[K, V](id, maxItems)
	s.entries = append(s.entries, entries...)
	s.itemCount = uint16(len(entries))
	return s, nil
}

// ID returns the shard's diagnostic identifier
func (s *Shard[K, V]) ID() uint8 {
	return s.id
}

// Len returns the number of stored entries
// It reads the cached count that also feeds the record header, which the
// mutation paths keep equal to the entry slice length at all times
func (s *Shard[K, V]) Len() int {
	return int(s.itemCount)
}

// MaxCapacity returns the logical capacity ceiling
func (s *Shard[K, V]) MaxCapacity() int {
	return int(s.maxItems)
}

// Insert stores a value under key
// If the key already exists its value is replaced in place and no capacity
// is consumed; otherwise a new entry is appended, failing with ErrShardFull
// when the shard is at capacity
// On failure the shard is left unchanged
func (s *Shard[K, V]) Insert(key K, value V) error {
	if idx := s.indexOf(key); idx >= 0 {
		s.entries[idx].Value = value
		return nil
	}

	if !s.CanAddItem() {
		return ErrShardFull
	}

	s.entries = append(s.entries, Entry[K, V]{Key: key, Value: value})
	s.itemCount = uint16(len(s.entries))
	return nil
}

// Get returns the value stored under key
// Absence is a normal outcome, reported through the second return value
func (s *Shard[K, V]) Get(key K) (V, bool) {
	if idx := s.indexOf(key); idx >= 0 {
		return s.entries[idx].Value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether an entry with the given key exists
func (s *Shard[K, V]) Contains(key K) bool {
	return s.indexOf(key) >= 0
}

// Remove deletes the entry stored under key, or fails with ErrKeyNotFound
// The last entry is relocated into the vacated slot, so removal is O(1)
// after the scan but entry order is not preserved
func (s *Shard[K, V]) Remove(key K) error {
	idx := s.indexOf(key)
	if idx < 0 {
		return ErrKeyNotFound
	}

	last := len(s.entries) - 1
	s.entries[idx] = s.entries[last]
	s.entries[last] = Entry[K, V]{} // release references held by the vacated slot
	s.entries = s.entries[:last]
	s.itemCount = uint16(len(s.entries))
	return nil
}

// Entries returns a copy of the stored entries
// Order is unspecified and callers must not rely on it
func (s *Shard[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(s.entries))
	copy(out, s.entries)
	return out
}

// indexOf scans the entry slice for key and returns its index, or -1
// Linear scan is intentional: shards hold bounded small populations where a
// scan beats hashing overhead and extra metadata in a space-constrained
// record
func (s *Shard[K, V]) indexOf(key K) int {
	for i := range s.entries {
		if s.entries[i].Key == key {
			return i
		}
	}
	return -1
}
