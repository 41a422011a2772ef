// Package shard implements a bounded-capacity key-value container designed to
// live inside a fixed-size storage record, such as a ledger account of a few
// kilobytes that cannot grow without an externally coordinated reallocation.
//
// # Overview
//
// A shard holds a small, capped set of key-value entries. It enforces a
// logical capacity ceiling (max items) on every admission, keeps exact
// capacity accounting at all times, and offers both best-effort and
// all-or-nothing batch protocols on top of its single-item operations.
// Serialization, storage-unit addressing, and transaction orchestration are
// external collaborators; the shard itself is a pure in-memory value.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│              SHARD                  │
//	├─────────────────────────────────────┤
//	│                                     │
//	│  ┌──────────────────────────────┐   │
//	│  │   Entry Store                │   │
//	│  │   - Bounded entry slice      │   │
//	│  │   - Linear scan by key       │   │
//	│  │   - Swap-with-last removal   │   │
//	│  └──────────────────────────────┘   │
//	│                                     │
//	│  ┌──────────────────────────────┐   │
//	│  │   Capacity Ledger            │   │
//	│  │   - Utilization / load factor│   │
//	│  │   - Admission checks         │   │
//	│  │   - Resize validation        │   │
//	│  └──────────────────────────────┘   │
//	│                                     │
//	│  ┌──────────────────────────────┐   │
//	│  │   Batch Engine               │   │
//	│  │   - Best-effort batches      │   │
//	│  │   - All-or-nothing batches   │   │
//	│  │   - Per-input result vector  │   │
//	│  └──────────────────────────────┘   │
//	│                                     │
//	└─────────────────────────────────────┘
//
// # Core Components
//
// Shard: The container itself
//   - Generic over a comparable key type and any value type
//   - Insert upserts in place, appends only when capacity allows
//   - Get treats absence as a normal outcome, not an error
//   - Remove relocates the last entry into the vacated slot
//
// Capacity Ledger: Pure accounting over the shard's capacity fields
//   - Remaining capacity, utilization percentage, load factor
//   - Near-capacity thresholds for proactive resizing decisions
//   - Resize validation (never below the live item count)
//   - Reserve / shrink hints for the physical allocation
//
// Batch Engine: Multi-item sequencing with two failure disciplines
//   - InsertBatch / RemoveBatch report one outcome per input and never
//     roll back earlier successes
//   - CanInsertBatch / TryInsertBatch admit or reject a whole batch
//     atomically, leaving the shard untouched on rejection
//
// # Lookup Strategy
//
// Lookup and placement use a linear scan over the entry slice. This is a
// deliberate choice: shards are sized for tens to low hundreds of entries,
// bounded by the physical size of the record that embeds them. At that
// population a scan is cheap, needs no hashing, and adds zero metadata to a
// space-constrained record. The shard is not a general hash table and does
// not try to be one.
//
// Entry order is NOT a guaranteed property. Removal swaps the last entry
// into the removed slot, so any caller that needs ordered iteration must
// sort explicitly on its own side.
//
// # Concurrency Model
//
// The shard is synchronous and single-owner by contract. No operation
// blocks, spawns, or performs I/O, and no operation leaves background work
// pending. There is no internal locking: the enclosing storage record owns
// the shard exclusively and its access is serialized by the surrounding
// execution environment (one transaction touching one record at a time).
// Concurrent mutation from multiple goroutines without external
// synchronization is not supported.
//
// # Error Handling
//
// All failures are local, recoverable state conditions:
//   - ErrShardFull: admission needs more new slots than remain
//   - ErrKeyNotFound: removal targeted an absent key
//   - ErrInvalidCapacity: resize below the live item count
//
// Single-item operations fail without mutating the shard. Best-effort
// batches convert per-item failures into data (a result vector) instead of
// propagating them. All-or-nothing batches fail atomically. A lookup miss
// is not an error.
//
// # Usage Example
//
//	s := shard.New[uint64, uint64](0, 128)
//
//	if err := s.Insert(42, 1000); err != nil {
//	    // ErrShardFull when at capacity
//	}
//
//	if v, ok := s.Get(42); ok {
//	    fmt.Println(v)
//	}
//
//	if s.IsNearCapacity(80) {
//	    // grow before the next batch lands
//	    _ = s.ResizeCapacity(256)
//	}
//
//	results := s.InsertBatch(pending) // one error slot per input
//
// # See Also
//
//   - Package record: embeds a shard in a fixed-size storage record
//   - Package codec: per-type entry encoding supplied by the caller
//   - Package router: caller-level key-to-shard-index selection
package shard
