// Package record implements the embedding contract between a shard and the
// fixed-capacity storage record that persists it.
//
// # Overview
//
// A shard is expected to be the entire payload, or a well-defined
// sub-region, of an external fixed-size storage record such as a ledger
// account. This package owns the wire shape of that payload: a 5-byte
// header carrying the shard id (1 byte), item count (2 bytes) and max items
// (2 bytes), followed by item-count entries, each entry being the
// caller-supplied codec's encoding of a key followed by its value. Bytes
// past the encoded entries are slack left by the record's fixed allocation
// and are never inspected.
//
// # Record Layout
//
//	┌────────┬───────────┬──────────┬───────────────────────┬───────┐
//	│ id (1) │ count (2) │ max (2)  │ count × (key ∥ value) │ slack │
//	└────────┴───────────┴──────────┴───────────────────────┴───────┘
//
// All multi-byte header fields are little-endian. Entry encoding, including
// any internal length framing, belongs entirely to the codec pair.
//
// # Sizing
//
// EstimateShardAccountSize computes the physical footprint a shard of a
// given shape requires, before any shard exists, so callers can request the
// allocation of a new storage record. The estimate is exact for fixed-size
// codecs and an upper bound parameterized by the caller's chosen per-entry
// payload sizes otherwise.
//
// # Addressing
//
// Deterministic storage-unit address derivation is an external capability of
// the host ledger runtime: pure, deterministic, and injective over
// (namespace, index) pairs. This package only declares the seam
// (DeriveAddressFunc) and verifies outcomes (VerifyAddress); it neither
// implements nor depends on the derivation internals. An address/record
// mismatch surfaces as ErrInvalidShard, as does any malformed record
// payload.
//
// # Ownership
//
// AccountShard is the strict-composition owner structure: it holds the
// shard by value together with the record's authority address, and is
// solely responsible for the shard's persisted lifetime. The shard itself
// has no knowledge of how or where it is stored.
package record
