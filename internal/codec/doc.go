// Package codec defines the per-type encoding capability a caller supplies
// when embedding a shard in a fixed-size storage record.
//
// # Overview
//
// The shard container never inspects entry bytes itself: encoding and
// decoding of individual keys and values is delegated to a Codec chosen by
// the embedding caller for its concrete key and value types. A codec is
// responsible for any internal length framing its type needs, and must keep
// that framing overhead constant across all values of the type so record
// sizes can be estimated before any shard exists.
//
// # Implementations
//
// Ready-made codecs cover the common ledger shapes:
//   - Uint64: fixed 8-byte little-endian integers, no framing
//   - String: UTF-8 bytes behind a 2-byte little-endian length prefix
//   - Bytes: raw bytes behind the same 2-byte length prefix
//
// The record package adds a fixed-width codec for storage-unit addresses.
//
// # Error Handling
//
// Decoding a truncated buffer fails with ErrShortBuffer. Encoding a
// variable-length value longer than its 2-byte length prefix can express
// fails with ErrValueTooLarge. Both are surfaced by the record layer as an
// invalid-record condition.
package codec
