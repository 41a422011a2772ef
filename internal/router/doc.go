// Package router provides caller-level helpers for mapping keys onto shard
// indexes.
//
// # Overview
//
// Shard selection is not a container responsibility: the shard admits,
// stores and evicts entries without knowing why a key was routed to it.
// Callers that spread a keyspace across several fixed-size shards still need
// a deterministic key-to-index mapping, and that mechanical piece lives
// here. Policy — how many shards to run, when to split, how to migrate —
// stays with the caller.
//
// # Hash Strategies
//
// Two hash functions are offered, both stable across processes (the Go
// runtime map hash is reseeded per process and therefore useless for
// routing to persisted shards):
//   - XXHash: the default, a fast unseeded 64-bit hash
//   - Murmur(seed): seeded murmur3, for deployments that key several
//     independent routings off the same key bytes
//
// # Batch Grouping
//
// Group partitions a key list by target shard, preserving each key's
// relative order inside its group. The output feeds directly into the
// per-shard batch operations, which require inputs in caller order.
//
// # Address Derivation
//
// Mapping a shard index to its storage-unit address is the host runtime's
// deterministic derivation capability, declared as a seam in the record
// package. The router stops at indexes.
package router
