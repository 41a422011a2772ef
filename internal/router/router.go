package router

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// MaxShards is the largest shard count a router supports, bounded by the
// 8-bit shard index used in record headers and address derivation
const MaxShards = 256

// Hasher maps key bytes to a 64-bit hash
// Implementations must be deterministic across processes, since the
// resulting indexes address persisted storage units
type Hasher func(key []byte) uint64

// XXHash is the default routing hash
func XXHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Murmur returns a seeded murmur3 hasher, letting callers run several
// independent routings over the same key bytes
func Murmur(seed uint32) Hasher {
	return func(key []byte) uint64 {
		return murmur3.Sum64WithSeed(key, seed)
	}
}

// Router deterministically maps keys onto a fixed set of shard indexes
type Router struct {
	numShards int
	hash      Hasher
}

// New creates a router over numShards shards using the default XXHash
// strategy
func New(numShards int) (*Router, error) {
	return NewWithHasher(numShards, XXHash)
}

// NewWithHasher creates a router with an explicit hash strategy
func NewWithHasher(numShards int, hash Hasher) (*Router, error) {
	if numShards < 1 || numShards > MaxShards {
		return nil, fmt.Errorf("shard count %d outside [1, %d]", numShards, MaxShards)
	}
	if hash == nil {
		return nil, fmt.Errorf("nil hasher")
	}

	return &Router{numShards: numShards, hash: hash}, nil
}

// NumShards returns the number of shards the router spreads keys over
func (r *Router) NumShards() int {
	return r.numShards
}

// Pick returns the shard index responsible for key
func (r *Router) Pick(key []byte) uint8 {
	return uint8(r.hash(key) % uint64(r.numShards))
}

// PickString is Pick for string keys without forcing a []byte conversion at
// every call site
func (r *Router) PickString(key string) uint8 {
	return r.Pick([]byte(key))
}

// Group partitions keys by their target shard index, preserving each key's
// relative order within its group
// The groups feed directly into per-shard batch operations, which report
// results in input order
func (r *Router) Group(keys [][]byte) map[uint8][][]byte {
	groups := make(map[uint8][][]byte)
	for _, key := range keys {
		idx := r.Pick(key)
		groups[idx] = append(groups[idx], key)
	}
	return groups
}
