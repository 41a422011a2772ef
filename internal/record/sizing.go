package record

import "github.com/dreamware/shardmap/internal/codec"

// EstimateShardAccountSize computes the physical byte footprint a storage
// record needs for a shard of the given shape: the fixed header plus
// maxItems entries of keySize+valueSize payload bytes, each carrying the
// codec pair's constant per-entry framing overhead
// keySize and valueSize are the caller's per-entry payload sizes (exact for
// fixed-size types, a chosen upper bound for variable-length ones)
// The function performs no I/O and has no failure mode for non-overflowing
// inputs
func EstimateShardAccountSize[K, V any](kc codec.Codec[K], vc codec.Codec[V], keySize, valueSize, maxItems int) int {
	perEntry := keySize + valueSize + kc.FrameOverhead() + vc.FrameOverhead()
	return HeaderSize + maxItems*perEntry
}
