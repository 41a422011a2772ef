// Package main implements shardsim, a small driver that exercises the shard
// container the way a ledger integration would: route a keyspace across a
// set of fixed-capacity shards, run batch insertions, react to shards
// running near capacity, and size the storage records the shards would
// occupy.
//
// The simulator owns every shard directly; there is no network and no
// persistence. It exists to demonstrate the call patterns:
//   - Router.Group to partition a batch by target shard
//   - InsertBatch for best-effort admission with per-item outcomes
//   - CanInsertBatch / TryInsertBatch for all-or-nothing admission
//   - IsNearCapacity + ResizeCapacity for proactive growth
//   - record.Marshal + EstimateShardAccountSize for allocation sizing
//
// Configuration:
//   - SHARDSIM_SHARDS: number of shards (default: 8)
//   - SHARDSIM_CAPACITY: max items per shard (default: 64)
//   - SHARDSIM_KEYS: number of keys to route (default: 400)
//   - SHARDSIM_GROW_AT: utilization percent that triggers a resize (default: 80)
//
// Example usage:
//
//	SHARDSIM_SHARDS=4 SHARDSIM_KEYS=1000 ./shardsim
package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/dreamware/shardmap/internal/codec"
	"github.com/dreamware/shardmap/internal/record"
	"github.com/dreamware/shardmap/internal/router"
	"github.com/dreamware/shardmap/internal/shard"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	numShards := getenvInt("SHARDSIM_SHARDS", 8)
	capacity := getenvInt("SHARDSIM_CAPACITY", 64)
	numKeys := getenvInt("SHARDSIM_KEYS", 400)
	growAt := getenvInt("SHARDSIM_GROW_AT", 80)

	r, err := router.New(numShards)
	if err != nil {
		logger.Fatal("create router", zap.Error(err))
	}

	shards := make([]*shard.Shard[string, uint64], numShards)
	for i := range shards {
		shards[i] = shard.New[string, uint64](uint8(i), uint16(capacity))
	}

	logger.Info("simulator configured",
		zap.Int("shards", numShards),
		zap.Int("capacity", capacity),
		zap.Int("keys", numKeys),
	)

	// Route the whole keyspace, then land one best-effort batch per shard
	keys := make([][]byte, numKeys)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("user:%d", i))
	}

	admitted, rejected := 0, 0
	for idx, group := range r.Group(keys) {
		s := shards[idx]

		items := make([]shard.Entry[string, uint64], len(group))
		for i, key := range group {
			items[i] = shard.Entry[string, uint64]{Key: string(key), Value: uint64(len(key))}
		}

		for _, res := range s.InsertBatch(items) {
			if res != nil {
				rejected++
				continue
			}
			admitted++
		}

		if s.IsNearCapacity(float64(growAt)) {
			grown := uint16(s.MaxCapacity() * 2)
			if err := s.ResizeCapacity(grown); err != nil {
				logger.Error("resize shard", zap.Uint8("shard", s.ID()), zap.Error(err))
				continue
			}
			logger.Info("resized shard near capacity",
				zap.Uint8("shard", s.ID()),
				zap.Uint16("new_capacity", grown),
			)
		}
	}

	logger.Info("best-effort batch complete",
		zap.Int("admitted", admitted),
		zap.Int("rejected", rejected),
	)

	// All-or-nothing: a coordinated write that must not partially apply
	atomicBatch := []shard.Entry[string, uint64]{
		{Key: "ledger:checkpoint", Value: 1},
		{Key: "ledger:epoch", Value: 42},
	}
	target := shards[r.PickString("ledger:checkpoint")]
	if target.CanInsertBatch(atomicBatch) {
		n, err := target.TryInsertBatch(atomicBatch)
		if err != nil {
			logger.Fatal("atomic batch", zap.Error(err))
		}
		logger.Info("atomic batch applied", zap.Uint8("shard", target.ID()), zap.Int("items", n))
	} else {
		logger.Warn("atomic batch rejected, shard lacks the slots",
			zap.Uint8("shard", target.ID()),
			zap.Int("remaining", target.RemainingCapacity()),
		)
	}

	report(logger, shards)
}

// report logs per-shard capacity stats and record sizing, shards in index
// order
func report(logger *zap.Logger, shards []*shard.Shard[string, uint64]) {
	totals := make(map[uint8]shard.CapacityStats, len(shards))
	for _, s := range shards {
		totals[s.ID()] = s.CapacityStats()
	}

	ids := maps.Keys(totals)
	slices.Sort(ids)

	for _, id := range ids {
		stats := totals[id]
		s := shards[id]

		data, err := record.Marshal(s, codec.String{}, codec.Uint64{})
		if err != nil {
			logger.Error("marshal shard", zap.Uint8("shard", id), zap.Error(err))
			continue
		}

		// What a fresh allocation for this shape would cost, assuming
		// 32-byte keys at the ceiling
		estimate := record.EstimateShardAccountSize(codec.String{}, codec.Uint64{}, 32, 8, stats.MaxCapacity)

		logger.Info("shard report",
			zap.Uint8("shard", id),
			zap.Int("items", stats.CurrentItems),
			zap.Int("capacity", stats.MaxCapacity),
			zap.Float64("utilization_pct", stats.UtilizationPercentage),
			zap.Float64("load_factor", stats.LoadFactor),
			zap.Bool("full", stats.IsFull),
			zap.Int("record_bytes", len(data)),
			zap.Int("estimated_record_bytes", estimate),
		)
	}
}

// getenvInt reads an integer environment variable, falling back to def when
// unset or malformed
func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
