package shard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCapacityAccounting verifies the derived capacity metrics as a shard
// fills up.
func TestCapacityAccounting(t *testing.T) {
	s := New[uint64, string](0, 5)

	// Empty shard
	assert.Equal(t, 5, s.RemainingCapacity())
	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsFull())
	assert.Equal(t, 0.0, s.UtilizationPercentage())
	assert.Equal(t, 0.0, s.LoadFactor())

	// Two of five slots used
	require.NoError(t, s.Insert(1, "a"))
	require.NoError(t, s.Insert(2, "b"))

	assert.Equal(t, 3, s.RemainingCapacity())
	assert.False(t, s.IsEmpty())
	assert.False(t, s.IsFull())
	assert.InDelta(t, 40.0, s.UtilizationPercentage(), 1e-9)
	assert.InDelta(t, 0.4, s.LoadFactor(), 1e-9)

	// Filled to the ceiling
	require.NoError(t, s.Insert(3, "c"))
	require.NoError(t, s.Insert(4, "d"))
	require.NoError(t, s.Insert(5, "e"))

	assert.Equal(t, 0, s.RemainingCapacity())
	assert.True(t, s.IsFull())
	assert.False(t, s.CanAddItem())
	assert.InDelta(t, 100.0, s.UtilizationPercentage(), 1e-9)
	assert.InDelta(t, 1.0, s.LoadFactor(), 1e-9)
}

// TestZeroCapacityShard verifies the metrics are defined for a ceiling of 0.
func TestZeroCapacityShard(t *testing.T) {
	s := New[uint64, uint64](0, 0)

	assert.Equal(t, 0.0, s.UtilizationPercentage())
	assert.Equal(t, 0.0, s.LoadFactor())
	assert.True(t, s.IsEmpty())
	assert.True(t, s.IsFull())
	assert.ErrorIs(t, s.Insert(1, 1), ErrShardFull)
}

// TestIsNearCapacity verifies threshold behavior, including thresholds below
// current utilization and above 100.
func TestIsNearCapacity(t *testing.T) {
	s := New[uint64, uint64](0, 10)
	for i := uint64(0); i < 8; i++ {
		require.NoError(t, s.Insert(i, i))
	}

	tests := []struct {
		threshold float64
		want      bool
	}{
		{threshold: 0, want: true},    // at or below current utilization
		{threshold: 50, want: true},   // below current utilization
		{threshold: 80, want: true},   // exactly at current utilization
		{threshold: 90, want: false},  // above current utilization
		{threshold: 100, want: false}, // not yet full
		{threshold: 101, want: false}, // above 100 is never reached
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("threshold %v", tt.threshold), func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsNearCapacity(tt.threshold))
		})
	}
}

// TestSpaceForNewItems verifies the additional-slots-needed count, which
// callers compare against the remaining capacity themselves.
func TestSpaceForNewItems(t *testing.T) {
	s := New[uint64, uint64](0, 5)
	require.NoError(t, s.Insert(1, 10))
	require.NoError(t, s.Insert(2, 20))

	tests := []struct {
		name string
		keys []uint64
		want int
	}{
		{
			name: "mix of existing and new keys",
			keys: []uint64{1, 3, 4, 5, 6},
			// 4 new keys need 4 slots even though only 3 remain: the count
			// is not clamped, the caller compares it to RemainingCapacity
			want: 4,
		},
		{
			name: "all existing keys",
			keys: []uint64{1, 2},
			want: 0,
		},
		{
			name: "all new keys",
			keys: []uint64{3, 4},
			want: 2,
		},
		{
			name: "duplicate candidates count once",
			keys: []uint64{3, 3, 3, 4},
			want: 2,
		},
		{
			name: "no candidates",
			keys: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.SpaceForNewItems(tt.keys))
		})
	}
}

// TestResizeCapacity verifies the resize guard and both resize directions.
func TestResizeCapacity(t *testing.T) {
	s := New[uint64, uint64](0, 100)
	for i := uint64(0); i < 60; i++ {
		require.NoError(t, s.Insert(i, i))
	}

	// Shrinking below the live item count must fail and change nothing
	err := s.ResizeCapacity(50)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
	assert.Equal(t, 100, s.MaxCapacity())

	// Shrinking exactly to the item count succeeds
	require.NoError(t, s.ResizeCapacity(60))
	assert.Equal(t, 60, s.MaxCapacity())
	assert.True(t, s.IsFull())

	// Growing succeeds and admits new entries again
	require.NoError(t, s.ResizeCapacity(200))
	assert.Equal(t, 200, s.MaxCapacity())
	require.NoError(t, s.Insert(60, 600))
	assert.Equal(t, 61, s.Len())
}

// TestReserveAndShrink verifies the physical allocation hints leave the
// logical state alone.
func TestReserveAndShrink(t *testing.T) {
	s := New[uint64, uint64](0, 100)
	require.NoError(t, s.Insert(1, 10))

	// Reserve never changes the ceiling or the entries
	s.Reserve(50)
	assert.Equal(t, 100, s.MaxCapacity())
	assert.Equal(t, 1, s.Len())
	assert.GreaterOrEqual(t, s.CapacityStats().AllocatedCapacity, 51)

	// The allocation is never grown past the ceiling
	s.Reserve(10_000)
	assert.LessOrEqual(t, s.CapacityStats().AllocatedCapacity, 100)

	// Negative and zero hints are no-ops
	s.Reserve(0)
	s.Reserve(-5)
	assert.Equal(t, 1, s.Len())

	// Shrinking reduces the allocation to the live entries
	s.ShrinkToFit()
	assert.Equal(t, 1, s.CapacityStats().AllocatedCapacity)
	assert.Equal(t, 100, s.MaxCapacity())
	v, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint64(10), v)
}

// TestClear verifies the low-cost reset path preserves the ceiling and the
// allocation.
func TestClear(t *testing.T) {
	s := New[uint64, string](0, 10)
	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, s.Insert(i, fmt.Sprintf("value%d", i)))
	}
	require.Equal(t, 5, s.Len())

	allocated := s.CapacityStats().AllocatedCapacity
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 10, s.RemainingCapacity())
	assert.Equal(t, allocated, s.CapacityStats().AllocatedCapacity)

	// The shard is fully reusable after a clear
	require.NoError(t, s.Insert(1, "again"))
	v, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "again", v)
}

// TestCapacityStats verifies the assembled snapshot against a known state.
func TestCapacityStats(t *testing.T) {
	s := New[uint64, uint64](9, 10)
	require.NoError(t, s.Insert(1, 10))
	require.NoError(t, s.Insert(2, 20))

	stats := s.CapacityStats()

	assert.Equal(t, 2, stats.CurrentItems)
	assert.Equal(t, 10, stats.MaxCapacity)
	assert.Equal(t, 8, stats.RemainingCapacity)
	assert.InDelta(t, 20.0, stats.UtilizationPercentage, 1e-9)
	assert.InDelta(t, 0.2, stats.LoadFactor, 1e-9)
	assert.GreaterOrEqual(t, stats.AllocatedCapacity, stats.CurrentItems)
	assert.False(t, stats.IsFull)
	assert.False(t, stats.IsEmpty)
}
