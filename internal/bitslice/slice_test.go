package bitslice

import (
	"testing"

	"github.com/lcn2/entropic/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, bitDepth, backHistory int) config.Config {
	t.Helper()
	return config.Config{
		BitDepth:    bitDepth,
		BackHistory: backHistory,
		DepthFactor: config.DefaultDepthFactor,
	}
}

// TestWarmUpBoundary matches spec scenario 6: bit_depth=4, back_history=8,
// exactly 11 updates leave every tally at zero and count=0; the 12th
// update begins incrementing.
func TestWarmUpBoundary(t *testing.T) {
	cfg := testConfig(t, 4, 8)
	s, err := New(0, cfg)
	require.NoError(t, err)

	for i := 0; i < 11; i++ {
		s.Update(i % 2)
	}
	assert.Equal(t, uint64(0), s.Count)
	for k := 0; k <= cfg.BackHistory; k++ {
		tbl := s.Table(k)
		for idx := 2; idx < tbl.Len(); idx++ {
			assert.Zero(t, tbl.At(idx), "table %d cell %d should be zero during warm-up", k, idx)
		}
	}

	s.Update(1)
	assert.Equal(t, uint64(1), s.Count)

	sum := 0
	tbl := s.Table(0)
	for v := 0; v < 2; v++ { // depth 1 occupies indices 2..3
		sum += int(tbl.At(2 + v))
	}
	assert.Equal(t, 1, sum)
}

// TestTallySumsEqualCount checks spec §8's invariant: for every width d and
// every look-back k, the tally cells at that width sum to Count.
func TestTallySumsEqualCount(t *testing.T) {
	cfg := testConfig(t, 3, 2)
	s, err := New(0, cfg)
	require.NoError(t, err)

	values := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 1}
	for _, v := range values {
		s.Update(v)
	}
	require.Greater(t, s.Count, uint64(0))

	for k := 0; k <= cfg.BackHistory; k++ {
		tbl := s.Table(k)
		for d := 1; d <= cfg.BitDepth; d++ {
			offset := 1 << uint(d)
			var sum uint64
			for v := 0; v < offset; v++ {
				sum += uint64(tbl.At(offset + v))
			}
			assert.Equal(t, s.Count, sum, "look-back %d width %d", k, d)
		}
	}
}

// TestConstantStreamOnlyFillsZeroPattern checks that an all-zero stream
// tallies every observation into the all-zero pattern at every width and
// look-back, which is the tally-level precondition for entropy_high == 0.
func TestConstantStreamOnlyFillsZeroPattern(t *testing.T) {
	cfg := testConfig(t, 4, 4)
	s, err := New(0, cfg)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		s.Update(0)
	}
	require.Greater(t, s.Count, uint64(0))

	for k := 0; k <= cfg.BackHistory; k++ {
		tbl := s.Table(k)
		for d := 1; d <= cfg.BitDepth; d++ {
			offset := 1 << uint(d)
			assert.Equal(t, s.Count, uint64(tbl.At(offset)), "zero pattern at width %d look-back %d", d, k)
			for v := 1; v < offset; v++ {
				assert.Zero(t, tbl.At(offset+v))
			}
		}
	}
}

func TestSetGrowsWithoutBackfill(t *testing.T) {
	cfg := testConfig(t, 2, 2)
	set := NewSet(cfg)

	require.NoError(t, set.EnsureWidth(2))
	set.Slice(0).Update(1)
	set.Slice(1).Update(1)

	require.NoError(t, set.EnsureWidth(4))
	assert.Equal(t, 4, set.Len())
	assert.Equal(t, uint64(1), set.Slice(0).Ops)
	assert.Equal(t, uint64(0), set.Slice(2).Ops, "newly grown slice must start at zero, no backfill")
}
