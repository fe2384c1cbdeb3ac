// Package bitslice implements the per-record-bit-position accumulator
// (BitSlice), its owning collection (SliceSet), and the bit Updater.
// Grounded on entropic.c's struct bitslice, alloc_bitslice, and record_bit,
// with the per-entry-struct-plus-history-register shape following the same
// pattern as the teacher's branch predictor (see DESIGN.md).
package bitslice

import (
	"fmt"

	"github.com/lcn2/entropic/internal/config"
	"github.com/lcn2/entropic/internal/estimate"
	"github.com/lcn2/entropic/internal/tally"
)

// Slice is the per-bit-position state: a sliding history register, the
// operation/sample counters, one tally table per look-back distance, and
// cached entropy estimates the entropy package fills in.
type Slice struct {
	BitIndex int

	// History is an up-to-64-bit sliding window; bit 0 is the most recent
	// value observed at BitIndex.
	History uint64

	// Ops counts every Update call, including ones discarded during
	// warm-up. Count counts only the ones that actually bumped a tally.
	Ops   uint64
	Count uint64

	// DepthLim and BackLim are the bit_depth and back_history this slice
	// was constructed with; fixed for the slice's lifetime so the hot loop
	// never needs to consult external configuration.
	DepthLim int
	BackLim  int

	tables []*tally.Table

	// MaxEnt and MinEnt are the per-look-back cached entropy estimates
	// (index 0 == current window, index k == xor with history k back),
	// filled in by internal/entropy.Compute. High and Low are the
	// per-slice best estimates collapsed from MaxEnt/MinEnt.
	MaxEnt []estimate.Value
	MinEnt []estimate.Value
	High   estimate.Value
	Low    estimate.Value
}

// New allocates a Slice for bitIndex with BackHistory+1 tally tables of
// depth BitDepth, mirroring alloc_bitslice(). Entropy caches start invalid.
func New(bitIndex int, cfg config.Config) (*Slice, error) {
	tables := make([]*tally.Table, cfg.BackHistory+1)
	for k := range tables {
		t, err := tally.Allocate(cfg.BitDepth)
		if err != nil {
			return nil, fmt.Errorf("bitslice: bit %d: allocate look-back %d table: %w", bitIndex, k, err)
		}
		tables[k] = t
	}
	maxEnt := make([]estimate.Value, cfg.BackHistory+1)
	minEnt := make([]estimate.Value, cfg.BackHistory+1)
	for k := range maxEnt {
		maxEnt[k] = estimate.Invalid()
		minEnt[k] = estimate.Invalid()
	}
	return &Slice{
		BitIndex: bitIndex,
		DepthLim: cfg.BitDepth,
		BackLim:  cfg.BackHistory,
		tables:   tables,
		MaxEnt:   maxEnt,
		MinEnt:   minEnt,
		High:     estimate.Invalid(),
		Low:      estimate.Invalid(),
	}, nil
}

// Table returns the look-back-k tally table (k == 0 is the current window,
// no xor).
func (s *Slice) Table(k int) *tally.Table {
	return s.tables[k]
}

// Update applies one bit value to the slice: record_bit() from entropic.c.
// value is treated as 0 or non-zero. Until Ops reaches BackLim+DepthLim
// (the window has filled with real values) the call only advances the
// history; once warmed up every call also bumps every affected tally cell,
// ascending width then ascending look-back.
func (s *Slice) Update(value int) {
	s.History <<= 1
	if value != 0 {
		s.History |= 1
	}
	s.Ops++
	if s.Ops < uint64(s.BackLim+s.DepthLim) {
		return
	}
	s.Count++

	for d := 1; d <= s.DepthLim; d++ {
		offset := 1 << uint(d)
		mask := uint64(offset - 1)
		cur := s.History & mask

		s.tables[0].Bump(offset + int(cur))

		for k := 1; k <= s.BackLim; k++ {
			past := (s.History >> uint(k)) & mask
			s.tables[k].Bump(offset + int(cur^past))
		}
	}
}
