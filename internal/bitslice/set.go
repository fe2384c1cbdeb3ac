package bitslice

import "github.com/lcn2/entropic/internal/config"

// Set maps bit_index -> Slice, growing on demand to the widest record seen
// so far. Grounded on the bits[]/bits_len growth logic in entropic.c's
// main().
type Set struct {
	cfg    config.Config
	slices []*Slice
}

// NewSet returns an empty Set bound to cfg; every Slice it later creates
// uses cfg's BitDepth/BackHistory.
func NewSet(cfg config.Config) *Set {
	return &Set{cfg: cfg}
}

// EnsureWidth grows the set so that slices for bit indices 0..n-1 exist.
// Newly created slices start with zero history and zero counts; existing
// slices are left untouched (no backfill) — a bit position that only
// starts appearing in a later record simply sees fewer samples.
func (s *Set) EnsureWidth(n int) error {
	for len(s.slices) < n {
		slice, err := New(len(s.slices), s.cfg)
		if err != nil {
			return err
		}
		s.slices = append(s.slices, slice)
	}
	return nil
}

// Slice returns the i-th bit-slice. The caller must have already called
// EnsureWidth(i+1) or greater.
func (s *Set) Slice(i int) *Slice {
	return s.slices[i]
}

// Len returns the number of slices currently allocated.
func (s *Set) Len() int {
	return len(s.slices)
}
