// Package tally implements the flat, depth-indexed counter tables that back
// bit-slice entropy accounting. It is grounded on entropic.c's
// alloc_bittally()/tally_t (original_source/entropic.c); the flat
// hash-indexed table shape follows the same pattern as the teacher's
// branch-predictor counter tables (see DESIGN.md).
package tally

import "fmt"

// Table is a flat counter array for one (bit position, look-back distance)
// pair. For a table allocated at depth d, the count for a d-bit value v in
// [0, 2^d) lives at cells[1<<d + v], mirroring alloc_bittally's layout.
// Cell 0 holds the table's own length so a Table can report its size
// without the allocating depth in hand, exactly as entropic.c does.
type Table struct {
	cells []Counter
}

// Allocate builds a Table sized for the given depth. depth must be in
// [1, MaxDepth]; the table holds 2^(depth+1) cells, cell 0 carrying the
// length itself, cell 1 unused, cells[2^k..2^(k+1)) the tallies for a k-bit
// value ranging over 1 <= k <= depth.
func Allocate(depth int) (*Table, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("tally: depth %d out of range [1, %d]", depth, MaxDepth)
	}
	length := 1 << uint(depth+1)
	cells := make([]Counter, length)
	cells[0] = Counter(length)
	return &Table{cells: cells}, nil
}

// MaxDepth bounds the depth a Table can be allocated at. It matches the
// spec's MAX_DEPTH (and entropic.c's MAX_DEPTH): depth+1 must stay within
// the index space a single int can address without overflow concerns.
const MaxDepth = 31

// Bump increments the tally cell at index by one. index is the caller's
// responsibility to compute (typically 1<<depth + value); Bump does not
// recompute it so hot-loop callers avoid redoing the shift.
func (t *Table) Bump(index int) {
	t.cells[index]++
}

// At returns the tally cell at index.
func (t *Table) At(index int) Counter {
	return t.cells[index]
}

// Len returns the table's allocated length, i.e. the value stored in
// cell 0 at Allocate time.
func (t *Table) Len() int {
	return int(t.cells[0])
}
