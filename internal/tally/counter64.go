//go:build !narrowcounter

package tally

// Counter is the tally cell width. 64 bits is the default so a single cell
// can safely tally more than 2^32 observations (spec's "Counter-width
// trade-off": narrow counters only suffice up to ~4e9 observations per
// cell). Build with -tags narrowcounter to switch to the 32-bit form.
type Counter = uint64
