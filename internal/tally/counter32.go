//go:build narrowcounter

package tally

// Counter is the tally cell width under the narrowcounter build tag,
// matching entropic.c's HUGE_INPUT compile switch for tally_t. Only safe
// when no cell will ever see more than 2^32-1 observations.
type Counter = uint32
