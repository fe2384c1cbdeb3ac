// Package estimate holds the explicit optional value used for entropy
// results throughout the engine. entropic.c marks an unreachable estimate
// with sentinel doubles (±10, see original_source/entropic.c INVALID_MAX_ENTROPY
// / INVALID_MIN_ENTROPY); this reimplementation keeps the [0,1] entropy
// domain clean and represents "not enough data" with Valid == false instead.
package estimate

// Value is an entropy estimate in bits per bit, or an invalid marker when
// there was not enough data to compute one.
type Value struct {
	Bits  float64
	Valid bool
}

// Of returns a valid estimate.
func Of(bits float64) Value {
	return Value{Bits: bits, Valid: true}
}

// Invalid returns the zero, not-enough-data estimate.
func Invalid() Value {
	return Value{}
}
