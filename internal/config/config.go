// Package config parses and validates the command-line surface and bundles
// the result into a single immutable value, per the "no global configuration
// state" redesign note: the original entropic.c consults process-wide
// mutable globals (bit_depth, back_history, ...) from the update and report
// loops; here the Updater and EntropyReporter instead receive a Config
// value explicitly.
package config

import "github.com/lcn2/entropic/internal/tally"

// Version is reported by -V.
const Version = "entropic 1.0.0 (go reimplementation)"

// Defaults and bounds, grounded on entropic.c's #define block (OCTET_BITS,
// DEF_DEPTH, MAX_HISTORY_BITS, MAX_BACK_HISTORY, DEF_DEPTH_FACTOR).
const (
	OctetBits = 8

	DefaultBitDepth    = 8
	DefaultBackHistory = 32
	DefaultDepthFactor = 4

	MaxHistoryBits = 64
	MaxBackHistory = MaxHistoryBits / 2
	// MaxDepth is carried from internal/tally so the two packages can never
	// disagree on the bound a Table is allocated against.
	MaxDepth = tally.MaxDepth
)

// Config is the immutable, fully-validated result of command-line parsing.
// It is constructed once by Parse and threaded explicitly through the rest
// of the program; nothing in internal/bitslice or internal/entropy reaches
// back into package-level state.
type Config struct {
	BitDepth    int
	BackHistory int
	DepthFactor int

	// ReportCycle is rept_cycle: emit a progress report every N records.
	// 0 means "report only at EOF".
	ReportCycle int

	// LineMode is true unless -r was given. RecSize is the fixed record
	// size in binary mode; unused in line mode.
	LineMode bool
	RecSize  int

	KeepNewline bool
	CookieTrim  bool
	MapFile     string

	// Verbosity is the -v debug level, 0 (quiet) through 10.
	Verbosity int

	// JSON selects the -j machine-readable report format, a domain-stack
	// addition not present in entropic.c.
	JSON bool

	// InputFile is the positional argument; "-" means standard input.
	InputFile string
}
