package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Parse parses args (typically os.Args[1:]) against the CLI surface
// described in spec.md §6, validates every bound, and returns a ready-to-use
// Config. stderr receives usage/version text and pflag's own parse-error
// output, exactly where entropic.c's parse_args writes its fprintf(stderr,
// ...) calls.
//
// Validation order matches entropic.c's parse_args: missing input file,
// report cycle, bit depth, back history, depth factor, the depth+history
// sum invariant (spec.md §3, never actually checked by entropic.c), record
// size, then the -r/-k and -r/-C conflicts.
func Parse(program string, args []string, stderr io.Writer) (Config, error) {
	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, Usage(program)) }

	var (
		help        bool
		version     bool
		verbose     int
		reportCycle int
		bitDepth    int
		backHistory int
		depthFactor int
		recSize     int
		keepNewline bool
		mapFile     string
		cookieTrim  bool
		jsonOut     bool
	)

	fs.BoolVarP(&help, "help", "h", false, "print this help message and exit")
	fs.BoolVarP(&version, "version", "V", false, "print version string and exit")
	fs.IntVarP(&verbose, "verbose", "v", 0, "verbose level (0 == none)")
	fs.IntVarP(&reportCycle, "report-cycle", "c", 0, "report every N records (0 == at end only)")
	fs.IntVarP(&bitDepth, "bit-depth", "b", DefaultBitDepth, "tally depth for each record bit")
	fs.IntVarP(&backHistory, "back-history", "B", DefaultBackHistory, "xor diffs this many records back")
	fs.IntVarP(&depthFactor, "depth-factor", "f", DefaultDepthFactor, "ave slot tally needed for entropy")
	fs.IntVarP(&recSize, "rec-size", "r", 0, "read N octet records (switches out of line mode)")
	fs.BoolVarP(&keepNewline, "keep-newline", "k", false, "do not discard newlines (line mode only)")
	fs.StringVarP(&mapFile, "map-file", "m", "", "octet mask / octet-to-bit map / bit mask file")
	fs.BoolVarP(&cookieTrim, "cookie-trim", "C", false, "keep text between 1st = and 1st ; (line mode only)")
	fs.BoolVarP(&jsonOut, "json", "j", false, "emit progress and final reports as JSON")

	if err := fs.Parse(args); err != nil {
		return Config{}, &ConfigError{Code: ExitBadOption, Err: err}
	}

	if help {
		fmt.Fprint(stderr, Usage(program))
		return Config{}, &ExitRequest{Code: ExitHelp}
	}
	if version {
		fmt.Fprintln(stderr, Version)
		return Config{}, &ExitRequest{Code: ExitVersion}
	}

	if fs.NArg() < 1 {
		return Config{}, &ConfigError{Code: ExitMissingInputFile, Err: fmt.Errorf("missing input_file argument")}
	}
	inputFile := fs.Arg(0)

	if reportCycle < 0 {
		return Config{}, &ConfigError{Code: ExitBadReportCycle, Err: fmt.Errorf("-c report cycle must be >= 0, got %d", reportCycle)}
	}
	if bitDepth < 1 {
		return Config{}, &ConfigError{Code: ExitBadBitDepthLow, Err: fmt.Errorf("-b bit_depth must be > 0, got %d", bitDepth)}
	}
	if bitDepth > MaxDepth {
		return Config{}, &ConfigError{Code: ExitBadBitDepthHigh, Err: fmt.Errorf("-b bit_depth must be <= %d, got %d", MaxDepth, bitDepth)}
	}
	if backHistory < 1 {
		return Config{}, &ConfigError{Code: ExitBadBackHistoryLow, Err: fmt.Errorf("-B back_history must be > 0, got %d", backHistory)}
	}
	if backHistory > MaxBackHistory {
		return Config{}, &ConfigError{Code: ExitBadBackHistoryHigh, Err: fmt.Errorf("-B back_history must be <= %d, got %d", MaxBackHistory, backHistory)}
	}
	if depthFactor < 1 {
		return Config{}, &ConfigError{Code: ExitBadDepthFactor, Err: fmt.Errorf("-f depth_factor must be > 0, got %d", depthFactor)}
	}
	if bitDepth+backHistory > MaxHistoryBits {
		return Config{}, &ConfigError{Code: ExitDepthHistorySum, Err: fmt.Errorf("-b bit_depth + -B back_history must be <= %d, got %d", MaxHistoryBits, bitDepth+backHistory)}
	}

	lineMode := !fs.Changed("rec-size")
	if !lineMode && recSize <= 0 {
		return Config{}, &ConfigError{Code: ExitBadRecSize, Err: fmt.Errorf("-r rec_size must be > 0, got %d", recSize)}
	}
	if !lineMode && keepNewline {
		return Config{}, &ConfigError{Code: ExitRecSizeKeepConflict, Err: fmt.Errorf("-r rec_size and -k conflict")}
	}
	if !lineMode && cookieTrim {
		return Config{}, &ConfigError{Code: ExitRecSizeCookieConflict, Err: fmt.Errorf("-r rec_size and -C conflict")}
	}

	cfg := Config{
		BitDepth:    bitDepth,
		BackHistory: backHistory,
		DepthFactor: depthFactor,
		ReportCycle: reportCycle,
		LineMode:    lineMode,
		KeepNewline: keepNewline,
		CookieTrim:  cookieTrim,
		MapFile:     mapFile,
		Verbosity:   verbose,
		JSON:        jsonOut,
		InputFile:   inputFile,
	}
	if !lineMode {
		cfg.RecSize = recSize
	}
	return cfg, nil
}
