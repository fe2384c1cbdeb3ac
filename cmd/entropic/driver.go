package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/lcn2/entropic/internal/bitslice"
	"github.com/lcn2/entropic/internal/config"
	"github.com/lcn2/entropic/internal/entropy"
	"github.com/lcn2/entropic/internal/logging"
	"github.com/lcn2/entropic/internal/mapfile"
	"github.com/lcn2/entropic/internal/preprocess"
	"github.com/lcn2/entropic/internal/record"
	"github.com/lcn2/entropic/internal/report"
)

// Run wires the full driver loop described in SPEC_FULL.md §4.6: parse
// flags, open input, preprocess each record into bits, grow the slice set,
// update, and periodically (and finally) report. It returns the process
// exit code rather than calling os.Exit itself, so it stays testable.
func Run(ctx context.Context, program string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(program, args, stderr)
	if err != nil {
		var exitReq *config.ExitRequest
		if errors.As(err, &exitReq) {
			return exitReq.Code
		}
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(stderr, "%s: %v\n", program, cfgErr)
			return cfgErr.Code
		}
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return config.ExitBadOption
	}

	logger := logging.New(stderr, cfg.Verbosity)

	m := mapfile.Default()
	if cfg.MapFile != "" {
		loaded, err := mapfile.Load(cfg.MapFile)
		if err != nil {
			wrapped := pkgerrors.Wrapf(err, "load map file %s", cfg.MapFile)
			logger.Error(wrapped, "failed to load map file")
			return mapFileExitCode(err)
		}
		m = loaded
	}

	input, closeInput, exitCode := openInput(cfg.InputFile, stdin, logger, program)
	if exitCode != config.ExitOK {
		return exitCode
	}
	if closeInput != nil {
		defer closeInput()
	}

	var reader record.Reader
	if cfg.LineMode {
		reader = record.NewLineReader(input)
	} else {
		reader = record.NewFixedReader(input, cfg.RecSize)
	}

	pipeline := preprocess.Pipeline{
		KeepNewline: cfg.KeepNewline,
		CookieTrim:  cfg.CookieTrim,
		Map:         m,
	}

	set := bitslice.NewSet(cfg)

	var recnum uint64

readLoop:
	for {
		select {
		case <-ctx.Done():
			logger.Warn("interrupted, reporting accumulated data")
			break readLoop
		default:
		}

		raw, err := reader.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Warn("mid-stream read error, reporting accumulated data", "error", err)
			}
			break readLoop
		}

		bits := pipeline.Process(raw)
		recnum++
		if len(bits) == 0 {
			logger.Trace(5, "skipping record, no bits produced", "record", recnum)
			continue
		}
		logger.Trace(6, "record produced bits", "record", recnum, "bits", len(bits))

		if err := set.EnsureWidth(len(bits)); err != nil {
			logger.Error(err, "failed to allocate bit slices")
			return config.ExitAllocFailure
		}
		for i, b := range bits {
			set.Slice(i).Update(int(b))
		}

		if cfg.ReportCycle > 0 && recnum%uint64(cfg.ReportCycle) == 0 {
			rep := entropy.Compute(set, cfg)
			if cfg.JSON {
				if err := report.WriteJSON(stdout, recnum, rep.Overall); err != nil {
					logger.Error(err, "failed to write progress report")
				}
			} else {
				report.WriteProgress(stdout, recnum, rep.Overall)
			}
		}
	}

	rep := entropy.Compute(set, cfg)
	if cfg.JSON {
		if err := report.WriteJSON(stdout, recnum, rep.Overall); err != nil {
			logger.Error(err, "failed to write final report")
			return config.ExitAllocFailure
		}
	} else {
		report.WriteFinal(stdout, recnum, rep.Overall)
	}
	return config.ExitOK
}

func openInput(path string, stdin io.Reader, logger logging.Logger, program string) (io.Reader, func(), int) {
	if path == "-" {
		return stdin, nil, config.ExitOK
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Error(pkgerrors.Wrapf(err, "open %s", path), "unable to open input file")
		return nil, nil, config.ExitOpenFailure
	}
	return f, func() { f.Close() }, config.ExitOK
}

func mapFileExitCode(err error) int {
	var pe *mapfile.ParseError
	if errors.As(err, &pe) {
		switch pe.Kind {
		case mapfile.KindCharmask:
			return config.ExitMapFileBadCharmask
		case mapfile.KindBitmask:
			return config.ExitMapFileBadBitmask
		default:
			return config.ExitMapFileUnknownLine
		}
	}
	var oe *mapfile.OpenError
	if errors.As(err, &oe) {
		return config.ExitMapFileOpenFailure
	}
	return config.ExitMapFileUnknownLine
}
