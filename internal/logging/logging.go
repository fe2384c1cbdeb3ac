// Package logging provides the leveled debug tracing that replaces
// entropic.c's dbg()/v_flag global. Unlike dbg(), a Logger is an explicit
// value threaded through the driver rather than consulting a package-level
// verbosity variable.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with entropic's 0-10 debug verbosity scale
// (dbg()'s "level <= v_flag" gate) instead of zerolog's own level enum,
// so call sites translate one-for-one from the original dbg(level, ...)
// invocations.
type Logger struct {
	zl        zerolog.Logger
	verbosity int
}

// New builds a Logger that writes human-readable lines to w. verbosity is
// the -v flag value; 0 suppresses every Trace call.
func New(w io.Writer, verbosity int) Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return Logger{
		zl:        zerolog.New(console).With().Timestamp().Logger(),
		verbosity: verbosity,
	}
}

// Trace logs msg if the configured verbosity is at least level, mirroring
// dbg(level, fmt, ...)'s "level <= v_flag" check.
func (l Logger) Trace(level int, msg string, fields ...any) {
	if level > l.verbosity {
		return
	}
	ev := l.zl.Debug().Int("level", level)
	logFields(ev, fields)
	ev.Msg(msg)
}

// Warn logs a mid-stream condition that does not abort the run (e.g. a
// read error that still yields a partial report).
func (l Logger) Warn(msg string, fields ...any) {
	ev := l.zl.Warn()
	logFields(ev, fields)
	ev.Msg(msg)
}

// Error logs a fatal condition immediately before the process exits with a
// matching non-zero code.
func (l Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}

func logFields(ev *zerolog.Event, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ev.Interface(key, fields[i+1])
	}
}
