package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// trace is the diagnostic logger used inside solutions. It discards
// everything unless debugging is enabled.
var trace = newTraceLogger(os.Stderr, debugEnabled)

func newTraceLogger(w io.Writer, enabled bool) zerolog.Logger {
	if !enabled {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).With().Caller().Logger().Level(zerolog.DebugLevel)
}

func setDebug(enabled bool) {
	debugEnabled = enabled
	trace = newTraceLogger(os.Stderr, enabled)
}
