package main

import (
	"fmt"
	"testing"
)

// debugEnabled turns on invariant checks and trace logging. It is always on
// under go test and in binaries built with -tags advent_debug; the --debug
// flag also sets it.
var debugEnabled = debugBuild || testing.Testing()

// The helpers below state preconditions that hold for any well-formed puzzle
// input. With debugging off the checks are skipped entirely, and a violated
// precondition yields an unspecified (but memory-safe) result instead of a
// panic.

// must returns v, asserting that ok is set.
func must[T any](v T, ok bool) T {
	if debugEnabled && !ok {
		panic(fmt.Sprintf("must: missing %T value", v))
	}
	return v
}

// assume asserts that cond holds.
func assume(cond bool, format string, args ...any) {
	if debugEnabled && !cond {
		panic("assumption failed: " + fmt.Sprintf(format, args...))
	}
}

// unreachable marks a path that well-formed input never takes. Unlike the
// other helpers it always panics: Go has no way to tell the compiler the
// path is dead.
func unreachable(format string, args ...any) {
	panic("unreachable: " + fmt.Sprintf(format, args...))
}
