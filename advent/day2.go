package main

import (
	"github.com/kr/pretty"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
}

func day2a(input string) int {
	var count int
	s := newReportScanner(input)
	for s.Scan() {
		if isSafe(s.Report()) {
			count++
		}
	}
	return count
}

func day2b(input string) int {
	var count int
	s := newReportScanner(input)
	for s.Scan() {
		report := s.Report()
		ok := isDampenedSafe(report)
		if ok {
			count++
		}
		if e := trace.Debug(); e.Enabled() {
			e.Str("report", pretty.Sprint(report)).Bool("safe", ok).Int("count", count).Msg("report checked")
		}
	}
	return count
}

// A direction is the way one level moves to the next.
type direction int8

const (
	flat direction = iota
	increasing
	decreasing
)

func directionOf(a, b int8) direction {
	switch {
	case a < b:
		return increasing
	case a > b:
		return decreasing
	default:
		return flat
	}
}

func (d direction) String() string {
	switch d {
	case flat:
		return "flat"
	case increasing:
		return "increasing"
	case decreasing:
		return "decreasing"
	default:
		return "invalid"
	}
}

// continues reports whether going from prev to next keeps moving in
// direction d by at least 1 and at most 3.
func (d direction) continues(prev, next int8) bool {
	if d == flat || directionOf(prev, next) != d {
		return false
	}
	delta := next - prev
	if delta < 0 {
		delta = -delta
	}
	return delta <= 3
}

// isSafe reports whether the levels move strictly in one direction with
// every step between 1 and 3.
func isSafe(levels []int8) bool {
	assume(len(levels) >= 2, "report %v is too short", levels)
	dir := directionOf(levels[0], levels[1])
	for i := 1; i < len(levels); i++ {
		if !dir.continues(levels[i-1], levels[i]) {
			return false
		}
	}
	return true
}

// isDampenedSafe reports whether removing at most one level makes the
// report safe.
func isDampenedSafe(levels []int8) bool {
	assume(len(levels) >= 4, "report %v is too short", levels)
	// Removing a single level can't flip a majority vote over the first
	// three steps, so the vote picks the only direction worth trying.
	var inc, dec int
	for i := range 3 {
		switch directionOf(levels[i], levels[i+1]) {
		case increasing:
			inc++
		case decreasing:
			dec++
		}
	}
	var dir direction
	switch {
	case inc > dec:
		dir = increasing
	case dec > inc:
		dir = decreasing
	default:
		return false
	}

	if dir.continues(levels[0], levels[1]) {
		return dampenedRun(levels, 2, dir, levels[0], levels[1], false)
	}
	// The first step is bad, so one of the first two levels has to go.
	if dir.continues(levels[1], levels[2]) && dampenedRun(levels, 3, dir, levels[1], levels[2], true) {
		return true
	}
	return dir.continues(levels[0], levels[2]) && dampenedRun(levels, 3, dir, levels[0], levels[2], true)
}

// dampenedRun checks levels[i:] given that the accepted run so far ends
// with penultimate, last. If skipped is false, one level may still be
// dropped: either the level that breaks the run or the last accepted one.
func dampenedRun(levels []int8, i int, dir direction, penultimate, last int8, skipped bool) bool {
	for ; i < len(levels); i++ {
		cur := levels[i]
		if dir.continues(last, cur) {
			penultimate, last = last, cur
			continue
		}
		if skipped {
			return false
		}
		if dampenedRun(levels, i+1, dir, penultimate, last, true) {
			return true
		}
		return dir.continues(penultimate, cur) && dampenedRun(levels, i+1, dir, penultimate, cur, true)
	}
	return true
}

// reportScanner splits day 2 input into reports, one per line. Each level
// is a one- or two-digit number and levels are separated by single spaces.
//
// A reportScanner is a plain value; a copy is an independent cursor over
// the rest of the input (though both share the Report buffer until the
// next Scan on either, so copy the report if it must outlive that).
type reportScanner struct {
	rest   string
	report []int8
}

func newReportScanner(input string) *reportScanner {
	return &reportScanner{rest: input, report: make([]int8, 0, 8)}
}

// Scan advances to the next report. It returns false at the end of input.
func (s *reportScanner) Scan() bool {
	if len(s.rest) == 0 {
		return false
	}
	s.report = s.report[:0]
	for {
		n, ok := s.nextLevel()
		s.report = append(s.report, n)
		if !ok {
			return true
		}
	}
}

// Report returns the levels of the report found by the last call to Scan.
func (s *reportScanner) Report() []int8 { return s.report }

// nextLevel consumes one level and its trailing separator. ok is false if
// the level was the last one on its line.
func (s *reportScanner) nextLevel() (n int8, ok bool) {
	i := 0
	for i < len(s.rest) && i < 2 && isDigit(s.rest[i]) {
		n = n*10 + int8(s.rest[i]-'0')
		i++
	}
	if i == 0 {
		unreachable("expected a level at %q", truncate(s.rest, 10))
	}
	if i == len(s.rest) {
		s.rest = ""
		return n, false
	}
	switch s.rest[i] {
	case ' ':
		s.rest = s.rest[i+1:]
		return n, true
	case '\n':
		s.rest = s.rest[i+1:]
		return n, false
	default:
		unreachable("unexpected byte %q after level at %q", s.rest[i], truncate(s.rest, 10))
		return 0, false
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
