package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

type processStats struct {
	elapsed     time.Duration // of the solution alone
	cpuUsage    time.Duration // utime+stime of the whole process so far
	maxRSSBytes int64
	inputBytes  int64
}

func (ps *processStats) String() string {
	return fmt.Sprintf(
		"elapsed: %s, cpu: %s, max RSS: %s, input: %s",
		ps.elapsed.Round(time.Microsecond),
		ps.cpuUsage.Round(time.Millisecond),
		humanize.Bytes(uint64(ps.maxRSSBytes)),
		humanize.Bytes(uint64(ps.inputBytes)),
	)
}
