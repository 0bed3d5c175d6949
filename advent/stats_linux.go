package main

import (
	"time"

	"golang.org/x/sys/unix"
)

func currentProcessStats(elapsed time.Duration) (*processStats, error) {
	var rusage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &rusage); err != nil {
		return nil, err
	}
	return &processStats{
		elapsed:     elapsed,
		cpuUsage:    time.Duration(rusage.Stime.Nano() + rusage.Utime.Nano()),
		maxRSSBytes: int64(rusage.Maxrss) * 1024, // KiB on Linux
	}, nil
}
