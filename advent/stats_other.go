//go:build !linux

package main

import (
	"errors"
	"time"
)

func currentProcessStats(elapsed time.Duration) (*processStats, error) {
	return nil, errors.New("process stats are only supported on Linux")
}
