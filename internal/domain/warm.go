package domain

import "time"

type WarmRun struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Lists      int
	Details    int
	Misses     int
	Failures   int
}
