package domain

import "time"

type SyncReport struct {
	Products   int
	Stores     int
	StoreLinks int
	StartedAt  time.Time
	FinishedAt time.Time
}

func (r SyncReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
