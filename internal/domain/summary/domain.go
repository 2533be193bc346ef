package summary

import "time"

// WeeklyRecord is one calendar week of a check's performance summary, in seconds.
type WeeklyRecord struct {
	Uptime      uint64 `json:"uptime"`
	Downtime    uint64 `json:"downtime"`
	Unmonitored uint64 `json:"unmonitored"`
}

// DateRange is an inclusive [From, To] window in epoch seconds.
type DateRange struct {
	From int64
	To   int64
}

func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: from.Unix(), To: to.Unix()}
}
