package uptime_report

import (
	"math"

	"github.com/NordCoder/uptime-report/internal/domain/summary"
	"github.com/NordCoder/uptime-report/internal/domain/uptime"
)

// Reduce folds a check's weekly records into a single Stat.
// Downtime minutes are truncated per record, not on the total.
func Reduce(id, name string, records []summary.WeeklyRecord) uptime.Stat {
	s := uptime.Stat{ID: id, Name: name}
	for _, r := range records {
		s.Uptime += r.Uptime
		s.Downtime += r.Downtime
		s.Unmonitored += r.Unmonitored
		s.DowntimeMins += r.Downtime / 60
	}
	s.MaxUptime = s.Uptime + s.Downtime + s.Unmonitored
	if s.MaxUptime > 0 {
		s.Percentage = round4(float64(s.Uptime+s.Unmonitored) / float64(s.MaxUptime) * 100)
	}
	return s
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
