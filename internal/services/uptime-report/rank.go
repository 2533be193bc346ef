package uptime_report

import (
	"sort"

	"github.com/NordCoder/uptime-report/internal/domain/uptime"
)

// Rank returns a copy of stats ordered by name. Equal names keep their input order.
func Rank(stats []uptime.Stat) []uptime.Stat {
	out := make([]uptime.Stat, len(stats))
	copy(out, stats)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
