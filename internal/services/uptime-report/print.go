package uptime_report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/NordCoder/uptime-report/internal/domain/uptime"
)

const dayLayout = "2006-01-02"

func WriteHeader(w io.Writer, from, to time.Time) error {
	_, err := fmt.Fprintf(w, "Calculating uptime from %s to %s\n", from.Format(dayLayout), to.Format(dayLayout))
	return err
}

// WriteReport prints one "<name>, <percentage>%, <downtime> mins" line per stat.
func WriteReport(w io.Writer, stats []uptime.Stat) error {
	for _, s := range stats {
		if _, err := fmt.Fprintf(w, "%s, %s%%, %d mins\n", s.Name, formatPercent(s.Percentage), s.DowntimeMins); err != nil {
			return err
		}
	}
	return nil
}

// formatPercent gives the shortest form that still has a fractional part: 100.0, 99.8802.
func formatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
