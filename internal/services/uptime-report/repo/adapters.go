package repo

import (
	"context"

	"github.com/NordCoder/uptime-report/internal/domain/check"
	"github.com/NordCoder/uptime-report/internal/domain/summary"
	"github.com/NordCoder/uptime-report/internal/repository/pingdom"
)

type Checks struct{ C *pingdom.Client }
type Summaries struct{ C *pingdom.Client }

var (
	_ check.Lister    = Checks{}
	_ summary.Fetcher = Summaries{}
)

// List drops checks without an id; nothing can be fetched for them.
func (a Checks) List(ctx context.Context) ([]check.Check, error) {
	list, err := a.C.ListChecks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]check.Check, 0, len(list))
	for _, c := range list {
		if c.ID == "" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (a Summaries) WeeklySummary(ctx context.Context, checkID string, r summary.DateRange) ([]summary.WeeklyRecord, error) {
	return a.C.WeeklySummary(ctx, checkID, r)
}
