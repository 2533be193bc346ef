package uptime_report

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NordCoder/uptime-report/internal/domain/check"
	"github.com/NordCoder/uptime-report/internal/domain/summary"
	"github.com/NordCoder/uptime-report/internal/domain/uptime"
)

type Usecase struct {
	Checks check.Lister
	Runner *Runner
}

func NewUC(checks check.Lister, runner *Runner) *Usecase {
	return &Usecase{Checks: checks, Runner: runner}
}

// Report lists every check, fetches and reduces their summaries over dr and
// returns the stats ranked by name. Only a failure to list checks is an error.
func (u *Usecase) Report(ctx context.Context, dr summary.DateRange) ([]uptime.Stat, error) {
	ctx, span := otel.Tracer("uptime.uc").Start(ctx, "uptime.report",
		trace.WithAttributes(
			attribute.Int64("range.from", dr.From),
			attribute.Int64("range.to", dr.To),
		),
	)
	defer span.End()

	checks, err := u.Checks.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("report: %w", err)
	}
	span.SetAttributes(attribute.Int("checks.listed", len(checks)))

	stats := u.Runner.Run(ctx, checks, dr)
	span.SetAttributes(attribute.Int("checks.reported", len(stats)))
	return Rank(stats), nil
}
