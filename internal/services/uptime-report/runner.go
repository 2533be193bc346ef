package uptime_report

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NordCoder/uptime-report/internal/domain/check"
	"github.com/NordCoder/uptime-report/internal/domain/summary"
	"github.com/NordCoder/uptime-report/internal/domain/uptime"
	"github.com/NordCoder/uptime-report/internal/obs"
)

const (
	DefaultConcurrency = 10
	DefaultPacing      = 200 * time.Millisecond
)

type RunnerConfig struct {
	Concurrency int
	Pacing      time.Duration
}

// Runner fetches and reduces summaries for a batch of checks, at most
// Concurrency at a time. Each task keeps its slot for Pacing after its
// request returns, which spaces out requests to the remote API.
type Runner struct {
	Log     *zap.Logger
	Fetcher summary.Fetcher
	Cfg     RunnerConfig
}

type outcome struct {
	check check.Check
	stat  uptime.Stat
	err   error
}

func NewRunner(log *zap.Logger, f summary.Fetcher, cfg RunnerConfig) *Runner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Pacing < 0 {
		cfg.Pacing = 0
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Log: log, Fetcher: f, Cfg: cfg}
}

// Run returns one Stat per check whose summary was fetched, in completion
// order. Failed checks are logged and left out.
func (r *Runner) Run(ctx context.Context, checks []check.Check, dr summary.DateRange) []uptime.Stat {
	start := time.Now()
	defer func() { mBatchDur.Observe(time.Since(start).Seconds()) }()

	var (
		mu       sync.Mutex
		outcomes = make([]outcome, 0, len(checks))
	)

	g := new(errgroup.Group)
	g.SetLimit(r.Cfg.Concurrency)
	for _, c := range checks {
		g.Go(func() error {
			o := r.fetchOne(ctx, c, dr)
			mu.Lock()
			outcomes = append(outcomes, o)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	log := obs.WithTrace(ctx, r.Log)
	stats := make([]uptime.Stat, 0, len(outcomes))
	var failed error
	for _, o := range outcomes {
		if o.err != nil {
			log.Warn("check skipped",
				zap.String("check_id", o.check.ID),
				zap.String("check_name", o.check.Name),
				zap.Error(o.err),
			)
			failed = multierr.Append(failed, o.err)
			continue
		}
		stats = append(stats, o.stat)
	}

	fields := []zap.Field{
		zap.Int("checks", len(checks)),
		zap.Int("ok", len(stats)),
		zap.Duration("took", time.Since(start)),
	}
	if failed != nil {
		log.Warn("batch finished with failures",
			append(fields, zap.Int("failed", len(multierr.Errors(failed))), zap.Error(failed))...)
	} else {
		log.Info("batch finished", fields...)
	}
	return stats
}

func (r *Runner) fetchOne(ctx context.Context, c check.Check, dr summary.DateRange) outcome {
	ctx, span := otel.Tracer("uptime.runner").Start(ctx, "uptime.fetch",
		trace.WithAttributes(
			attribute.String("check.id", c.ID),
			attribute.String("check.name", c.Name),
		),
	)
	defer span.End()

	mInFlight.Inc()
	defer mInFlight.Dec()

	var (
		recs []summary.WeeklyRecord
		err  = ctx.Err()
	)
	if err == nil {
		t0 := time.Now()
		recs, err = r.Fetcher.WeeklySummary(ctx, c.ID, dr)
		mFetchDur.Observe(time.Since(t0).Seconds())
		r.pace(ctx)
	}

	label := outcomeLabel(ctx, err)
	mFetchTotal.WithLabelValues(label).Inc()
	span.SetAttributes(attribute.String("fetch.outcome", label))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, label)
		return outcome{check: c, err: err}
	}
	r.Log.Debug("summary fetched", zap.String("check_id", c.ID), zap.Int("weeks", len(recs)))
	return outcome{check: c, stat: Reduce(c.ID, c.Name, recs)}
}

func (r *Runner) pace(ctx context.Context) {
	if r.Cfg.Pacing <= 0 {
		return
	}
	t := time.NewTimer(r.Cfg.Pacing)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func outcomeLabel(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case ctx.Err() != nil:
		return outcomeCanceled
	case errors.Is(err, summary.ErrNetwork):
		return outcomeNetwork
	case errors.Is(err, summary.ErrDecode):
		return outcomeDecode
	case errors.Is(err, summary.ErrRemoteRejected):
		return outcomeRejected
	default:
		return outcomeError
	}
}
