package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	config "github.com/NordCoder/uptime-report/internal/config/uptime-report"
	"github.com/NordCoder/uptime-report/internal/domain/summary"
	"github.com/NordCoder/uptime-report/internal/obs"
	"github.com/NordCoder/uptime-report/internal/repository/pingdom"
	uptime_report "github.com/NordCoder/uptime-report/internal/services/uptime-report"
	"github.com/NordCoder/uptime-report/internal/services/uptime-report/repo"
)

func main() {
	// init
	a, err := parseArgs(os.Args[1:])
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stdout, usage)
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath(), ".env")
	if err != nil {
		log.Fatal(err)
	}

	// logger
	l, err := initLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = l.Sync() }()
	l.Info("starting uptime-report",
		zap.Time("from", a.From),
		zap.Time("to", a.To),
		zap.Int("concurrency", cfg.Fetch.Concurrency),
		zap.Duration("pacing", cfg.Fetch.Pacing),
	)

	// otel
	otelShutdown, err := initOTel(ctx, cfg)
	if err != nil {
		l.Fatal("otel init", zap.Error(err))
	}

	// metrics
	var ms *http.Server
	if cfg.Metrics.Addr != "" {
		ms = obs.BootstrapMetricsServer(cfg.Metrics.Addr, nil, l)
	}

	// wiring
	client := pingdom.New(cfg.Pingdom.AsClientConfig())
	runner := uptime_report.NewRunner(l, repo.Summaries{C: client}, cfg.Fetch.AsRunnerConfig())
	uc := uptime_report.NewUC(repo.Checks{C: client}, runner)

	// run
	if err := uptime_report.WriteHeader(os.Stdout, a.From, a.To); err != nil {
		l.Fatal("write header", zap.Error(err))
	}
	stats, runErr := uc.Report(ctx, summary.NewDateRange(a.From, a.To))
	if runErr == nil {
		runErr = uptime_report.WriteReport(os.Stdout, stats)
	}

	// graceful shutdown
	shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	var shErr error
	if ms != nil {
		shErr = multierr.Append(shErr, ms.Shutdown(shCtx))
	}
	shErr = multierr.Append(shErr, otelShutdown(shCtx))
	if shErr != nil {
		l.Warn("shutdown", zap.Error(shErr))
	}

	if runErr != nil {
		l.Fatal("report failed", zap.Error(runErr))
	}
	l.Info("bye", zap.Int("reported", len(stats)))
}

func configPath() string {
	if p := os.Getenv("UPTIME_REPORT_CONFIG"); p != "" {
		return p
	}
	return "config/uptime-report.yaml"
}
