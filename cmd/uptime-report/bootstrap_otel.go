package main

import (
	"context"

	config "github.com/NordCoder/uptime-report/internal/config/uptime-report"
	"github.com/NordCoder/uptime-report/internal/obs"
)

func initOTel(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	closer, err := obs.SetupOTel(ctx, cfg.AsOTELConfig())
	if err != nil {
		return nil, err
	}
	return closer.Shutdown, nil
}
