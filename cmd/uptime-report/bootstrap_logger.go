package main

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	config "github.com/NordCoder/uptime-report/internal/config/uptime-report"
	"github.com/NordCoder/uptime-report/internal/obs"
)

func initLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := obs.NewLogger(cfg.AsLoggerConfig())
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("run_id", uuid.NewString())), nil
}
