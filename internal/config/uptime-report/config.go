package uptime_report_config

import (
	"time"

	"github.com/NordCoder/uptime-report/internal/obs"
	"github.com/NordCoder/uptime-report/internal/repository/pingdom"
	uptime_report "github.com/NordCoder/uptime-report/internal/services/uptime-report"
)

type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

type Pingdom struct {
	APIKey    string        `mapstructure:"api_key"`
	APIURL    string        `mapstructure:"api_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

func (pc Pingdom) AsClientConfig() pingdom.Config {
	return pingdom.Config{
		BaseURL:   pc.APIURL,
		APIKey:    pc.APIKey,
		Timeout:   pc.Timeout,
		UserAgent: pc.UserAgent,
	}
}

// Fetch bounds the per-check summary requests of a run.
type Fetch struct {
	Concurrency int           `mapstructure:"concurrency"`
	Pacing      time.Duration `mapstructure:"pacing"`
}

type OTEL struct {
	Enable       bool    `mapstructure:"enable"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	ServiceName  string  `mapstructure:"service_name"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
	File   string `mapstructure:"file"`
}

type Metrics struct {
	Addr string `mapstructure:"addr"`
}

type Config struct {
	App     App     `mapstructure:"app"`
	Pingdom Pingdom `mapstructure:"pingdom"`
	Fetch   Fetch   `mapstructure:"fetch"`
	OTEL    OTEL    `mapstructure:"otel"`
	Log     Log     `mapstructure:"log"`
	Metrics Metrics `mapstructure:"metrics"`
}

func (c *Config) AsLoggerConfig() obs.LogConfig {
	return obs.LogConfig{
		Level:  c.Log.Level,
		Pretty: c.Log.Pretty,
		File:   c.Log.File,
		App:    c.App.Name,
		Env:    c.App.Env,
		Ver:    c.App.Version,
	}
}

func (c *Config) AsOTELConfig() obs.OTELConfig {
	return obs.OTELConfig{
		Enable:      c.OTEL.Enable,
		Endpoint:    c.OTEL.OTLPEndpoint,
		ServiceName: c.OTEL.ServiceName,
		ServiceVer:  c.App.Version,
		SampleRatio: c.OTEL.SampleRatio,
	}
}

type ErrConfig string

func (e ErrConfig) Error() string { return string(e) }

func (fc Fetch) AsRunnerConfig() uptime_report.RunnerConfig {
	return uptime_report.RunnerConfig{
		Concurrency: fc.Concurrency,
		Pacing:      fc.Pacing,
	}
}
