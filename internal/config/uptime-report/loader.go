package uptime_report_config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvAPIKey = "PINGDOM_API_KEY"
	EnvAPIURL = "PINGDOM_API_URL"
)

// Load reads path (optional YAML), then envFile (optional dotenv), then the
// process environment. Real environment variables always win over envFile.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !missingFile(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetDefault("app.name", "uptime-report")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("pingdom.api_key", "")
	v.SetDefault("pingdom.api_url", "")
	v.SetDefault("pingdom.timeout", "30s")
	v.SetDefault("pingdom.user_agent", "uptime-report/1.0")

	v.SetDefault("fetch.concurrency", 10)
	v.SetDefault("fetch.pacing", "200ms")

	v.SetDefault("otel.enable", false)
	v.SetDefault("otel.service_name", "uptime-report")
	v.SetDefault("otel.sample_ratio", 1.0)
	v.SetDefault("otel.otlp_endpoint", "localhost:4317")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.file", "")

	v.SetDefault("metrics.addr", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("pingdom.api_key", EnvAPIKey)
	_ = v.BindEnv("pingdom.api_url", EnvAPIURL)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Pingdom.APIKey) == "" {
		return ErrConfig(EnvAPIKey + " is not set")
	}
	if strings.TrimSpace(c.Pingdom.APIURL) == "" {
		return ErrConfig(EnvAPIURL + " is not set")
	}
	if c.Fetch.Concurrency < 1 {
		return ErrConfig("fetch.concurrency must be at least 1")
	}
	if c.Fetch.Pacing < 0 {
		return ErrConfig("fetch.pacing must not be negative")
	}
	return nil
}

func missingFile(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
