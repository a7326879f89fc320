// Package config loads runtime settings from the environment (and an optional config file).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	AWS      AWSConfig
	Tables   TablesConfig
	Cucuru   CucuruConfig
	Redis    RedisConfig
	Reversal ReversalConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
	WebhookTimeout  time.Duration
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Payments string
	Clients  string
}

type CucuruConfig struct {
	BaseURL string
	Timeout time.Duration
	Mock    bool
}

// RedisConfig selects the durable reversal scheduler. An empty Addr keeps
// reversals in process memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

type ReversalConfig struct {
	Delay        time.Duration
	PollInterval time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

var defaults = map[string]any{
	"port":                   "8080",
	"gin_mode":               "debug",
	"shutdown_timeout":       "10s",
	"webhook_timeout":        "30s",
	"aws_region":             "us-east-1",
	"aws_access_key_id":      "local",
	"aws_secret_access_key":  "local",
	"dynamodb_endpoint":      "",
	"payments_table":         "payments",
	"clients_table":          "clients",
	"cucuru_base_url":        "https://api.cucuru.com/app/v1",
	"cucuru_timeout":         "10s",
	"cucuru_mock":            false,
	"payment_gateway_mock":   false,
	"redis_addr":             "",
	"redis_password":         "",
	"redis_db":               0,
	"redis_reversals_key":    "linkpago:reversals",
	"reversal_delay":         "10s",
	"reversal_poll_interval": "1s",
	"log_level":              "info",
	"log_format":             "json",
}

// Load reads every setting from the environment. When CONFIG_FILE is set the file is
// read first and environment variables still win.
func Load() (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("config_file")
	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Port:            v.GetString("port"),
			GinMode:         v.GetString("gin_mode"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
			WebhookTimeout:  v.GetDuration("webhook_timeout"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("aws_region"),
			AccessKeyID:      v.GetString("aws_access_key_id"),
			SecretAccessKey:  v.GetString("aws_secret_access_key"),
			DynamoDBEndpoint: v.GetString("dynamodb_endpoint"),
		},
		Tables: TablesConfig{
			Payments: v.GetString("payments_table"),
			Clients:  v.GetString("clients_table"),
		},
		Cucuru: CucuruConfig{
			BaseURL: strings.TrimRight(v.GetString("cucuru_base_url"), "/"),
			Timeout: v.GetDuration("cucuru_timeout"),
			Mock:    v.GetBool("cucuru_mock") || v.GetBool("payment_gateway_mock"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
			Key:      v.GetString("redis_reversals_key"),
		},
		Reversal: ReversalConfig{
			Delay:        v.GetDuration("reversal_delay"),
			PollInterval: v.GetDuration("reversal_poll_interval"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("config: PORT is required")
	}
	if c.Reversal.Delay <= 0 {
		return fmt.Errorf("config: REVERSAL_DELAY must be positive, got %s", c.Reversal.Delay)
	}
	if c.Reversal.PollInterval <= 0 {
		return fmt.Errorf("config: REVERSAL_POLL_INTERVAL must be positive, got %s", c.Reversal.PollInterval)
	}
	if c.Cucuru.Timeout <= 0 {
		return fmt.Errorf("config: CUCURU_TIMEOUT must be positive, got %s", c.Cucuru.Timeout)
	}
	if !c.Cucuru.Mock && c.Cucuru.BaseURL == "" {
		return fmt.Errorf("config: CUCURU_BASE_URL is required unless CUCURU_MOCK is set")
	}
	return nil
}
