package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN"`

	Store         string `envconfig:"STORE" default:"sqlite"` // memory|sqlite|redis
	DBPath        string `envconfig:"DB_PATH" default:"./data/pomodoro.db"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPrefix   string `envconfig:"REDIS_PREFIX" default:"apomodoros:user:"`

	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"1s"`
	DefaultMinutes float64       `envconfig:"DEFAULT_MINUTES" default:"25"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`  // debug|info|warn|error
	LogFormat string `envconfig:"LOG_FORMAT" default:"auto"` // json|console|auto
	HTTPAddr  string `envconfig:"HTTP_ADDR" default:":8080"` // healthz
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
