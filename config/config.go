package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`
	AppEnv  string `env:"APP_ENV" envDefault:"dev"`

	// Hosted event store (REST).
	StoreURL string `env:"STORE_URL,required"`
	StoreKey string `env:"STORE_API_KEY,required"`

	// Shared secret for the scheduled checkout entry point.
	CronToken string `env:"CRON_TOKEN"`

	// IANA zone that defines the calendar-day boundary for "today".
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`

	// Local HH:MM at which the in-process scheduler force-closes any open
	// sessions. Empty disables the scheduler (use an external cron instead).
	AutoCheckoutAt string `env:"AUTO_CHECKOUT_AT"`
}

func Load() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
