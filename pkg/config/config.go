package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Session struct {
		// Username of the seeded user acting as the signed-in user.
		CurrentUser string `env:"SESSION_CURRENT_USER" env-default:"mira.travels"`
	}
	Uploader struct {
		Workers       int           `env:"UPLOADER_WORKERS" env-default:"4"`
		TickInterval  time.Duration `env:"UPLOADER_TICK_INTERVAL" env-default:"300ms"`
		FinalizeDelay time.Duration `env:"UPLOADER_FINALIZE_DELAY" env-default:"1s"`
		PerUserEvery  time.Duration `env:"UPLOADER_PER_USER_EVERY" env-default:"10s"`
		PerUserBurst  int           `env:"UPLOADER_PER_USER_BURST" env-default:"2"`
	}
	Stories struct {
		TTL time.Duration `env:"STORIES_TTL" env-default:"24h"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
