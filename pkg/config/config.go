package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// State backends
const (
	BackendSqlite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Media providers
const (
	MediaPicsum   = "picsum"
	MediaUnsplash = "unsplash"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	State struct {
		Backend    string `env:"STATE_BACKEND" env-default:"sqlite"`
		SqlitePath string `env:"STATE_SQLITE_PATH" env-default:"./story-state.db"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" env-default:"0"`
	}
	Directory struct {
		Path string `env:"DIRECTORY_PATH"`
	}
	Media struct {
		Provider          string        `env:"MEDIA_PROVIDER" env-default:"picsum"`
		BaseURL           string        `env:"MEDIA_BASE_URL" env-default:"https://picsum.photos/400/800"`
		MinImages         int           `env:"MEDIA_MIN_IMAGES" env-default:"1"`
		MaxImages         int           `env:"MEDIA_MAX_IMAGES" env-default:"5"`
		UnsplashURL       string        `env:"MEDIA_UNSPLASH_URL" env-default:"https://api.unsplash.com"`
		UnsplashAccessKey string        `env:"MEDIA_UNSPLASH_ACCESS_KEY"`
		FetchTimeout      time.Duration `env:"MEDIA_FETCH_TIMEOUT" env-default:"10s"`
		FetchWorkers      int           `env:"MEDIA_FETCH_WORKERS" env-default:"5"`
		RateRequests      int           `env:"MEDIA_RATE_REQUESTS" env-default:"50"`
		RatePer           time.Duration `env:"MEDIA_RATE_PER" env-default:"1h"`
		RateBurst         int           `env:"MEDIA_RATE_BURST" env-default:"5"`
	}
	Player struct {
		TickInterval  time.Duration `env:"PLAYER_TICK_INTERVAL" env-default:"50ms"`
		StoryDuration time.Duration `env:"PLAYER_STORY_DURATION" env-default:"5s"`
	}
	Feed struct {
		LookAhead       int           `env:"FEED_LOOK_AHEAD" env-default:"3"`
		RefreshInterval time.Duration `env:"FEED_REFRESH_INTERVAL" env-default:"0s"`
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

// GetDSN returns the postgres connection string.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
