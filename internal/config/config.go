package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Caixa"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"caixa"`
	}

	Cache struct {
		Dir string `envconfig:"CACHE_DIR" default:".caixa"`
	}

	Auth struct {
		// Secret signs and verifies session tokens. Empty means the
		// process runs anonymously against the local cache only.
		Secret string `envconfig:"AUTH_SECRET"`
		// Token is the session token of the user this process serves.
		Token string `envconfig:"AUTH_TOKEN"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Authenticated reports whether this process serves an authenticated scope.
func (c *Config) Authenticated() bool {
	return c.Auth.Secret != "" && c.Auth.Token != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
