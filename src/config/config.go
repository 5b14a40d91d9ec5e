package config

import (
	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Origins allowed by the CORS middleware. Defaults cover local frontend
	// development.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001,http://127.0.0.1:3000,http://127.0.0.1:3001"`
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("failed to parse config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		logrus.Fatal("DATABASE_URL is required")
	}

	return cfg
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
