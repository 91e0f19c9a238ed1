package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         string        `env:"BACKEND_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	InstanceName string        `env:"INSTANCE_NAME" envDefault:"pitchmatch-1"`
	Domain       string        `env:"DOMAIN" envDefault:"localhost:8080"`

	GoogleKey       string        `env:"GOOGLE_KEY"`
	GoogleSecret    string        `env:"GOOGLE_SECRET"`
	SessionSecret   string        `env:"SESSION_SECRET" envDefault:"insecure-dev-secret"`
	SessionDuration time.Duration `env:"SESSION_DURATION" envDefault:"24h"`

	OpenAIKey   string `env:"OPENAI_KEY"`
	OpenAIModel string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// CallbackURL is the OAuth redirect registered with Google for this domain.
func (c Config) CallbackURL() string {
	return "http://" + c.Domain + "/auth/google/callback"
}
