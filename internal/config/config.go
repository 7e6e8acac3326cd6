// Package config loads process configuration from the environment.
//
// A .env file in the working directory is read first (if present) and never
// overrides variables already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is shared by the server and the terminal client.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath   string `env:"DB_PATH" envDefault:"./data/kluro.db"`

	Epoch    string `env:"KLURO_EPOCH" envDefault:"2022-02-10"`
	Timezone string `env:"KLURO_TZ" envDefault:"Europe/Stockholm"`

	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`
	PlainWords  bool   `env:"WORDS_PLAIN" envDefault:"false"`

	TokenSecret  string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	CookieName   string `env:"COOKIE_NAME" envDefault:"kluro_player"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	Environment  string `env:"NODE_ENV" envDefault:"development"`

	SaveFile string `env:"KLURO_SAVE_FILE"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Location resolves Timezone; an empty value means the host's local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Production reports whether cookies should be marked Secure.
func (c Config) Production() bool { return c.Environment == "production" }
