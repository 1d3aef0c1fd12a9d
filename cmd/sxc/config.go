package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings of sxc. Values are read from the environment
// (prefix SXC_, optionally from a .env file) and overridden by flags.
type Config struct {
	Theme    string `envconfig:"THEME" validate:"omitempty,file"`
	Mode     string `envconfig:"MODE" default:"system" validate:"oneof=light dark system"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=trace debug info warn error"`
}

// LoadConfig loads the configuration from the environment. Missing env
// files are not an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}
	var cfg Config
	if err := envconfig.Process("sxc", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate normalizes and checks cfg.
func (cfg *Config) Validate() error {
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid setting %s=%q (%s)", strings.ToLower(fe.Field()), fe.Value(), fe.Tag())
		}
		return err
	}
	return nil
}
