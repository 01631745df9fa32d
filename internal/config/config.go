// Package config loads statroll settings from the environment.
//
// Every setting has a default, so an empty environment is valid. Command
// line flags override these values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/roach88/statroll/internal/ability"
)

// Config holds environment-level defaults.
type Config struct {
	// Tolerance is the default attempt budget for a rollout.
	Tolerance int `env:"STATROLL_TOLERANCE" envDefault:"500" validate:"gt=0"`

	// Method is the default rolling method.
	Method string `env:"STATROLL_METHOD" envDefault:"STANDARD" validate:"rollmethod"`

	// DBPath is the preset library file.
	DBPath string `env:"STATROLL_DB" envDefault:"statroll.db" validate:"required"`

	// Seed fixes the dice for reproducible runs. Zero means a fresh random
	// seed per run.
	Seed int64 `env:"STATROLL_SEED"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"STATROLL_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report env var names rather than Go field names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = validate.RegisterValidation("rollmethod", validateMethod)
}

// validateMethod accepts the exact upper-case names of rolling methods.
func validateMethod(fl validator.FieldLevel) bool {
	_, err := ability.ParseMethod(fl.Field().String())
	return err == nil
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return &Error{Messages: msgs}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "rollmethod":
		return fmt.Sprintf("%s must be one of %v, got %q", fe.Field(), ability.Methods, fe.Value())
	case "required":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// Error lists every invalid setting.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return "invalid configuration: " + strings.Join(e.Messages, "; ")
}

// RollMethod returns Method as an ability.Method. Only meaningful on a
// validated Config.
func (c Config) RollMethod() ability.Method {
	return ability.Method(c.Method)
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to Info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
