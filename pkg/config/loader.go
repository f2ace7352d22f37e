package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Option configures Load.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag, e.g. "BILI_" turns
// `env:"LOG_LEVEL"` into BILI_LOG_LEVEL.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files instead of the default ./.env.
// Unlike the default file, explicitly named files must exist.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, files...)
	}
}

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates v from environment variables using `env` and `envDefault`
// tags, then checks its `validate` tags.
//
// Example:
//
//	type Config struct {
//		LogLevel         string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//		MaxIntegerDigits int    `env:"MAX_INTEGER_DIGITS" envDefault:"8" validate:"min=1,max=18"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("BILI_")); err != nil {
//		// errors.Is(err, config.ErrValidation) etc.
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.envFiles) > 0 {
		if err := LoadEnv(o.envFiles...); err != nil {
			return err
		}
	} else {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if err := validate.Struct(v); err != nil {
		return errors.Join(ErrValidation, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
