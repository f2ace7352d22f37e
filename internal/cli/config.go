package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/bili/pkg/config"
	"github.com/dmitrymomot/bili/pkg/logger"
)

// EnvPrefix is prepended to every configuration variable.
const EnvPrefix = "BILI_"

// Config holds the CLI settings read from BILI_* environment variables.
type Config struct {
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Env              string `env:"ENV" envDefault:"development"`
	MaxIntegerDigits int    `env:"MAX_INTEGER_DIGITS" envDefault:"8" validate:"min=1,max=18"`
	SlugMaxLength    int    `env:"SLUG_MAX_LENGTH" envDefault:"0" validate:"min=0"`
}

// LoadConfig reads Config from the environment and the optional ./.env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type operationKey struct{}

// NewLogger builds the CLI logger. Every record logged with a command context
// carries the command name as "operation".
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, "bili"),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("cli")),
		logger.WithContextExtractors(operationFromContext),
	)
}

func operationFromContext(ctx context.Context) (slog.Attr, bool) {
	name, ok := ctx.Value(operationKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Operation(name), true
}
