// Package config loads application configuration from environment variables
// and optional .env files into tagged structs.
//
// It wraps `github.com/joho/godotenv` to read .env files,
// `github.com/caarlos0/env/v11` to parse the environment into a struct and
// `github.com/go-playground/validator/v10` to check the result:
//
//	type Config struct {
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
//	    LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("BILI_")); err != nil {
//	    log.Fatal(err)
//	}
//
// Without WithEnvFiles the default ./.env file is loaded if present. Variables
// already set in the process environment always win over .env values.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrValidation`     – parsed values violate validate tags.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
