package totp

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg     Config
	cfgOnce sync.Once
)

// Config carries process-wide generation defaults, loaded once from the
// environment. All fields are optional; zero values fall back to the RFC 6238
// defaults declared in this package.
type Config struct {
	Period       int `env:"OTP_PERIOD" envDefault:"30"`        // code validity window in seconds
	Digits       int `env:"OTP_DIGITS" envDefault:"6"`         // digits per code
	SecretLength int `env:"OTP_SECRET_LENGTH" envDefault:"32"` // Base32 characters per generated secret
}

// Validate rejects configurations a generation call could not honor.
func (c Config) Validate() error {
	if c.Period <= 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("period must be positive, got %d", c.Period))
	}
	if c.Digits < 6 || c.Digits > 8 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("digits must be in 6..8, got %d", c.Digits))
	}
	if c.SecretLength < MinSecretLength {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("secret length must be at least %d, got %d", MinSecretLength, c.SecretLength))
	}
	return nil
}

// Options returns generation options seeded from the configured defaults.
func (c Config) Options() Options {
	return Options{Period: c.Period, Digits: c.Digits}
}

// LoadConfig parses the environment into a Config exactly once per process
// and returns the cached value on subsequent calls.
func LoadConfig() (Config, error) {
	var err error
	cfgOnce.Do(func() {
		if parseErr := env.Parse(&cfg); parseErr != nil {
			err = errors.Join(ErrInvalidConfig, parseErr)
			return
		}
		err = cfg.Validate()
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
