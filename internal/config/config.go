package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

var ErrMissingCredentials = errors.New("missing HUCKLEBERRY_EMAIL or HUCKLEBERRY_PASSWORD")

type Config struct {
	Email    string `env:"HUCKLEBERRY_EMAIL"`
	Password string `env:"HUCKLEBERRY_PASSWORD"`
	APIURL   string `env:"HUCKLEBERRY_API_URL" envDefault:"https://api.huckleberrycare.com"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

// Validate reports the startup-blocking conditions. Connecting without
// credentials is never attempted.
func (c Config) Validate() error {
	if c.Email == "" || c.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}
