package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config is read once at process start and stays stable for the process
// lifetime.
type Config struct {
	IsTestMode bool `env:"TEST_MODE"`

	Secret         string `env:"SECRET,required"`
	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	BindAddress    string `env:"BIND_ADDRESS" envDefault:"0.0.0.0:9090"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	BcryptHasherCost           int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	SessionTokenValidDuration  time.Duration `env:"SESSION_TOKEN_VALID_DURATION" envDefault:"24h"`
	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`
	PasswordResetBaseURL       url.URL       `env:"PASSWORD_RESET_BASE_URL,required"`

	AwsRegion                     string `env:"AWS_REGION" envDefault:"eu-west-1"`
	AwsAccessKey                  string `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey                  string `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender                string `env:"AWS_EMAIL_SENDER,required"`
	AwsEmailWelcomeTemplate       string `env:"AWS_EMAIL_WELCOME_TEMPLATE" envDefault:"storefront-welcome"`
	AwsEmailPasswordResetTemplate string `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"storefront-password-reset"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return config, nil
}
