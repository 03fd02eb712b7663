package config

import (
	"net/url"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`

	Secret string `env:"SECRET,required"`
	Port   int    `env:"PORT" envDefault:"9090"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"./migrations"`
	RedisURL       string `env:"REDIS_URL,required"`
	RabbitmqURL    string `env:"RABBITMQ_URL,required"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	BcryptHasherCost int `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	SessionTTLHours  int `env:"SESSION_TTL_HOURS" envDefault:"720"`

	AdminName     string `env:"ADMIN_NAME" envDefault:"Admin"`
	AdminEmail    string `env:"ADMIN_EMAIL,required"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`

	AwsRegion                     string  `env:"AWS_REGION,required"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER,required"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"AdikartPasswordReset"`
	AwsEmailPasswordResetBaseUrl  url.URL `env:"AWS_EMAIL_PASSWORD_RESET_BASE_URL,required"`

	RazorpayKeyID     string `env:"RAZORPAY_KEY_ID,required"`
	RazorpayKeySecret string `env:"RAZORPAY_KEY_SECRET,required"`

	RabbitmqPaidOrderExchange string `env:"RABBITMQ_PAID_ORDER_EXCHANGE" envDefault:"adikart.orders"`
	RabbitmqPaidOrderQueue    string `env:"RABBITMQ_PAID_ORDER_QUEUE" envDefault:"order.paid"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
