package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries every runtime setting of the application. Values come from
// the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	NotifyWebhookURL string `envconfig:"NOTIFY_WEBHOOK_URL" required:"true"`
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// win over it.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return config, nil
}

// PostgresDSN builds the connection string for the database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
