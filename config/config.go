package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable of the bridge, sourced from a .env file
// and the process environment
type Config struct {
	Port          string `mapstructure:"PORT"`
	MongoURI      string `mapstructure:"MONGO_URI"`
	DBName        string `mapstructure:"DBNAME"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Shared secret for the X-Honeycommb-Signature header. Empty
	// disables verification, for local development only.
	WebhookSecret string `mapstructure:"HONEYCOMMB_WEBHOOK_SECRET"`

	MaxRetries     int           `mapstructure:"WEBHOOK_MAX_RETRIES"`
	RetryDelay     time.Duration `mapstructure:"WEBHOOK_RETRY_DELAY"`
	RetryBatchSize int           `mapstructure:"WEBHOOK_RETRY_BATCH_SIZE"`
	SweepInterval  time.Duration `mapstructure:"WEBHOOK_SWEEP_INTERVAL"`
	RetentionDays  int           `mapstructure:"WEBHOOK_RETENTION_DAYS"`
	HandlerTimeout time.Duration `mapstructure:"WEBHOOK_HANDLER_TIMEOUT"`
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DBNAME", "honeycommb_bridge")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("HONEYCOMMB_WEBHOOK_SECRET", "")
	viper.SetDefault("WEBHOOK_MAX_RETRIES", 3)
	viper.SetDefault("WEBHOOK_RETRY_DELAY", 5*time.Minute)
	viper.SetDefault("WEBHOOK_RETRY_BATCH_SIZE", 10)
	viper.SetDefault("WEBHOOK_SWEEP_INTERVAL", time.Minute)
	viper.SetDefault("WEBHOOK_RETENTION_DAYS", 30)
	viper.SetDefault("WEBHOOK_HANDLER_TIMEOUT", 30*time.Second)
}

// GetConfig loads configuration from .env and the environment.
// A missing .env file is fine; every key has a default.
func GetConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}
