package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidMatchingChoices      = errors.New("matching choices must be at least 2")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`        // Telegram API token loaded from environment
	DB               DB       `mapstructure:"database"` // database configuration section
	Matching         Matching `mapstructure:"matching"` // matching question settings
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Matching configures how matching questions are built.
type Matching struct {
	Choices     int           `mapstructure:"choices"`      // number of candidates shown per question
	Language    string        `mapstructure:"language"`     // default language tag of new words
	QuestionTTL time.Duration `mapstructure:"question_ttl"` // how long an unanswered question stays active
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A local .env is optional.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("matching.choices", 4)
	v.SetDefault("matching.language", "en")
	v.SetDefault("matching.question_ttl", "1h")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("matching.choices", "MATCHING_CHOICES")
	_ = v.BindEnv("matching.language", "MATCHING_LANGUAGE")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if cfg.Matching.Choices < 2 {
		return nil, ErrInvalidMatchingChoices
	}

	return &cfg, nil
}
