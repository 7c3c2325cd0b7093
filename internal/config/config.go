package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment keys
const (
	keyBotToken       = "BOT_TOKEN"
	keyBotPassword    = "BOT_PASSWORD"
	keyDBHost         = "DB_HOST"
	keyDBPort         = "DB_PORT"
	keyDBName         = "DB_NAME"
	keyDBUser         = "DB_USER"
	keyDBPassword     = "DB_PASSWORD"
	keyDictionaryFile = "DICTIONARY_FILE"
	keyLogLevel       = "LOG_LEVEL"
)

// Config holds all application configuration
type Config struct {
	BotToken       string
	BotPassword    string
	DictionaryFile string
	LogLevel       string
	Database       DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(keyDBHost, "localhost")
	v.SetDefault(keyDBPort, "5432")
	v.SetDefault(keyDBName, "crossword")
	v.SetDefault(keyDBUser, "crossword")
	v.SetDefault(keyLogLevel, "warn")
	v.AutomaticEnv()

	cfg := &Config{
		BotToken:       v.GetString(keyBotToken),
		BotPassword:    v.GetString(keyBotPassword),
		DictionaryFile: v.GetString(keyDictionaryFile),
		LogLevel:       v.GetString(keyLogLevel),
		Database: DatabaseConfig{
			Host:     v.GetString(keyDBHost),
			Port:     v.GetString(keyDBPort),
			Name:     v.GetString(keyDBName),
			User:     v.GetString(keyDBUser),
			Password: v.GetString(keyDBPassword),
		},
	}

	return cfg, nil
}

// ValidateBot checks the settings the Telegram bot cannot run without
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if c.BotPassword == "" {
		return errors.New("BOT_PASSWORD is required")
	}
	if !c.HasDatabase() {
		return errors.New("DB_PASSWORD is required")
	}
	return nil
}

// HasDatabase reports whether database credentials are configured
func (c *Config) HasDatabase() bool {
	return c.Database.Password != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
