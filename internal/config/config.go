package config

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	CurrentYear   int    `mapstructure:"CURRENT_YEAR"`
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	Env           string `mapstructure:"ENV"`
	SentryDSN     string `mapstructure:"SENTRY_DSN"`
	EnableMetrics bool   `mapstructure:"ENABLE_METRICS"`
}

func LoadConfig() *Config {
	// A missing .env is fine, the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to read .env: %v", err)
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "camp.db")
	viper.SetDefault("CURRENT_YEAR", 0)
	viper.SetDefault("PUBLIC_BASE_URL", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ENV", "dev")
	viper.SetDefault("ENABLE_METRICS", true)

	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("CURRENT_YEAR")
	viper.BindEnv("PUBLIC_BASE_URL")
	viper.BindEnv("LOG_LEVEL")
	viper.BindEnv("ENV")
	viper.BindEnv("SENTRY_DSN")
	viper.BindEnv("ENABLE_METRICS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
