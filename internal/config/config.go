package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Telegram TelegramConfig
	API      APIConfig
	Booking  BookingConfig
	Session  SessionConfig
	Ops      OpsConfig
}

type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`
}

type APIConfig struct {
	BaseURL        string  `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"gt=0"`
	RatePerSecond  float64 `mapstructure:"rate_per_second" validate:"gt=0"`
	RateBurst      int     `mapstructure:"rate_burst" validate:"gt=0"`
}

type BookingConfig struct {
	ReserveDays     int    `mapstructure:"reserve_days" validate:"gt=0"`
	DefaultDuration int    `mapstructure:"default_duration_minutes" validate:"gt=0"`
	FirstHour       int    `mapstructure:"first_hour" validate:"gte=0,lte=23"`
	LastHour        int    `mapstructure:"last_hour" validate:"gte=0,lte=23"`
	DefaultLanguage string `mapstructure:"default_language" validate:"oneof=ru hy en"`
}

type SessionConfig struct {
	// TTLMinutes 0 keeps sessions for the process lifetime.
	TTLMinutes     int `mapstructure:"ttl_minutes" validate:"gte=0"`
	CleanupMinutes int `mapstructure:"cleanup_minutes" validate:"gte=0"`
}

type OpsConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.base_url", "https://reservon.am/api")
	viper.SetDefault("api.timeout_seconds", 10)
	viper.SetDefault("api.rate_per_second", 10.0)
	viper.SetDefault("api.rate_burst", 20)
	viper.SetDefault("booking.reserve_days", 7)
	viper.SetDefault("booking.default_duration_minutes", 30)
	viper.SetDefault("booking.first_hour", 9)
	viper.SetDefault("booking.last_hour", 22)
	viper.SetDefault("booking.default_language", "ru")
	viper.SetDefault("session.ttl_minutes", 0)
	viper.SetDefault("session.cleanup_minutes", 60)
	viper.SetDefault("ops.addr", ":9090")

	viper.AutomaticEnv()
	_ = viper.BindEnv("telegram.token", "TELEGRAM_BOT_TOKEN")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
