package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env               string        `mapstructure:"ENV"`
	Port              string        `mapstructure:"PORT"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	APIKey            string        `mapstructure:"API_KEY"`
	CORSAllowed       string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	PendingStatusID   int64         `mapstructure:"PENDING_STATUS_ID"`
	Timezone          string        `mapstructure:"TIMEZONE"`
	RankingTopN       int           `mapstructure:"RANKING_TOP_N"`
	GeocoderURL       string        `mapstructure:"GEOCODER_URL"`
	GeocoderUserAgent string        `mapstructure:"GEOCODER_USER_AGENT"`
	CountryDefault    string        `mapstructure:"COUNTRY_DEFAULT"`
	ComunaDefault     string        `mapstructure:"COMUNA_DEFAULT"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("API_KEY", "")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("PENDING_STATUS_ID", 1)
	v.SetDefault("TIMEZONE", "America/Santiago")
	v.SetDefault("RANKING_TOP_N", 5)
	v.SetDefault("GEOCODER_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("GEOCODER_USER_AGENT", "juntas-analytics")
	v.SetDefault("COUNTRY_DEFAULT", "Chile")
	v.SetDefault("COMUNA_DEFAULT", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// UnknownTimezone reports whether a non-empty Timezone failed to load and
// Location fell back to UTC.
func (c Config) UnknownTimezone() bool {
	if c.Timezone == "" {
		return false
	}
	_, err := time.LoadLocation(c.Timezone)
	return err != nil
}
