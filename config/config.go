package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Export ExportConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Driver string
	Path   string
	DSN    string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

type ExportConfig struct {
	SheetName string
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c AppConfig) IsDev() bool {
	return c.Env == "development"
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "hospital_patients.db")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("EXPORT_SHEET_NAME", "Patients Report")

	// The .env file is optional; the environment alone is enough.
	_ = v.ReadInConfig()

	if err := validate(v); err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil {
		ttl = 10 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver: v.GetString("DB_DRIVER"),
			Path:   v.GetString("DB_PATH"),
			DSN:    v.GetString("DB_DSN"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      ttl,
		},
		Export: ExportConfig{
			SheetName: v.GetString("EXPORT_SHEET_NAME"),
		},
	}

	return config, nil
}

func validate(v *viper.Viper) error {
	switch driver := v.GetString("DB_DRIVER"); driver {
	case DriverSQLite:
		if v.GetString("DB_PATH") == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if v.GetString("DB_DSN") == "" {
			return errors.New("DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return nil
}
