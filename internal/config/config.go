package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the server process.
type Config struct {
	Port         int
	AppEnv       string
	DataFile     string
	SettingsFile string
	// BusinessDays are the weekday numbers eligible for duration counting
	// (0=Sunday ... 6=Saturday). Default Monday through Friday.
	BusinessDays []int
	// CacheTTL bounds how long a memoized calendar grid may live.
	CacheTTL time.Duration
}

// Load loads configuration from config file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 3002)
	v.SetDefault("app_env", "development")
	v.SetDefault("data_file", "data/aeronaves.json")
	v.SetDefault("settings_file", "data/configuracoes.json")
	v.SetDefault("business_days", []int{1, 2, 3, 4, 5})
	v.SetDefault("cache_ttl_seconds", 600)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/calendario-aeronaves")
	v.AddConfigPath(".")

	if configPath := os.Getenv("AERONAVES_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Config file is optional; defaults plus env vars are enough to run.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("AERONAVES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetInt("port"),
		AppEnv:       v.GetString("app_env"),
		DataFile:     v.GetString("data_file"),
		SettingsFile: v.GetString("settings_file"),
		BusinessDays: v.GetIntSlice("business_days"),
		CacheTTL:     time.Duration(v.GetInt("cache_ttl_seconds")) * time.Second,
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.DataFile == "" {
		return fmt.Errorf("data_file is required")
	}
	if len(cfg.BusinessDays) == 0 {
		return fmt.Errorf("business_days must not be empty")
	}
	for _, wd := range cfg.BusinessDays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("invalid business day %d (must be 0-6)", wd)
		}
	}
	return nil
}
