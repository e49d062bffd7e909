package util

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")

	viper.SetDefault("CAMPUS_FILE", "./data/campus.json")
	viper.SetDefault("EVACUATION_AREA", "Oval")
	viper.SetDefault("ROUTE_CACHE_SIZE", 4096)
	viper.SetDefault("MAX_SETTLED_NODES", 0)
	viper.SetDefault("SNAP_RADIUS_KM", 0.05)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("EVACUATION_WORKERS", runtime.NumCPU())
	viper.SetDefault("PROJECTION_WIDTH", 1000.0)
	viper.SetDefault("PROJECTION_HEIGHT", 1000.0)
	viper.SetDefault("LOG_LEVEL", "info")
}

// ReadConfig. reads ./data/config.{yaml,json,toml} and the environment. a missing config file is not an error,
// every key has a default.
func ReadConfig() error {
	SetConfigDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
