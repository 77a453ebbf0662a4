package util

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/skiproute/pkg"
	"github.com/spf13/viper"
)

// ReadConfig registers defaults and reads the optional config.yaml from
// the working directory. A missing file is fine, defaults apply.
func ReadConfig() error {
	viper.SetDefault("SPEED", pkg.DEFAULT_SPEED)
	viper.SetDefault("DELAY", pkg.DEFAULT_DELAY)
	viper.SetDefault("EDGE", pkg.DEFAULT_EDGE)
	viper.SetDefault("MIN_AXIS_OFFSET", pkg.DEFAULT_MIN_AXIS_OFFSET)
	viper.SetDefault("CANDIDATE_SET", "list")

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("WEBSOCKET_PORT", 6666)
	viper.SetDefault("API_TIMEOUT", "1000s")
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "120s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "10s")

	viper.SetConfigName("config")
	viper.AddConfigPath(".")

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
