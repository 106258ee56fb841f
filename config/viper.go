package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	keyDarkTheme   = "display.dark_theme"
	keyServerPort  = "server.port"
	keyDefaultType = "log.default_session_type"
)

const defaultServerPort = 1111

// Settings holds the user-tunable configuration.
type Settings struct {
	DarkTheme   bool
	ServerPort  uint
	DefaultType string
}

// Load reads the YAML config file, writing one with defaults on first run.
func Load() (*Settings, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("yaml")

	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyServerPort, defaultServerPort)
	v.SetDefault(keyDefaultType, "Water")

	err := v.ReadInConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return nil, fmt.Errorf("writing default config failed: %w", err)
		}
	}

	return &Settings{
		DarkTheme:   v.GetBool(keyDarkTheme),
		ServerPort:  v.GetUint(keyServerPort),
		DefaultType: v.GetString(keyDefaultType),
	}, nil
}
