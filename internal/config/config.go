package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Table TableConfig `mapstructure:"table"`
	Bots  BotConfig   `mapstructure:"bots"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // debug, release
}

type TableConfig struct {
	MaxSeats    int `mapstructure:"max_seats"`
	TurnSeconds int `mapstructure:"turn_seconds"`
}

type BotConfig struct {
	AutoFill         bool `mapstructure:"auto_fill"`
	FillDelaySeconds int  `mapstructure:"fill_delay_seconds"`
	MinHumans        int  `mapstructure:"min_humans"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("log.mode", "release")
	v.SetDefault("table.max_seats", 4)
	v.SetDefault("table.turn_seconds", 30)
	v.SetDefault("bots.auto_fill", true)
	v.SetDefault("bots.fill_delay_seconds", 10)
	v.SetDefault("bots.min_humans", 1)
}

// Load reads the configuration file at path. An empty path or a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
