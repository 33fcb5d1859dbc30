package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Game  GameConfig  `mapstructure:"game"`
	Log   LogConfig   `mapstructure:"log"`
	Audio AudioConfig `mapstructure:"audio"`
}

type GameConfig struct {
	// Threshold is the number of matching clues an accusation needs to be
	// sustained. A case file may override it per mystery.
	Threshold int `mapstructure:"threshold"`
	// Hints enables "did you mean" suggestions for unknown suspect names.
	Hints bool `mapstructure:"hints"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	File    string  `mapstructure:"file"`
	Volume  float64 `mapstructure:"volume"` // beep volume exponent, 0 = as recorded
}

// Load resolves configuration from defaults, an optional YAML file and
// DETECTIVEQUEST_* environment variables. An empty path searches the usual
// locations; a missing file there is fine, an explicit path must exist.
func Load(path string) (*Config, error) {
	// A .env next to the binary feeds the env overrides below.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("DETECTIVEQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.threshold", 2)
	v.SetDefault("game.hints", true)

	v.SetDefault("log.level", "info")

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.file", "")
	v.SetDefault("audio.volume", -4.0)
}

func (c *Config) Validate() error {
	if c.Game.Threshold < 1 {
		return fmt.Errorf("game.threshold must be at least 1, got %d", c.Game.Threshold)
	}
	if c.Audio.Enabled && c.Audio.File == "" {
		return fmt.Errorf("audio.enabled requires audio.file")
	}
	return nil
}
