// Package config loads runtime settings for the othelloplay front-ends.
// Values come from, in increasing precedence: coded defaults, an optional
// YAML config file, and OTHELLO_-prefixed environment variables. The engine
// itself takes plain option values; config is a harness concern.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings shared by the serve, selfplay and bench commands.
type Config struct {
	// MoveBudget is the wall-clock time the engine may spend per move.
	MoveBudget time.Duration `mapstructure:"move_budget"`

	// ListenAddr is the address the game server binds to.
	ListenAddr string `mapstructure:"listen_addr"`

	// DataDir overrides the platform data directory when non-empty.
	DataDir string `mapstructure:"data_dir"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("move_budget", 1750*time.Millisecond)
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("data_dir", "")
	v.SetDefault("log_level", "info")
}

// Load reads configuration from the given file (optional; pass "" to skip)
// and the environment.
func Load(file string) (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("OTHELLO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
