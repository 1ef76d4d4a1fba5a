package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/render"
)

const envPrefix = "BATTLESHIP"

// Config holds CLI configuration
type Config struct {
	Output      string `mapstructure:"output"`
	Verbose     bool   `mapstructure:"verbose"`
	LogLevel    string `mapstructure:"log_level"`
	RepeatShots string `mapstructure:"repeat_shots"`
	Players     int    `mapstructure:"players"`
	AutoPlace   bool   `mapstructure:"auto_place"`
	FinalView   string `mapstructure:"final_view"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:      "text",
		Verbose:     false,
		LogLevel:    "",
		RepeatShots: string(model.RepeatReject),
		Players:     model.MaxPlayers,
		AutoPlace:   false,
		FinalView:   string(render.PerspectiveOmniscient),
	}
}

// flagKeys maps persistent flag names to their configuration keys
var flagKeys = map[string]string{
	"output":       "output",
	"verbose":      "verbose",
	"log-level":    "log_level",
	"repeat-shots": "repeat_shots",
	"players":      "players",
	"auto-place":   "auto_place",
	"final-view":   "final_view",
}

// newViper creates a viper instance seeded with defaults and reading
// BATTLESHIP_* environment variables
func newViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("output", defaults.Output)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("repeat_shots", defaults.RepeatShots)
	v.SetDefault("players", defaults.Players)
	v.SetDefault("auto_place", defaults.AutoPlace)
	v.SetDefault("final_view", defaults.FinalView)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlags binds the command's persistent flags to v
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// LoadConfig reads the optional config file, merges flags and environment,
// and validates the result
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every setting
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("output must be 'text' or 'json', got %q", c.Output)
	}
	if c.Players < 1 || c.Players > model.MaxPlayers {
		return fmt.Errorf("players must be 1 or %d, got %d", model.MaxPlayers, c.Players)
	}
	if _, err := model.ParseRepeatShotPolicy(c.RepeatShots); err != nil {
		return err
	}
	if _, err := render.ParsePerspective(c.FinalView); err != nil {
		return fmt.Errorf("final_view: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// RepeatPolicy returns the configured repeat shot policy
func (c *Config) RepeatPolicy() model.RepeatShotPolicy {
	policy, err := model.ParseRepeatShotPolicy(c.RepeatShots)
	if err != nil {
		return model.RepeatReject
	}
	return policy
}

// FinalPerspective returns the perspective used to reveal boards once a
// game is over
func (c *Config) FinalPerspective() render.Perspective {
	p, err := render.ParsePerspective(c.FinalView)
	if err != nil {
		return render.PerspectiveOmniscient
	}
	return p
}

// Level resolves the log level: an explicit log_level wins, otherwise
// verbose selects debug and the default is warn
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
		}
		return level, nil
	}
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	return slog.LevelWarn, nil
}

// NewLogger creates the text logger used by commands
func NewLogger(c *Config, w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
