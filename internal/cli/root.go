package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v := newViper()
	defaults := DefaultConfig()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "battleship",
		Short: "Battleship on the terminal",
		Long: `battleship runs the classic fleet battle on a 10x10 grid.

Configuration is read from flags, BATTLESHIP_* environment variables
and an optional config file (yaml, toml or json).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(v, configFile)
			if err != nil {
				return err
			}
			cfg = loaded
			logger = NewLogger(cfg, cmd.ErrOrStderr())
			logger.Debug("configuration loaded",
				slog.String("output", cfg.Output),
				slog.Int("players", cfg.Players),
				slog.String("repeat_shots", cfg.RepeatShots),
				slog.Bool("auto_place", cfg.AutoPlace),
			)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file path (yaml, toml or json)")
	flags.StringP("output", "o", defaults.Output, "Output format: text, json (env: BATTLESHIP_OUTPUT)")
	flags.BoolP("verbose", "v", defaults.Verbose, "Verbose logging (env: BATTLESHIP_VERBOSE)")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error (env: BATTLESHIP_LOG_LEVEL)")
	flags.String("repeat-shots", defaults.RepeatShots, "Repeat shot policy: reject, replay (env: BATTLESHIP_REPEAT_SHOTS)")
	flags.IntP("players", "p", defaults.Players, "Number of players: 1 or 2 (env: BATTLESHIP_PLAYERS)")
	flags.Bool("auto-place", defaults.AutoPlace, "Place fleets at random (env: BATTLESHIP_AUTO_PLACE)")
	flags.String("final-view", defaults.FinalView, "Perspective for the boards shown after the game: ally, enemy, omniscient (env: BATTLESHIP_FINAL_VIEW)")

	if err := bindFlags(v, rootCmd); err != nil {
		panic(err)
	}

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newFleetCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format := DefaultConfig().Output
		if cfg != nil {
			format = cfg.Output
		}
		NewOutput(format, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		os.Exit(1)
	}
}
