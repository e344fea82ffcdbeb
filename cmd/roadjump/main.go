// roadjump is an endless "jump across the road" game for the terminal.
//
// Usage:
//
//	roadjump play            - Play in the terminal
//	roadjump sim             - Play runs headlessly with a bot and print a report
//	roadjump road            - Print a generated road
//	roadjump config          - Print the configuration in effect
//
// Global flags:
//
//	--seed <value>        - RNG seed for reproducible roads (0 = random)
//	--config <path>       - Path to a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--length <n>          - Override the road length
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadjump/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLength     int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadjump",
	Short: "Road Jump - jump across an endless procedural road",
	Long: `Road Jump is a terminal game: cross a road of solid tiles and gaps by
jumping one or two tiles at a time. Landing in a gap or reaching the far
side restarts the game with a new road.

Available commands:
  play   - Play in the terminal
  sim    - Play runs headlessly with a bot
  road   - Print a generated road
  config - Print the configuration in effect

Examples:
  roadjump play
  roadjump play --difficulty hard
  roadjump sim --runs 100 --policy cautious --seed 7
  roadjump road --length 30 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagLength, "length", 0, "Override road length (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(roadCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, difficulty preset and overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagLength != 0 {
		cfg.Road.Length = flagLength
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger for a command. fallback is used when no log
// file was requested. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadjump",
		Level:           level,
	})
	return logger, closer, nil
}
