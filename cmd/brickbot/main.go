// brickbot is a terminal robot game: steer the robot into bricks for points
// before its energy runs out.
//
// Usage:
//
//	brickbot play              - Play in the terminal
//	brickbot simulate          - Run a scripted game headless
//	brickbot serve             - Start SSH server for remote play
//	brickbot config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 5)
//	--seed <value>        - Set RNG seed for brick colors
//	--config <path>       - Path to a custom brickbot.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbot/internal/config"
	"github.com/vovakirdan/brickbot/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
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
	Use:   "brickbot",
	Short: "Brickbot - break bricks with a robot before its energy runs out",
	Long: `Brickbot is a terminal game: a robot walks a field of bricks,
gaining points for every brick it touches and losing energy every frame.

Available commands:
  play      - Play in the terminal
  simulate  - Run a scripted game without a terminal
  serve     - Start SSH server for remote play
  config    - Print the effective configuration

Examples:
  brickbot play
  brickbot play --difficulty hard
  brickbot simulate --input ". . 38 38 . 86 ."
  brickbot serve --ssh :2222
  brickbot config --config ./my-brickbot.yaml`,
	SilenceUsage: true,
}

func init() {
	defaults := core.DefaultConfig()
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.TickRate, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for brick colors (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom brickbot config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the configuration file and applies the difficulty preset.
func loadGameConfig() (config.BrickbotConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BrickbotConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.BrickbotConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned cleanup is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	cleanup := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbot",
		Level:           level,
	})
	return logger, cleanup, nil
}
