package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbot/internal/core"
	"github.com/vovakirdan/brickbot/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The robot loses energy every frame;
touch bricks to collect their points before it runs out.

Controls:
  Space      - Start/stop the animation
  Up/Down    - Move forward/back
  Left/Right - Turn
  V          - Toggle the eye-level camera
  Mouse      - Drag to orbit, wheel to zoom (normal camera only)
  R          - Restart (after game over)
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Level 1 with extra energy
  normal - Level 2
  hard   - Level 3 with less energy
  fixed  - Use the config file as is

Examples:
  brickbot play
  brickbot play --difficulty hard
  brickbot play --fps 10 --seed 42
  brickbot play --config ./my-brickbot.yaml --log-file brickbot.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs are dropped unless --log-file is set
	logger, cleanup, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
