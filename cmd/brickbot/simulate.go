package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbot/internal/config"
	"github.com/vovakirdan/brickbot/internal/core"
	"github.com/vovakirdan/brickbot/internal/game"
	"github.com/vovakirdan/brickbot/internal/platform/tui"
)

var (
	flagInput     string
	flagMaxFrames int
	flagNoStart   bool
	flagRender    bool
	flagWidth     int
	flagHeight    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted game without a terminal UI",
	Long: `Run a game headless, driven by a script of key codes and frame steps.

Script tokens are separated by spaces:
  .      - advance one frame
  <int>  - send a key code (32 start/stop, 37 left, 38 forward,
           39 right, 40 back, 86 camera)

The loop is started before the script runs unless --no-start is given.
After the script, frames keep running until game over or --max-frames.

Examples:
  brickbot simulate --input ". . 38 38 . 86 ."
  brickbot simulate --input "38 38 38 ." --render
  brickbot simulate --no-start --input "32 . . 32 ." --max-frames 0`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagInput, "input", "", "Script of key codes and '.' frame steps")
	simulateCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 10000, "Frames to run after the script (0 = none)")
	simulateCmd.Flags().BoolVar(&flagNoStart, "no-start", false, "Leave the loop stopped until the script starts it")
	simulateCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame as text")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Render width in cells")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Render height in cells")
}

// errBadToken is returned for script tokens that are neither '.' nor a key code.
var errBadToken = errors.New("bad script token")

// step is one script instruction: a frame advance or a key press.
type step struct {
	frame bool
	key   core.KeyCode
}

// parseScript splits a script into steps.
func parseScript(script string) ([]step, error) {
	fields := strings.Fields(script)
	steps := make([]step, 0, len(fields))
	for _, f := range fields {
		if f == "." {
			steps = append(steps, step{frame: true})
			continue
		}
		code, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadToken, f)
		}
		steps = append(steps, step{key: core.KeyCode(code)})
	}
	return steps, nil
}

type simulateOptions struct {
	Script    []step
	Seed      int64
	MaxFrames int
	AutoStart bool
	Render    bool
	Width     int
	Height    int
	Logger    *log.Logger
}

// simulate plays a scripted session and reports every frame to w.
// Returns the final snapshot.
func simulate(w io.Writer, cfg config.BrickbotConfig, opts simulateOptions) (game.Snapshot, error) {
	sched := game.NewManualScheduler()

	var renderer *tui.ScreenRenderer
	var r game.Renderer
	if opts.Render {
		renderer = tui.NewScreenRenderer(opts.Width, opts.Height)
		r = renderer
	}

	var session *game.Session
	hooks := game.LoopHooks{
		Status: func(msg string) {
			fmt.Fprintf(w, "frame %d: %s\n", session.Loop.Frames(), msg)
		},
		GameOver: func(points int) {
			fmt.Fprintln(w, tui.GameOverText(points))
		},
	}

	session, err := game.NewSession(game.Options{
		Config:    cfg,
		Seed:      opts.Seed,
		Aspect:    core.RuntimeConfig{ScreenW: opts.Width, ScreenH: opts.Height}.Aspect(),
		Scheduler: sched,
		Renderer:  r,
		Hooks:     hooks,
		Logger:    opts.Logger,
	})
	if err != nil {
		return game.Snapshot{}, err
	}

	if opts.AutoStart {
		session.Loop.Start()
	}
	for _, s := range opts.Script {
		if s.frame {
			if !sched.Step() {
				fmt.Fprintln(w, "(stopped)")
			}
			continue
		}
		if !session.Input.HandleKey(s.key) {
			fmt.Fprintf(w, "key %d: dropped\n", s.key)
		}
	}
	if opts.MaxFrames > 0 {
		sched.Run(opts.MaxFrames)
	}

	snap := session.Snapshot()
	fmt.Fprintf(w, "points: %d\n", snap.Points)
	fmt.Fprintf(w, "snapshot: %016x\n", snap.Hash())
	if renderer != nil {
		fmt.Fprintln(w, renderer.Screen().String())
	}
	return snap, nil
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	script, err := parseScript(flagInput)
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, cleanup, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = simulate(cmd.OutOrStdout(), cfg, simulateOptions{
		Script:    script,
		Seed:      flagSeed,
		MaxFrames: flagMaxFrames,
		AutoStart: !flagNoStart,
		Render:    flagRender,
		Width:     flagWidth,
		Height:    flagHeight,
		Logger:    logger,
	})
	return err
}
