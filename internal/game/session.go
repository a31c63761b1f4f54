// Package game implements the brickbot gameplay core: a robot spends energy
// every frame while breaking bricks for points, seen through a switchable
// camera. Hosts supply a Scheduler, a Renderer and input events.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/vovakirdan/brickbot/internal/config"
)

// Options configure a new session.
type Options struct {
	Config    config.BrickbotConfig
	Seed      int64 // Seeds brick colors only
	Aspect    float64
	Scheduler Scheduler
	Renderer  Renderer
	Hooks     LoopHooks
	Logger    *log.Logger
}

// Session is everything that lives from initialization to game over. There is
// no in-place restart: hosts build a new Session instead.
type Session struct {
	ID    uuid.UUID
	Scene *Scene
	State *ApplicationState
	Loop  *AnimationLoop
	Input *InputController

	renderer   Renderer
	difficulty *config.DifficultyManager
	logger     *log.Logger
}

// NewSession builds the scene from configuration and wires the loop. The loop
// is left Stopped; call Start (or send the start/stop key) to run it.
func NewSession(opts Options) (*Session, error) {
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("game: session needs a scheduler")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	factory := NewBrickFactory(rand.NewSource(opts.Seed))
	factory.SetPointsMultiplier(difficulty.PointsMultiplier())
	bricks, err := factory.CreateField(cfg.Field.Width, BrickSpec{
		Width:    cfg.Brick.Width,
		Height:   cfg.Brick.Height,
		Depth:    cfg.Brick.Depth,
		Type:     BrickType(cfg.Brick.Type),
		Layout:   cfg.Field.Layout,
		Columns:  cfg.Field.Columns,
		Rows:     cfg.Field.Rows,
		Distance: cfg.Field.Distance,
		RowGap:   cfg.Field.RowGap,
	})
	if err != nil {
		return nil, fmt.Errorf("game: cannot compose field: %w", err)
	}

	robot := NewRobot(RobotParams{
		MaxEnergy:  cfg.Robot.MaxEnergy,
		EnergyCost: cfg.Robot.EnergyCost,
		StepSize:   difficulty.StepSize(cfg.Robot.StepSize),
		TurnAngle:  mgl64.DegToRad(cfg.Robot.TurnAngle),
		Radius:     cfg.Robot.Radius,
		Smoothing:  cfg.Robot.Smoothing,
	})

	aspect := opts.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	cam := cfg.Camera
	scene := NewScene(robot, bricks, SceneParams{
		FieldWidth: cfg.Field.Width,
		EyeHeight:  cfg.Robot.EyeHeight,
		Pose: Pose{
			HeadRotation: mgl64.DegToRad(cfg.Pose.HeadRotation),
			BodyRotation: mgl64.DegToRad(cfg.Pose.BodyRotation),
			LegScale:     cfg.Pose.LegScale,
		},
		Camera: Camera{
			Position: mgl64.Vec3(cam.Position),
			Target:   mgl64.Vec3(cam.Target),
			FovY:     mgl64.DegToRad(cam.FOV),
			Aspect:   aspect,
			Near:     cam.Near,
			Far:      cam.Far,
		},
		OrbitSpeed: cam.OrbitSpeed,
		ZoomStep:   cam.ZoomStep,
	})

	s := &Session{
		ID:         uuid.New(),
		Scene:      scene,
		State:      NewApplicationState(),
		renderer:   opts.Renderer,
		difficulty: difficulty,
	}
	s.logger = logger.With("session", s.ID.String()[:8])
	s.Loop = NewAnimationLoop(opts.Scheduler, scene, s.State, opts.Renderer, opts.Hooks, s.logger)
	s.Input = NewInputController(s)

	s.logger.Debug("session created",
		"bricks", len(bricks),
		"layout", cfg.Field.Layout,
		"difficulty", difficulty.Level(),
	)
	return s, nil
}

// Status returns the current status line.
func (s *Session) Status() string {
	return StatusMessage(s.Scene.Robot())
}

// ActiveCamera returns the camera selected by the current mode.
func (s *Session) ActiveCamera() *Camera {
	return s.Scene.ActiveCamera(s.State.Mode())
}
