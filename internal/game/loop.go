package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Renderer draws a frame. Sizing belongs to the renderer.
type Renderer interface {
	Render(scene *Scene, cam *Camera)
	Resize(width, height int)
}

// StatusMessage formats the per-frame status line.
func StatusMessage(r *Robot) string {
	if r.CurrentEnergy() > 0 {
		return fmt.Sprintf("ENERGY: %d%% · POINTS: %d", r.CurrentEnergy(), r.CurrentPoints())
	}
	return "DEAD"
}

// LoopHooks receive the loop's outputs. Nil hooks are skipped.
type LoopHooks struct {
	Status   func(msg string)
	GameOver func(points int)
}

// AnimationLoop is the frame scheduler. It is Running while a frame request
// is pending and Stopped otherwise; at most one request is ever pending.
type AnimationLoop struct {
	scheduler Scheduler
	scene     *Scene
	state     *ApplicationState
	renderer  Renderer
	hooks     LoopHooks
	logger    *log.Logger

	pending    Handle
	hasPending bool
	frames     uint64
	over       bool
}

// NewAnimationLoop wires a loop to its collaborators. It starts Stopped.
func NewAnimationLoop(sched Scheduler, scene *Scene, state *ApplicationState, r Renderer, hooks LoopHooks, logger *log.Logger) *AnimationLoop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &AnimationLoop{
		scheduler: sched,
		scene:     scene,
		state:     state,
		renderer:  r,
		hooks:     hooks,
		logger:    logger,
	}
}

// Running reports whether a frame is pending.
func (l *AnimationLoop) Running() bool {
	return l.hasPending
}

// Frames returns the number of ticks executed.
func (l *AnimationLoop) Frames() uint64 {
	return l.frames
}

// Over reports whether the game-over signal has been emitted.
func (l *AnimationLoop) Over() bool {
	return l.over
}

// Start requests the next frame. No-op if one is already pending or the
// game is over.
func (l *AnimationLoop) Start() {
	if l.hasPending || l.over {
		return
	}
	l.pending = l.scheduler.RequestFrame(l.Tick)
	l.hasPending = true
}

// Stop cancels the pending frame. No-op if none is pending.
func (l *AnimationLoop) Stop() {
	if !l.hasPending {
		return
	}
	l.scheduler.CancelFrame(l.pending)
	l.pending = 0
	l.hasPending = false
}

// Tick runs one frame. The pending marker is cleared first so that nothing
// inside the frame can arm a second request; the loop re-arms at the end
// only while the robot is alive.
func (l *AnimationLoop) Tick() {
	l.pending = 0
	l.hasPending = false

	if l.over {
		return
	}
	l.frames++

	robot := l.scene.Robot()
	for _, b := range l.scene.Animate() {
		l.logger.Debug("brick broken", "brick", b.ID(), "points", b.Points(), "total", robot.CurrentPoints())
	}
	robot.TickEnergy()

	if l.hooks.Status != nil {
		l.hooks.Status(StatusMessage(robot))
	}
	if l.renderer != nil {
		l.renderer.Render(l.scene, l.scene.ActiveCamera(l.state.Mode()))
	}

	if !robot.IsDead() {
		l.Start()
		return
	}

	l.Stop()
	l.over = true
	l.logger.Info("game over", "points", robot.CurrentPoints(), "frames", l.frames)
	if l.hooks.GameOver != nil {
		l.hooks.GameOver(robot.CurrentPoints())
	}
}
