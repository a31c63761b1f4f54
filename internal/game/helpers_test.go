package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbot/internal/config"
)

// recorder captures everything the loop hands to the host.
type recorder struct {
	renders  int
	lastCam  *Camera
	width    int
	height   int
	statuses []string
	gameOver []int
}

func (r *recorder) Render(_ *Scene, cam *Camera) {
	r.renders++
	r.lastCam = cam
}

func (r *recorder) Resize(w, h int) {
	r.width, r.height = w, h
}

func (r *recorder) hooks() LoopHooks {
	return LoopHooks{
		Status:   func(msg string) { r.statuses = append(r.statuses, msg) },
		GameOver: func(points int) { r.gameOver = append(r.gameOver, points) },
	}
}

// singleBrickConfig is one brick straight ahead of the robot: 100 energy at
// 10 per frame, so the robot dies on frame 10.
func singleBrickConfig() config.BrickbotConfig {
	cfg := config.DefaultBrickbotConfig()
	cfg.Field.Layout = "line"
	cfg.Field.Columns = 1
	cfg.Field.Rows = 1
	cfg.Field.Distance = 20
	cfg.Field.RowGap = 0
	cfg.Robot.MaxEnergy = 100
	cfg.Robot.EnergyCost = 10
	cfg.Robot.Smoothing = 1
	return cfg
}

func newTestSession(t *testing.T, cfg config.BrickbotConfig) (*Session, *ManualScheduler, *recorder) {
	t.Helper()
	sched := NewManualScheduler()
	rec := &recorder{}
	s, err := NewSession(Options{
		Config:    cfg,
		Seed:      7,
		Scheduler: sched,
		Renderer:  rec,
		Hooks:     rec.hooks(),
	})
	require.NoError(t, err)
	return s, sched, rec
}

func mgl(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}
