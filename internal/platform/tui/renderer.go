package tui

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/brickbot/internal/core"
	"github.com/vovakirdan/brickbot/internal/game"
)

const (
	brickRune = '█'
	robotRune = '@'
	floorRune = '·'

	// Projected coordinates are clamped to this many cells off-screen
	offscreen = 1 << 16
)

// ScreenRenderer rasterizes the scene into a character buffer. Bricks are
// drawn as the screen-space bounding box of their projected corners, far to
// near.
type ScreenRenderer struct {
	screen *core.Screen
}

// NewScreenRenderer creates a renderer with a width x height buffer.
func NewScreenRenderer(width, height int) *ScreenRenderer {
	return &ScreenRenderer{screen: core.NewScreen(width, height)}
}

// Screen returns the buffer of the last rendered frame.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Resize implements game.Renderer.
func (r *ScreenRenderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

type projectedBrick struct {
	rect  core.Rect
	depth float64
	color core.Color
}

// Render implements game.Renderer.
func (r *ScreenRenderer) Render(scene *game.Scene, cam *game.Camera) {
	r.screen.Clear()
	if r.screen.Width() == 0 || r.screen.Height() == 0 {
		return
	}
	vp := cam.ViewProjection()

	r.drawFloor(scene, vp)

	var visible []projectedBrick
	for _, b := range scene.Bricks() {
		if b.Broken() {
			continue
		}
		lo, hi := b.Bounds()
		rect, depth, ok := r.projectBox(vp, lo, hi)
		if !ok {
			continue
		}
		visible = append(visible, projectedBrick{rect: rect, depth: depth, color: b.Color().Terminal()})
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].depth > visible[j].depth })
	for _, p := range visible {
		r.screen.FillRect(p.rect, brickRune, p.color)
	}

	robot := scene.Robot()
	if x, y, _, ok := r.project(vp, robot.DisplayPosition()); ok {
		c := core.ColorCyan
		if robot.IsDead() {
			c = core.ColorGray
		}
		r.screen.SetColored(x, y, robotRune, c)
	}
}

// drawFloor marks the corners of the brick field on the ground plane.
func (r *ScreenRenderer) drawFloor(scene *game.Scene, vp mgl64.Mat4) {
	for _, b := range scene.Bricks() {
		lo, hi := b.Bounds()
		for _, p := range []mgl64.Vec3{{lo.X(), 0, lo.Z()}, {hi.X(), 0, hi.Z()}} {
			if x, y, _, ok := r.project(vp, p); ok {
				r.screen.SetColored(x, y, floorRune, core.ColorGray)
			}
		}
	}
}

// project maps a world point to a screen cell. ok is false for points behind
// the camera or outside the depth range.
func (r *ScreenRenderer) project(vp mgl64.Mat4, p mgl64.Vec3) (x, y int, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	fx := core.Clamp((ndc.X()+1)/2*float64(r.screen.Width()), -offscreen, offscreen)
	fy := core.Clamp((1-ndc.Y())/2*float64(r.screen.Height()), -offscreen, offscreen)
	return int(math.Floor(fx)), int(math.Floor(fy)), w, true
}

// projectBox returns the screen rectangle covering a box. Boxes crossing the
// near plane are skipped.
func (r *ScreenRenderer) projectBox(vp mgl64.Mat4, lo, hi mgl64.Vec3) (core.Rect, float64, bool) {
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	depth := 0.0
	for i := 0; i < 8; i++ {
		corner := mgl64.Vec3{lo.X(), lo.Y(), lo.Z()}
		if i&1 != 0 {
			corner[0] = hi.X()
		}
		if i&2 != 0 {
			corner[1] = hi.Y()
		}
		if i&4 != 0 {
			corner[2] = hi.Z()
		}
		x, y, w, ok := r.project(vp, corner)
		if !ok {
			return core.Rect{}, 0, false
		}
		minX, minY = min(minX, x), min(minY, y)
		maxX, maxY = max(maxX, x), max(maxY, y)
		depth += w
	}
	rect := core.RectFromCorners(minX, minY, maxX, maxY)
	if rect.Intersect(r.screen.Bounds()).Empty() {
		return core.Rect{}, 0, false
	}
	return rect, depth / 8, true
}
