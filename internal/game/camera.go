package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective viewpoint.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	FovY     float64 // Radians
	Aspect   float64
	Near     float64
	Far      float64
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// PointerKind identifies a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerDrag
	PointerWheel
	PointerUp
)

// PointerEvent is a mouse event in screen cells.
type PointerEvent struct {
	Kind   PointerKind
	DX, DY int // Drag delta since the previous event
	Wheel  int // Positive zooms in
}

// CameraControls orbits the primary camera around its target, like a
// trackball. Input is queued and applied in Update once per frame.
type CameraControls struct {
	Enabled bool

	camera     *Camera
	orbitSpeed float64
	zoomStep   float64

	yaw, pitch, zoom float64
}

// NewCameraControls attaches orbit controls to a camera.
func NewCameraControls(cam *Camera, orbitSpeed, zoomStep float64) *CameraControls {
	return &CameraControls{
		Enabled:    true,
		camera:     cam,
		orbitSpeed: orbitSpeed,
		zoomStep:   zoomStep,
	}
}

// Queue records a pointer event for the next Update. Disabled controls drop it.
func (cc *CameraControls) Queue(ev PointerEvent) {
	if !cc.Enabled {
		return
	}
	switch ev.Kind {
	case PointerDrag:
		cc.yaw -= float64(ev.DX) * cc.orbitSpeed
		cc.pitch += float64(ev.DY) * cc.orbitSpeed
	case PointerWheel:
		cc.zoom += float64(ev.Wheel) * cc.zoomStep
	}
}

// Update applies queued orbit and zoom to the camera.
func (cc *CameraControls) Update() {
	if !cc.Enabled {
		cc.yaw, cc.pitch, cc.zoom = 0, 0, 0
		return
	}
	if cc.yaw == 0 && cc.pitch == 0 && cc.zoom == 0 {
		return
	}

	offset := cc.camera.Position.Sub(cc.camera.Target)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	// Spherical coordinates around the target, +Y up
	theta := math.Atan2(offset.X(), offset.Z())
	phi := math.Acos(mgl64.Clamp(offset.Y()/radius, -1, 1))

	theta += cc.yaw
	phi = mgl64.Clamp(phi-cc.pitch, 0.05, math.Pi/2-0.01)
	radius = math.Max(radius-cc.zoom, 10)

	sinPhi := math.Sin(phi)
	cc.camera.Position = cc.camera.Target.Add(mgl64.Vec3{
		radius * sinPhi * math.Sin(theta),
		radius * math.Cos(phi),
		radius * sinPhi * math.Cos(theta),
	})
	cc.yaw, cc.pitch, cc.zoom = 0, 0, 0
}
