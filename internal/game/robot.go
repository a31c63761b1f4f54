package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Direction is a robot movement command.
type Direction int

const (
	Forward Direction = iota
	Backward
	TurnLeft
	TurnRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case TurnLeft:
		return "TurnLeft"
	case TurnRight:
		return "TurnRight"
	default:
		return "Unknown"
	}
}

// MoveResult reports what happened to a movement command.
type MoveResult int

const (
	MoveApplied MoveResult = iota
	MoveRejectedDead
)

// RobotParams configures a robot at creation.
type RobotParams struct {
	MaxEnergy  int
	EnergyCost int     // Energy spent per frame
	StepSize   float64 // World units per Forward/Backward command
	TurnAngle  float64 // Radians per TurnLeft/TurnRight command
	Radius     float64
	Smoothing  float64 // Fraction of the remaining distance covered per frame
}

// Pose holds the cosmetic joint values applied every frame.
type Pose struct {
	HeadRotation float64 // Radians
	BodyRotation float64 // Radians
	LegScale     float64
}

// Robot is the player avatar. It owns its position, heading, energy and points.
// isDead becomes true exactly when currentEnergy reaches zero and never resets.
type Robot struct {
	params RobotParams

	position mgl64.Vec3
	heading  float64 // Radians around +Y, 0 faces +Z

	// Rendered pose, eased toward the logical one in Animate
	displayPosition mgl64.Vec3
	displayHeading  float64
	pose            Pose

	currentEnergy int
	currentPoints int
	isDead        bool
}

// NewRobot creates a robot at the origin facing +Z with full energy.
func NewRobot(p RobotParams) *Robot {
	if p.Smoothing <= 0 || p.Smoothing > 1 {
		p.Smoothing = 1
	}
	return &Robot{
		params:        p,
		currentEnergy: p.MaxEnergy,
		pose:          Pose{LegScale: 1},
		isDead:        p.MaxEnergy <= 0,
	}
}

// Position returns the logical position.
func (r *Robot) Position() mgl64.Vec3 { return r.position }

// Heading returns the logical heading in radians.
func (r *Robot) Heading() float64 { return r.heading }

// DisplayPosition returns the smoothed position used for rendering.
func (r *Robot) DisplayPosition() mgl64.Vec3 { return r.displayPosition }

// DisplayHeading returns the smoothed heading used for rendering.
func (r *Robot) DisplayHeading() float64 { return r.displayHeading }

// Pose returns the current cosmetic pose.
func (r *Robot) Pose() Pose { return r.pose }

// Radius returns the reach used by touch tests.
func (r *Robot) Radius() float64 { return r.params.Radius }

// CurrentEnergy returns the remaining energy.
func (r *Robot) CurrentEnergy() int { return r.currentEnergy }

// MaxEnergy returns the energy the robot started with.
func (r *Robot) MaxEnergy() int { return r.params.MaxEnergy }

// CurrentPoints returns the accumulated points.
func (r *Robot) CurrentPoints() int { return r.currentPoints }

// IsDead reports whether the robot has run out of energy.
func (r *Robot) IsDead() bool { return r.isDead }

// Forward returns the unit vector the robot is facing.
func (r *Robot) Forward() mgl64.Vec3 {
	return mgl64.Rotate3DY(r.heading).Mul3x1(mgl64.Vec3{0, 0, 1})
}

// Move applies one movement command. A dead robot ignores it.
func (r *Robot) Move(d Direction) MoveResult {
	if r.isDead {
		return MoveRejectedDead
	}

	switch d {
	case Forward:
		r.position = r.position.Add(r.Forward().Mul(r.params.StepSize))
	case Backward:
		r.position = r.position.Sub(r.Forward().Mul(r.params.StepSize))
	case TurnLeft:
		r.heading = normalizeAngle(r.heading + r.params.TurnAngle)
	case TurnRight:
		r.heading = normalizeAngle(r.heading - r.params.TurnAngle)
	}
	return MoveApplied
}

// placeAt moves the robot without easing; used at spawn and for bounds clamping.
func (r *Robot) placeAt(p mgl64.Vec3) {
	r.position = p
}

// OnBrickTouch breaks an intact brick and credits its points.
// Returns the points awarded, zero for an already broken brick.
func (r *Robot) OnBrickTouch(b *Brick) int {
	if !b.MarkBroken() {
		return 0
	}
	r.currentPoints += b.Points()
	return b.Points()
}

// TickEnergy spends one frame of energy. It is the only way the robot dies.
// Returns true on the frame the robot dies.
func (r *Robot) TickEnergy() bool {
	if r.isDead {
		return false
	}
	r.currentEnergy -= r.params.EnergyCost
	if r.currentEnergy <= 0 {
		r.currentEnergy = 0
		r.isDead = true
		return true
	}
	return false
}

// Animate eases the rendered pose toward the logical one and applies the
// cosmetic joint values.
func (r *Robot) Animate(pose Pose) {
	r.pose = pose
	k := r.params.Smoothing
	r.displayPosition = r.displayPosition.Add(r.position.Sub(r.displayPosition).Mul(k))
	r.displayHeading = normalizeAngle(r.displayHeading + normalizeAngle(r.heading-r.displayHeading)*k)
	if r.displayPosition.ApproxEqualThreshold(r.position, 1e-6) {
		r.displayPosition = r.position
	}
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
