package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/brickbot/internal/core"
)

// BrickType identifies a kind of brick.
type BrickType int

// BrickNormal breaks when touched and gives points to the player.
const BrickNormal BrickType = 0

// basePoints returns the points a brick type is worth before any multiplier.
func basePoints(t BrickType) int {
	switch t {
	case BrickNormal:
		return 10
	default:
		return 10
	}
}

// BrickColor is a 0xRRGGBB display color.
type BrickColor uint32

// Palette holds the colors a brick can be drawn with:
// green, blue, fuchsia, red, yellow, gray.
var Palette = [...]BrickColor{0x00cc00, 0x0066ff, 0xff00ff, 0xff0000, 0xffff00, 0x808080}

// Terminal returns the closest terminal color.
func (c BrickColor) Terminal() core.Color {
	return core.NearestColor(uint32(c))
}

// Dimensions are the extents of a brick along X (width), Y (height) and Z (depth).
type Dimensions struct {
	Width, Height, Depth float64
}

// Transform places an entity in the world.
type Transform struct {
	Position mgl64.Vec3
}

// Brick is a breakable block. It has a transform rather than being one.
type Brick struct {
	id        int
	transform Transform
	dims      Dimensions
	typ       BrickType
	points    int
	color     BrickColor
	broken    bool
}

// ID returns the brick's index in the field.
func (b *Brick) ID() int { return b.id }

// Position returns the center of the brick.
func (b *Brick) Position() mgl64.Vec3 { return b.transform.Position }

// Dimensions returns the brick extents.
func (b *Brick) Dimensions() Dimensions { return b.dims }

// Type returns the brick type.
func (b *Brick) Type() BrickType { return b.typ }

// Points returns what the brick is worth when broken.
func (b *Brick) Points() int { return b.points }

// Color returns the cosmetic display color.
func (b *Brick) Color() BrickColor { return b.color }

// Broken reports whether the brick has been broken.
func (b *Brick) Broken() bool { return b.broken }

// PlaceAt moves the brick center to p.
func (b *Brick) PlaceAt(p mgl64.Vec3) {
	b.transform.Position = p
}

// MarkBroken breaks the brick. Returns false if it was already broken.
func (b *Brick) MarkBroken() bool {
	if b.broken {
		return false
	}
	b.broken = true
	return true
}

// Bounds returns the min and max corners of the brick box.
func (b *Brick) Bounds() (mgl64.Vec3, mgl64.Vec3) {
	half := mgl64.Vec3{b.dims.Width / 2, b.dims.Height / 2, b.dims.Depth / 2}
	return b.transform.Position.Sub(half), b.transform.Position.Add(half)
}

// Touches reports whether a point within reach of radius lies over the brick's
// footprint on the ground plane. Height is ignored.
func (b *Brick) Touches(p mgl64.Vec3, radius float64) bool {
	lo, hi := b.Bounds()
	return p.X() >= lo.X()-radius && p.X() <= hi.X()+radius &&
		p.Z() >= lo.Z()-radius && p.Z() <= hi.Z()+radius
}

// TouchesSegment reports whether a robot moving in a straight line from
// "from" to "to" comes within reach of the footprint at any point.
func (b *Brick) TouchesSegment(from, to mgl64.Vec3, radius float64) bool {
	lo, hi := b.Bounds()
	enter, exit := 0.0, 1.0
	for _, axis := range [...]int{0, 2} {
		start, delta := from[axis], to[axis]-from[axis]
		near, far := lo[axis]-radius, hi[axis]+radius
		if delta == 0 {
			if start < near || start > far {
				return false
			}
			continue
		}
		t0, t1 := (near-start)/delta, (far-start)/delta
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		enter, exit = math.Max(enter, t0), math.Min(exit, t1)
		if enter > exit {
			return false
		}
	}
	return true
}

// Errors returned while composing a field.
var (
	ErrInvalidField  = errors.New("invalid field")
	ErrUnknownLayout = errors.New("unknown layout")
)

// BrickSpec describes the bricks of a field. A zero Width is derived from the
// field width and the column count.
type BrickSpec struct {
	Width, Height, Depth float64
	Type                 BrickType
	Layout               string
	Columns              int
	Rows                 int
	Distance             float64 // Z of the first row
	RowGap               float64
}

// BrickFactory builds bricks. Color draws come from an injected random source
// and never touch gameplay fields.
type BrickFactory struct {
	rng              *rand.Rand
	pointsMultiplier int
}

// NewBrickFactory creates a factory drawing colors from src.
func NewBrickFactory(src rand.Source) *BrickFactory {
	return &BrickFactory{
		rng:              rand.New(src),
		pointsMultiplier: 1,
	}
}

// SetPointsMultiplier scales the points of bricks built afterwards. Values
// below one are ignored.
func (f *BrickFactory) SetPointsMultiplier(m int) {
	if m >= 1 {
		f.pointsMultiplier = m
	}
}

// NewBrick builds a single intact brick with a random palette color.
func (f *BrickFactory) NewBrick(dims Dimensions, t BrickType) *Brick {
	return &Brick{
		dims:   dims,
		typ:    t,
		points: basePoints(t) * f.pointsMultiplier,
		color:  Palette[f.rng.Intn(len(Palette))],
	}
}

// CreateField lays bricks out across fieldWidth, centered on X = 0.
// It only builds bricks; no scoring happens here.
func (f *BrickFactory) CreateField(fieldWidth float64, spec BrickSpec) ([]*Brick, error) {
	if fieldWidth <= 0 || spec.Columns <= 0 || spec.Rows <= 0 {
		return nil, fmt.Errorf("%w: width=%v columns=%d rows=%d", ErrInvalidField, fieldWidth, spec.Columns, spec.Rows)
	}
	layout, ok := lookupLayout(spec.Layout)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, spec.Layout)
	}

	dims := Dimensions{Width: spec.Width, Height: spec.Height, Depth: spec.Depth}
	if dims.Width == 0 {
		dims.Width = fieldWidth / float64(spec.Columns)
	}
	if dims.Width < 0 || dims.Height <= 0 || dims.Depth <= 0 {
		return nil, fmt.Errorf("%w: brick dimensions %+v", ErrInvalidField, dims)
	}

	// Columns are spaced evenly over the field even when the brick width is overridden
	pitch := fieldWidth / float64(spec.Columns)
	left := -fieldWidth / 2

	slots := layout(spec.Columns, spec.Rows)
	bricks := make([]*Brick, 0, len(slots))
	for _, s := range slots {
		b := f.NewBrick(dims, spec.Type)
		b.id = len(bricks)
		b.PlaceAt(mgl64.Vec3{
			left + pitch*(float64(s.Col)+0.5),
			dims.Height / 2,
			spec.Distance + float64(s.Row)*(dims.Depth+spec.RowGap) + dims.Depth/2,
		})
		bricks = append(bricks, b)
	}
	return bricks, nil
}
