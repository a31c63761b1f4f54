package game

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a primitive-typed copy of the gameplay state.
type Snapshot struct {
	Frames     uint64
	Running    bool
	Over       bool
	CameraMode int

	RobotX, RobotZ float64
	Heading        float64
	Energy         int
	Points         int
	Dead           bool

	// One entry per brick in creation order
	Broken []bool
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	r := s.Scene.Robot()
	bricks := s.Scene.Bricks()
	snap := Snapshot{
		Frames:     s.Loop.Frames(),
		Running:    s.Loop.Running(),
		Over:       s.Loop.Over(),
		CameraMode: int(s.State.Mode()),
		RobotX:     r.Position().X(),
		RobotZ:     r.Position().Z(),
		Heading:    r.Heading(),
		Energy:     r.CurrentEnergy(),
		Points:     r.CurrentPoints(),
		Dead:       r.IsDead(),
		Broken:     make([]bool, len(bricks)),
	}
	for i, b := range bricks {
		snap.Broken[i] = b.Broken()
	}
	return snap
}

// Hash digests the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putBool := func(v bool) {
		if v {
			putU64(1)
		} else {
			putU64(0)
		}
	}

	putU64(snap.Frames)
	putBool(snap.Running)
	putBool(snap.Over)
	putU64(uint64(snap.CameraMode)) //#nosec G115 -- hash computation
	putU64(math.Float64bits(snap.RobotX))
	putU64(math.Float64bits(snap.RobotZ))
	putU64(math.Float64bits(snap.Heading))
	putU64(uint64(snap.Energy)) //#nosec G115 -- hash computation
	putU64(uint64(snap.Points)) //#nosec G115 -- hash computation
	putBool(snap.Dead)
	for _, b := range snap.Broken {
		putBool(b)
	}
	return d.Sum64()
}
