package core

// RuntimeConfig contains host parameters passed to a session at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host scheduler
	Seed     int64 // RNG seed for cosmetic randomness (brick colors)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 5,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Aspect returns the width/height ratio of the screen, compensating for
// terminal cells being roughly twice as tall as they are wide.
func (c RuntimeConfig) Aspect() float64 {
	if c.ScreenH <= 0 {
		return 1
	}
	return float64(c.ScreenW) / float64(c.ScreenH*2)
}
