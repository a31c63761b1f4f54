package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameSchedulerFire(t *testing.T) {
	s := newFrameScheduler(5)

	calls := 0
	h := s.RequestFrame(func() { calls++ })
	require.NotNil(t, s.Drain(), "expected a queued frame command")
	assert.Nil(t, s.Drain(), "drain empties the queue")

	require.True(t, s.Fire(FrameMsg{Handle: h, owner: s}))
	assert.False(t, s.Fire(FrameMsg{Handle: h, owner: s}), "a frame fires once")
	assert.Equal(t, 1, calls)
}

func TestFrameSchedulerCancel(t *testing.T) {
	s := newFrameScheduler(5)

	h := s.RequestFrame(func() { t.Error("cancelled frame ran") })
	s.CancelFrame(h)
	assert.False(t, s.Fire(FrameMsg{Handle: h, owner: s}))
}

func TestFrameSchedulerIgnoresForeignFrames(t *testing.T) {
	a := newFrameScheduler(5)
	b := newFrameScheduler(5)

	h := a.RequestFrame(func() { t.Error("frame ran on the wrong scheduler") })
	assert.False(t, b.Fire(FrameMsg{Handle: h, owner: a}))
}

func TestFrameInterval(t *testing.T) {
	assert.Equal(t, 200*time.Millisecond, frameInterval(5))
	assert.Equal(t, time.Second, frameInterval(0))
}
