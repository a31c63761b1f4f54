package game

// Handle identifies a requested frame. The zero Handle is never issued.
type Handle uint64

// Scheduler is the host's "run this once more, soon" primitive.
type Scheduler interface {
	// RequestFrame arranges for fn to run once on a future frame.
	RequestFrame(fn func()) Handle
	// CancelFrame withdraws a request that has not run yet.
	CancelFrame(h Handle)
}

type frameRequest struct {
	handle Handle
	fn     func()
}

// ManualScheduler runs frames only when told to. Tests and the headless
// simulator drive the loop with it.
type ManualScheduler struct {
	next    Handle
	pending []frameRequest
}

// NewManualScheduler creates an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame queues fn.
func (m *ManualScheduler) RequestFrame(fn func()) Handle {
	m.next++
	m.pending = append(m.pending, frameRequest{handle: m.next, fn: fn})
	return m.next
}

// CancelFrame removes a queued request.
func (m *ManualScheduler) CancelFrame(h Handle) {
	for i, r := range m.pending {
		if r.handle == h {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued requests.
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}

// Step runs the oldest queued request. Returns false if nothing was queued.
func (m *ManualScheduler) Step() bool {
	if len(m.pending) == 0 {
		return false
	}
	r := m.pending[0]
	m.pending = m.pending[1:]
	r.fn()
	return true
}

// Run steps until the queue drains or limit frames have run.
// Returns the number of frames run.
func (m *ManualScheduler) Run(limit int) int {
	n := 0
	for n < limit && m.Step() {
		n++
	}
	return n
}
