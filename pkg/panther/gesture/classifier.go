package gesture

import (
	"time"

	"github.com/skygrel/panther/pkg/panther/geom"
)

// ScrollThreshold is how long a contact has to be held before a move
// escalates it from a potential tap to a drag.
const ScrollThreshold = 50 * time.Millisecond

// TouchID identifies one physical contact for its whole lifetime.
type TouchID uint64

// Phase is the classification state of a tracked contact.
type Phase int

const (
	PhasePressStart Phase = iota // held less than ScrollThreshold, still a tap candidate
	PhaseMoving                  // escalated to a drag, never reported as a tap
)

func (p Phase) String() string {
	switch p {
	case PhasePressStart:
		return "press_start"
	case PhaseMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// TouchState is what the classifier remembers about one contact.
type TouchState struct {
	Phase Phase
	// Last is the most recently recorded position. Scroll deltas are measured
	// from here, not from where the contact went down.
	Last geom.Point
	// Since is the down time while in PhasePressStart and the time of the
	// last sample while in PhaseMoving.
	Since time.Time
	// Forward records whether the target accepted this contact as a scroll.
	Forward bool
}

// Target receives classified gestures.
type Target interface {
	StartScroll(p geom.Point) bool
	Scroll(delta geom.Vec)
	Press(p geom.Point)
}

// Classifier tracks every active contact and forwards gestures to a Target.
// It is not safe for concurrent use; it belongs to the thread that owns the
// screen stack.
type Classifier struct {
	target  Target
	touches map[TouchID]TouchState
	now     func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Classifier that forwards to target.
func New(target Target, opts ...Option) *Classifier {
	c := &Classifier{
		target:  target,
		touches: make(map[TouchID]TouchState),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Down starts tracking a contact at p.
func (c *Classifier) Down(id TouchID, p geom.Point) {
	forward := c.target.StartScroll(p)
	c.touches[id] = TouchState{
		Phase:   PhasePressStart,
		Last:    p,
		Since:   c.now(),
		Forward: forward,
	}
}

// Move records a new position for a tracked contact.
func (c *Classifier) Move(id TouchID, p geom.Point) {
	state, ok := c.touches[id]
	if !ok {
		return
	}

	if state.Forward {
		c.target.Scroll(p.Sub(state.Last))
	}

	now := c.now()
	switch state.Phase {
	case PhasePressStart:
		if now.Sub(state.Since) > ScrollThreshold {
			state = TouchState{Phase: PhaseMoving, Last: p, Since: now, Forward: state.Forward}
		} else {
			state.Last = p
		}
	case PhaseMoving:
		state.Last = p
		state.Since = now
	}
	c.touches[id] = state
}

// Up ends a contact. A contact that never escalated to PhaseMoving is
// reported as a press at p.
func (c *Classifier) Up(id TouchID, p geom.Point) {
	state, ok := c.touches[id]
	if !ok {
		return
	}
	delete(c.touches, id)

	if state.Phase == PhasePressStart {
		c.target.Press(p)
	}
}

// Cancel drops a contact without forwarding anything.
func (c *Classifier) Cancel(id TouchID) {
	delete(c.touches, id)
}

// Reset drops every tracked contact without forwarding anything.
func (c *Classifier) Reset() {
	clear(c.touches)
}

// Active returns the number of contacts currently tracked.
func (c *Classifier) Active() int {
	return len(c.touches)
}

// State returns the tracked state for id.
func (c *Classifier) State(id TouchID) (TouchState, bool) {
	state, ok := c.touches[id]
	return state, ok
}
