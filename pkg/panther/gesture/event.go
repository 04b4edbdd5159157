package gesture

import "github.com/skygrel/panther/pkg/panther/geom"

// TouchPhase is the lifecycle step a raw touch sample reports.
type TouchPhase int

const (
	TouchDown TouchPhase = iota
	TouchMove
	TouchUp
	TouchCancel
)

func (p TouchPhase) String() string {
	switch p {
	case TouchDown:
		return "down"
	case TouchMove:
		return "move"
	case TouchUp:
		return "up"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// TouchEvent is one raw sample from the platform, already normalised.
type TouchEvent struct {
	ID    TouchID
	Phase TouchPhase
	Pos   geom.Point
}

// Handle dispatches e to Down, Move, Up or Cancel.
func (c *Classifier) Handle(e TouchEvent) {
	switch e.Phase {
	case TouchDown:
		c.Down(e.ID, e.Pos)
	case TouchMove:
		c.Move(e.ID, e.Pos)
	case TouchUp:
		c.Up(e.ID, e.Pos)
	case TouchCancel:
		c.Cancel(e.ID)
	}
}
