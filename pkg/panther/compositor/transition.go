package compositor

import (
	"math"
	"time"

	"github.com/skygrel/panther/pkg/panther/constants"
)

// FullCoverage is the smallest radius that covers the whole surface from
// any centre inside it. Radii are measured in units of the longer side.
const FullCoverage = math.Sqrt2

// Circle is a reveal circle in normalised coordinates.
// X and Y are fractions of the width and height, R a fraction of the longer side.
type Circle struct {
	X, Y, R float64
}

// Covers reports whether the circle shows the whole target.
func (c Circle) Covers() bool {
	return c.R >= FullCoverage
}

// DefaultPoints grow a circle from the bottom centre to past full coverage.
var DefaultPoints = [3]Circle{
	{X: 0.5, Y: 0.1, R: 0},
	{X: 0.5, Y: 0.3, R: 0.6},
	{X: 0.5, Y: 0.5, R: 1.5},
}

// CircleTransition animates a Circle along a quadratic Bézier curve
// through three control points.
type CircleTransition struct {
	Start    time.Time
	Duration time.Duration
	Points   [3]Circle
}

// NewCircleTransition creates a transition starting at start.
func NewCircleTransition(start time.Time, duration time.Duration, points [3]Circle) CircleTransition {
	return CircleTransition{
		Start:    start,
		Duration: duration,
		Points:   points,
	}
}

// DefaultTransition is the one second bottom-up reveal.
func DefaultTransition(start time.Time) CircleTransition {
	return NewCircleTransition(start, constants.DefaultTransitionDuration, DefaultPoints)
}

// Progress returns the elapsed fraction of the transition, clamped to [0, 1].
func (t CircleTransition) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.Start)) / float64(t.Duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// At returns the circle at now.
func (t CircleTransition) At(now time.Time) Circle {
	p := t.Progress(now)
	u := 1 - p
	a, b, c := u*u, 2*u*p, p*p
	p0, p1, p2 := t.Points[0], t.Points[1], t.Points[2]
	return Circle{
		X: a*p0.X + b*p1.X + c*p2.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y,
		R: a*p0.R + b*p1.R + c*p2.R,
	}
}

// Done reports whether the transition has finished.
func (t CircleTransition) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}

// Restart replays the transition from now.
func (t *CircleTransition) Restart(now time.Time) {
	t.Start = now
}

// WithStart returns a copy of t starting at start.
func (t CircleTransition) WithStart(start time.Time) CircleTransition {
	t.Start = start
	return t
}
