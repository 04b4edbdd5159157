package geom

// FixedPosition builds a Rect from edge and size constraints, the way
// widgets are laid out on a screen:
//
//	geom.Position().Width(0.2).Left(0.1).Bottom(0.9).Height(0.05).Rect()
//
// Unset sizes default to zero and unset edges to the origin. When both Left
// and Right are set without a Width, the width spans between them; the same
// holds vertically.
type FixedPosition struct {
	left, right, bottom, top *float64
	width, height            *float64
}

// Position starts an empty FixedPosition.
func Position() FixedPosition {
	return FixedPosition{}
}

func ptr(v float64) *float64 { return &v }

func (p FixedPosition) Left(v float64) FixedPosition   { p.left = ptr(v); return p }
func (p FixedPosition) Right(v float64) FixedPosition  { p.right = ptr(v); return p }
func (p FixedPosition) Bottom(v float64) FixedPosition { p.bottom = ptr(v); return p }
func (p FixedPosition) Top(v float64) FixedPosition    { p.top = ptr(v); return p }
func (p FixedPosition) Width(v float64) FixedPosition  { p.width = ptr(v); return p }
func (p FixedPosition) Height(v float64) FixedPosition { p.height = ptr(v); return p }

// Rect resolves the constraints.
func (p FixedPosition) Rect() Rect {
	x, w := resolveAxis(p.left, p.right, p.width)
	y, h := resolveAxis(p.bottom, p.top, p.height)
	return Rect{X: x, Y: y, W: w, H: h}
}

// resolveAxis turns near-edge, far-edge and size constraints on one axis
// into an origin and a length. The far edge is measured from the far side.
func resolveAxis(near, far, size *float64) (origin, length float64) {
	switch {
	case size != nil && near != nil:
		return *near, *size
	case size != nil && far != nil:
		return 1 - *far - *size, *size
	case size != nil:
		return 0, *size
	case near != nil && far != nil:
		return *near, 1 - *far - *near
	case near != nil:
		return *near, 0
	default:
		return 0, 0
	}
}
