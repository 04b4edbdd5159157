// Package geom defines the normalised logical coordinate space shared by
// input, layout and drawing.
//
// Both axes run from 0 to 1 independent of the physical pixel resolution.
// The origin is the bottom-left corner of the display, so Y grows upwards.
// Platform code converts raw pixel or device coordinates into this space
// before anything else sees them.
package geom

import "math"

// Point is a position in normalised coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Add moves p by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// In reports whether p lies inside r. The right and top edges are exclusive.
func (p Point) In(r Rect) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vec is a displacement in normalised coordinates.
type Vec struct {
	DX, DY float64
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.DX, v.DY)
}

// IsZero reports whether v has no displacement.
func (v Vec) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Full covers the whole display.
var Full = Rect{X: 0, Y: 0, W: 1, H: 1}

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Center returns the centre point of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Pixels converts r into a top-left anchored pixel rectangle for a surface
// of the given size.
func (r Rect) Pixels(width, height int) (x, y, w, h int) {
	fw, fh := float64(width), float64(height)
	x = int(math.Round(r.X * fw))
	w = int(math.Round(r.W * fw))
	h = int(math.Round(r.H * fh))
	y = int(math.Round((1 - r.Top()) * fh))
	return x, y, w, h
}

// PixelPoint converts p into top-left anchored pixel coordinates.
func PixelPoint(p Point, width, height int) (x, y float64) {
	return p.X * float64(width), (1 - p.Y) * float64(height)
}

// Normalize converts top-left anchored pixel coordinates into a Point.
// A zero-sized surface maps everything to the origin.
func Normalize(px, py float64, width, height int) Point {
	if width <= 0 || height <= 0 {
		return Point{}
	}
	return Point{X: px / float64(width), Y: 1 - py/float64(height)}
}

// Clamp01 limits v to the closed interval [0, 1].
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
