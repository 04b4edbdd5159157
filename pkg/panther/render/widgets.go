package render

import (
	"image/color"

	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
)

// Box is a solid coloured rectangle. A zero Rect fills the whole target.
type Box struct {
	Rect  geom.Rect
	Color color.NRGBA
}

// Background creates a Box covering the full target.
func Background(c color.NRGBA) *Box {
	return &Box{Rect: geom.Full, Color: c}
}

// SetColor changes the fill colour.
func (b *Box) SetColor(c color.NRGBA) {
	b.Color = c
}

func (b *Box) Draw(c Canvas) error {
	r := b.Rect
	if r.Empty() {
		r = geom.Full
	}
	c.FillRect(r, b.Color)
	return nil
}

// Label is one line of text.
type Label struct {
	Text  string
	Box   geom.Rect
	Align constants.TextAlign
	Color color.NRGBA
}

func (l *Label) Draw(c Canvas) error {
	if l.Text == "" {
		return nil
	}
	c.DrawText(l.Text, l.Box, l.Align, l.Color)
	return nil
}

// Icon draws a registered image asset.
type Icon struct {
	Key  string
	Rect geom.Rect
}

func (i *Icon) Draw(c Canvas) error {
	c.DrawImage(i.Key, i.Rect)
	return nil
}

// Insets shrinks a rectangle on each side.
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformInsets creates Insets with the same value on all sides.
func UniformInsets(value float64) Insets {
	return Insets{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Apply returns r shrunk by the insets.
func (in Insets) Apply(r geom.Rect) geom.Rect {
	return geom.Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Bottom,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}
