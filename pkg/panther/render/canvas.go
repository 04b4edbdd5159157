// Package render defines the drawing capability screens and widgets are
// given, plus the handful of thin widgets the screens are built from.
//
// A Canvas is whatever a screen is currently drawing into: an SDL target
// texture on device, a gg context in headless runs, or a recorder in tests.
// All geometry is in normalised coordinates (see package geom).
package render

import (
	"image"
	"image/color"

	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
)

// Canvas is a render target as seen by drawing code.
type Canvas interface {
	// Size returns the target size in pixels.
	Size() (width, height int)
	FillRect(r geom.Rect, c color.NRGBA)
	// DrawText renders a single line of text whose height fills box.H,
	// aligned horizontally inside box.
	DrawText(text string, box geom.Rect, align constants.TextAlign, c color.NRGBA)
	// DrawImage draws the asset registered under key, stretched to r.
	// Unknown keys draw nothing.
	DrawImage(key string, r geom.Rect)
}

// Drawable is anything that can render itself into a Canvas.
type Drawable interface {
	Draw(c Canvas) error
}

// Assets resolves image keys to decoded images.
type Assets interface {
	Image(key string) (image.Image, bool)
}

// DrawAll draws every drawable in order and stops at the first error.
func DrawAll(c Canvas, ds ...Drawable) error {
	for _, d := range ds {
		if err := d.Draw(c); err != nil {
			return err
		}
	}
	return nil
}
