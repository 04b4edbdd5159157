package compositor

import (
	"image/color"

	"github.com/skygrel/panther/pkg/panther/render"
)

// SurfaceProvider owns the display surface and hands out offscreen targets.
type SurfaceProvider interface {
	// Size returns the output size in pixels.
	Size() (width, height int)
	NewTarget(width, height int) (RenderTarget, error)
	// BeginFrame clears the shared framebuffer.
	BeginFrame() error
	// Present shows the composed frame.
	Present() error
}

// RenderTarget is one screen's offscreen image.
type RenderTarget interface {
	render.Canvas

	Clear(c color.NRGBA) error
	// Composite blends the target into the shared framebuffer, visible only
	// inside c. A circle with R >= FullCoverage shows the whole target.
	Composite(c Circle) error
	Destroy()
}

// TransitionProvider is implemented by screens that want their own reveal
// instead of the compositor's default. A zero Start is replaced with the
// screen's creation time.
type TransitionProvider interface {
	Transition() CircleTransition
}
