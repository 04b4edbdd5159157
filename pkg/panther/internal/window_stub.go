//go:build nosdl

package internal

import (
	"errors"
	"image/color"

	"github.com/skygrel/panther/pkg/panther/compositor"
)

// ErrNoSDL is returned by the window functions in builds tagged nosdl.
var ErrNoSDL = errors.New("built without SDL (nosdl tag)")

type WindowOptions struct {
	Borderless        bool
	Resizable         bool
	Fullscreen        bool
	FullscreenDesktop bool
	AllowHighDPI      bool
	Hidden            bool
}

func DefaultWindowOptions(devMode bool) WindowOptions {
	if devMode {
		return WindowOptions{Resizable: true}
	}
	return WindowOptions{Borderless: true, FullscreenDesktop: true}
}

type WindowConfig struct {
	Title               string
	Width, Height       int32
	Options             WindowOptions
	BackgroundImagePath string
	ClearColor          color.NRGBA
	MouseAsTouch        bool
	Assets              *Assets
	Input               <-chan Event
	TextCacheSize       int
}

// Window is never constructed in nosdl builds.
type Window struct{}

func InitSDL() error { return ErrNoSDL }

func SDLCleanup() {}

func NewWindow(WindowConfig) (*Window, error) { return nil, ErrNoSDL }

func (w *Window) Size() (int, int) { return 0, 0 }

func (w *Window) NewTarget(int, int) (compositor.RenderTarget, error) { return nil, ErrNoSDL }

func (w *Window) BeginFrame() error { return ErrNoSDL }

func (w *Window) Present() error { return ErrNoSDL }

func (w *Window) Pump(EventSink) error { return ErrNoSDL }

func (w *Window) Close() error { return nil }
