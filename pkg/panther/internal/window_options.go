//go:build !nosdl

package internal

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects the SDL window flags.
type WindowOptions struct {
	Borderless        bool
	Resizable         bool
	Fullscreen        bool
	FullscreenDesktop bool // Fullscreen at the desktop resolution, no mode switch
	AllowHighDPI      bool
	Hidden            bool
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// DefaultWindowOptions is what a device build runs with. Development
// builds get a normal decorated, resizable window instead.
func DefaultWindowOptions(devMode bool) WindowOptions {
	if devMode {
		return WindowOptions{Resizable: true}
	}
	return WindowOptions{Borderless: true, FullscreenDesktop: true}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if wo.Hidden {
		flags = sdl.WINDOW_HIDDEN
	}

	for _, f := range []struct {
		on   bool
		flag uint32
	}{
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.Fullscreen, sdl.WINDOW_FULLSCREEN},
		{wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP},
		{wo.AllowHighDPI, sdl.WINDOW_ALLOW_HIGHDPI},
	} {
		if f.on {
			flags |= f.flag
		}
	}
	return flags
}
