package panther

import (
	"errors"

	"github.com/skygrel/panther/pkg/panther/compositor"
	"github.com/skygrel/panther/pkg/panther/config"
	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/internal"
)

// EventSink receives platform events on the loop thread.
type EventSink = internal.EventSink

// Platform is a display surface that also produces input events.
type Platform interface {
	compositor.SurfaceProvider
	// Pump delivers every pending event to sink without blocking.
	Pump(sink EventSink) error
	Close() error
}

// Headless is the software platform. It never blocks and can be scripted.
type Headless = internal.SoftSurface

// ScriptedEvent is an event a Headless platform delivers after a given
// number of presented frames.
type ScriptedEvent = internal.ScriptedEvent

// NewHeadless creates the software platform described by cfg.
func NewHeadless(cfg config.Headless, assets *Assets) (*Headless, error) {
	s, err := internal.NewSoftSurface(internal.SoftOptions{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ClearColor: internal.GetTheme().ClearColor,
		OutputDir:  cfg.OutputDir,
		DumpEvery:  cfg.DumpEvery,
	}, assets)
	if err != nil {
		return nil, NewInfrastructureError("open_headless", err)
	}
	return s, nil
}

type windowPlatform struct {
	*internal.Window
	input *internal.InputReaders
}

func (p *windowPlatform) Close() error {
	return errors.Join(p.input.Close(), p.Window.Close())
}

// NewWindow opens the SDL window described by cfg and starts the evdev
// readers configured in cfg.Input. Init must have been called.
func NewWindow(cfg config.Config, assets *Assets) (Platform, error) {
	input, err := internal.StartInput(internal.InputConfig{
		TouchDevice: cfg.Input.TouchDevice,
		KeyDevice:   cfg.Input.KeyDevice,
	})
	if err != nil {
		return nil, NewInfrastructureError("open_input", err)
	}

	theme := internal.GetTheme()
	opts := internal.DefaultWindowOptions(constants.IsDevMode())
	opts.Fullscreen = opts.Fullscreen || cfg.Window.Fullscreen
	opts.Borderless = opts.Borderless || cfg.Window.Borderless
	opts.Resizable = opts.Resizable || cfg.Window.Resizable

	width, height := cfg.Window.Width, cfg.Window.Height
	if !constants.IsDevMode() && cfg.Window.Fullscreen {
		// Take the panel's own resolution.
		width, height = 0, 0
	}

	w, err := internal.NewWindow(internal.WindowConfig{
		Title:               cfg.Window.Title,
		Width:               width,
		Height:              height,
		Options:             opts,
		BackgroundImagePath: theme.BackgroundImagePath,
		ClearColor:          theme.ClearColor,
		MouseAsTouch:        cfg.Input.MouseAsTouch,
		Assets:              assets,
		Input:               input.Events(),
	})
	if err != nil {
		_ = input.Close()
		return nil, NewInfrastructureError("open_window", err)
	}
	return &windowPlatform{Window: w, input: input}, nil
}
