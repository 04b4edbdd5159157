package compositor

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/skygrel/panther/pkg/panther/router"
)

// TargetError reports a render target that could not be acquired or used.
// It is fatal: the frame cannot be composed without the target.
type TargetError struct {
	Screen string
	Op     string
	Err    error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("compositor: %s target for %s: %v", e.Op, e.Screen, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithTransition sets the transition template for screens that do not
// provide their own. Its Start is replaced per screen.
func WithTransition(t CircleTransition) Option {
	return func(c *Compositor) {
		c.template = t
	}
}

// WithClearColor sets the colour every target is cleared to before drawing.
func WithClearColor(col color.NRGBA) Option {
	return func(c *Compositor) {
		c.clear = col
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compositor) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock replaces time.Now when evaluating transitions.
func WithClock(now func() time.Time) Option {
	return func(c *Compositor) {
		if now != nil {
			c.now = now
		}
	}
}

type layer struct {
	target     RenderTarget
	transition CircleTransition
}

// Compositor renders each screen into its own target and blends the targets
// into the display. It implements router.Renderer.
type Compositor struct {
	provider SurfaceProvider
	template CircleTransition
	clear    color.NRGBA
	log      *slog.Logger
	now      func() time.Time

	layers map[string]*layer
}

var _ router.Renderer = (*Compositor)(nil)

// New creates a Compositor drawing through provider.
func New(provider SurfaceProvider, opts ...Option) *Compositor {
	c := &Compositor{
		provider: provider,
		template: DefaultTransition(time.Time{}),
		clear:    color.NRGBA{A: 0},
		log:      slog.New(slog.DiscardHandler),
		now:      time.Now,
		layers:   make(map[string]*layer),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Compositor) layerFor(s router.Screen) *layer {
	l, ok := c.layers[s.ID()]
	if ok {
		return l
	}

	var tr CircleTransition
	if tp, ok := s.(TransitionProvider); ok {
		tr = tp.Transition()
		if tr.Start.IsZero() {
			tr = tr.WithStart(s.CreatedAt())
		}
	} else {
		tr = c.template.WithStart(s.CreatedAt())
	}

	l = &layer{transition: tr}
	c.layers[s.ID()] = l
	return l
}

// Render draws s into its target and blends it into the framebuffer.
func (c *Compositor) Render(s router.Screen) error {
	w, h := c.provider.Size()
	if w <= 0 || h <= 0 {
		// Minimised or not yet laid out.
		return nil
	}

	l := c.layerFor(s)
	if l.target != nil {
		if tw, th := l.target.Size(); tw != w || th != h {
			l.target.Destroy()
			l.target = nil
		}
	}
	if l.target == nil {
		t, err := c.provider.NewTarget(w, h)
		if err != nil {
			return &TargetError{Screen: s.Name(), Op: "create", Err: err}
		}
		c.log.Debug("created render target", "screen", s.Name(), "id", s.ID(), "width", w, "height", h)
		l.target = t
	}

	if err := l.target.Clear(c.clear); err != nil {
		return &TargetError{Screen: s.Name(), Op: "clear", Err: err}
	}
	if err := s.Draw(l.target); err != nil {
		return fmt.Errorf("compositor: draw %s: %w", s.Name(), err)
	}
	if err := l.target.Composite(l.transition.At(c.now())); err != nil {
		return &TargetError{Screen: s.Name(), Op: "composite", Err: err}
	}
	return nil
}

// Release destroys the target held for s.
func (c *Compositor) Release(s router.Screen) {
	l, ok := c.layers[s.ID()]
	if !ok {
		return
	}
	if l.target != nil {
		l.target.Destroy()
	}
	delete(c.layers, s.ID())
}

// BeginFrame clears the framebuffer.
func (c *Compositor) BeginFrame() error {
	return c.provider.BeginFrame()
}

// EndFrame presents the frame. A failed present is logged and dropped;
// the next frame tries again.
func (c *Compositor) EndFrame() {
	if err := c.provider.Present(); err != nil {
		c.log.Warn("present failed, dropping frame", "error", err)
	}
}

// Resize destroys every target. They are recreated at the provider's new
// size the next time their screen is rendered.
func (c *Compositor) Resize(width, height int) {
	c.log.Info("surface resized", "width", width, "height", height)
	c.destroyTargets()
}

// Close destroys every target and forgets all screens.
func (c *Compositor) Close() {
	c.destroyTargets()
	clear(c.layers)
}

func (c *Compositor) destroyTargets() {
	for _, l := range c.layers {
		if l.target != nil {
			l.target.Destroy()
			l.target = nil
		}
	}
}

// Layers returns the number of live targets.
func (c *Compositor) Layers() int {
	n := 0
	for _, l := range c.layers {
		if l.target != nil {
			n++
		}
	}
	return n
}
