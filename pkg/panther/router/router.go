package router

import (
	"errors"
	"log/slog"

	"github.com/skygrel/panther/pkg/panther/geom"
)

// ErrEmptyStack is returned by FrameTick once the last screen has been popped.
var ErrEmptyStack = errors.New("router: screen stack is empty")

// Renderer draws screens and owns whatever per-screen resources that takes.
type Renderer interface {
	Render(s Screen) error
	// Release frees the resources held for s. Called before s.Destroy.
	Release(s Screen)
}

// Option configures a Router.
type Option func(*Router)

// WithRenderer sets the renderer FrameTick draws through.
// Without one, FrameTick only updates and prunes.
func WithRenderer(rd Renderer) Option {
	return func(r *Router) {
		r.renderer = rd
	}
}

// WithExitFunc sets the hook called when the last screen is popped.
func WithExitFunc(fn func()) Option {
	return func(r *Router) {
		r.onExit = fn
	}
}

// WithLogger sets the logger for navigation events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// Router is the screen stack state machine.
// It is not safe for concurrent use.
type Router struct {
	stack    *Stack
	renderer Renderer
	onExit   func()
	exited   bool
	log      *slog.Logger
}

// New creates a Router whose stack holds only bootstrap.
func New(bootstrap Screen, opts ...Option) *Router {
	r := &Router{
		stack: NewStack(),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.PushScreen(bootstrap)
	return r
}

// PushScreen places s on top of the stack, making it the input target.
func (r *Router) PushScreen(s Screen) {
	if s == nil {
		r.log.Warn("ignoring push of nil screen")
		return
	}
	if r.exited {
		r.log.Warn("ignoring push after exit", "screen", s.Name(), "id", s.ID())
		s.Destroy()
		return
	}
	r.stack.Push(s)
	r.log.Debug("push screen", "screen", s.Name(), "id", s.ID(), "depth", r.stack.Len())
}

// PopScreen removes and destroys the top screen.
// Popping the last screen runs the exit hook.
func (r *Router) PopScreen() {
	s := r.stack.Pop()
	if s == nil {
		return
	}
	r.log.Debug("pop screen", "screen", s.Name(), "id", s.ID(), "depth", r.stack.Len())
	r.drop(s)

	if r.stack.IsEmpty() && !r.exited {
		r.exited = true
		r.log.Info("last screen popped, exiting")
		if r.onExit != nil {
			r.onExit()
		}
	}
}

// Apply performs the stack change a command describes.
func (r *Router) Apply(c Command) {
	switch c.Kind {
	case CommandPush:
		r.PushScreen(c.Screen)
	case CommandPop:
		r.PopScreen()
	}
}

func (r *Router) drop(s Screen) {
	if r.renderer != nil {
		r.renderer.Release(s)
	}
	s.Destroy()
}

func (r *Router) top(op string) Screen {
	s := r.stack.Peek()
	if s == nil {
		r.log.Warn("input with empty screen stack", "op", op)
	}
	return s
}

// StartScroll asks the top screen whether it wants scroll deltas for a
// contact that just went down at p.
func (r *Router) StartScroll(p geom.Point) bool {
	s := r.top("start_scroll")
	if s == nil {
		return false
	}
	return s.StartScroll(p)
}

// Scroll forwards a drag delta to the top screen.
func (r *Router) Scroll(delta geom.Vec) {
	if s := r.top("scroll"); s != nil {
		s.Scroll(delta)
	}
}

// Press forwards a tap to the top screen and applies its command.
func (r *Router) Press(p geom.Point) {
	if s := r.top("press"); s != nil {
		r.Apply(s.Press(p))
	}
}

// Back forwards the platform back action to the top screen and applies its command.
func (r *Router) Back() {
	if s := r.top("back"); s != nil {
		r.Apply(s.Back())
	}
}

// FrameTick updates and draws every screen bottom to top.
//
// A screen that reports IsExpanded after it has been drawn causes every
// screen below it to be released and destroyed. The scan then continues
// above it on the shorter stack, so no screen is drawn twice in one tick.
// Render errors are returned immediately.
func (r *Router) FrameTick() error {
	if r.stack.IsEmpty() {
		return ErrEmptyStack
	}

	for i := 0; i < r.stack.Len(); i++ {
		s := r.stack.At(i)

		r.Apply(s.Update())
		if i >= r.stack.Len() {
			// The update popped this screen (or everything).
			break
		}

		if r.renderer != nil {
			if err := r.renderer.Render(s); err != nil {
				return err
			}
		}

		if s.IsExpanded() && i > 0 {
			for _, d := range r.stack.DropBelow(i) {
				r.log.Debug("prune covered screen", "screen", d.Name(), "id", d.ID(), "covered_by", s.Name())
				r.drop(d)
			}
			// s is now index 0 and already drawn.
			i = 0
		}
	}
	return nil
}

// Len returns the stack depth.
func (r *Router) Len() int {
	return r.stack.Len()
}

// Top returns the input target, or nil once exited.
func (r *Router) Top() Screen {
	return r.stack.Peek()
}

// Screens returns the stack contents, bottom first.
func (r *Router) Screens() []Screen {
	return r.stack.Screens()
}

// Exited reports whether the last screen has been popped.
func (r *Router) Exited() bool {
	return r.exited
}
