package panther

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/skygrel/panther/pkg/panther/compositor"
	"github.com/skygrel/panther/pkg/panther/gesture"
	"github.com/skygrel/panther/pkg/panther/render"
	"github.com/skygrel/panther/pkg/panther/router"
	"github.com/skygrel/panther/pkg/panther/screens"
	"go.uber.org/atomic"
)

// AppOptions configures an App. The zero value is usable.
type AppOptions struct {
	// MaxFrames stops Run after that many frames. Zero runs until exit.
	MaxFrames int
	Logger    *slog.Logger
	Localizer func(id string) string
	Assets    render.Assets
	// Theme defaults to the one chosen by Init.
	Theme *Theme
	Clock func() time.Time

	// Transition is the reveal length of pushed screens. Zero keeps the default.
	Transition      time.Duration
	ExpandAfter     time.Duration
	MainExpandAfter time.Duration
}

// App owns the stack, the compositor and the gesture classifier, and runs
// them against a Platform. It is not safe for concurrent use; everything
// happens on the goroutine calling Run.
type App struct {
	platform   Platform
	router     *router.Router
	compositor *compositor.Compositor
	classifier *gesture.Classifier
	log        *slog.Logger

	exit      *atomic.Bool
	frames    int
	maxFrames int
}

var _ EventSink = (*App)(nil)

// NewApp builds the app around the screen bootstrap returns.
func NewApp(platform Platform, bootstrap func(screens.Deps) router.Screen, opts AppOptions) *App {
	log := opts.Logger
	if log == nil {
		log = GetLogger()
	}
	theme := GetTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	a := &App{
		platform:  platform,
		log:       log,
		exit:      atomic.NewBool(false),
		maxFrames: opts.MaxFrames,
	}

	compOpts := []compositor.Option{
		compositor.WithLogger(log),
		compositor.WithClearColor(theme.ClearColor),
		compositor.WithClock(opts.Clock),
	}
	if opts.Transition > 0 {
		compOpts = append(compOpts, compositor.WithTransition(
			compositor.NewCircleTransition(time.Time{}, opts.Transition, compositor.DefaultPoints)))
	}
	a.compositor = compositor.New(platform, compOpts...)

	deps := screens.Deps{
		Assets:          opts.Assets,
		Localizer:       opts.Localizer,
		Theme:           theme,
		Clock:           opts.Clock,
		ExpandAfter:     opts.ExpandAfter,
		MainExpandAfter: opts.MainExpandAfter,
	}
	a.router = router.New(bootstrap(deps),
		router.WithRenderer(a.compositor),
		router.WithLogger(log),
		router.WithExitFunc(func() {
			log.Info("screen stack empty, exiting")
			a.exit.Store(true)
		}),
	)
	a.classifier = gesture.New(a.router, gesture.WithClock(opts.Clock))

	return a
}

// Run pumps events and renders frames until the stack empties, a quit is
// requested, MaxFrames is reached or ctx is done. A nil return is a normal
// exit. Rendering failures come back as *InfrastructureError.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.platform.Pump(a); err != nil {
			return NewInfrastructureError("pump", err)
		}
		if a.exit.Load() {
			return nil
		}

		if err := a.compositor.BeginFrame(); err != nil {
			return NewInfrastructureError("begin_frame", err)
		}
		if err := a.router.FrameTick(); err != nil {
			if errors.Is(err, router.ErrEmptyStack) {
				return nil
			}
			return NewInfrastructureError("render", err)
		}
		a.compositor.EndFrame()

		a.frames++
		if a.maxFrames > 0 && a.frames >= a.maxFrames {
			a.log.Debug("frame limit reached", "frames", a.frames)
			return nil
		}
	}
}

// Close releases every render target. The platform is left to its owner.
func (a *App) Close() {
	a.compositor.Close()
}

func (a *App) Touch(e gesture.TouchEvent) {
	a.classifier.Handle(e)
}

func (a *App) Back() {
	a.router.Back()
}

// Resize drops every render target. Contacts in flight are abandoned since
// their coordinates no longer map to the same layout.
func (a *App) Resize(width, height int) {
	a.classifier.Reset()
	a.compositor.Resize(width, height)
}

func (a *App) Quit() {
	a.log.Info("quit requested")
	a.exit.Store(true)
}

// Frames returns how many frames have been rendered.
func (a *App) Frames() int {
	return a.frames
}

// Router exposes the screen stack.
func (a *App) Router() *router.Router {
	return a.router
}

// Exiting reports whether the app has been asked to stop.
func (a *App) Exiting() bool {
	return a.exit.Load()
}
