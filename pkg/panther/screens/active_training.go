package screens

import (
	"fmt"
	"time"

	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/render"
	"github.com/skygrel/panther/pkg/panther/router"
)

// ActiveTraining shows a running training session and its elapsed time.
type ActiveTraining struct {
	router.Base
	deps Deps

	elapsed time.Duration

	background *render.Box
	title      *render.Label
	clock      *render.Label
	nav        *NavBar
}

// NewActiveTraining starts a training session now.
func NewActiveTraining(d Deps) *ActiveTraining {
	s := &ActiveTraining{
		deps:       d,
		background: render.Background(d.Theme.TrainingBackground),
		title: &render.Label{
			Text:  d.t(MsgTrainingTitle),
			Box:   geom.Position().Left(0.1).Bottom(0.85).Width(0.8).Height(0.05).Rect(),
			Align: constants.TextAlignLeft,
			Color: d.Theme.TextColor,
		},
		clock: &render.Label{
			Text:  FormatElapsed(0),
			Box:   geom.Position().Left(0.1).Bottom(0.55).Width(0.8).Height(0.1).Rect(),
			Align: constants.TextAlignCenter,
			Color: d.Theme.AccentColor,
		},
		nav: NewNavBar(d, NavHome),
	}
	s.InitBase("active_training", d.now())
	return s
}

// Elapsed returns the training time as of the last Update.
func (s *ActiveTraining) Elapsed() time.Duration {
	return s.elapsed
}

// Update advances the elapsed time display.
func (s *ActiveTraining) Update() router.Command {
	s.elapsed = max(s.deps.now().Sub(s.CreatedAt()), 0)
	s.clock.Text = FormatElapsed(s.elapsed)
	return router.None()
}

func (s *ActiveTraining) Draw(c render.Canvas) error {
	return render.DrawAll(c, s.background, s.title, s.clock, s.nav)
}

func (s *ActiveTraining) Press(p geom.Point) router.Command {
	item, ok := NavBarHit(p)
	if !ok {
		return router.None()
	}
	switch item {
	case NavHome:
		return router.Push(NewMain(s.deps))
	case NavStats:
		return router.Push(NewStats(s.deps))
	default:
		return router.None()
	}
}

func (s *ActiveTraining) Back() router.Command {
	return router.Push(NewMain(s.deps))
}

func (s *ActiveTraining) IsExpanded() bool {
	return expanded(s.deps, s.CreatedAt(), s.deps.expandAfter())
}

// FormatElapsed renders d as m:ss, or h:mm:ss from one hour on.
func FormatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	sec := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
