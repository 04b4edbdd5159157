package screens

import (
	"time"

	"github.com/skygrel/panther/pkg/panther/compositor"
	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/render"
	"github.com/skygrel/panther/pkg/panther/router"
)

// Main is the home screen and the one the app starts on.
type Main struct {
	router.Base
	deps Deps

	background *render.Box
	title      *render.Label
	start      *render.Label
	startIcon  *render.Icon
	nav        *NavBar
}

// NewMain builds the home screen.
func NewMain(d Deps) *Main {
	s := &Main{
		deps:       d,
		background: render.Background(d.Theme.MainBackground),
		title: &render.Label{
			Text:  d.t(MsgMainTitle),
			Box:   geom.Position().Left(0.1).Bottom(0.85).Width(0.8).Height(0.08).Rect(),
			Align: constants.TextAlignLeft,
			Color: d.Theme.AccentColor,
		},
		start: &render.Label{
			Text:  d.t(MsgStartTraining),
			Box:   geom.Position().Left(0.1).Bottom(0.45).Width(0.8).Height(0.04).Rect(),
			Align: constants.TextAlignCenter,
			Color: d.Theme.TextColor,
		},
		nav: NewNavBar(d, NavHome),
	}
	if hasImage(d.Assets, constants.IconTraining) {
		s.startIcon = &render.Icon{
			Key:  constants.IconTraining,
			Rect: geom.Position().Left(0.35).Bottom(0.52).Width(0.3).Height(0.14).Rect(),
		}
	}
	s.InitBase("main", d.now())
	return s
}

// Transition reveals Main over the same half second after which it expands.
func (s *Main) Transition() compositor.CircleTransition {
	return compositor.NewCircleTransition(time.Time{}, s.deps.mainExpandAfter(), compositor.DefaultPoints)
}

func (s *Main) Draw(c render.Canvas) error {
	if err := render.DrawAll(c, s.background, s.title, s.start); err != nil {
		return err
	}
	if s.startIcon != nil {
		if err := s.startIcon.Draw(c); err != nil {
			return err
		}
	}
	return s.nav.Draw(c)
}

// Press opens the navbar destination, or starts a training anywhere above the bar.
func (s *Main) Press(p geom.Point) router.Command {
	item, ok := NavBarHit(p)
	if !ok {
		return router.Push(NewActiveTraining(s.deps))
	}
	switch item {
	case NavRecords:
		return router.Push(NewRecords(s.deps))
	case NavStats:
		return router.Push(NewStats(s.deps))
	default:
		return router.None()
	}
}

func (s *Main) IsExpanded() bool {
	return expanded(s.deps, s.CreatedAt(), s.deps.mainExpandAfter())
}
