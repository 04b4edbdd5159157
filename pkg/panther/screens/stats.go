package screens

import (
	"image/color"

	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/internal"
	"github.com/skygrel/panther/pkg/panther/render"
	"github.com/skygrel/panther/pkg/panther/router"
)

// Stats shows training statistics. Dragging anywhere tints the background:
// horizontal movement changes blue, vertical movement changes red.
type Stats struct {
	router.Base
	deps Deps

	// Background channels in 0..1.
	r, g, b float64

	background *render.Box
	title      *render.Label
	hint       *render.Label
	nav        *NavBar
}

// NewStats builds the stats screen.
func NewStats(d Deps) *Stats {
	bg := d.Theme.StatsBackground
	s := &Stats{
		deps:       d,
		r:          float64(bg.R) / 255,
		g:          float64(bg.G) / 255,
		b:          float64(bg.B) / 255,
		background: render.Background(bg),
		title: &render.Label{
			Text:  d.t(MsgStatsTitle),
			Box:   geom.Position().Left(0.1).Bottom(0.88).Width(0.8).Height(0.06).Rect(),
			Align: constants.TextAlignLeft,
			Color: d.Theme.AccentColor,
		},
		hint: &render.Label{
			Text:  d.t(MsgStatsHint),
			Box:   geom.Position().Left(0.1).Bottom(0.5).Width(0.8).Height(0.03).Rect(),
			Align: constants.TextAlignCenter,
			Color: d.Theme.TextColor,
		},
		nav: NewNavBar(d, NavStats),
	}
	s.InitBase("stats", d.now())
	return s
}

// Color returns the current background colour.
func (s *Stats) Color() color.NRGBA {
	return s.background.Color
}

func (s *Stats) Draw(c render.Canvas) error {
	return render.DrawAll(c, s.background, s.title, s.hint, s.nav)
}

func (s *Stats) StartScroll(geom.Point) bool {
	return true
}

func (s *Stats) Scroll(delta geom.Vec) {
	s.b = geom.Clamp01(s.b - delta.DX/2)
	s.r = geom.Clamp01(s.r - delta.DY/2)
	s.background.SetColor(internal.FloatColor(s.r, s.g, s.b))
}

func (s *Stats) Press(p geom.Point) router.Command {
	item, ok := NavBarHit(p)
	if !ok {
		return router.None()
	}
	switch item {
	case NavHome:
		return router.Push(NewMain(s.deps))
	case NavRecords:
		return router.Push(NewRecords(s.deps))
	default:
		return router.None()
	}
}

func (s *Stats) Back() router.Command {
	return router.Push(NewMain(s.deps))
}

func (s *Stats) IsExpanded() bool {
	return expanded(s.deps, s.CreatedAt(), s.deps.expandAfter())
}
