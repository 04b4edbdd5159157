package screens

import (
	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/render"
	"github.com/skygrel/panther/pkg/panther/router"
)

const (
	recordRowHeight = 0.12
	recordListTop   = 0.8
)

// Record is one personal best row.
type Record struct {
	Name  string
	Value string
}

// Records lists personal bests in a vertically scrollable list.
type Records struct {
	router.Base
	deps Deps

	background *render.Box
	title      *render.Label
	records    []Record
	offset     float64
	nav        *NavBar
}

// NewRecords builds the records screen.
func NewRecords(d Deps) *Records {
	none := d.t(MsgRecordNone)
	s := &Records{
		deps:       d,
		background: render.Background(d.Theme.RecordsBackground),
		title: &render.Label{
			Text:  d.t(MsgRecordsTitle),
			Box:   geom.Position().Left(0.1).Bottom(0.88).Width(0.8).Height(0.06).Rect(),
			Align: constants.TextAlignLeft,
			Color: d.Theme.AccentColor,
		},
		records: []Record{
			{Name: d.t(MsgRecord5K), Value: none},
			{Name: d.t(MsgRecord10K), Value: none},
			{Name: d.t(MsgRecordHalf), Value: none},
			{Name: d.t(MsgRecordMarathon), Value: none},
			{Name: d.t(MsgRecordLongest), Value: none},
		},
		nav: NewNavBar(d, NavRecords),
	}
	s.InitBase("records", d.now())
	return s
}

// maxOffset is how far the list can scroll before its last row reaches the navbar.
func (s *Records) maxOffset() float64 {
	h := float64(len(s.records))*recordRowHeight - (recordListTop - constants.NavBarHeight)
	return max(h, 0)
}

// Offset returns the current scroll offset of the list.
func (s *Records) Offset() float64 {
	return s.offset
}

func (s *Records) Draw(c render.Canvas) error {
	if err := render.DrawAll(c, s.background, s.title); err != nil {
		return err
	}
	for i, r := range s.records {
		y := recordListTop - float64(i+1)*recordRowHeight + s.offset
		if y < constants.NavBarHeight || y+recordRowHeight > recordListTop {
			continue
		}
		name := render.Label{
			Text:  r.Name,
			Box:   geom.Rect{X: 0.08, Y: y + 0.02, W: 0.5, H: 0.035},
			Align: constants.TextAlignLeft,
			Color: s.deps.Theme.TextColor,
		}
		value := render.Label{
			Text:  r.Value,
			Box:   geom.Rect{X: 0.58, Y: y + 0.02, W: 0.34, H: 0.035},
			Align: constants.TextAlignRight,
			Color: s.deps.Theme.TextColor,
		}
		if err := render.DrawAll(c, &name, &value); err != nil {
			return err
		}
	}
	return s.nav.Draw(c)
}

// StartScroll accepts drags that start on the list.
func (s *Records) StartScroll(p geom.Point) bool {
	return p.Y >= constants.NavBarHeight
}

// Scroll moves the list with the finger.
func (s *Records) Scroll(delta geom.Vec) {
	s.offset = min(max(s.offset+delta.DY, 0), s.maxOffset())
}

func (s *Records) Press(p geom.Point) router.Command {
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

// Back returns to a fresh Main screen.
func (s *Records) Back() router.Command {
	return router.Push(NewMain(s.deps))
}

func (s *Records) IsExpanded() bool {
	return expanded(s.deps, s.CreatedAt(), s.deps.expandAfter())
}
