package screens

import (
	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/render"
)

// NavItem is one entry of the bottom navigation bar.
type NavItem int

const (
	NavHome NavItem = iota
	NavRecords
	NavStats
)

func (n NavItem) String() string {
	switch n {
	case NavHome:
		return "home"
	case NavRecords:
		return "records"
	case NavStats:
		return "stats"
	default:
		return "unknown"
	}
}

// NavBarHit returns the navbar entry under p. The bar is the strip below
// constants.NavBarHeight, split into thirds.
func NavBarHit(p geom.Point) (NavItem, bool) {
	if p.Y >= constants.NavBarHeight {
		return 0, false
	}
	switch {
	case p.X < 0.33:
		return NavHome, true
	case p.X < 0.66:
		return NavRecords, true
	default:
		return NavStats, true
	}
}

// navLabelInsets keeps neighbouring labels apart and off the bottom edge.
var navLabelInsets = render.Insets{Left: 0.01, Right: 0.01, Bottom: 0.03}

// NavBar draws the bottom navigation strip with an icon and a label per entry.
type NavBar struct {
	strip  render.Box
	icons  []render.Icon
	labels [3]render.Label
}

// NewNavBar lays out the bar. The current entry is drawn in the accent colour.
func NewNavBar(d Deps, current NavItem) *NavBar {
	n := &NavBar{
		strip: render.Box{
			Rect:  geom.Position().Left(0).Bottom(0).Width(1).Height(constants.NavBarHeight).Rect(),
			Color: d.Theme.NavBarColor,
		},
	}

	keys := [3]string{constants.IconHome, constants.IconRecords, constants.IconStats}
	msgs := [3]string{MsgNavHome, MsgNavRecords, MsgNavStats}
	for i := range 3 {
		left := float64(i) / 3
		col := d.Theme.TextColor
		if NavItem(i) == current {
			col = d.Theme.AccentColor
		}
		if hasImage(d.Assets, keys[i]) {
			n.icons = append(n.icons, render.Icon{
				Key:  keys[i],
				Rect: geom.Position().Left(left + 1.0/6 - 0.05).Bottom(0.1).Width(0.1).Height(0.05).Rect(),
			})
		}
		n.labels[i] = render.Label{
			Text:  d.t(msgs[i]),
			Box:   navLabelInsets.Apply(geom.Position().Left(left).Bottom(0).Width(1.0 / 3).Height(0.06).Rect()),
			Align: constants.TextAlignCenter,
			Color: col,
		}
	}
	return n
}

func (n *NavBar) Draw(c render.Canvas) error {
	if err := n.strip.Draw(c); err != nil {
		return err
	}
	for i := range n.icons {
		if err := n.icons[i].Draw(c); err != nil {
			return err
		}
	}
	for i := range n.labels {
		if err := n.labels[i].Draw(c); err != nil {
			return err
		}
	}
	return nil
}

// Labels returns the localised entry labels, left to right.
func (n *NavBar) Labels() []string {
	return []string{n.labels[0].Text, n.labels[1].Text, n.labels[2].Text}
}

func hasImage(a render.Assets, key string) bool {
	if a == nil {
		return false
	}
	_, ok := a.Image(key)
	return ok
}
