// Package screens holds the app's concrete screens: Main, Records, Stats
// and ActiveTraining.
//
// Screens never touch the stack directly. Navigation is expressed by the
// router.Command they return from Press, Back and Update, and a screen
// builds the screen it navigates to from the same Deps it was built with.
package screens

import (
	"time"

	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/internal"
	"github.com/skygrel/panther/pkg/panther/render"
)

// Deps is everything a screen needs from the outside world.
type Deps struct {
	// Assets resolves icon keys. May be nil, icons then draw nothing.
	Assets render.Assets
	// Localizer translates a message ID. Nil returns the ID itself.
	Localizer func(id string) string
	Theme     internal.Theme
	// Clock replaces time.Now. Expansion and elapsed times are read from it.
	Clock func() time.Time

	// ExpandAfter and MainExpandAfter override how long a screen stays
	// translucent to the ones below it. Zero keeps the defaults.
	ExpandAfter     time.Duration
	MainExpandAfter time.Duration
}

func (d Deps) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

func (d Deps) expandAfter() time.Duration {
	if d.ExpandAfter > 0 {
		return d.ExpandAfter
	}
	return constants.DefaultExpandAfter
}

func (d Deps) mainExpandAfter() time.Duration {
	if d.MainExpandAfter > 0 {
		return d.MainExpandAfter
	}
	return constants.MainExpandAfter
}

func (d Deps) t(id string) string {
	if d.Localizer == nil {
		return id
	}
	if s := d.Localizer(id); s != "" {
		return s
	}
	return id
}

// Message IDs used by the screens.
const (
	MsgNavHome        = "NavHome"
	MsgNavRecords     = "NavRecords"
	MsgNavStats       = "NavStats"
	MsgMainTitle      = "MainTitle"
	MsgStartTraining  = "StartTraining"
	MsgRecordsTitle   = "RecordsTitle"
	MsgStatsTitle     = "StatsTitle"
	MsgStatsHint      = "StatsHint"
	MsgTrainingTitle  = "TrainingTitle"
	MsgRecord5K       = "Record5K"
	MsgRecord10K      = "Record10K"
	MsgRecordHalf     = "RecordHalfMarathon"
	MsgRecordMarathon = "RecordMarathon"
	MsgRecordLongest  = "RecordLongestRun"
	MsgRecordNone     = "RecordNone"
)

// MessageIDs lists every message the screens may ask for.
var MessageIDs = []string{
	MsgNavHome, MsgNavRecords, MsgNavStats,
	MsgMainTitle, MsgStartTraining,
	MsgRecordsTitle, MsgStatsTitle, MsgStatsHint, MsgTrainingTitle,
	MsgRecord5K, MsgRecord10K, MsgRecordHalf, MsgRecordMarathon, MsgRecordLongest, MsgRecordNone,
}

// expanded reports whether more than after has passed since created.
func expanded(d Deps, created time.Time, after time.Duration) bool {
	return d.now().Sub(created) > after
}
