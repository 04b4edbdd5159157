package screens

import (
	"image"
	"slices"
	"testing"
	"time"

	"github.com/skygrel/panther/pkg/panther/compositor"
	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/internal"
	"github.com/skygrel/panther/pkg/panther/render"
	"github.com/skygrel/panther/pkg/panther/router"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeAssets map[string]bool

func (a fakeAssets) Image(key string) (image.Image, bool) {
	if !a[key] {
		return nil, false
	}
	return image.NewNRGBA(image.Rect(0, 0, 1, 1)), true
}

func testDeps(clock *fakeClock) Deps {
	return Deps{
		Theme: internal.DefaultTheme(),
		Clock: clock.Now,
		Localizer: func(id string) string {
			if id == MsgNavHome {
				return "Home"
			}
			return ""
		},
	}
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)}
}

func screenNames(r *router.Router) []string {
	var out []string
	for _, s := range r.Screens() {
		out = append(out, s.Name())
	}
	return out
}

func TestNavBarHit(t *testing.T) {
	tests := []struct {
		p    geom.Point
		want NavItem
		ok   bool
	}{
		{geom.Pt(0.1, 0.1), NavHome, true},
		{geom.Pt(0.329, 0.0), NavHome, true},
		{geom.Pt(0.33, 0.1), NavRecords, true},
		{geom.Pt(0.5, 0.1), NavRecords, true},
		{geom.Pt(0.66, 0.2), NavStats, true},
		{geom.Pt(0.99, 0.24), NavStats, true},
		{geom.Pt(0.5, 0.25), 0, false},
		{geom.Pt(0.5, 0.9), 0, false},
	}
	for _, tt := range tests {
		got, ok := NavBarHit(tt.p)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("NavBarHit(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNavigation(t *testing.T) {
	clock := newClock()
	d := testDeps(clock)

	home, records, stats, above := geom.Pt(0.1, 0.1), geom.Pt(0.5, 0.1), geom.Pt(0.9, 0.1), geom.Pt(0.5, 0.6)

	tests := []struct {
		name   string
		screen router.Screen
		press  geom.Point
		want   string // pushed screen name, "" for None
	}{
		{"main home", NewMain(d), home, ""},
		{"main records", NewMain(d), records, "records"},
		{"main stats", NewMain(d), stats, "stats"},
		{"main above bar", NewMain(d), above, "active_training"},
		{"records home", NewRecords(d), home, "main"},
		{"records records", NewRecords(d), records, ""},
		{"records stats", NewRecords(d), stats, "stats"},
		{"records above bar", NewRecords(d), above, ""},
		{"stats home", NewStats(d), home, "main"},
		{"stats records", NewStats(d), records, "records"},
		{"stats stats", NewStats(d), stats, ""},
		{"training home", NewActiveTraining(d), home, "main"},
		{"training records", NewActiveTraining(d), records, ""},
		{"training stats", NewActiveTraining(d), stats, "stats"},
		{"training above bar", NewActiveTraining(d), above, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.screen.Press(tt.press)
			if tt.want == "" {
				if !cmd.IsNone() {
					t.Errorf("got %v, want none", cmd.Kind)
				}
				return
			}
			if cmd.Kind != router.CommandPush || cmd.Screen.Name() != tt.want {
				t.Errorf("got %v, want push %s", cmd.Kind, tt.want)
			}
		})
	}
}

func TestBack(t *testing.T) {
	d := testDeps(newClock())

	if cmd := NewMain(d).Back(); cmd.Kind != router.CommandPop {
		t.Errorf("main back = %v, want pop", cmd.Kind)
	}
	for _, s := range []router.Screen{NewRecords(d), NewStats(d), NewActiveTraining(d)} {
		cmd := s.Back()
		if cmd.Kind != router.CommandPush || cmd.Screen.Name() != "main" {
			t.Errorf("%s back = %v, want push main", s.Name(), cmd.Kind)
		}
	}
}

func TestExpansionTimes(t *testing.T) {
	tests := []struct {
		name  string
		build func(Deps) router.Screen
		after time.Duration
	}{
		{"main", func(d Deps) router.Screen { return NewMain(d) }, 500 * time.Millisecond},
		{"records", func(d Deps) router.Screen { return NewRecords(d) }, time.Second},
		{"stats", func(d Deps) router.Screen { return NewStats(d) }, time.Second},
		{"active_training", func(d Deps) router.Screen { return NewActiveTraining(d) }, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newClock()
			s := tt.build(testDeps(clock))
			clock.Advance(tt.after)
			if s.IsExpanded() {
				t.Errorf("expanded at exactly %v", tt.after)
			}
			clock.Advance(time.Millisecond)
			if !s.IsExpanded() {
				t.Errorf("not expanded after %v", tt.after+time.Millisecond)
			}
		})
	}
}

func TestExpandAfterOverride(t *testing.T) {
	clock := newClock()
	d := testDeps(clock)
	d.ExpandAfter = 200 * time.Millisecond
	d.MainExpandAfter = 100 * time.Millisecond
	main, stats := NewMain(d), NewStats(d)

	clock.Advance(150 * time.Millisecond)
	if !main.IsExpanded() || stats.IsExpanded() {
		t.Errorf("at 150ms main=%v stats=%v", main.IsExpanded(), stats.IsExpanded())
	}
	if got := main.Transition().Duration; got != 100*time.Millisecond {
		t.Errorf("main transition = %v", got)
	}
	clock.Advance(100 * time.Millisecond)
	if !stats.IsExpanded() {
		t.Error("stats not expanded at 250ms")
	}
}

func TestStatsScrollTint(t *testing.T) {
	s := NewStats(testDeps(newClock()))
	start := s.Color()

	if !s.StartScroll(geom.Pt(0.5, 0.5)) {
		t.Fatal("stats refused a scroll")
	}
	s.Scroll(geom.Vec{DX: 0.2})
	if got := s.Color(); got.B >= start.B || got.R != start.R {
		t.Errorf("after horizontal scroll %v, start %v", got, start)
	}

	s.Scroll(geom.Vec{DY: 0.2})
	if got := s.Color(); got.R >= start.R {
		t.Errorf("after vertical scroll %v, start %v", got, start)
	}

	// Clamped at both ends.
	s.Scroll(geom.Vec{DX: 10, DY: 10})
	if got := s.Color(); got.R != 0 || got.B != 0 {
		t.Errorf("not clamped to 0: %v", got)
	}
	s.Scroll(geom.Vec{DX: -10, DY: -10})
	if got := s.Color(); got.R != 255 || got.B != 255 {
		t.Errorf("not clamped to 1: %v", got)
	}
}

func TestRecordsScroll(t *testing.T) {
	s := NewRecords(testDeps(newClock()))
	if s.StartScroll(geom.Pt(0.5, 0.1)) {
		t.Error("scroll accepted on the navbar")
	}
	if !s.StartScroll(geom.Pt(0.5, 0.5)) {
		t.Error("scroll refused on the list")
	}

	s.Scroll(geom.Vec{DY: -1})
	if s.Offset() != 0 {
		t.Errorf("offset = %f, want 0", s.Offset())
	}
	s.Scroll(geom.Vec{DY: 10})
	if s.Offset() != s.maxOffset() {
		t.Errorf("offset = %f, want %f", s.Offset(), s.maxOffset())
	}
}

func TestActiveTrainingElapsed(t *testing.T) {
	clock := newClock()
	s := NewActiveTraining(testDeps(clock))
	clock.Advance(83*time.Second + 400*time.Millisecond)

	if cmd := s.Update(); !cmd.IsNone() {
		t.Fatalf("update = %v", cmd.Kind)
	}
	if s.Elapsed() != 83*time.Second+400*time.Millisecond {
		t.Errorf("elapsed = %v", s.Elapsed())
	}

	rec := render.NewRecorder(100, 100)
	if err := s.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(rec.Texts(), "1:23") {
		t.Errorf("texts = %v", rec.Texts())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59*time.Second + 900*time.Millisecond, "0:59"},
		{10 * time.Minute, "10:00"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestLocalizerFallback(t *testing.T) {
	s := NewMain(testDeps(newClock()))
	rec := render.NewRecorder(100, 100)
	if err := s.Draw(rec); err != nil {
		t.Fatal(err)
	}
	texts := rec.Texts()
	// Translated where the localizer knows the ID, the ID itself otherwise.
	for _, want := range []string{"Home", MsgNavRecords, MsgNavStats, MsgMainTitle} {
		if !slices.Contains(texts, want) {
			t.Errorf("missing %q in %v", want, texts)
		}
	}
}

func TestNavBarLabels(t *testing.T) {
	got := NewNavBar(testDeps(newClock()), NavStats).Labels()
	want := []string{"Home", MsgNavRecords, MsgNavStats}
	if !slices.Equal(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}

func TestNavBarIconsOnlyWhenRegistered(t *testing.T) {
	d := testDeps(newClock())
	d.Assets = fakeAssets{constants.IconHome: true}

	rec := render.NewRecorder(100, 100)
	if err := NewNavBar(d, NavHome).Draw(rec); err != nil {
		t.Fatal(err)
	}
	var images []string
	for _, op := range rec.Ops {
		if op.Kind == "image" {
			images = append(images, op.Key)
		}
	}
	if !slices.Equal(images, []string{constants.IconHome}) {
		t.Errorf("images = %v", images)
	}
}

// TestMainToRecordsPrunesMain walks the documented start-up flow: tapping
// the middle of the navbar on Main opens Records, and once Records has
// expanded Main is dropped.
func TestMainToRecordsPrunesMain(t *testing.T) {
	clock := newClock()
	d := testDeps(clock)
	provider := compositor.NewRecordingProvider(540, 1170)
	comp := compositor.New(provider, compositor.WithClock(clock.Now))
	exits := 0
	r := router.New(NewMain(d), router.WithRenderer(comp), router.WithExitFunc(func() { exits++ }))

	tick := func() {
		t.Helper()
		if err := comp.BeginFrame(); err != nil {
			t.Fatal(err)
		}
		if err := r.FrameTick(); err != nil {
			t.Fatal(err)
		}
		comp.EndFrame()
	}

	tick()
	r.Press(geom.Pt(0.5, 0.1))
	if got := screenNames(r); !slices.Equal(got, []string{"main", "records"}) {
		t.Fatalf("stack = %v", got)
	}

	clock.Advance(500 * time.Millisecond)
	tick()
	if got := screenNames(r); !slices.Equal(got, []string{"main", "records"}) {
		t.Fatalf("stack before expansion = %v", got)
	}
	if len(provider.Composited) != 2 || comp.Layers() != 2 {
		t.Errorf("composited=%d layers=%d, both screens should be drawn", len(provider.Composited), comp.Layers())
	}

	clock.Advance(501 * time.Millisecond)
	tick()
	if got := screenNames(r); !slices.Equal(got, []string{"records"}) {
		t.Fatalf("stack after expansion = %v", got)
	}
	if comp.Layers() != 1 || provider.Live != 1 {
		t.Errorf("layers=%d live=%d after pruning", comp.Layers(), provider.Live)
	}
	if exits != 0 {
		t.Error("pruning triggered exit")
	}

	// Back from Records opens a fresh Main rather than leaving.
	r.Back()
	if got := screenNames(r); !slices.Equal(got, []string{"records", "main"}) {
		t.Fatalf("stack after back = %v", got)
	}
}
