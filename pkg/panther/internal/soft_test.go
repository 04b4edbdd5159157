package internal

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/skygrel/panther/pkg/panther/compositor"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/gesture"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	black = color.NRGBA{A: 255}
)

func isColor(c color.Color, want color.NRGBA) bool {
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := want.RGBA()
	near := func(x, y uint32) bool {
		d := int(x>>8) - int(y>>8)
		return d > -8 && d < 8
	}
	return near(r, wr) && near(g, wg) && near(b, wb) && near(a, wa)
}

func compositeRed(t *testing.T, s *SoftSurface, c compositor.Circle) {
	t.Helper()
	target, err := s.NewTarget(s.Size())
	if err != nil {
		t.Fatal(err)
	}
	defer target.Destroy()

	if err := s.BeginFrame(); err != nil {
		t.Fatal(err)
	}
	if err := target.Clear(black); err != nil {
		t.Fatal(err)
	}
	target.FillRect(geom.Full, red)
	if err := target.Composite(c); err != nil {
		t.Fatal(err)
	}
}

func TestSoftSurfaceFullCoverage(t *testing.T) {
	s, err := NewSoftSurface(SoftOptions{Width: 40, Height: 80, ClearColor: black}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	compositeRed(t, s, compositor.Circle{X: 0.5, Y: 0.5, R: compositor.FullCoverage})
	img := s.Frame()
	for _, p := range [][2]int{{0, 0}, {39, 79}, {20, 40}, {0, 79}} {
		if got := img.At(p[0], p[1]); !isColor(got, red) {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}
}

func TestSoftSurfaceCircleClip(t *testing.T) {
	s, err := NewSoftSurface(SoftOptions{Width: 100, Height: 100, ClearColor: black}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Small circle near the bottom of the display.
	compositeRed(t, s, compositor.Circle{X: 0.5, Y: 0.2, R: 0.1})
	img := s.Frame()
	if got := img.At(50, 80); !isColor(got, red) {
		t.Errorf("centre = %v, want red", got)
	}
	if got := img.At(50, 20); !isColor(got, black) {
		t.Errorf("top = %v, want clear colour", got)
	}
	if got := img.At(5, 95); !isColor(got, black) {
		t.Errorf("corner = %v, want clear colour", got)
	}
}

func TestSoftSurfaceZeroRadius(t *testing.T) {
	s, err := NewSoftSurface(SoftOptions{Width: 10, Height: 10, ClearColor: black}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	compositeRed(t, s, compositor.Circle{X: 0.5, Y: 0.1})
	if got := s.Frame().At(5, 9); !isColor(got, black) {
		t.Errorf("pixel = %v, nothing should be revealed", got)
	}
}

func TestSoftSurfaceDumpsFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	s, err := NewSoftSurface(SoftOptions{Width: 8, Height: 8, OutputDir: dir, DumpEvery: 2}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	for range 4 {
		if err := s.BeginFrame(); err != nil {
			t.Fatal(err)
		}
		if err := s.Present(); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 2 || names[0] != "frame-00002.png" || names[1] != "frame-00004.png" {
		t.Errorf("dumped %v", names)
	}
	if s.Presented() != 4 {
		t.Errorf("presented = %d", s.Presented())
	}
}

func TestSoftSurfaceScript(t *testing.T) {
	s, err := NewSoftSurface(SoftOptions{Width: 10, Height: 20}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	s.Script(
		ScriptedEvent{Frame: 0, Event: Event{Kind: EventBack}},
		ScriptedEvent{Frame: 1, Event: Event{Kind: EventResize, Width: 20, Height: 10}},
		ScriptedEvent{Frame: 3, Event: Event{Kind: EventQuit}},
	)

	sink := &sinkLog{}
	_ = s.Pump(sink)
	if sink.backs != 1 || sink.resized != [2]int{} {
		t.Fatalf("frame 0 delivered %+v", sink)
	}

	_ = s.Present()
	_ = s.Pump(sink)
	if w, h := s.Size(); w != 20 || h != 10 || sink.resized != [2]int{20, 10} {
		t.Errorf("size after resize = %dx%d", w, h)
	}

	_ = s.Present()
	_ = s.Pump(sink)
	if sink.quits != 0 {
		t.Error("quit delivered early")
	}
	_ = s.Present()
	_ = s.Pump(sink)
	if sink.quits != 1 {
		t.Error("quit not delivered")
	}
}

func TestSoftSurfaceAttachedInput(t *testing.T) {
	s, err := NewSoftSurface(SoftOptions{Width: 10, Height: 10}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ch := make(chan Event, 2)
	s.AttachInput(ch)
	ch <- TouchEvent(gesture.TouchEvent{ID: 2, Phase: gesture.TouchDown, Pos: geom.Pt(0.3, 0.3)})
	ch <- Event{Kind: EventBack}

	var sink sinkLog
	if err := s.Pump(&sink); err != nil {
		t.Fatal(err)
	}
	if len(sink.touches) != 1 || sink.touches[0].ID != 2 || sink.backs != 1 {
		t.Errorf("sink = %+v", sink)
	}
}

func TestNewSoftSurfaceRejectsEmpty(t *testing.T) {
	if _, err := NewSoftSurface(SoftOptions{}, nil); err == nil {
		t.Error("expected an error for a zero size surface")
	}
}
