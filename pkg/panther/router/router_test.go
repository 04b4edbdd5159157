package router

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/render"
)

// journal collects lifecycle calls across screens in the order they happen.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

func (j *journal) count(entry string) int {
	n := 0
	for _, e := range j.entries {
		if e == entry {
			n++
		}
	}
	return n
}

type fakeScreen struct {
	Base
	j        *journal
	expanded bool
	update   func() Command
	press    func(geom.Point) Command
	scroll   bool
	scrolled []geom.Vec
}

func newFake(j *journal, name string) *fakeScreen {
	s := &fakeScreen{j: j}
	s.InitBase(name, time.Unix(0, 0))
	return s
}

func (s *fakeScreen) Draw(render.Canvas) error {
	s.j.add("draw %s", s.Name())
	return nil
}

func (s *fakeScreen) Update() Command {
	s.j.add("update %s", s.Name())
	if s.update != nil {
		return s.update()
	}
	return None()
}

func (s *fakeScreen) IsExpanded() bool { return s.expanded }

func (s *fakeScreen) Press(p geom.Point) Command {
	if s.press != nil {
		return s.press(p)
	}
	return None()
}

func (s *fakeScreen) StartScroll(geom.Point) bool { return s.scroll }

func (s *fakeScreen) Scroll(d geom.Vec) { s.scrolled = append(s.scrolled, d) }

func (s *fakeScreen) Destroy() { s.j.add("destroy %s", s.Name()) }

// fakeRenderer draws straight through and records releases.
type fakeRenderer struct {
	j   *journal
	err error
}

func (r *fakeRenderer) Render(s Screen) error {
	if r.err != nil {
		return r.err
	}
	return s.Draw(nil)
}

func (r *fakeRenderer) Release(s Screen) { r.j.add("release %s", s.Name()) }

func names(screens []Screen) []string {
	out := make([]string, len(screens))
	for i, s := range screens {
		out[i] = s.Name()
	}
	return out
}

func TestPushPopIdentity(t *testing.T) {
	j := &journal{}
	a := newFake(j, "a")
	r := New(a, WithRenderer(&fakeRenderer{j: j}))

	b := newFake(j, "b")
	r.PushScreen(b)
	if r.Top() != b || r.Len() != 2 {
		t.Fatalf("after push: top=%v len=%d", r.Top().Name(), r.Len())
	}

	r.PopScreen()
	if r.Top() != a || r.Len() != 1 {
		t.Fatalf("after pop: top=%v len=%d", r.Top().Name(), r.Len())
	}
	if r.Exited() {
		t.Fatal("router exited with a screen left")
	}
	want := []string{"release b", "destroy b"}
	if !slices.Equal(j.entries, want) {
		t.Errorf("journal = %v, want %v", j.entries, want)
	}
}

func TestPopLastScreenExitsOnce(t *testing.T) {
	j := &journal{}
	exits := 0
	r := New(newFake(j, "main"), WithExitFunc(func() { exits++ }))

	r.Back()
	r.PopScreen()
	r.Apply(Pop())

	if exits != 1 {
		t.Errorf("exit hook ran %d times, want 1", exits)
	}
	if !r.Exited() || r.Len() != 0 {
		t.Errorf("exited=%v len=%d", r.Exited(), r.Len())
	}
	if j.count("destroy main") != 1 {
		t.Errorf("main destroyed %d times", j.count("destroy main"))
	}
	if err := r.FrameTick(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("FrameTick after exit = %v, want ErrEmptyStack", err)
	}
}

func TestPushAfterExitIsIgnored(t *testing.T) {
	j := &journal{}
	r := New(newFake(j, "main"))
	r.PopScreen()

	late := newFake(j, "late")
	r.PushScreen(late)
	if r.Len() != 0 {
		t.Fatalf("len = %d, want 0", r.Len())
	}
	if j.count("destroy late") != 1 {
		t.Error("screen pushed after exit was not destroyed")
	}
}

func TestInputGoesToTopOnly(t *testing.T) {
	j := &journal{}
	bottom := newFake(j, "bottom")
	bottom.scroll = true
	top := newFake(j, "top")

	r := New(bottom)
	r.PushScreen(top)

	if r.StartScroll(geom.Pt(0.5, 0.5)) {
		t.Error("StartScroll reached the bottom screen")
	}
	r.Scroll(geom.Vec{DX: 0.1})
	if len(bottom.scrolled) != 0 || len(top.scrolled) != 1 {
		t.Errorf("scrolls bottom=%d top=%d", len(bottom.scrolled), len(top.scrolled))
	}
}

func TestPressAppliesCommand(t *testing.T) {
	j := &journal{}
	main := newFake(j, "main")
	next := newFake(j, "next")
	main.press = func(geom.Point) Command { return Push(next) }

	r := New(main)
	r.Press(geom.Pt(0.5, 0.1))
	if r.Top() != next {
		t.Fatalf("top = %s, want next", r.Top().Name())
	}

	// Default Back pops.
	r.Back()
	if r.Top() != main {
		t.Fatalf("top = %s, want main", r.Top().Name())
	}
}

func TestFrameTickDrawsBottomToTop(t *testing.T) {
	j := &journal{}
	r := New(newFake(j, "a"), WithRenderer(&fakeRenderer{j: j}))
	r.PushScreen(newFake(j, "b"))
	r.PushScreen(newFake(j, "c"))

	if err := r.FrameTick(); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"update a", "draw a",
		"update b", "draw b",
		"update c", "draw c",
	}
	if !slices.Equal(j.entries, want) {
		t.Errorf("journal = %v\nwant %v", j.entries, want)
	}
}

func TestFrameTickPrunesBelowExpanded(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		expanded []int
		want     []string
	}{
		{
			name:     "top of two",
			depth:    2,
			expanded: []int{1},
			want:     []string{"s1"},
		},
		{
			name:     "middle of four",
			depth:    4,
			expanded: []int{2},
			want:     []string{"s2", "s3"},
		},
		{
			name:     "top of five",
			depth:    5,
			expanded: []int{4},
			want:     []string{"s4"},
		},
		{
			name:     "two expanded in one tick",
			depth:    5,
			expanded: []int{1, 3},
			want:     []string{"s3", "s4"},
		},
		{
			name:     "bottom only",
			depth:    4,
			expanded: []int{0},
			want:     []string{"s0", "s1", "s2", "s3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &journal{}
			screens := make([]*fakeScreen, tt.depth)
			for i := range screens {
				screens[i] = newFake(j, fmt.Sprintf("s%d", i))
			}
			for _, i := range tt.expanded {
				screens[i].expanded = true
			}

			r := New(screens[0], WithRenderer(&fakeRenderer{j: j}))
			for _, s := range screens[1:] {
				r.PushScreen(s)
			}

			if err := r.FrameTick(); err != nil {
				t.Fatal(err)
			}
			if got := names(r.Screens()); !slices.Equal(got, tt.want) {
				t.Errorf("stack = %v, want %v", got, tt.want)
			}

			for _, s := range screens {
				if n := j.count("draw " + s.Name()); n != 1 {
					t.Errorf("%s drawn %d times", s.Name(), n)
				}
				kept := slices.Contains(tt.want, s.Name())
				destroyed := j.count("destroy " + s.Name())
				released := j.count("release " + s.Name())
				if kept && (destroyed != 0 || released != 0) {
					t.Errorf("%s kept but destroyed=%d released=%d", s.Name(), destroyed, released)
				}
				if !kept && (destroyed != 1 || released != 1) {
					t.Errorf("%s pruned but destroyed=%d released=%d", s.Name(), destroyed, released)
				}
			}
		})
	}
}

func TestFrameTickPrunesBottomFirst(t *testing.T) {
	j := &journal{}
	r := New(newFake(j, "a"), WithRenderer(&fakeRenderer{j: j}))
	r.PushScreen(newFake(j, "b"))
	c := newFake(j, "c")
	c.expanded = true
	r.PushScreen(c)

	if err := r.FrameTick(); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"update a", "draw a",
		"update b", "draw b",
		"update c", "draw c",
		"release a", "destroy a",
		"release b", "destroy b",
	}
	if !slices.Equal(j.entries, want) {
		t.Errorf("journal = %v\nwant %v", j.entries, want)
	}
}

func TestFrameTickUpdatePush(t *testing.T) {
	j := &journal{}
	a := newFake(j, "a")
	b := newFake(j, "b")
	pushed := false
	a.update = func() Command {
		if pushed {
			return None()
		}
		pushed = true
		return Push(b)
	}

	r := New(a, WithRenderer(&fakeRenderer{j: j}))
	if err := r.FrameTick(); err != nil {
		t.Fatal(err)
	}
	if got := names(r.Screens()); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("stack = %v", got)
	}
	// The pushed screen is ticked in the same frame.
	if j.count("draw b") != 1 {
		t.Errorf("b drawn %d times", j.count("draw b"))
	}
}

func TestFrameTickUpdatePopStops(t *testing.T) {
	j := &journal{}
	exits := 0
	a := newFake(j, "a")
	b := newFake(j, "b")
	b.update = Pop

	r := New(a, WithRenderer(&fakeRenderer{j: j}), WithExitFunc(func() { exits++ }))
	r.PushScreen(b)
	if err := r.FrameTick(); err != nil {
		t.Fatal(err)
	}
	if j.count("draw b") != 0 {
		t.Error("popped screen was drawn")
	}
	if r.Len() != 1 || exits != 0 {
		t.Errorf("len=%d exits=%d", r.Len(), exits)
	}

	// The last screen popping itself from Update ends the app.
	a.update = Pop
	if err := r.FrameTick(); err != nil {
		t.Fatal(err)
	}
	if !r.Exited() || exits != 1 {
		t.Errorf("exited=%v exits=%d", r.Exited(), exits)
	}
}

func TestFrameTickRenderErrorIsReturned(t *testing.T) {
	j := &journal{}
	boom := errors.New("no target")
	r := New(newFake(j, "a"), WithRenderer(&fakeRenderer{j: j, err: boom}))
	if err := r.FrameTick(); !errors.Is(err, boom) {
		t.Errorf("FrameTick = %v, want %v", err, boom)
	}
}

func TestEmptyStackInputIsNoop(t *testing.T) {
	j := &journal{}
	r := New(newFake(j, "a"))
	r.PopScreen()

	if r.StartScroll(geom.Pt(0, 0)) {
		t.Error("StartScroll on empty stack returned true")
	}
	r.Scroll(geom.Vec{DX: 1})
	r.Press(geom.Pt(0, 0))
	r.Back()
	if r.Top() != nil {
		t.Error("Top on empty stack is not nil")
	}
}
