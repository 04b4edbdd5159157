package compositor

import (
	"fmt"
	"math"
	"testing"
	"time"
)

func TestTransitionEndpoints(t *testing.T) {
	tr := DefaultTransition(epoch)

	if got := tr.At(epoch); got != DefaultPoints[0] {
		t.Errorf("At(start) = %+v", got)
	}
	if got := tr.At(epoch.Add(-time.Second)); got != DefaultPoints[0] {
		t.Errorf("At(before start) = %+v", got)
	}
	end := tr.At(epoch.Add(time.Second))
	if math.Abs(end.R-DefaultPoints[2].R) > 1e-9 || !end.Covers() {
		t.Errorf("At(end) = %+v", end)
	}
	if got := tr.At(epoch.Add(time.Hour)); got != end {
		t.Errorf("At(after end) = %+v", got)
	}
	if !tr.Done(epoch.Add(time.Second)) || tr.Done(epoch.Add(999*time.Millisecond)) {
		t.Error("Done boundary")
	}
}

func TestTransitionRadiusMonotonic(t *testing.T) {
	tr := DefaultTransition(epoch)
	prev := -1.0
	for ms := 0; ms <= 1000; ms += 10 {
		r := tr.At(epoch.Add(time.Duration(ms) * time.Millisecond)).R
		if r < prev {
			t.Fatalf("radius shrank at %dms: %f < %f", ms, r, prev)
		}
		prev = r
	}
}

func TestTransitionProgress(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		elapsed  time.Duration
		want     float64
	}{
		{"start", time.Second, 0, 0},
		{"half", time.Second, 500 * time.Millisecond, 0.5},
		{"clamped", time.Second, 3 * time.Second, 1},
		{"negative", time.Second, -time.Second, 0},
		{"zero duration", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewCircleTransition(epoch, tt.duration, DefaultPoints)
			if got := tr.Progress(epoch.Add(tt.elapsed)); got != tt.want {
				t.Errorf("Progress = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestTransitionRestart(t *testing.T) {
	tr := DefaultTransition(epoch)
	later := epoch.Add(5 * time.Second)
	tr.Restart(later)
	if tr.Start != later || tr.Duration != time.Second || tr.Points != DefaultPoints {
		t.Errorf("Restart changed more than the start: %+v", tr)
	}
	if tr.Done(later.Add(time.Millisecond)) {
		t.Error("restarted transition already done")
	}
}

func ExampleCircleTransition_At() {
	tr := DefaultTransition(epoch)
	for _, ms := range []int{0, 500, 1000} {
		c := tr.At(epoch.Add(time.Duration(ms) * time.Millisecond))
		fmt.Printf("%4dms x=%.2f y=%.2f r=%.3f\n", ms, c.X, c.Y, c.R)
	}
	// Output:
	//    0ms x=0.50 y=0.10 r=0.000
	//  500ms x=0.50 y=0.30 r=0.675
	// 1000ms x=0.50 y=0.50 r=1.500
}
