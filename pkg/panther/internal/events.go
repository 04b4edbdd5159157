package internal

import (
	"github.com/skygrel/panther/pkg/panther/gesture"
)

// EventSink receives platform events on the thread that owns the screen stack.
type EventSink interface {
	Touch(e gesture.TouchEvent)
	Back()
	Resize(width, height int)
	Quit()
}

// EventKind tags an Event.
type EventKind int

const (
	EventTouch EventKind = iota
	EventBack
	EventResize
	EventQuit
)

// Event is a platform event in transit, e.g. from an input reader
// goroutine to the owner thread.
type Event struct {
	Kind          EventKind
	Touch         gesture.TouchEvent
	Width, Height int
}

// TouchEvent wraps a touch sample.
func TouchEvent(e gesture.TouchEvent) Event {
	return Event{Kind: EventTouch, Touch: e}
}

// Deliver hands e to sink.
func Deliver(sink EventSink, e Event) {
	switch e.Kind {
	case EventTouch:
		sink.Touch(e.Touch)
	case EventBack:
		sink.Back()
	case EventResize:
		sink.Resize(e.Width, e.Height)
	case EventQuit:
		sink.Quit()
	}
}

// drain delivers everything currently buffered in ch without blocking.
func drain(ch <-chan Event, sink EventSink) {
	if ch == nil {
		return
	}
	for {
		select {
		case e, ok := <-ch:
			if !ok {
				return
			}
			Deliver(sink, e)
		default:
			return
		}
	}
}

// NormalizeAxis maps a raw device axis value in [lo, hi] to 0..1.
// Values outside the range are clamped. A degenerate range maps to 0.
func NormalizeAxis(v, lo, hi int32) float64 {
	if hi <= lo {
		return 0
	}
	v = clampInt32(v, lo, hi)
	return float64(int64(v)-int64(lo)) / float64(int64(hi)-int64(lo))
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
