// Package gesture turns raw per-contact touch samples into the three semantic
// gestures a screen understands: press (tap), start-scroll and scroll.
//
// Every touch identifier is tracked independently. A contact starts in the
// PressStart phase. Once it has been held for longer than ScrollThreshold and
// moves again, it escalates to Moving and can no longer become a tap.
//
// # Basic Usage
//
//	c := gesture.New(target)
//
//	c.Down(1, geom.Pt(0.5, 0.1)) // target.StartScroll decides whether moves are forwarded
//	c.Move(1, geom.Pt(0.5, 0.2)) // target.Scroll(delta) when forwarding
//	c.Up(1, geom.Pt(0.5, 0.2))   // target.Press(p) only if the contact never escalated
//
// Samples for identifiers that are not tracked (a move before its down, or
// after the up) are ignored silently.
package gesture
