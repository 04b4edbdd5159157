package router

// Stack is the ordered set of live screens.
// Index 0 is the bottom (oldest) screen, the last index is the input target.
type Stack struct {
	screens []Screen
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{
		screens: make([]Screen, 0, 4),
	}
}

// Push adds a screen on top.
func (s *Stack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes and returns the top screen.
// Returns nil if the stack is empty.
func (s *Stack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// At returns the screen at index i, or nil when i is out of range.
func (s *Stack) At(i int) Screen {
	if i < 0 || i >= len(s.screens) {
		return nil
	}
	return s.screens[i]
}

// DropBelow removes every screen under index i and returns them bottom
// first. The screen at i becomes the new bottom.
func (s *Stack) DropBelow(i int) []Screen {
	if i <= 0 {
		return nil
	}
	if i > len(s.screens) {
		i = len(s.screens)
	}
	dropped := make([]Screen, i)
	copy(dropped, s.screens[:i])

	kept := make([]Screen, len(s.screens)-i, cap(s.screens))
	copy(kept, s.screens[i:])
	s.screens = kept
	return dropped
}

// Clear removes and returns every screen, bottom first.
func (s *Stack) Clear() []Screen {
	return s.DropBelow(len(s.screens))
}

// Screens returns a copy of the stack contents, bottom first.
func (s *Stack) Screens() []Screen {
	out := make([]Screen, len(s.screens))
	copy(out, s.screens)
	return out
}

// IsEmpty returns true if the stack has no screens.
func (s *Stack) IsEmpty() bool {
	return len(s.screens) == 0
}

// Len returns the number of screens in the stack.
func (s *Stack) Len() int {
	return len(s.screens)
}
