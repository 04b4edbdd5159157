package router

// CommandKind tags a Command.
type CommandKind int

const (
	CommandNone CommandKind = iota // Nothing to do
	CommandPush                    // Push Command.Screen on top of the stack
	CommandPop                     // Pop the top screen
)

func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandPush:
		return "push"
	case CommandPop:
		return "pop"
	default:
		return "unknown"
	}
}

// Command is the navigation result of a Press, Back or Update call.
// Screen is only set for CommandPush.
type Command struct {
	Kind   CommandKind
	Screen Screen
}

// None leaves the stack unchanged.
func None() Command {
	return Command{Kind: CommandNone}
}

// Push places s on top of the stack.
func Push(s Screen) Command {
	return Command{Kind: CommandPush, Screen: s}
}

// Pop removes the top screen.
func Pop() Command {
	return Command{Kind: CommandPop}
}

// IsNone reports whether c leaves the stack unchanged.
func (c Command) IsNone() bool {
	return c.Kind == CommandNone
}
