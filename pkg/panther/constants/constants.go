// Package constants defines shared constants, types, and configuration values
// used throughout panther.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read at startup.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	ConfigPathEnvVar   = "PANTHER_CONFIG"
	LanguageEnvVar     = "PANTHER_LANG"
	LogLevelEnvVar     = "LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	HeadlessEnvVar     = "PANTHER_HEADLESS"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and sizing constants.
const (
	DefaultFrameDelay         = 16 * time.Millisecond // Frame pacing when VSync is unavailable
	DefaultTransitionDuration = time.Second           // Circular wipe length for a pushed screen
	DefaultExpandAfter        = time.Second           // Screens occlude everything below after this
	MainExpandAfter           = 500 * time.Millisecond

	DefaultDevWidth  int32 = 540
	DefaultDevHeight int32 = 1170
)

// NavBarHeight is the height of the bottom navigation bar in normalised units.
const NavBarHeight = 0.25
