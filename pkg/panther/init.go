// Package panther wires the navigation core to a platform: it initialises
// logging, theming and SDL, builds the screen stack, compositor and gesture
// classifier, and runs the frame loop.
//
// A device build opens an SDL window and, on linux, reads the touch panel
// through evdev. A headless build renders on the CPU with gg and can dump
// frames as PNG files.
package panther

import (
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/skygrel/panther/pkg/panther/config"
	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/internal"
	"github.com/skygrel/panther/pkg/panther/platform/device"
	"golang.org/x/text/language"
)

// Options configures initialisation.
type Options struct {
	LogPath          string // Full path for the log file including filename
	LogLevel         string // "debug", "info", "warn" or "error"
	InternalLogLevel string // Level of the backend logger

	IsDevice       bool   // Use the device theme instead of the default one
	FontPath       string // TTF to load; empty keeps the theme's or the embedded font
	AccentColorHex uint32 // Overrides the theme accent colour when non-zero

	// Headless skips SDL entirely.
	Headless bool
}

// OptionsFromConfig derives Options from a loaded configuration.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		LogPath:          cfg.Log.Path,
		LogLevel:         cfg.Log.Level,
		InternalLogLevel: cfg.Log.InternalLevel,
		IsDevice:         cfg.UI.Platform == "device",
		FontPath:         cfg.UI.FontPath,
		Headless:         cfg.Headless.Enabled,
	}
}

// Init sets up logging and the theme and, unless headless, SDL.
// Call Close when done.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	internal.SetRawLogLevel(options.LogLevel)
	if options.InternalLogLevel != "" {
		internal.SetInternalLogLevel(internal.ParseLevel(options.InternalLogLevel))
	} else if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
	gg.SetLogger(internal.GetInternalLogger())

	theme := internal.DefaultTheme()
	if options.IsDevice {
		theme = device.InitDeviceTheme(device.DefaultFontPath)
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	if options.AccentColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentColorHex)
	}
	internal.SetTheme(theme)

	if options.Headless {
		return nil
	}
	if err := internal.InitSDL(); err != nil {
		return NewInfrastructureError("init_sdl", err)
	}
	sdlUp = true
	return nil
}

var sdlUp bool

// Close shuts SDL down if Init started it and closes the log file.
func Close() {
	if sdlUp {
		internal.SDLCleanup()
		sdlUp = false
	}
	internal.CloseLogger()
}

// Theme is the active colour and font set.
type Theme = internal.Theme

// GetTheme returns the theme chosen by Init.
func GetTheme() Theme {
	return internal.GetTheme()
}

// Assets holds rasterised icons and the UI font.
type Assets = internal.Assets

// LoadAssets rasterises the embedded icons at iconSize pixels and loads the
// theme font, falling back to the embedded font when the theme's is missing.
func LoadAssets(iconSize int) (*Assets, error) {
	fontPath := internal.GetTheme().FontPath
	a, err := internal.LoadAssets(iconSize, fontPath)
	if err != nil && fontPath != "" {
		internal.GetInternalLogger().Warn("Theme font not loaded, using embedded font", "path", fontPath, "error", err)
		a, err = internal.LoadAssets(iconSize, "")
	}
	if err != nil {
		return nil, NewInfrastructureError("load_assets", err)
	}
	return a, nil
}

// NewLocalizer returns a translation function for tag. Unknown tags fall
// back to English, unknown message IDs to the ID itself.
func NewLocalizer(tag language.Tag) (func(id string) string, error) {
	l, err := internal.NewLocalizer(tag)
	if err != nil {
		return nil, NewInfrastructureError("load_locales", err)
	}
	return l.T, nil
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum level of the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the level from a string such as "debug".
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
