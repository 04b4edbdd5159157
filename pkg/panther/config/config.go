// Package config loads panther's TOML configuration.
//
// Values are resolved in three layers: built-in defaults, the config file,
// then environment variables. A missing file is not an error.
//
//	[window]
//	title = "Panther"
//	width = 540
//	height = 1170
//
//	[transition]
//	duration = "1s"
//	expand_after = "1s"
//	main_expand_after = "500ms"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/skygrel/panther/pkg/panther/constants"
	"golang.org/x/text/language"
)

// Duration is a time.Duration written as a string ("750ms", "1s") in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Window struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	Resizable  bool   `toml:"resizable"`
	Borderless bool   `toml:"borderless"`
}

type Log struct {
	Path          string `toml:"path"`
	Level         string `toml:"level"`
	InternalLevel string `toml:"internal_level"`
}

type UI struct {
	Language string `toml:"language"`
	// Platform selects the theme preset: "default" or "device".
	Platform string `toml:"platform"`
	FontPath string `toml:"font_path"`
	FontSize int    `toml:"font_size"`
}

type Transition struct {
	Duration        Duration `toml:"duration"`
	ExpandAfter     Duration `toml:"expand_after"`
	MainExpandAfter Duration `toml:"main_expand_after"`
}

type Input struct {
	// TouchDevice and KeyDevice are evdev paths. Empty disables the reader.
	TouchDevice string `toml:"touch_device"`
	KeyDevice   string `toml:"key_device"`
	// MouseAsTouch lets a desktop mouse stand in for a finger.
	MouseAsTouch bool `toml:"mouse_as_touch"`
}

type Headless struct {
	Enabled bool `toml:"enabled"`
	Width   int  `toml:"width"`
	Height  int  `toml:"height"`
	// Frames bounds the run; zero runs until the app exits.
	Frames int `toml:"frames"`
	// OutputDir receives PNG dumps of presented frames. Empty disables dumping.
	OutputDir string `toml:"output_dir"`
	// DumpEvery writes one frame out of every N.
	DumpEvery int `toml:"dump_every"`
}

// Config is the complete configuration.
type Config struct {
	Window     Window     `toml:"window"`
	Log        Log        `toml:"log"`
	UI         UI         `toml:"ui"`
	Transition Transition `toml:"transition"`
	Input      Input      `toml:"input"`
	Headless   Headless   `toml:"headless"`

	// Undecoded lists keys present in the file that matched no field.
	Undecoded []string `toml:"-"`
}

const (
	minFontSize = 8
	maxFontSize = 128
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "Panther",
			Width:     constants.DefaultDevWidth,
			Height:    constants.DefaultDevHeight,
			Resizable: true,
		},
		Log: Log{
			Path:          "logs/panther.log",
			Level:         "info",
			InternalLevel: "error",
		},
		UI: UI{
			Language: "en",
			Platform: "default",
			FontSize: 48,
		},
		Transition: Transition{
			Duration:        Duration{constants.DefaultTransitionDuration},
			ExpandAfter:     Duration{constants.DefaultExpandAfter},
			MainExpandAfter: Duration{constants.MainExpandAfter},
		},
		Headless: Headless{
			Width:     int(constants.DefaultDevWidth),
			Height:    int(constants.DefaultDevHeight),
			DumpEvery: 1,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: load %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("config: parse: %w", err)
	}
	for _, key := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}
	return cfg, nil
}

// ApplyEnv overrides values from the environment.
// The window size variables only apply in development mode.
func (c *Config) ApplyEnv() error {
	var errs []error

	if constants.IsDevMode() {
		if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				c.Window.Width = int32(n)
			} else {
				errs = append(errs, fmt.Errorf("invalid %s %q: %w", constants.WindowWidthEnvVar, v, err))
			}
		}
		if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				c.Window.Height = int32(n)
			} else {
				errs = append(errs, fmt.Errorf("invalid %s %q: %w", constants.WindowHeightEnvVar, v, err))
			}
		}
		c.Input.MouseAsTouch = true
	}

	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(constants.LanguageEnvVar); v != "" {
		c.UI.Language = v
	}
	if v := os.Getenv(constants.HeadlessEnvVar); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s %q: %w", constants.HeadlessEnvVar, v, err))
		} else {
			c.Headless.Enabled = enabled
		}
	}

	return errors.Join(errs...)
}

// Validate clamps out-of-range values back to something usable and
// reports what it had to fix.
func (c *Config) Validate() error {
	def := Default()
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d out of range", c.Window.Width, c.Window.Height))
		c.Window.Width, c.Window.Height = def.Window.Width, def.Window.Height
	}
	if c.Headless.Width <= 0 || c.Headless.Height <= 0 {
		errs = append(errs, fmt.Errorf("headless size %dx%d out of range", c.Headless.Width, c.Headless.Height))
		c.Headless.Width, c.Headless.Height = def.Headless.Width, def.Headless.Height
	}
	if c.Headless.Frames < 0 {
		c.Headless.Frames = 0
	}
	if c.Headless.DumpEvery < 1 {
		c.Headless.DumpEvery = 1
	}

	if c.UI.FontSize < minFontSize || c.UI.FontSize > maxFontSize {
		errs = append(errs, fmt.Errorf("font size %d out of range [%d, %d]", c.UI.FontSize, minFontSize, maxFontSize))
		c.UI.FontSize = min(max(c.UI.FontSize, minFontSize), maxFontSize)
	}

	for _, d := range []*Duration{&c.Transition.Duration, &c.Transition.ExpandAfter, &c.Transition.MainExpandAfter} {
		if d.Duration < 0 {
			errs = append(errs, fmt.Errorf("negative duration %s", d.Duration))
			d.Duration = 0
		}
	}

	switch strings.ToLower(c.UI.Platform) {
	case "default", "device":
		c.UI.Platform = strings.ToLower(c.UI.Platform)
	default:
		errs = append(errs, fmt.Errorf("unknown platform %q", c.UI.Platform))
		c.UI.Platform = def.UI.Platform
	}

	if _, err := language.Parse(c.UI.Language); err != nil {
		errs = append(errs, fmt.Errorf("language %q: %w", c.UI.Language, err))
		c.UI.Language = def.UI.Language
	}

	return errors.Join(errs...)
}

// LanguageTag returns the configured UI language, English if it does not parse.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.UI.Language)
	if err != nil {
		return language.English
	}
	return tag
}
