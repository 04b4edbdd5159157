package internal

import "image/color"

// Theme defines the colours and font of the UI.
type Theme struct {
	MainBackground      color.NRGBA // Main screen fill
	RecordsBackground   color.NRGBA // Records screen fill
	StatsBackground     color.NRGBA // Initial Stats fill, tinted by scrolling
	TrainingBackground  color.NRGBA // Active training fill
	NavBarColor         color.NRGBA // Bottom navigation bar strip
	TextColor           color.NRGBA // Default text colour
	AccentColor         color.NRGBA // Title and the selected navbar entry
	ClearColor          color.NRGBA // Framebuffer colour under the stack
	FontPath            string      // TTF to load; empty uses the embedded Go font
	BackgroundImagePath string      // Optional image drawn under the stack
}

var currentTheme = DefaultTheme()

// DefaultTheme is used until SetTheme is called.
func DefaultTheme() Theme {
	return Theme{
		MainBackground:     HexToColor(0x6680E6),
		RecordsBackground:  HexToColor(0x99CC33),
		StatsBackground:    HexToColor(0x6680E6),
		TrainingBackground: HexToColor(0x99CC33),
		NavBarColor:        HexToColor(0x1A1A1A),
		TextColor:          HexToColor(0xFFFFFF),
		AccentColor:        HexToColor(0x9623FF),
		ClearColor:         HexToColor(0x000000),
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// FloatColor builds an opaque colour from 0..1 channel values.
func FloatColor(r, g, b float64) color.NRGBA {
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xFF}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
