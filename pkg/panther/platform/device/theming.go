// Package device provides the theme used on the phone-sized touch device:
// darker fills that read well on an OLED panel and the system font.
package device

import (
	"github.com/skygrel/panther/pkg/panther/internal"
)

// DefaultFontPath is where the device image ships its UI font.
const DefaultFontPath = "/usr/share/fonts/truetype/panther/Panther-Bold.ttf"

// InitDeviceTheme creates the device theme with the given font. An empty
// fontPath keeps the embedded font.
func InitDeviceTheme(fontPath string) internal.Theme {
	return internal.Theme{
		MainBackground:     internal.HexToColor(0x2B3A8C),
		RecordsBackground:  internal.HexToColor(0x4F7A1F),
		StatsBackground:    internal.HexToColor(0x2B3A8C),
		TrainingBackground: internal.HexToColor(0x4F7A1F),
		NavBarColor:        internal.HexToColor(0x000000),
		TextColor:          internal.HexToColor(0xF2F2F2),
		AccentColor:        internal.HexToColor(0xB46BFF),
		ClearColor:         internal.HexToColor(0x000000),
		FontPath:           fontPath,
	}
}
