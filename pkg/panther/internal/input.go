package internal

import "errors"

// AutoDetect as a touch device path probes /dev/input for a touchscreen.
const AutoDetect = "auto"

const inputBuffer = 256

// ErrInputUnsupported is returned when device input is configured on a
// platform without evdev.
var ErrInputUnsupported = errors.New("evdev input is only available on linux")

// InputConfig selects the evdev devices to read.
type InputConfig struct {
	// TouchDevice is a multitouch device path, AutoDetect, or empty for none.
	TouchDevice string
	// KeyDevice reports the hardware back key. Empty for none.
	KeyDevice string
}

// IsZero reports whether no device is configured.
func (c InputConfig) IsZero() bool {
	return c == InputConfig{}
}
