//go:build !nosdl

package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// InitSDL brings up the SDL subsystems the window needs. Call SDLCleanup
// once the window is closed.
func InitSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl_image init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		img.Quit()
		sdl.Quit()
		return fmt.Errorf("sdl_ttf init: %w", err)
	}

	// Touches arrive as finger events; synthetic mouse clicks would double them.
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")
	return nil
}

func SDLCleanup() {
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
