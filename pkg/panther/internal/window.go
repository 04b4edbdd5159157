//go:build !nosdl

package internal

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"unsafe"

	"github.com/skygrel/panther/pkg/panther/compositor"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/gesture"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// MouseTouchID is the touch ID a desktop mouse reports when it stands in
// for a finger.
const MouseTouchID gesture.TouchID = math.MaxUint64

// WindowConfig describes the window to open.
type WindowConfig struct {
	Title string
	// Width and Height of zero use the current display mode.
	Width, Height int32
	Options       WindowOptions

	BackgroundImagePath string
	ClearColor          color.NRGBA
	MouseAsTouch        bool

	Assets        *Assets
	Input         <-chan Event
	TextCacheSize int
}

// Window is the SDL surface provider. It owns the window, the renderer and
// every texture created through it. All methods must be called from the
// thread that created it.
type Window struct {
	window     *sdl.Window
	renderer   *sdl.Renderer
	background *sdl.Texture
	bound      *sdl.Texture

	backgroundPath string

	assets *Assets
	fonts  *fontSet
	icons  *TextureCache
	text   *TextureCache

	input        <-chan Event
	clearColor   color.NRGBA
	mouseAsTouch bool
	mouseDown    bool

	width, height   int
	hasVSync        bool
	lastPresentTime uint64
}

// NewWindow opens the window. InitSDL must have been called.
func NewWindow(cfg WindowConfig) (*Window, error) {
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			return nil, fmt.Errorf("display mode: %w", err)
		}
		width, height = mode.W, mode.H
	}
	if cfg.Options.IsZero() {
		cfg.Options = WindowOptions{Resizable: true}
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sw, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, cfg.Options.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sw, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sw, -1, sdl.RENDERER_SOFTWARE|sdl.RENDERER_TARGETTEXTURE)
		if err != nil {
			sw.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	w, h := sw.GetSize()
	win := &Window{
		window:       sw,
		renderer:     renderer,
		assets:       cfg.Assets,
		icons:        NewTextureCache(0),
		text:         NewTextureCache(cfg.TextCacheSize),
		input:        cfg.Input,
		clearColor:   cfg.ClearColor,
		mouseAsTouch: cfg.MouseAsTouch,
		width:        int(w),
		height:       int(h),
		hasVSync:     vsync,
	}
	if cfg.Assets != nil {
		win.fonts = newFontSet(cfg.Assets.Font())
	}
	win.backgroundPath = cfg.BackgroundImagePath
	win.loadBackground(cfg.BackgroundImagePath)

	return win, nil
}

func (w *Window) loadBackground(path string) {
	if path == "" {
		return
	}
	tex, err := img.LoadTexture(w.renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Background image not loaded", "path", path, "error", err)
		return
	}
	w.background = tex
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

func (w *Window) NewTarget(width, height int) (compositor.RenderTarget, error) {
	tex, err := w.renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET, int32(width), int32(height))
	if err != nil {
		return nil, err
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		tex.Destroy()
		return nil, err
	}
	return &sdlTarget{window: w, texture: tex, width: width, height: height}, nil
}

// bind makes tex the render target. A nil tex is the window itself.
func (w *Window) bind(tex *sdl.Texture) error {
	if w.bound == tex {
		return nil
	}
	if err := w.renderer.SetRenderTarget(tex); err != nil {
		return err
	}
	w.bound = tex
	return nil
}

func (w *Window) BeginFrame() error {
	if err := w.bind(nil); err != nil {
		return err
	}
	c := w.clearColor
	w.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if w.background != nil {
		return w.renderer.Copy(w.background, nil, nil)
	}
	return nil
}

// Present swaps the render buffer and holds the frame to ~60fps when
// VSync is not available.
func (w *Window) Present() error {
	if err := w.bind(nil); err != nil {
		return err
	}
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
	return nil
}

// Pump drains the SDL event queue and any buffered evdev input into sink.
func (w *Window) Pump(sink EventSink) error {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			sink.Quit()
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 &&
				(e.Keysym.Sym == sdl.K_AC_BACK || e.Keysym.Sym == sdl.K_ESCAPE) {
				sink.Back()
			}
		case *sdl.TouchFingerEvent:
			if te, ok := fingerEvent(e); ok {
				sink.Touch(te)
			}
		case *sdl.MouseButtonEvent:
			w.mouseButton(e, sink)
		case *sdl.MouseMotionEvent:
			if w.mouseAsTouch && w.mouseDown {
				sink.Touch(w.mouseTouch(gesture.TouchMove, e.X, e.Y))
			}
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.width, w.height = int(e.Data1), int(e.Data2)
				sink.Resize(w.width, w.height)
			}
		case *sdl.RenderEvent:
			if reset, deviceLost := renderReset(e.Type); reset {
				w.bound = nil
				if deviceLost {
					w.dropDeviceTextures()
					w.loadBackground(w.backgroundPath)
				}
				// Target contents are gone; have every target recreated.
				sink.Resize(w.width, w.height)
			}
		}
	}
	drain(w.input, sink)
	return nil
}

func fingerEvent(e *sdl.TouchFingerEvent) (gesture.TouchEvent, bool) {
	var phase gesture.TouchPhase
	switch e.Type {
	case sdl.FINGERDOWN:
		phase = gesture.TouchDown
	case sdl.FINGERMOTION:
		phase = gesture.TouchMove
	case sdl.FINGERUP:
		phase = gesture.TouchUp
	default:
		return gesture.TouchEvent{}, false
	}
	// SDL reports 0..1 from the top-left.
	return gesture.TouchEvent{
		ID:    gesture.TouchID(e.FingerID),
		Phase: phase,
		Pos:   geom.Pt(float64(e.X), 1-float64(e.Y)),
	}, true
}

func (w *Window) mouseButton(e *sdl.MouseButtonEvent, sink EventSink) {
	if !w.mouseAsTouch || e.Button != sdl.BUTTON_LEFT {
		return
	}
	switch e.Type {
	case sdl.MOUSEBUTTONDOWN:
		w.mouseDown = true
		sink.Touch(w.mouseTouch(gesture.TouchDown, e.X, e.Y))
	case sdl.MOUSEBUTTONUP:
		if w.mouseDown {
			w.mouseDown = false
			sink.Touch(w.mouseTouch(gesture.TouchUp, e.X, e.Y))
		}
	}
}

func (w *Window) mouseTouch(phase gesture.TouchPhase, x, y int32) gesture.TouchEvent {
	return gesture.TouchEvent{
		ID:    MouseTouchID,
		Phase: phase,
		Pos:   geom.Normalize(float64(x), float64(y), w.width, w.height),
	}
}

// icon returns the texture for an asset key, uploading it on first use.
func (w *Window) icon(key string) *sdl.Texture {
	if e, ok := w.icons.Get(key); ok {
		return e.texture
	}
	if w.assets == nil {
		return nil
	}
	rgba, ok := w.assets.rgba(key)
	if !ok || len(rgba.Pix) == 0 {
		return nil
	}
	b := rgba.Bounds()
	tex, err := w.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, int32(b.Dx()), int32(b.Dy()))
	if err != nil {
		GetInternalLogger().Error("Icon texture not created", "key", key, "error", err)
		return nil
	}
	if err := tex.Update(nil, unsafe.Pointer(&rgba.Pix[0]), rgba.Stride); err != nil {
		tex.Destroy()
		GetInternalLogger().Error("Icon upload failed", "key", key, "error", err)
		return nil
	}
	_ = tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	w.icons.Set(key, cachedTexture{texture: tex, w: int32(b.Dx()), h: int32(b.Dy())})
	return tex
}

// renderReset reports whether t invalidates render targets, and whether
// every other texture went with them.
func renderReset(t uint32) (reset, deviceLost bool) {
	switch t {
	case sdl.RENDER_TARGETS_RESET:
		return true, false
	case sdl.RENDER_DEVICE_RESET:
		return true, true
	}
	return false, false
}

// dropDeviceTextures forgets every cached texture after the renderer lost
// its device. They are recreated on next use.
func (w *Window) dropDeviceTextures() {
	w.text.Destroy()
	w.icons.Destroy()
	if w.background != nil {
		w.background.Destroy()
		w.background = nil
	}
}

func (w *Window) Close() error {
	w.text.Destroy()
	w.icons.Destroy()
	if w.fonts != nil {
		w.fonts.close()
	}
	if w.background != nil {
		w.background.Destroy()
	}

	var errs []error
	if err := w.renderer.Destroy(); err != nil {
		errs = append(errs, err)
	}
	if err := w.window.Destroy(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
