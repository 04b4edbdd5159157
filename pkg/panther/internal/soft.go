package internal

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/skygrel/panther/pkg/panther/compositor"
	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
)

// SoftOptions configures a SoftSurface.
type SoftOptions struct {
	Width, Height int
	ClearColor    color.NRGBA
	// OutputDir receives a PNG of every DumpEvery-th presented frame.
	OutputDir string
	DumpEvery int
}

// ScriptedEvent is delivered by Pump once Frame presents have happened.
type ScriptedEvent struct {
	Frame int
	Event Event
}

// SoftSurface is a headless compositor.SurfaceProvider drawing on the CPU
// with gg. Each render target is its own gg context, composited into the
// frame context through an image pattern clipped to the reveal circle.
type SoftSurface struct {
	opts   SoftOptions
	frame  *gg.Context
	assets *Assets
	font   *text.FontSource
	faces  map[int]text.Face
	icons  map[string]*gg.ImageBuf

	presented int
	script    []ScriptedEvent
	input     <-chan Event
}

// NewSoftSurface creates a headless surface. assets may be nil, in which
// case text and icons are skipped.
func NewSoftSurface(opts SoftOptions, assets *Assets) (*SoftSurface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("soft surface size %dx%d", opts.Width, opts.Height)
	}
	if opts.DumpEvery < 1 {
		opts.DumpEvery = 1
	}
	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("create frame dir: %w", err)
		}
	}

	s := &SoftSurface{
		opts:   opts,
		frame:  gg.NewContext(opts.Width, opts.Height),
		assets: assets,
		faces:  make(map[int]text.Face),
		icons:  make(map[string]*gg.ImageBuf),
	}
	if assets != nil {
		src, err := text.NewFontSource(assets.Font())
		if err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
		s.font = src
	}
	return s, nil
}

// Script queues events to be delivered by Pump. Events for the same frame
// are delivered in the given order.
func (s *SoftSurface) Script(events ...ScriptedEvent) {
	s.script = append(s.script, events...)
}

// AttachInput makes Pump also drain ch.
func (s *SoftSurface) AttachInput(ch <-chan Event) {
	s.input = ch
}

func (s *SoftSurface) Size() (int, int) {
	return s.opts.Width, s.opts.Height
}

func (s *SoftSurface) NewTarget(width, height int) (compositor.RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("target size %dx%d", width, height)
	}
	return &softTarget{surface: s, ctx: gg.NewContext(width, height)}, nil
}

func (s *SoftSurface) BeginFrame() error {
	s.frame.ClearWithColor(gg.FromColor(s.opts.ClearColor))
	return nil
}

func (s *SoftSurface) Present() error {
	s.presented++
	if s.opts.OutputDir == "" || s.presented%s.opts.DumpEvery != 0 {
		return nil
	}
	name := filepath.Join(s.opts.OutputDir, fmt.Sprintf("frame-%05d.png", s.presented))
	if err := s.frame.SavePNG(name); err != nil {
		return fmt.Errorf("dump frame: %w", err)
	}
	return nil
}

// Pump delivers scripted events that are due and anything buffered on the
// attached input channel.
func (s *SoftSurface) Pump(sink EventSink) error {
	n := 0
	for _, se := range s.script {
		if se.Frame > s.presented {
			break
		}
		if se.Event.Kind == EventResize {
			s.resize(se.Event.Width, se.Event.Height)
		}
		Deliver(sink, se.Event)
		n++
	}
	s.script = s.script[n:]
	drain(s.input, sink)
	return nil
}

func (s *SoftSurface) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.frame.Close()
	s.opts.Width, s.opts.Height = width, height
	s.frame = gg.NewContext(width, height)
}

// Frame returns the last composed frame.
func (s *SoftSurface) Frame() image.Image {
	return s.frame.Image()
}

// Presented returns how many frames have been presented.
func (s *SoftSurface) Presented() int {
	return s.presented
}

func (s *SoftSurface) Close() error {
	return s.frame.Close()
}

func (s *SoftSurface) face(px int) text.Face {
	if s.font == nil {
		return nil
	}
	if f, ok := s.faces[px]; ok {
		return f
	}
	f := s.font.Face(float64(px))
	s.faces[px] = f
	return f
}

func (s *SoftSurface) icon(key string) *gg.ImageBuf {
	if buf, ok := s.icons[key]; ok {
		return buf
	}
	if s.assets == nil {
		return nil
	}
	img, ok := s.assets.Image(key)
	if !ok {
		return nil
	}
	buf := gg.ImageBufFromImage(img)
	s.icons[key] = buf
	return buf
}

type softTarget struct {
	surface *SoftSurface
	ctx     *gg.Context
}

func (t *softTarget) Size() (int, int) {
	return t.ctx.Width(), t.ctx.Height()
}

func (t *softTarget) FillRect(r geom.Rect, c color.NRGBA) {
	x, y, w, h := r.Pixels(t.Size())
	t.ctx.SetColor(c)
	t.ctx.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	_ = t.ctx.Fill()
}

func (t *softTarget) DrawText(s string, box geom.Rect, align constants.TextAlign, c color.NRGBA) {
	x, y, w, h := box.Pixels(t.Size())
	face := t.surface.face(h)
	if face == nil || s == "" {
		return
	}
	t.ctx.SetFont(face)
	t.ctx.SetColor(c)

	ax, px := 0.0, float64(x)
	switch align {
	case constants.TextAlignCenter:
		ax, px = 0.5, float64(x)+float64(w)/2
	case constants.TextAlignRight:
		ax, px = 1, float64(x+w)
	}
	t.ctx.DrawStringAnchored(s, px, float64(y)+float64(h)/2, ax, 0.5)
}

func (t *softTarget) DrawImage(key string, r geom.Rect) {
	buf := t.surface.icon(key)
	if buf == nil {
		return
	}
	x, y, w, h := r.Pixels(t.Size())
	t.ctx.DrawImageEx(buf, gg.DrawImageOptions{
		X:         float64(x),
		Y:         float64(y),
		DstWidth:  float64(w),
		DstHeight: float64(h),
	})
}

func (t *softTarget) Clear(c color.NRGBA) error {
	t.ctx.ClearWithColor(gg.FromColor(c))
	return nil
}

func (t *softTarget) Composite(c compositor.Circle) error {
	w, h := t.Size()
	frame := t.surface.frame
	buf := gg.ImageBufFromImage(t.ctx.Image())
	frame.SetFillPattern(frame.CreateImagePattern(buf, 0, 0, w, h))

	if c.Covers() {
		frame.DrawRectangle(0, 0, float64(w), float64(h))
	} else {
		cx, cy, r := CirclePixels(c, w, h)
		if r <= 0 {
			return nil
		}
		frame.DrawCircle(cx, cy, r)
	}
	return frame.Fill()
}

func (t *softTarget) Destroy() {
	t.ctx.Close()
}

// CirclePixels converts a normalised reveal circle into top-left origin
// pixel coordinates. The radius scales with the longer side.
func CirclePixels(c compositor.Circle, width, height int) (cx, cy, r float64) {
	w, h := float64(width), float64(height)
	return c.X * w, (1 - c.Y) * h, c.R * math.Max(w, h)
}
