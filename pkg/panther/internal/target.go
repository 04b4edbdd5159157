//go:build !nosdl

package internal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/skygrel/panther/pkg/panther/compositor"
	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/veandco/go-sdl2/sdl"
)

// wipeSegments is how many triangles approximate the reveal circle.
const wipeSegments = 96

// sdlTarget is a screen's offscreen texture.
type sdlTarget struct {
	window        *Window
	texture       *sdl.Texture
	width, height int
}

func (t *sdlTarget) Size() (int, int) {
	return t.width, t.height
}

func (t *sdlTarget) Clear(c color.NRGBA) error {
	if err := t.window.bind(t.texture); err != nil {
		return err
	}
	r := t.window.renderer
	if err := r.SetDrawBlendMode(sdl.BLENDMODE_NONE); err != nil {
		return err
	}
	r.SetDrawColor(c.R, c.G, c.B, c.A)
	if err := r.Clear(); err != nil {
		return err
	}
	return r.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
}

func (t *sdlTarget) FillRect(rect geom.Rect, c color.NRGBA) {
	if t.window.bind(t.texture) != nil {
		return
	}
	x, y, w, h := rect.Pixels(t.width, t.height)
	r := t.window.renderer
	r.SetDrawColor(c.R, c.G, c.B, c.A)
	r.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)})
}

func (t *sdlTarget) DrawText(text string, box geom.Rect, align constants.TextAlign, c color.NRGBA) {
	if text == "" || t.window.fonts == nil || t.window.bind(t.texture) != nil {
		return
	}
	x, y, w, h := box.Pixels(t.width, t.height)
	if h <= 0 {
		return
	}

	entry, err := t.window.textTexture(text, h, c)
	if err != nil {
		GetInternalLogger().Error("Text not rendered", "text", text, "error", err)
		return
	}

	dst := sdl.Rect{X: int32(x), Y: int32(y) + (int32(h)-entry.h)/2, W: entry.w, H: entry.h}
	switch align {
	case constants.TextAlignCenter:
		dst.X = int32(x) + (int32(w)-entry.w)/2
	case constants.TextAlignRight:
		dst.X = int32(x+w) - entry.w
	}
	t.window.renderer.Copy(entry.texture, nil, &dst)
}

func (t *sdlTarget) DrawImage(key string, rect geom.Rect) {
	tex := t.window.icon(key)
	if tex == nil || t.window.bind(t.texture) != nil {
		return
	}
	x, y, w, h := rect.Pixels(t.width, t.height)
	t.window.renderer.Copy(tex, nil, &sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)})
}

// Composite draws the target onto the window. A partial reveal is a
// triangle fan around the circle centre, textured with the target.
func (t *sdlTarget) Composite(c compositor.Circle) error {
	if err := t.window.bind(nil); err != nil {
		return err
	}
	r := t.window.renderer
	if c.Covers() {
		return r.Copy(t.texture, nil, nil)
	}

	ww, wh := t.window.Size()
	cx, cy, radius := CirclePixels(c, ww, wh)
	if radius <= 0 {
		return nil
	}
	vertices, indices := circleFan(cx, cy, radius, float64(ww), float64(wh))
	return r.RenderGeometry(t.texture, vertices, indices)
}

func (t *sdlTarget) Destroy() {
	if t.texture == nil {
		return
	}
	if t.window.bound == t.texture {
		_ = t.window.bind(nil)
	}
	t.texture.Destroy()
	t.texture = nil
}

func circleFan(cx, cy, radius, w, h float64) ([]sdl.Vertex, []int32) {
	white := sdl.Color{R: 255, G: 255, B: 255, A: 255}
	vertex := func(x, y float64) sdl.Vertex {
		return sdl.Vertex{
			Position: sdl.FPoint{X: float32(x), Y: float32(y)},
			Color:    white,
			TexCoord: sdl.FPoint{X: float32(x / w), Y: float32(y / h)},
		}
	}

	vertices := make([]sdl.Vertex, 0, wipeSegments+1)
	vertices = append(vertices, vertex(cx, cy))
	for i := range wipeSegments {
		a := 2 * math.Pi * float64(i) / wipeSegments
		vertices = append(vertices, vertex(cx+radius*math.Cos(a), cy+radius*math.Sin(a)))
	}

	indices := make([]int32, 0, wipeSegments*3)
	for i := int32(1); i <= wipeSegments; i++ {
		next := i%wipeSegments + 1
		indices = append(indices, 0, i, next)
	}
	return vertices, indices
}

func (w *Window) textTexture(text string, px int, c color.NRGBA) (cachedTexture, error) {
	key := fmt.Sprintf("%d|%02x%02x%02x%02x|%s", px, c.R, c.G, c.B, c.A, text)
	if e, ok := w.text.Get(key); ok {
		return e, nil
	}

	font, err := w.fonts.size(px)
	if err != nil {
		return cachedTexture{}, err
	}
	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return cachedTexture{}, err
	}
	defer surface.Free()

	tex, err := w.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return cachedTexture{}, err
	}
	e := cachedTexture{texture: tex, w: surface.W, h: surface.H}
	w.text.Set(key, e)
	return e, nil
}
