package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font/gofont/goregular"
)

//go:embed resources/icons/*.svg
var iconFS embed.FS

const iconDir = "resources/icons"

// Assets holds the decoded images and the font every backend draws with.
// Icons are rasterised once, at load time.
type Assets struct {
	images map[string]*image.RGBA
	font   []byte
}

// LoadAssets rasterises the embedded icons at iconSize pixels square and
// reads the UI font from fontPath, or uses the embedded Go font when
// fontPath is empty.
func LoadAssets(iconSize int, fontPath string) (*Assets, error) {
	a := &Assets{images: make(map[string]*image.RGBA)}

	entries, err := fs.ReadDir(iconFS, iconDir)
	if err != nil {
		return nil, fmt.Errorf("list icons: %w", err)
	}
	for _, e := range entries {
		data, err := iconFS.ReadFile(path.Join(iconDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read icon %s: %w", e.Name(), err)
		}
		img, err := RasterizeSVG(data, iconSize, iconSize)
		if err != nil {
			return nil, fmt.Errorf("rasterise icon %s: %w", e.Name(), err)
		}
		a.images["icon/"+strings.TrimSuffix(e.Name(), ".svg")] = img
	}

	if fontPath == "" {
		a.font = goregular.TTF
	} else {
		a.font, err = os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}

	return a, nil
}

// RasterizeSVG renders an SVG document into a w x h image.
func RasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

func (a *Assets) Image(key string) (image.Image, bool) {
	img, ok := a.images[key]
	if !ok {
		return nil, false
	}
	return img, true
}

func (a *Assets) rgba(key string) (*image.RGBA, bool) {
	img, ok := a.images[key]
	return img, ok
}

// Font returns the TTF data of the UI font.
func (a *Assets) Font() []byte {
	return a.font
}

// Keys lists every image key, sorted.
func (a *Assets) Keys() []string {
	keys := make([]string, 0, len(a.images))
	for k := range a.images {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
