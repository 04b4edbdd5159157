//go:build !nosdl

package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// fontSet opens the UI font lazily at each pixel size a screen asks for.
type fontSet struct {
	data  []byte
	fonts map[int]*ttf.Font
}

func newFontSet(data []byte) *fontSet {
	return &fontSet{data: data, fonts: make(map[int]*ttf.Font)}
}

func (fs *fontSet) size(px int) (*ttf.Font, error) {
	if f, ok := fs.fonts[px]; ok {
		return f, nil
	}
	rw, err := sdl.RWFromMem(fs.data)
	if err != nil {
		return nil, fmt.Errorf("font source: %w", err)
	}
	f, err := ttf.OpenFontRW(rw, 1, px)
	if err != nil {
		return nil, fmt.Errorf("open font at %dpx: %w", px, err)
	}
	fs.fonts[px] = f
	GetInternalLogger().Debug("opened font", "size", px)
	return f, nil
}

func (fs *fontSet) close() {
	for px, f := range fs.fonts {
		f.Close()
		delete(fs.fonts, px)
	}
}
