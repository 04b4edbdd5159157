//go:build !nosdl

package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultTextCacheSize = 64

// cachedTexture is a rendered label or icon together with its pixel size.
type cachedTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// TextureCache keeps the most recently drawn label and icon textures so a
// screen redrawing the same widgets every frame does not re-rasterise them.
type TextureCache struct {
	entries map[string]cachedTexture
	order   []string // least recently used first
	maxSize int
	destroy func(*sdl.Texture)
}

func NewTextureCache(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = defaultTextCacheSize
	}
	return &TextureCache{
		entries: make(map[string]cachedTexture),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		destroy: func(t *sdl.Texture) {
			if t != nil {
				t.Destroy()
			}
		},
	}
}

func (c *TextureCache) Get(key string) (cachedTexture, bool) {
	e, ok := c.entries[key]
	if ok {
		c.touch(key)
	}
	return e, ok
}

func (c *TextureCache) Set(key string, e cachedTexture) {
	if old, ok := c.entries[key]; ok {
		if old.texture != e.texture {
			c.destroy(old.texture)
		}
		c.entries[key] = e
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = e
	c.order = append(c.order, key)
}

func (c *TextureCache) Len() int {
	return len(c.entries)
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if e, ok := c.entries[oldest]; ok {
		c.destroy(e.texture)
		delete(c.entries, oldest)
	}
}

// Destroy frees every cached texture. The cache stays usable.
func (c *TextureCache) Destroy() {
	for _, e := range c.entries {
		c.destroy(e.texture)
	}
	c.entries = make(map[string]cachedTexture)
	c.order = c.order[:0]
}
