//go:build !nosdl

package internal

import (
	"slices"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTextureCache(2)
	destroyed := 0
	c.destroy = func(*sdl.Texture) { destroyed++ }

	c.Set("a", cachedTexture{w: 1})
	c.Set("b", cachedTexture{w: 2})
	if _, ok := c.Get("a"); !ok {
		t.Fatal("a missing")
	}
	c.Set("c", cachedTexture{w: 3})

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if destroyed != 1 || c.Len() != 2 {
		t.Errorf("destroyed=%d len=%d", destroyed, c.Len())
	}
	if !slices.Equal(c.order, []string{"a", "c"}) {
		t.Errorf("order = %v", c.order)
	}

	c.Destroy()
	if destroyed != 3 || c.Len() != 0 {
		t.Errorf("after Destroy destroyed=%d len=%d", destroyed, c.Len())
	}
}

func TestTextureCacheReplace(t *testing.T) {
	c := NewTextureCache(0)
	if c.maxSize != defaultTextCacheSize {
		t.Errorf("maxSize = %d", c.maxSize)
	}
	destroyed := 0
	c.destroy = func(*sdl.Texture) { destroyed++ }

	c.Set("a", cachedTexture{w: 1})
	c.Set("a", cachedTexture{w: 2})
	e, _ := c.Get("a")
	// Both entries carry a nil texture, so nothing is freed on replace.
	if e.w != 2 || destroyed != 0 || len(c.order) != 1 {
		t.Errorf("entry=%+v destroyed=%d order=%v", e, destroyed, c.order)
	}
}
