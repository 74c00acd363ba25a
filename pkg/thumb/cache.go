package thumb

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/observability"
)

// Key identifies one memoized thumbnail. Equality is structural over all
// fields, on the exact integer channel values used for rendering: two keys
// that differ by a single channel never collapse.
type Key struct {
	Title  string
	Color  RGB
	Width  int
	Height int
}

// id renders the key as a flat string for singleflight grouping and hooks.
func (k Key) id() string {
	return fmt.Sprintf("%s|%s|%dx%d", k.Title, k.Color, k.Width, k.Height)
}

// RenderFunc produces the bitmap for a cache miss. Compositor.Composite
// satisfies this signature.
type RenderFunc func(title string, clr RGB, width, height int) (*image.NRGBA, error)

// Cache memoizes composited thumbnails by Key. Repeated lookups for the same
// key return the identical stored image, never a recomputed copy. Entries are
// never evicted; the workload is a few dozen keys for the process lifetime.
//
// The cache is safe for concurrent use: same-key misses collapse into a
// single composite via singleflight, distinct keys render fully in parallel.
type Cache struct {
	render RenderFunc

	mu      sync.RWMutex
	entries map[Key]*image.NRGBA
	group   singleflight.Group
}

// NewCache creates a cache that fills misses with render.
func NewCache(render RenderFunc) *Cache {
	return &Cache{
		render:  render,
		entries: make(map[Key]*image.NRGBA),
	}
}

// NewDefaultCache creates a cache backed by a fresh compositor with the
// default system font provider.
func NewDefaultCache() *Cache {
	return NewCache(NewCompositor(nil).Composite)
}

// GetOrCreate returns the cached bitmap for key, compositing and storing it
// on first request. Invalid sizes surface the compositor's error; nothing is
// stored on failure.
func (c *Cache) GetOrCreate(key Key) (*image.NRGBA, error) {
	c.mu.RLock()
	img, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		observability.Cache().OnHit(key.id())
		return img, nil
	}
	observability.Cache().OnMiss(key.id())

	v, err, _ := c.group.Do(key.id(), func() (any, error) {
		// A concurrent requester may have stored the entry between our read
		// and this singleflight slot winning.
		c.mu.RLock()
		img, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return img, nil
		}

		img, err := c.render(key.Title, key.Color, key.Width, key.Height)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = img
		c.mu.Unlock()
		observability.Cache().OnStore(key.id(), len(img.Pix))
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*image.NRGBA), nil
}

// Get is the call contract consumed by visual elements: it returns a bitmap
// of exactly width×height for the given title and accent color.
func (c *Cache) Get(title string, clr RGB, width, height int) (*image.NRGBA, error) {
	return c.GetOrCreate(Key{Title: title, Color: clr, Width: width, Height: height})
}

// HoverFrames returns the three animation frames for one record: the base
// thumbnail plus the brighter and darker color variants, each memoized under
// its own key.
func (c *Cache) HoverFrames(title string, clr RGB, width, height int) ([3]*image.NRGBA, error) {
	var frames [3]*image.NRGBA
	for i, v := range Variants(clr) {
		img, err := c.Get(title, v, width, height)
		if err != nil {
			return frames, err
		}
		frames[i] = img
	}
	return frames, nil
}

// Len reports the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
