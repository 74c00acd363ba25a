package thumb

import (
	"image"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/errors"
)

// countingRender returns tiny bitmaps and counts how often it runs.
func countingRender(calls *atomic.Int64) RenderFunc {
	return func(title string, clr RGB, width, height int) (*image.NRGBA, error) {
		calls.Add(1)
		if err := errors.ValidateSize(width, height); err != nil {
			return nil, err
		}
		return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
	}
}

func TestCacheReturnsSameInstance(t *testing.T) {
	var calls atomic.Int64
	c := NewCache(countingRender(&calls))

	key := Key{Title: "X", Color: RGB{R: 10, G: 20, B: 30}, Width: 320, Height: 180}

	first, err := c.GetOrCreate(key)
	if err != nil {
		t.Fatalf("first GetOrCreate: %v", err)
	}
	second, err := c.GetOrCreate(key)
	if err != nil {
		t.Fatalf("second GetOrCreate: %v", err)
	}

	if first != second {
		t.Error("repeated lookups must return the identical instance, not a recomputed copy")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("render ran %d times, want 1", n)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheKeysAreStructural(t *testing.T) {
	var calls atomic.Int64
	c := NewCache(countingRender(&calls))

	base := Key{Title: "X", Color: RGB{R: 10, G: 20, B: 30}, Width: 320, Height: 180}
	variants := []Key{
		{Title: "Y", Color: base.Color, Width: 320, Height: 180},
		{Title: "X", Color: RGB{R: 11, G: 20, B: 30}, Width: 320, Height: 180}, // one channel off
		{Title: "X", Color: base.Color, Width: 321, Height: 180},
		{Title: "X", Color: base.Color, Width: 320, Height: 181},
	}

	baseImg, err := c.GetOrCreate(base)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range variants {
		img, err := c.GetOrCreate(k)
		if err != nil {
			t.Fatalf("GetOrCreate(%+v): %v", k, err)
		}
		if img == baseImg {
			t.Errorf("key %+v collapsed with base key", k)
		}
	}
	if c.Len() != len(variants)+1 {
		t.Errorf("Len() = %d, want %d", c.Len(), len(variants)+1)
	}
}

func TestCacheConcurrentSameKey(t *testing.T) {
	var calls atomic.Int64
	c := NewCache(countingRender(&calls))

	key := Key{Title: "concurrent", Color: RGB{R: 1, G: 2, B: 3}, Width: 64, Height: 36}

	const goroutines = 16
	results := make([]*image.NRGBA, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			img, err := c.GetOrCreate(key)
			if err != nil {
				t.Errorf("goroutine %d: %v", i, err)
				return
			}
			results[i] = img
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatalf("goroutine %d got a different instance", i)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("render ran %d times for one key, want 1", n)
	}
}

func TestCacheDoesNotStoreFailures(t *testing.T) {
	var calls atomic.Int64
	c := NewCache(countingRender(&calls))

	bad := Key{Title: "X", Color: RGB{}, Width: 0, Height: 180}
	if _, err := c.GetOrCreate(bad); !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Fatalf("error = %v, want %v", err, errors.ErrCodeInvalidSize)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failure, want 0", c.Len())
	}

	// A second attempt renders again rather than serving a cached failure.
	if _, err := c.GetOrCreate(bad); err == nil {
		t.Error("second attempt should fail again")
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("render ran %d times, want 2", n)
	}
}

func TestCacheHoverFrames(t *testing.T) {
	var calls atomic.Int64
	c := NewCache(countingRender(&calls))

	base := RGB{R: 220, G: 20, B: 60}
	frames, err := c.HoverFrames("title", base, 32, 18)
	if err != nil {
		t.Fatal(err)
	}

	if frames[0] == frames[1] || frames[0] == frames[2] || frames[1] == frames[2] {
		t.Error("hover frames should be distinct cache entries")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	// Asking again serves all three from cache.
	again, err := c.HoverFrames("title", base, 32, 18)
	if err != nil {
		t.Fatal(err)
	}
	for i := range frames {
		if frames[i] != again[i] {
			t.Errorf("frame %d was recomputed", i)
		}
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("render ran %d times, want 3", n)
	}
}
