// Package pkg provides the core libraries for Scenehop thumbnail synthesis.
//
// # Overview
//
// Scenehop procedurally generates a deterministic catalog of mock video
// records and composites a YouTube-style cover thumbnail for each one,
// entirely offline. The pkg directory is organized into four main areas:
//
//  1. [catalog] - Deterministic record generation and display formatting
//  2. [thumb] - Thumbnail composition, color variants, and the render cache
//  3. [errors] - Structured errors with machine-readable codes
//  4. [observability] - Pluggable hooks for render and cache events
//
// # Architecture
//
// The typical data flow through Scenehop:
//
//	Seed
//	   ↓
//	[catalog] package (records: title, channel, views, age, color)
//	   ↓
//	[thumb] package (wrap → supersampled draw → mask → shadow → resize)
//	   ↓
//	PNG output / in-memory image
//
// # Quick Start
//
// Generate a catalog and render one cover:
//
//	import (
//	    "github.com/eloquentlyAzaria/videosystem-concept/pkg/catalog"
//	    "github.com/eloquentlyAzaria/videosystem-concept/pkg/thumb"
//	)
//
//	// 1. Generate records
//	records, _ := catalog.Generate(catalog.DefaultSeed, catalog.DefaultCount)
//
//	// 2. Render through the memoizing cache
//	cache := thumb.NewDefaultCache()
//	img, _ := cache.Get(records[0].Title, records[0].Color, 480, 270)
//
//	// 3. Hover frames (base, brightened, darkened)
//	frames, _ := cache.HoverFrames(records[0].Title, records[0].Color, 480, 270)
//
// # Main Packages
//
// [catalog] - Seeded record generation with a fixed title/channel pool and
// a seven color palette. Views, ages, and durations are drawn in a stable
// order so the same seed always yields the same catalog. Also provides the
// display formatters (views, age, metadata line) and list views used by
// the CLI and the preview server.
//
// [thumb] - The compositor draws each cover at double resolution (solid
// fill, translucent play glyph, wrapped two-line title with drop shadow),
// applies a rounded-corner mask, composites a blurred shadow underlay, and
// downsamples with a Lanczos filter. The cache keys on (title, color,
// size), guarantees at most one render per key, and returns the same
// *image.NRGBA pointer on every hit.
//
// [errors] - Structured errors with codes (INVALID_SIZE, VIDEO_NOT_FOUND,
// ...) shared by the library, CLI, and preview server.
//
// [observability] - Interfaces and a process-global registry for render
// and cache instrumentation. All hooks default to no-ops.
//
// [buildinfo] - Version metadata injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/thumb/...        # Specific package
//
// [catalog]: https://pkg.go.dev/github.com/eloquentlyAzaria/videosystem-concept/pkg/catalog
// [thumb]: https://pkg.go.dev/github.com/eloquentlyAzaria/videosystem-concept/pkg/thumb
// [errors]: https://pkg.go.dev/github.com/eloquentlyAzaria/videosystem-concept/pkg/errors
// [observability]: https://pkg.go.dev/github.com/eloquentlyAzaria/videosystem-concept/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/eloquentlyAzaria/videosystem-concept/pkg/buildinfo
package pkg
