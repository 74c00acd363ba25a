// Package catalog generates the deterministic mock video catalog.
//
// The catalog is a fixed-size list of synthetic video records (title,
// channel, view count, age, duration, accent color) drawn from fixed pools
// with a seeded generator. Identical seeds produce identical sequences on
// every platform, which keeps downstream thumbnail cache keys reproducible
// in tests.
package catalog

import (
	"fmt"
	"math/rand"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/errors"
	"github.com/eloquentlyAzaria/videosystem-concept/pkg/thumb"
)

// Default generation parameters.
const (
	DefaultSeed  = int64(42)
	DefaultCount = 24
)

// View count and age ranges for generated records.
const (
	minViews   = 1_000
	maxViews   = 2_500_000
	maxAgeDays = 900
)

// VideoRecord is one synthetic catalog entry. Records are immutable values:
// they are created once by a Generator and never mutated afterwards.
type VideoRecord struct {
	ID       string    `json:"id" toml:"id"`
	Title    string    `json:"title" toml:"title"`
	Channel  string    `json:"channel" toml:"channel"`
	Views    int       `json:"views" toml:"views"`
	AgeDays  int       `json:"age_days" toml:"age_days"`
	Duration string    `json:"duration" toml:"duration"`
	Color    thumb.RGB `json:"color" toml:"color"`
}

// titlePool is the fixed set of titles records draw from.
var titlePool = []string{
	"How to Build a Python GUI Like YouTube",
	"10 CustomTkinter Tips You Need",
	"Lofi Beats to Code/Study To — 3 Hours",
	"The Secret History of GUIs",
	"I Recreated YouTube in 200 Lines (Kinda)",
	"Designing Dark Mode the Right Way",
	"Keyboard Shortcuts that Change Everything",
	"Productivity Myths Busted!",
	"Learn PIL in 15 Minutes",
	"My Desk Setup 2025 — Minimal & Clean",
}

// channelPool is the fixed set of channel names.
var channelPool = []string{
	"CodeGarden",
	"UI Nerd",
	"Midnight Dev",
	"PixelSmith",
	"The Pythonist",
	"DesignSense",
}

// palette holds the accent colors assigned to records.
var palette = []thumb.RGB{
	{R: 220, G: 20, B: 60},   // crimson
	{R: 65, G: 105, B: 225},  // royal blue
	{R: 255, G: 140, B: 0},   // dark orange
	{R: 34, G: 139, B: 34},   // forest green
	{R: 123, G: 104, B: 238}, // medium slate blue
	{R: 255, G: 99, B: 71},   // tomato
	{R: 0, G: 191, B: 255},   // deep sky blue
}

// Palette returns a copy of the fixed accent color palette.
func Palette() []thumb.RGB {
	out := make([]thumb.RGB, len(palette))
	copy(out, palette)
	return out
}

// Generator produces deterministic catalogs from a fixed seed. Each
// Generator owns its own RNG state, so independent generators (and parallel
// tests) never interfere with each other.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces count records. For each record the draws happen in a
// fixed order (title, channel, views, age, duration parts, color); changing
// the order would change every seeded catalog, so it is part of the contract.
func (g *Generator) Generate(count int) ([]VideoRecord, error) {
	if err := errors.ValidateCount(count); err != nil {
		return nil, err
	}

	records := make([]VideoRecord, 0, count)
	for i := 0; i < count; i++ {
		title := titlePool[g.rng.Intn(len(titlePool))]
		channel := channelPool[g.rng.Intn(len(channelPool))]
		views := minViews + g.rng.Intn(maxViews-minViews+1)
		age := g.rng.Intn(maxAgeDays + 1)
		hours := 1 + g.rng.Intn(2)
		minutes := g.rng.Intn(60)
		seconds := g.rng.Intn(60)
		color := palette[g.rng.Intn(len(palette))]

		records = append(records, VideoRecord{
			ID:       fmt.Sprintf("vid_%d", i),
			Title:    title,
			Channel:  channel,
			Views:    views,
			AgeDays:  age,
			Duration: fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds),
			Color:    color,
		})
	}
	return records, nil
}

// Generate is a convenience wrapper that seeds a fresh generator and
// produces count records in one call.
func Generate(seed int64, count int) ([]VideoRecord, error) {
	return NewGenerator(seed).Generate(count)
}
