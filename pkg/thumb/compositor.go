package thumb

import (
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/errors"
	"github.com/eloquentlyAzaria/videosystem-concept/pkg/observability"
)

// Rendering happens at superSample× the target size for anti-aliased edges
// and is downscaled with Lanczos at the very end. All pixel constants below
// are expressed at the supersampled scale.
const (
	superSample = 2

	glyphWidthRatio  = 0.16 // play triangle width as a fraction of canvas width
	glyphHeightRatio = 0.20 // play triangle height as a fraction of canvas height
	glyphAlpha       = 150  // play triangle opacity

	titleFontSize    = 56
	titleWrapChars   = 42 // character budget per wrapped line
	titleMargin      = 32 // distance from the left and bottom edges
	titleShadowShift = 4  // down-right offset of the black text shadow
	lineSpacing      = 1.15

	cornerRadius = 36
	shadowSpread = 16 // inset of the rounded image on the shadow canvas
)

// Compositor fabricates placeholder cover images from a title and an accent
// color. It is stateless apart from the injected font provider and safe for
// concurrent use.
type Compositor struct {
	fonts FontProvider
}

// NewCompositor creates a compositor using the given font provider. A nil
// provider defaults to the system provider with its built-in fallbacks.
func NewCompositor(fonts FontProvider) *Compositor {
	if fonts == nil {
		fonts = NewFontProvider()
	}
	return &Compositor{fonts: fonts}
}

// Composite builds one thumbnail: a flat color fill, a translucent play
// glyph, the wrapped title with a drop shadow, a rounded-corner alpha mask,
// and a blurred shadow halo, downscaled to exactly width×height RGBA.
//
// The only failure mode is a non-positive target size; everything else is
// total (colors clamp, fonts fall back, empty titles render no text).
func (c *Compositor) Composite(title string, clr RGB, width, height int) (*image.NRGBA, error) {
	if err := errors.ValidateSize(width, height); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Render().OnCompositeStart(title, width, height)

	w, h := width*superSample, height*superSample
	dc := gg.NewContext(w, h)
	dc.SetColor(clr.NRGBA())
	dc.Clear()

	drawPlayGlyph(dc, w, h)
	c.drawTitle(dc, title, h)

	rounded := applyMask(dc.Image(), roundedMask(w, h, cornerRadius))
	halo := shadowLayer(w, h, cornerRadius, shadowSpread)
	layered := imaging.Overlay(halo, rounded, image.Pt(shadowSpread, shadowSpread), 1.0)

	out := imaging.Resize(layered, width, height, imaging.Lanczos)
	observability.Render().OnCompositeComplete(title, width, height, time.Since(start), nil)
	return out, nil
}

// drawPlayGlyph draws the translucent white play triangle centered in the
// canvas: apex pointing right, base on the left, shifted left of center by a
// third of the glyph width so the asymmetric footprint reads as centered.
func drawPlayGlyph(dc *gg.Context, w, h int) {
	triW := float64(int(float64(w) * glyphWidthRatio))
	triH := float64(int(float64(h) * glyphHeightRatio))
	cx, cy := float64(w/2), float64(h/2)

	dc.MoveTo(cx-triW/3, cy-triH/2)
	dc.LineTo(cx-triW/3, cy+triH/2)
	dc.LineTo(cx+triW, cy)
	dc.ClosePath()
	dc.SetRGBA255(255, 255, 255, glyphAlpha)
	dc.Fill()
}

// drawTitle renders the wrapped title bottom-left: a solid black copy offset
// down-right first, then the white text on top, which keeps it legible over
// any accent color.
func (c *Compositor) drawTitle(dc *gg.Context, title string, canvasH int) {
	lines := WrapLines(title, titleWrapChars)
	if len(lines) == 0 {
		return
	}

	dc.SetFontFace(c.fonts.Face(titleFontSize))
	lineH := dc.FontHeight() * lineSpacing
	blockH := lineH * float64(len(lines))

	x := float64(titleMargin)
	top := float64(canvasH) - blockH - titleMargin

	dc.SetRGB255(0, 0, 0)
	for i, line := range lines {
		dc.DrawString(line, x+titleShadowShift, top+lineH*float64(i+1)+titleShadowShift)
	}
	dc.SetRGB255(255, 255, 255)
	for i, line := range lines {
		dc.DrawString(line, x, top+lineH*float64(i+1))
	}
}
