package thumb

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Shadow layer parameters at supersampled scale.
const (
	shadowAlpha = 140  // opacity of the unblurred shadow shape
	shadowBlur  = 10.0 // Gaussian blur sigma
)

// roundedMask rasterizes a w×h alpha mask that is opaque inside a rounded
// rectangle of the given corner radius and transparent outside. A bitmap
// mask keeps corner rounding portable across raster back-ends; no vector
// clipping API is assumed.
func roundedMask(w, h int, radius float64) *image.Alpha {
	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	dc.SetRGB(1, 1, 1)
	dc.Fill()
	return dc.AsMask()
}

// applyMask copies img and replaces its alpha channel with the mask,
// producing the rounded-corner cutout. img and mask must share dimensions.
func applyMask(img image.Image, mask *image.Alpha) *image.NRGBA {
	out := imaging.Clone(img)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Pix[out.PixOffset(x, y)+3] = mask.AlphaAt(x, y).A
		}
	}
	return out
}

// shadowLayer builds the blurred drop-shadow halo for a w×h rounded
// rectangle: a dark rounded shape placed at the spread inset on a larger
// transparent canvas, then Gaussian-blurred. The result measures
// (w+2*spread)×(h+2*spread).
func shadowLayer(w, h int, radius float64, spread int) *image.NRGBA {
	mask := roundedMask(w, h, radius)
	canvas := image.NewNRGBA(image.Rect(0, 0, w+spread*2, h+spread*2))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			off := canvas.PixOffset(x+spread, y+spread)
			canvas.Pix[off+3] = uint8(int(a) * shadowAlpha / 255)
		}
	}
	return imaging.Blur(canvas, shadowBlur)
}
