package thumb

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// preferredFont is the outline font the compositor looks for on the host.
const preferredFont = "DejaVuSans.ttf"

// FontProvider supplies the face used for title text. Implementations must
// always return a usable face: missing fonts degrade in fidelity, never in
// correctness.
type FontProvider interface {
	// Face returns a font face at the given point size.
	Face(size float64) font.Face
}

// SystemFontProvider locates the preferred outline font on the host,
// falling back to the embedded Go Regular face and finally to a built-in
// bitmap face. The lookup and parse happen once, on first use.
type SystemFontProvider struct {
	name string

	once sync.Once
	ttf  *truetype.Font
	otf  *opentype.Font
}

// NewFontProvider creates a provider that looks for the default preferred
// font (DejaVu Sans).
func NewFontProvider() *SystemFontProvider {
	return &SystemFontProvider{name: preferredFont}
}

// NewFontProviderFor creates a provider that looks for a specific font file
// name (e.g. "Arial.ttf") in the host's font directories.
func NewFontProviderFor(name string) *SystemFontProvider {
	return &SystemFontProvider{name: name}
}

// Face returns a face at the given size. The priority order is the host
// font, the embedded Go Regular font, then the fixed-size bitmap face.
func (p *SystemFontProvider) Face(size float64) font.Face {
	p.once.Do(p.load)

	if p.ttf != nil {
		return truetype.NewFace(p.ttf, &truetype.Options{Size: size})
	}
	if p.otf != nil {
		face, err := opentype.NewFace(p.otf, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

func (p *SystemFontProvider) load() {
	if path, err := findfont.Find(p.name); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if f, err := truetype.Parse(data); err == nil {
				p.ttf = f
				return
			}
		}
	}
	// Embedded fallback; goregular ships with x/image so this only fails on
	// a corrupted build, in which case Face degrades to the bitmap font.
	if f, err := opentype.Parse(goregular.TTF); err == nil {
		p.otf = f
	}
}

// StaticFontProvider returns a fixed face regardless of the requested size.
// Tests use it to make text layout independent of installed system fonts.
type StaticFontProvider struct {
	F font.Face
}

// Face returns the fixed face.
func (p StaticFontProvider) Face(float64) font.Face {
	if p.F == nil {
		return basicfont.Face7x13
	}
	return p.F
}
