package thumb

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestSystemFontProviderAlwaysReturnsFace(t *testing.T) {
	p := NewFontProvider()
	if face := p.Face(56); face == nil {
		t.Fatal("Face returned nil")
	}
}

func TestMissingFontFallsBack(t *testing.T) {
	// A font that cannot exist on any host still yields a usable face.
	p := NewFontProviderFor("definitely-not-installed-anywhere.ttf")
	face := p.Face(28)
	if face == nil {
		t.Fatal("fallback face is nil")
	}
	if face.Metrics().Height == 0 {
		t.Error("fallback face has no metrics")
	}
}

func TestStaticFontProvider(t *testing.T) {
	p := StaticFontProvider{F: basicfont.Face7x13}
	if p.Face(56) != basicfont.Face7x13 {
		t.Error("static provider should return the fixed face")
	}

	var empty StaticFontProvider
	if empty.Face(12) == nil {
		t.Error("zero-value static provider should fall back to the bitmap face")
	}
}
