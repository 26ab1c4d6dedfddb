// Package fontutil resolves TrueType faces for the asset generators.
//
// Resolution order: caller-supplied paths, then well-known system font
// locations, then the embedded Go Regular font. The embedded fallback means
// resolution never fails, so generators run on bare CI images without any
// fonts installed.
package fontutil

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// systemCandidates are tried in order after any caller-supplied paths.
// Unreadable or unparsable entries are skipped silently.
var systemCandidates = []string{
	"/System/Library/Fonts/SFNS.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// fallback is parsed once at startup. goregular.TTF is compiled into the
// binary, so a parse failure is a build defect, not a runtime condition.
var fallback *truetype.Font

func init() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("fontutil: parsing embedded font: " + err.Error())
	}
	fallback = f
}

// Font returns the first parsable TrueType font among the extra candidate
// paths, then the system candidates, then the embedded fallback.
func Font(extra ...string) *truetype.Font {
	candidates := make([]string, 0, len(extra)+len(systemCandidates))
	candidates = append(candidates, extra...)
	candidates = append(candidates, systemCandidates...)
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return f
	}
	return fallback
}

// Face returns a drawable face at the given point size, resolving the font
// with the same candidate order as Font.
func Face(points float64, extra ...string) font.Face {
	return NewFace(Font(extra...), points)
}

// NewFace builds a face from an already-parsed font at the given point size.
func NewFace(f *truetype.Font, points float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
