// Package assets renders the MyAyAI store listing placeholders: extension
// icons, Chrome Web Store screenshots, and the small promo tile.
package assets

import (
	"fmt"
	"image"
	"strings"

	"github.com/Sparajuli7/myayai/internal/config"
)

// Kind identifies one family of generated assets.
type Kind string

const (
	KindIcons       Kind = "icons"
	KindScreenshots Kind = "screenshots"
	KindPromo       Kind = "promo"
)

// IconSizes are the square icon dimensions the extension manifest references.
var IconSizes = []int{16, 32, 48, 128}

// Store-mandated dimensions for the promo tile and screenshots.
const (
	PromoWidth  = 440
	PromoHeight = 280

	ScreenshotWidth  = 1280
	ScreenshotHeight = 800
)

// screenshotCopy is the fixed caption deck, one entry per screenshot.
var screenshotCopy = []struct {
	title, subtitle string
}{
	{"One‑click Optimization", "Upgrade prompts while preserving intent"},
	{"Dashboard & Insights", "Track improvements and time saved"},
	{"Works Across Platforms", "ChatGPT, Claude, Gemini, Perplexity, Copilot, Poe"},
	{"Achievements", "Build better prompting habits over time"},
	{"Before → After", "See improvements called out clearly"},
}

// Asset is one entry of the fixed output manifest.
type Asset struct {
	Kind     Kind
	Name     string // output file name
	Width    int
	Height   int
	Title    string // screenshot caption or promo title
	Subtitle string
}

// Manifest returns the full asset set in generation order: icons first, then
// screenshots, then the promo tile.
func Manifest(cfg config.Config) []Asset {
	out := make([]Asset, 0, len(IconSizes)+len(screenshotCopy)+1)
	for _, size := range IconSizes {
		out = append(out, Asset{
			Kind:   KindIcons,
			Name:   fmt.Sprintf("icon%d.png", size),
			Width:  size,
			Height: size,
		})
	}
	for i, c := range screenshotCopy {
		out = append(out, Asset{
			Kind:     KindScreenshots,
			Name:     fmt.Sprintf("screenshot-%d.png", i+1),
			Width:    ScreenshotWidth,
			Height:   ScreenshotHeight,
			Title:    c.title,
			Subtitle: c.subtitle,
		})
	}
	out = append(out, Asset{
		Kind:     KindPromo,
		Name:     fmt.Sprintf("promo-%dx%d.png", PromoWidth, PromoHeight),
		Width:    PromoWidth,
		Height:   PromoHeight,
		Title:    cfg.Product,
		Subtitle: cfg.Subtitle,
	})
	return out
}

// ParseKinds parses a comma-separated kind filter such as "icons,promo".
// Empty input selects all kinds and returns a nil map.
func ParseKinds(s string) (map[Kind]bool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	out := make(map[Kind]bool)
	for _, part := range strings.Split(s, ",") {
		switch k := Kind(strings.TrimSpace(part)); k {
		case KindIcons, KindScreenshots, KindPromo:
			out[k] = true
		default:
			return nil, fmt.Errorf("unknown asset kind %q (want icons, screenshots or promo)", strings.TrimSpace(part))
		}
	}
	return out, nil
}

// Render draws a single manifest asset.
func Render(a Asset, cfg config.Config) image.Image {
	switch a.Kind {
	case KindIcons:
		return Icon(a.Width, cfg)
	case KindScreenshots:
		return Screenshot(a.Title, a.Subtitle, cfg)
	default:
		return Promo(a.Width, a.Height, a.Title, a.Subtitle, cfg)
	}
}
