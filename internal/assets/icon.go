package assets

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/Sparajuli7/myayai/internal/config"
	"github.com/Sparajuli7/myayai/internal/fontutil"
)

// Icon layers, back to front.
const (
	iconBaseColor  = "#131B26" // shows through the rounded corners
	iconPlateColor = "#19202D"
	accentAlpha    = 230 // circle translucency over the plate
)

// Icon renders the square extension icon at the given pixel size: a dark
// rounded plate, a translucent accent circle of radius size/3, and the brand
// monogram centered on it. The monogram is placed by its measured glyph box
// so it stays centered under any resolved font.
func Icon(size int, cfg config.Config) image.Image {
	dc := gg.NewContext(size, size)

	dc.SetHexColor(iconBaseColor)
	dc.Clear()

	radius := size / 8
	if radius < 6 {
		radius = 6
	}
	dc.SetHexColor(iconPlateColor)
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(radius))
	dc.Fill()

	r, g, b := cfg.AccentRGB()
	dc.SetRGBA255(r, g, b, accentAlpha)
	center := float64(size) / 2
	dc.DrawCircle(center, center, float64(size/3))
	dc.Fill()

	face := fontutil.Face(float64(size/3), cfg.FontPaths...)
	dc.SetRGB255(255, 255, 255)
	drawBoxedCentered(dc, face, cfg.Monogram, center, center)

	return dc.Image()
}
