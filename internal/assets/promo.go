package assets

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/Sparajuli7/myayai/internal/config"
	"github.com/Sparajuli7/myayai/internal/fontutil"
)

// Promo tile palette and pill geometry.
const (
	promoBGColor       = "#111827"
	promoSubtitleColor = "#B4D2FF"

	pillRadius = 18
	pillPadX   = 16
	pillPadY   = 10
)

// stripeShade returns the fill for the scanline band starting at row y.
// The shade cycles every 48 rows.
func stripeShade(y int) (r, g, b int) {
	shade := 24 + y%48
	return shade, shade + 2, shade + 5
}

// Promo renders the store promo tile: a dark background with a horizontal
// scanline texture, the product title centered at 28% height with the
// subtitle below it, and an accent pill carrying the tagline at 70% height.
func Promo(width, height int, title, subtitle string, cfg config.Config) image.Image {
	dc := gg.NewContext(width, height)

	dc.SetHexColor(promoBGColor)
	dc.Clear()

	// 4-row band every 6 rows.
	for y := 0; y < height; y += 6 {
		r, g, b := stripeShade(y)
		dc.SetRGB255(r, g, b)
		dc.DrawRectangle(0, float64(y), float64(width), 4)
		dc.Fill()
	}

	cx := float64(width) / 2

	titleFace := fontutil.Face(float64(min(width/12, 64)), cfg.FontPaths...)
	_, titleH := extent(titleFace, title)
	titleCY := float64(height) * 0.28
	dc.SetRGB255(255, 255, 255)
	drawBoxedCentered(dc, titleFace, title, cx, titleCY)

	subFace := fontutil.Face(float64(min(width/24, 32)), cfg.FontPaths...)
	subW, _ := extent(subFace, subtitle)
	dc.SetHexColor(promoSubtitleColor)
	drawBoxed(dc, subFace, subtitle, cx-float64(subW)/2, titleCY+float64(titleH)/2+12)

	pillFace := fontutil.Face(float64(min(width/32, 22)), cfg.FontPaths...)
	pw, ph := extent(pillFace, cfg.Tagline)
	pillCY := float64(height) * 0.70
	r, g, b := cfg.AccentRGB()
	dc.SetRGB255(r, g, b)
	dc.DrawRoundedRectangle(
		cx-float64(pw)/2-pillPadX,
		pillCY-float64(ph)/2-pillPadY,
		float64(pw)+2*pillPadX,
		float64(ph)+2*pillPadY,
		pillRadius,
	)
	dc.Fill()
	dc.SetRGB255(0, 0, 0)
	drawBoxedCentered(dc, pillFace, cfg.Tagline, cx, pillCY)

	return dc.Image()
}
