package assets

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// extent measures the glyph box of s in whole pixels.
func extent(face font.Face, s string) (w, h int) {
	bounds, _ := font.BoundString(face, s)
	return (bounds.Max.X - bounds.Min.X).Ceil(), (bounds.Max.Y - bounds.Min.Y).Ceil()
}

// drawBoxed draws s with the top-left corner of its glyph box at (x, y).
// gg positions strings by their baseline origin; shifting by the box minimum
// turns that into box placement.
func drawBoxed(dc *gg.Context, face font.Face, s string, x, y float64) {
	bounds, _ := font.BoundString(face, s)
	dc.SetFontFace(face)
	dc.DrawString(s, x-float64(bounds.Min.X.Floor()), y-float64(bounds.Min.Y.Floor()))
}

// drawBoxedCentered draws s with the center of its glyph box at (cx, cy).
func drawBoxedCentered(dc *gg.Context, face font.Face, s string, cx, cy float64) {
	w, h := extent(face, s)
	drawBoxed(dc, face, s, cx-float64(w)/2, cy-float64(h)/2)
}
