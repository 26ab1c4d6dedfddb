package assets

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/Sparajuli7/myayai/internal/config"
	"github.com/Sparajuli7/myayai/internal/fontutil"
)

// Screenshot palette.
const (
	shotBGColor       = "#0E131E"
	shotHeaderColor   = "#192338"
	shotSubtitleColor = "#B9CDEB"
	shotPanelColor    = "#161E30"
	shotBorderColor   = "#465A82"
	shotFooterColor   = "#96AAC8"
)

// Screenshot layout.
const (
	shotHeaderHeight = 96
	shotMarginX      = 48
	shotPanelTop     = 180
	shotPanelHeight  = 140
	shotPanelPitch   = 160
	shotPanelCount   = 3
	shotPanelRadius  = 16
)

// Screenshot renders a 1280x800 store screenshot: a header band with the
// caption, a subtitle line, three outlined placeholder panels, and a footer
// note marking the image as generated.
func Screenshot(title, subtitle string, cfg config.Config) image.Image {
	dc := gg.NewContext(ScreenshotWidth, ScreenshotHeight)

	dc.SetHexColor(shotBGColor)
	dc.Clear()

	dc.SetHexColor(shotHeaderColor)
	dc.DrawRectangle(0, 0, ScreenshotWidth, shotHeaderHeight)
	dc.Fill()

	titleFace := fontutil.Face(52, cfg.FontPaths...)
	dc.SetRGB255(255, 255, 255)
	drawBoxed(dc, titleFace, title, shotMarginX, 28)

	subFace := fontutil.Face(28, cfg.FontPaths...)
	dc.SetHexColor(shotSubtitleColor)
	drawBoxed(dc, subFace, subtitle, shotMarginX, shotHeaderHeight+24)

	for i := 0; i < shotPanelCount; i++ {
		y := float64(shotPanelTop + i*shotPanelPitch)
		dc.DrawRoundedRectangle(shotMarginX, y, ScreenshotWidth-2*shotMarginX, shotPanelHeight, shotPanelRadius)
		dc.SetHexColor(shotPanelColor)
		dc.FillPreserve()
		dc.SetHexColor(shotBorderColor)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	footFace := fontutil.Face(18, cfg.FontPaths...)
	dc.SetHexColor(shotFooterColor)
	drawBoxed(dc, footFace, cfg.Footer, shotMarginX, ScreenshotHeight-40)

	return dc.Image()
}
