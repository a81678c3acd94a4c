package core

import "image/color"

// Predefined colors for kernel-drawn elements.
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}      // Default map fill
	ColorTile       = color.RGBA{255, 0, 0, 255}    // Bounds tiles when shown
	ColorLabelFg    = color.RGBA{0, 0, 0, 255}      // Text box foreground
	ColorLabelBg    = color.RGBA{255, 255, 255, 255} // Text box background
	ColorDefaultFg  = color.RGBA{255, 255, 255, 255}
)

// RGBA converts any color to 8-bit RGBA. Nil converts to transparent black.
func RGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
