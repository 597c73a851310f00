package ogimage

import "image/color"

// Site palette, matching the website's slate/indigo scheme.
var (
	Background = color.RGBA{15, 23, 42, 255}    // slate-900
	Primary    = color.RGBA{148, 163, 184, 255} // slate-400
	Accent     = color.RGBA{99, 102, 241, 255}  // indigo-500
	Text       = color.RGBA{241, 245, 249, 255} // slate-100
)
