package render

import "image/color"

// Viewer chrome colors and status bar geometry.
var (
	StatusForeground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	StatusBackground = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}

	// Height of the status strip rendered under the field, in logical pixels.
	StatusBarHeight = 28

	// Side of the QR code square anchored in the viewer's corner.
	QRSizePx = 160
)
