package ebiten

import "image/color"

// Window colours
var (
	colorBackground = color.RGBA{26, 26, 46, 255} // Dark blue-gray
	colorMapBorder  = color.RGBA{60, 60, 80, 255} // Frame around the map
	colorPanel      = color.RGBA{30, 30, 50, 220} // Semi-transparent dark
)

// Layout constants, in pixels
const (
	// debugLineHeight is the line height of ebitenutil.DebugPrintAt's font
	debugLineHeight = 16

	hudPadding = 8

	// hudLines: status, three help lines, blank, up to five messages
	hudLines  = 10
	hudHeight = hudLines*debugLineHeight + hudPadding*2

	mapMargin = 12
)
