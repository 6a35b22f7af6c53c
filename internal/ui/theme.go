package ui

import "image/color"

type Theme struct {
	Background     color.RGBA
	Panel          color.RGBA
	PanelText      color.RGBA
	PanelDim       color.RGBA
	Border         color.RGBA
	StatusBar      color.RGBA
	StatusText     color.RGBA
	Accent         color.RGBA
	Shadow         color.RGBA
	PanelWidthDp   int
	StatusHeightDp int
	MarginDp       int
	PaddingDp      int
}

// DefaultTheme clears to the (0.2, 0.5, 0.8) blue of the triangle demo.
func DefaultTheme() Theme {
	return Theme{
		Background:     color.RGBA{0x33, 0x80, 0xCC, 0xFF},
		Panel:          color.RGBA{0x1B, 0x22, 0x36, 0xFF},
		PanelText:      color.RGBA{0xE8, 0xEC, 0xF4, 0xFF},
		PanelDim:       color.RGBA{0x8A, 0x95, 0xAD, 0xFF},
		Border:         color.RGBA{0x0F, 0x14, 0x22, 0xFF},
		StatusBar:      color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		StatusText:     color.RGBA{0x20, 0x28, 0x38, 0xFF},
		Accent:         color.RGBA{0xF2, 0xB1, 0x34, 0xFF},
		Shadow:         color.RGBA{0x12, 0x1A, 0x3D, 0xFF},
		PanelWidthDp:   300,
		StatusHeightDp: 22,
		MarginDp:       12,
		PaddingDp:      8,
	}
}
