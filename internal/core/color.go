package core

import "image/color"

// Color represents a foreground color for a screen cell or a filled shape.
// Uses ANSI color codes for terminal compatibility; RGBA gives the
// equivalent for pixel frontends.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// ANSI returns the terminal color code for c, or "" for the default color.
func (c Color) ANSI() string {
	switch c {
	case ColorBlack:
		return "0"
	case ColorWhite:
		return "7"
	case ColorGray:
		return "245"
	case ColorBrightWhite:
		return "15"
	default:
		return ""
	}
}

// RGBA returns the pixel color for c. ColorDefault is opaque white.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorBlack:
		return color.RGBA{A: 0xff}
	case ColorGray:
		return color.RGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
	default:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
}
