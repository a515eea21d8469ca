package ringterm

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// DefaultForeground is the foreground of a default-attributed glyph (opaque white).
var DefaultForeground = color.RGBA{255, 255, 255, 255}

// DefaultBackground is the background of a default-attributed glyph (fully transparent black).
var DefaultBackground = color.RGBA{0, 0, 0, 0}

// CanvasBackground is the color renderers clear the viewport with before drawing cells.
var CanvasBackground = color.RGBA{0, 0, 0, 255}

// Palette is the standard 256-color table: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var Palette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231) and grayscale (232-255) are generated in init.
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		Palette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// resolveColor resolves the color carried by an SGR attribute. RGB colors are
// used as-is, indexed and named colors go through the palette, and attributes
// without a specific color fall back to the glyph defaults.
func resolveColor(attr ansicode.TerminalCharAttribute, fg bool) color.Color {
	if attr.RGBColor != nil {
		return color.RGBA{
			R: attr.RGBColor.R,
			G: attr.RGBColor.G,
			B: attr.RGBColor.B,
			A: 255,
		}
	}

	if attr.IndexedColor != nil {
		if idx := int(attr.IndexedColor.Index); idx >= 0 && idx < 256 {
			return Palette[idx]
		}
	}

	if attr.NamedColor != nil {
		if name := int(*attr.NamedColor); name >= 0 && name < 16 {
			return Palette[name]
		}
	}

	if fg {
		return DefaultForeground
	}
	return DefaultBackground
}
