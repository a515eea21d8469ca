package ringterm

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// cursorRune is the marker drawn in place of the character stored at the
// cursor cell.
const cursorRune = '|'

// ScreenshotConfig controls how the tail window is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil, uses basicfont.Face7x13.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Canvas is the color the viewport is cleared with. If nil, uses CanvasBackground.
	Canvas *color.RGBA

	// ShowCursor controls whether the cursor marker is drawn. Default true.
	ShowCursor *bool
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Screenshot renders the tail window of buf into a width x height pixel image
// using default settings (basicfont, black canvas).
func Screenshot(buf *Buffer, width, height int) *image.RGBA {
	return ScreenshotWithConfig(buf, width, height, &ScreenshotConfig{})
}

// ScreenshotWithConfig renders the tail window of buf into a width x height
// pixel image. The viewport in cells is derived from the pixel size and the
// cell size: maxCol = width/cellWidth, maxRow = height/cellHeight. The cursor
// cell is drawn as a bar marker instead of its stored character; newline and
// empty cells draw nothing but still occupy their column.
func ScreenshotWithConfig(buf *Buffer, width, height int, cfg *ScreenshotConfig) *image.RGBA {
	face := cfg.Font
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	if cellWidth == 0 || cellHeight == 0 {
		metrics := face.Metrics()
		if cellWidth == 0 {
			adv, _ := face.GlyphAdvance('M')
			cellWidth = adv.Ceil()
			if cellWidth == 0 {
				cellWidth = 7 // fallback for basicfont
			}
		}
		if cellHeight == 0 {
			cellHeight = metrics.Height.Ceil()
		}
	}

	canvas := CanvasBackground
	if cfg.Canvas != nil {
		canvas = *cfg.Canvas
	}

	showCursor := true
	if cfg.ShowCursor != nil {
		showCursor = *cfg.ShowCursor
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, canvas)
		}
	}

	maxCol := width / cellWidth
	maxRow := height / cellHeight

	tail := buf.Tail(maxCol, maxRow)
	metrics := face.Metrics()

	it := NewLineIter(tail, maxCol)
	for {
		col, row, g, ok := it.Next()
		if !ok {
			break
		}

		x := col * cellWidth
		y := row * cellHeight
		baseline := y + metrics.Ascent.Ceil()

		if buf.IsAtCursor(g) {
			if showCursor {
				drawRune(img, face, cursorRune, cursorColor(g.Fg), x, baseline)
			}
			continue
		}

		if g.Char == GlyphNewline || g.Char == GlyphEmpty {
			continue
		}

		// Fill the cell background unless fully transparent.
		if _, _, _, a := g.Bg.RGBA(); a > 0 {
			for py := 0; py < cellHeight; py++ {
				for px := 0; px < cellWidth; px++ {
					img.Set(x+px, y+py, g.Bg)
				}
			}
		}

		drawRune(img, face, g.Char, g.Fg, x, baseline)
	}

	return img
}

// drawRune draws a single character with its dot on the given baseline.
func drawRune(img *image.RGBA, face font.Face, r rune, c color.Color, x, baseline int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(string(r))
}

// cursorColor derives the cursor marker color from the glyph foreground,
// lifting the lightness of dark foregrounds so the marker stays visible on
// the canvas.
func cursorColor(fg color.Color) color.Color {
	c, ok := colorful.MakeColor(fg)
	if !ok {
		// MakeColor fails on fully transparent colors.
		return DefaultForeground
	}

	h, s, l := c.Hsl()
	if l < 0.4 {
		l = 0.7
	}
	return colorful.Hsl(h, s, l).Clamped()
}
