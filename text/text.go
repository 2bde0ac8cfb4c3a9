/*
Package text implements a VGA text mode encoder and decoder.

Each character of the source document becomes one 2 byte cell; a character
byte followed by an attribute byte where the upper nibble is the background
color and the lower nibble is the foreground color. The character byte is
always written as zero so the picture is drawn purely with background colors.

A full screen is 80 by 25 cells, or 4000 bytes. There is no header so a
consumer must know the geometry.
*/
package text

import "image/color"

const (
	// Columns is the width of the screen in cells
	Columns = 80
	// Rows is the height of the screen in cells
	Rows = 25
	// ScreenCells is the number of cells in a full screen
	ScreenCells = Columns * Rows
	// ScreenSize is the size of a full screen in bytes
	ScreenSize = ScreenCells * cellBytes

	cellBytes = 2
)

// Code is an encoded cell, character byte first.
type Code [cellBytes]byte

var (
	// Blank is a black cell
	Blank = Code{0x00, 0x00}
	// WhiteCode is a white cell
	WhiteCode = Code{0x00, 0xf0}
	// BrownCode is a brown cell
	BrownCode = Code{0x00, 0x60}
	// RedCode is a red cell, used for every unrecognised character
	RedCode = Code{0x00, 0x40}
)

var codes = map[rune]Code{
	' ': Blank,
	'B': Blank,
	'_': Blank,
	'+': Blank,
	'&': Blank,
	'%': Blank,
	'#': Blank,
	'$': WhiteCode,
	',': BrownCode,
	':': BrownCode,
	'*': BrownCode,
}

// Lookup returns the cell written for the character r. Every character has
// a cell; anything not otherwise listed is RedCode.
func Lookup(r rune) Code {
	if c, ok := codes[r]; ok {
		return c
	}
	return RedCode
}

// Palette is the 16 color text mode palette, indexed by attribute nibble.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // black
	color.RGBA{0x00, 0x00, 0xaa, 0xff}, // blue
	color.RGBA{0x00, 0xaa, 0x00, 0xff}, // green
	color.RGBA{0x00, 0xaa, 0xaa, 0xff}, // cyan
	color.RGBA{0xaa, 0x00, 0x00, 0xff}, // red
	color.RGBA{0xaa, 0x00, 0xaa, 0xff}, // magenta
	color.RGBA{0xaa, 0x55, 0x00, 0xff}, // brown
	color.RGBA{0xaa, 0xaa, 0xaa, 0xff}, // light gray
	color.RGBA{0x55, 0x55, 0x55, 0xff}, // dark gray
	color.RGBA{0x55, 0x55, 0xff, 0xff}, // light blue
	color.RGBA{0x55, 0xff, 0x55, 0xff}, // light green
	color.RGBA{0x55, 0xff, 0xff, 0xff}, // light cyan
	color.RGBA{0xff, 0x55, 0x55, 0xff}, // light red
	color.RGBA{0xff, 0x55, 0xff, 0xff}, // pink
	color.RGBA{0xff, 0xff, 0x55, 0xff}, // yellow
	color.RGBA{0xff, 0xff, 0xff, 0xff}, // white
}

// Cell is a decoded text mode cell.
type Cell struct {
	Char byte
	Attr byte
}

// Foreground returns the foreground color of the cell
func (c Cell) Foreground() color.Color {
	return Palette[c.Attr&0x0f]
}

// Background returns the background color of the cell
func (c Cell) Background() color.Color {
	return Palette[c.Attr>>4]
}
