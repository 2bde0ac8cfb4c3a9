/*
Package frame implements a VGA mode 13h frame encoder and decoder.

The format is defined as 320 by 200 pixels exactly, each pixel stored as a
single palette index. Pixels are written row by row starting from the top-left
corner. There is no header or compression so the resulting file is always
64000 bytes in size.

Only a handful of colors are recognised; see Classify.
*/
package frame

import (
	"errors"
	"image/color"
)

const (
	// Width is the width of a frame in pixels
	Width = 320
	// Height is the height of a frame in pixels
	Height = 200
	// Size is the size of an encoded frame in bytes
	Size = Width * Height
)

// Class is the color class a pixel is sorted into.
type Class int

const (
	// Red is pure red, (255, 0, 0)
	Red Class = iota
	// Light is any gray or white where all channels are equal and at least 127
	Light
	// Black is pure black, (0, 0, 0)
	Black
	// Other is any other color
	Other
)

var classNames = [...]string{
	Red:   "red",
	Light: "light",
	Black: "black",
	Other: "other",
}

func (c Class) String() string {
	if c < Red || c > Other {
		return "unknown"
	}
	return classNames[c]
}

// Palette indices written for each class.
var codes = [...]byte{
	Red:   0x04,
	Light: 0x80,
	Black: 0x00,
	Other: 0x30,
}

// ErrWrongSize is returned when an image is not 320 by 200 pixels.
var ErrWrongSize = errors.New("frame: image is wrong size")

// Classify sorts a color into its Class. The tests are made in order so the
// first one that matches wins.
func Classify(r, g, b uint8) Class {
	switch {
	case r == 0xff && g == 0 && b == 0:
		return Red
	case r == g && g == b && r >= 0x7f:
		return Light
	case r == 0 && g == 0 && b == 0:
		return Black
	default:
		return Other
	}
}

// Code returns the palette index written for a Class.
func Code(c Class) byte {
	if c < Red || c > Other {
		return codes[Other]
	}
	return codes[c]
}

// Palette is used when decoding a frame. Indices that the encoder writes are
// given a representative color, everything else is black.
var Palette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.RGBA{0x00, 0x00, 0x00, 0xff}
	}
	p[codes[Red]] = color.RGBA{0xff, 0x00, 0x00, 0xff}
	p[codes[Light]] = color.RGBA{0xff, 0xff, 0xff, 0xff}
	p[codes[Other]] = color.RGBA{0xff, 0x00, 0xff, 0xff}
	return p
}()
