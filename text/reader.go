package text

import (
	"errors"
	"image"
	"io"
	"io/ioutil"
)

var errOddLength = errors.New("text: odd number of bytes")

// Decode reads text mode cells from r until EOF.
func Decode(r io.Reader) ([]Cell, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(b)%cellBytes != 0 {
		return nil, errOddLength
	}

	cells := make([]Cell, 0, len(b)/cellBytes)
	for i := 0; i < len(b); i += cellBytes {
		cells = append(cells, Cell{Char: b[i], Attr: b[i+1]})
	}

	return cells, nil
}

const (
	// CellWidth is the width in pixels of a rendered cell
	CellWidth = 9
	// CellHeight is the height in pixels of a rendered cell
	CellHeight = 16
)

// Render draws the cells as blocks of their background color, columns cells
// to a row. Characters aren't drawn. A columns value less than one uses
// Columns.
func Render(cells []Cell, columns int) *image.Paletted {
	if columns < 1 {
		columns = Columns
	}
	rows := (len(cells) + columns - 1) / columns

	m := image.NewPaletted(image.Rect(0, 0, columns*CellWidth, rows*CellHeight), Palette)

	for i, c := range cells {
		tx, ty := i%columns, i/columns
		index := c.Attr >> 4
		for y := 0; y < CellHeight; y++ {
			for x := 0; x < CellWidth; x++ {
				m.SetColorIndex(tx*CellWidth+x, ty*CellHeight+y, index)
			}
		}
	}

	return m
}
