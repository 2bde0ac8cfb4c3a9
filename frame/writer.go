package frame

import (
	"bufio"
	"image"
	"image/color"
	"io"
)

// Reporter is called for every pixel that is classified as Other.
type Reporter func(x, y int, c color.NRGBA)

type encoder struct {
	w      *bufio.Writer
	report Reporter
}

func nrgba64(c color.NRGBA64) color.NRGBA {
	return color.NRGBA{uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8), uint8(c.A >> 8)}
}

// Any alpha channel is thrown away, the color channels are used as-is.
// Only premultiplied colors lose their channels when fully transparent
func rgb(m image.Image, x, y int) color.NRGBA {
	switch nm := m.(type) {
	case *image.NRGBA:
		return nm.NRGBAAt(x, y)
	case *image.NRGBA64:
		return nrgba64(nm.NRGBA64At(x, y))
	}

	switch c := m.At(x, y).(type) {
	case color.NRGBA:
		return c
	case color.NRGBA64:
		return nrgba64(c)
	default:
		return color.NRGBAModel.Convert(c).(color.NRGBA)
	}
}

func (e *encoder) encode(m image.Image) error {
	b := m.Bounds()

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := rgb(m, b.Min.X+x, b.Min.Y+y)

			class := Classify(c.R, c.G, c.B)
			if class == Other && e.report != nil {
				e.report(x, y, c)
			}

			if err := e.w.WriteByte(Code(class)); err != nil {
				return err
			}
		}
	}

	return e.w.Flush()
}

// Encode writes the Image m to w in VGA mode 13h format. Any pixel that
// doesn't match a known color is written as the Other code and passed to
// report, which may be nil.
func Encode(w io.Writer, m image.Image, report Reporter) error {
	b := m.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return ErrWrongSize
	}

	e := encoder{
		w:      bufio.NewWriterSize(w, Width),
		report: report,
	}

	return e.encode(m)
}
