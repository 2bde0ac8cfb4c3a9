package frame

import (
	"errors"
	"image"
	"io"
)

var (
	errNotEnough = errors.New("frame: not enough image data")
	errTooMuch   = errors.New("frame: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	image *image.Paletted

	tmp [Size]byte
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	// ReadFull retries short reads so only real trailing data counts
	var extra [1]byte
	switch _, err := io.ReadFull(d.r, extra[:]); err {
	case nil:
		return errTooMuch
	case io.EOF:
	default:
		return err
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, Width, Height), Palette)
	copy(d.image.Pix, d.tmp[:])

	return nil
}

// Decode reads a VGA mode 13h frame from r and returns it as an
// image.Paletted using Palette.
func Decode(r io.Reader) (*image.Paletted, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a VGA mode 13h frame
// after checking the length of the data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Palette,
		Width:      Width,
		Height:     Height,
	}, nil
}
