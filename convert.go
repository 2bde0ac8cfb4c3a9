package vgaconv

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/bodgit/vgaconv/frame"
	"github.com/bodgit/vgaconv/text"
	"github.com/disintegration/imaging"
)

// Creates or truncates file and hands it to fn, the file is always closed
// and any error from closing it is returned if fn succeeded
func createFile(file string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(f)
}

// ConvertText reads base.txt and writes the text mode cells to base.vga.
func (c *Converter) ConvertText(base string) error {
	in, out := base+TextExt, base+BlobExt

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	var cells int
	if err := createFile(out, func(w io.Writer) (err error) {
		cells, err = text.Encode(w, f)
		return
	}); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	c.logger.Printf("Wrote %d cells from \"%s\" to \"%s\"\n", cells, in, out)
	if cells != text.ScreenCells {
		c.logger.Printf("\"%s\" is not a full %dx%d screen, %d cells instead of %d\n", out, text.Columns, text.Rows, cells, text.ScreenCells)
	}

	return nil
}

// ConvertImage decodes the image in file and writes it as a mode 13h frame to
// out. Pixels are read as stored, any orientation tag is ignored. An image
// that isn't 320 by 200 pixels is dealt with according to policy.
func (c *Converter) ConvertImage(file, out string, policy frame.Policy) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := imaging.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	b := m.Bounds()
	if m, err = frame.Fit(m, policy); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if b.Dx() != frame.Width || b.Dy() != frame.Height {
		c.logger.Printf("Applied %s policy to %dx%d image \"%s\"\n", policy, b.Dx(), b.Dy(), file)
	}

	var unhandled int
	report := func(x, y int, rgb color.NRGBA) {
		unhandled++
		c.report(x, y, rgb)
	}

	if err := createFile(out, func(w io.Writer) error {
		return frame.Encode(w, m, report)
	}); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}

	c.logger.Printf("Wrote \"%s\" to \"%s\", %d unhandled pixels\n", file, out, unhandled)

	return nil
}
