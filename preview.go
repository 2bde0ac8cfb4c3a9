package vgaconv

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/bodgit/vgaconv/frame"
	"github.com/bodgit/vgaconv/text"
)

// PreviewText renders the text mode blob in file as a PNG written to out,
// columns cells wide.
func (c *Converter) PreviewText(file, out string, columns int) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	cells, err := text.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	m := text.Render(cells, columns)

	if err := createFile(out, func(w io.Writer) error {
		return png.Encode(w, m)
	}); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}

	c.logger.Printf("Rendered %d cells from \"%s\" to \"%s\"\n", len(cells), file, out)

	return nil
}

// PreviewFrame renders the mode 13h blob in file as a PNG written to out.
func (c *Converter) PreviewFrame(file, out string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := frame.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	if err := createFile(out, func(w io.Writer) error {
		return png.Encode(w, m)
	}); err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}

	c.logger.Printf("Rendered \"%s\" to \"%s\"\n", file, out)

	return nil
}
