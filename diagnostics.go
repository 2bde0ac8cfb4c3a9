package vgaconv

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/bodgit/vgaconv/frame"
	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

const (
	colorOn  = "\033[33m"
	colorOff = "\033[0m"
)

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Unhandled colors are highlighted when going straight to a terminal
func newReporter(w io.Writer) frame.Reporter {
	on, off := "", ""
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		w = colorable.NewColorable(f)
		on, off = colorOn, colorOff
	}
	return func(x, y int, c color.NRGBA) {
		fmt.Fprintf(w, "%sunhandled color (%d, %d, %d)%s at %d,%d\n", on, c.R, c.G, c.B, off, x, y)
	}
}
