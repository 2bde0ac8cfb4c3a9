/*
Package vgaconv is a library for converting text art and images into the raw
VGA text mode and mode 13h blobs loaded by the kernel.
*/
package vgaconv

import (
	"io"
	"io/ioutil"
	"log"

	"github.com/bodgit/vgaconv/frame"
)

const (
	// TextExt is the extension of a text art source file
	TextExt = ".txt"
	// BlobExt is the extension of every converted file
	BlobExt = ".vga"
	// DefaultOutput is where a converted image is written
	DefaultOutput = "out" + BlobExt
)

// Converter turns source assets into raw blobs.
type Converter struct {
	logger *log.Logger
	report frame.Reporter
}

// New returns a Converter that logs progress to logger and reports
// unhandled colors to diag. Either may be nil to discard the output.
func New(logger *log.Logger, diag io.Writer) *Converter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	if diag == nil {
		diag = ioutil.Discard
	}
	return &Converter{
		logger: logger,
		report: newReporter(diag),
	}
}
