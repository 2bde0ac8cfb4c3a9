package text

import (
	"bufio"
	"io"
)

type encoder struct {
	r *bufio.Reader
	w *bufio.Writer

	// Characters of the current line, held back until the line ends
	line  []rune
	cells int
}

func (e *encoder) flushLine(dropLast bool) error {
	line := e.line
	if dropLast && len(line) > 0 {
		line = line[:len(line)-1]
	}
	for _, r := range line {
		c := Lookup(r)
		if _, err := e.w.Write(c[:]); err != nil {
			return err
		}
		e.cells++
	}
	e.line = e.line[:0]
	return nil
}

func (e *encoder) encode() error {
	for {
		r, _, err := e.r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch r {
		case '\r':
			// CRLF counts as a single terminator
			if next, _, err := e.r.ReadRune(); err == nil && next != '\n' {
				if err := e.r.UnreadRune(); err != nil {
					return err
				}
			} else if err != nil && err != io.EOF {
				return err
			}
			fallthrough
		case '\n':
			if err := e.flushLine(false); err != nil {
				return err
			}
		default:
			e.line = append(e.line, r)
		}
	}

	// The last line has no terminator, its final character is dropped
	// anyway
	if err := e.flushLine(true); err != nil {
		return err
	}

	return e.w.Flush()
}

// Encode reads the text document from r and writes one cell per character to
// w, a line at a time. The final character of each line is not written,
// normally this is the line terminator. It returns the number of cells
// written.
func Encode(w io.Writer, r io.Reader) (int, error) {
	e := encoder{
		r: bufio.NewReader(r),
		w: bufio.NewWriter(w),
	}

	err := e.encode()

	return e.cells, err
}
