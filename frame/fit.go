package frame

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// Policy decides what happens to an image that isn't 320 by 200 pixels.
type Policy int

const (
	// Reject refuses the image with ErrWrongSize
	Reject Policy = iota
	// Clip places the image at the top-left corner of a black frame, any
	// pixels outside the frame are dropped
	Clip
	// Resize scales the image to fit the frame exactly. Nearest neighbour
	// sampling is used so no new colors are introduced
	Resize
)

var policyNames = map[Policy]string{
	Reject: "reject",
	Clip:   "clip",
	Resize: "resize",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy returns the Policy with the given name. An empty name is
// treated as Reject.
func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return Reject, nil
	}
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return Reject, fmt.Errorf("frame: unknown policy %q", s)
}

// Fit applies the Policy p to the Image m. An image that is already the
// correct size is returned untouched regardless of policy.
func Fit(m image.Image, p Policy) (image.Image, error) {
	b := m.Bounds()
	if b.Dx() == Width && b.Dy() == Height {
		return m, nil
	}

	switch p {
	case Reject:
		return nil, fmt.Errorf("%w: %dx%d", ErrWrongSize, b.Dx(), b.Dy())
	case Clip:
		return imaging.Paste(imaging.New(Width, Height, color.Black), m, image.Pt(0, 0)), nil
	case Resize:
		return imaging.Resize(m, Width, Height, imaging.NearestNeighbor), nil
	default:
		return nil, fmt.Errorf("frame: unknown policy %v", p)
	}
}
