package bayer

import (
	"errors"
	"fmt"
)

// Default sensor readout geometry: a 4096x4096 active area plus one
// leading metadata row (header) and one trailing metadata row (footer).
const (
	DefaultWidth  = 4096
	DefaultHeight = 4098
	DefaultPatch  = 8
)

// ErrFrameSize reports a buffer whose length does not match its geometry.
var ErrFrameSize = errors.New("frame buffer size mismatch")

// Geometry describes the row-major layout of a raw frame buffer.
type Geometry struct {
	Width  int
	Height int
}

// DefaultGeometry returns the standard sensor readout geometry.
func DefaultGeometry() Geometry {
	return Geometry{Width: DefaultWidth, Height: DefaultHeight}
}

// Size returns the expected buffer length in bytes.
func (g Geometry) Size() int { return g.Width * g.Height }

// Validate checks that both dimensions are positive.
func (g Geometry) Validate() error {
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("invalid geometry %dx%d", g.Width, g.Height)
	}
	return nil
}

// Offset converts a (row, col) coordinate to a linear buffer index.
func (g Geometry) Offset(row, col int) int { return row*g.Width + col }

// RowCol converts a linear buffer index back to a (row, col) coordinate.
func (g Geometry) RowCol(offset int) (row, col int) {
	return offset / g.Width, offset % g.Width
}

// CheckFrame verifies that buf holds exactly one frame of this geometry.
// A mismatched buffer is a caller error, never corrected here.
func (g Geometry) CheckFrame(buf []byte) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if len(buf) != g.Size() {
		return fmt.Errorf("%w: got %d bytes, geometry %dx%d expects %d",
			ErrFrameSize, len(buf), g.Width, g.Height, g.Size())
	}
	return nil
}
