package bayer

import (
	"errors"
	"fmt"
)

// Region shift parameter violations, reported as distinct kinds so
// callers can assert on the specific contract that failed.
var (
	ErrInvalidShiftCount  = errors.New("invalid shift count")
	ErrInvalidOrigin      = errors.New("invalid start row/col")
	ErrInvalidOffset      = errors.New("invalid region offset")
	ErrShiftExceedsRegion = errors.New("shift count exceeds region size")
)

// ShiftRegionRight shifts the byte range [offset, width*height) of buf
// right by shiftCount in place, where offset = startRow*width + startCol.
// The vacated shiftCount bytes at the start of the region are zero-filled
// and the last shiftCount bytes of the buffer are discarded. Bytes before
// the region are never touched.
//
// All parameters are validated before any byte moves; on error buf is
// unmodified.
func ShiftRegionRight(buf []byte, geom Geometry, shiftCount, startRow, startCol int) error {
	if shiftCount < 1 {
		return fmt.Errorf("%w: %d, must be >= 1", ErrInvalidShiftCount, shiftCount)
	}
	if startRow < 0 || startRow >= geom.Height || startCol < 0 || startCol >= geom.Width {
		return fmt.Errorf("%w: (%d,%d) for geometry %dx%d",
			ErrInvalidOrigin, startRow, startCol, geom.Width, geom.Height)
	}
	offset := geom.Offset(startRow, startCol)
	total := geom.Size()
	// Implied by the origin check under normal geometry, kept as its own
	// check because geometry is caller-overridable.
	if offset < 0 || offset >= total {
		return fmt.Errorf("%w: %d outside [0,%d)", ErrInvalidOffset, offset, total)
	}
	regionSize := total - offset
	if shiftCount > regionSize {
		return fmt.Errorf("%w: shift %d for region size %d",
			ErrShiftExceedsRegion, shiftCount, regionSize)
	}
	if err := geom.CheckFrame(buf); err != nil {
		return err
	}

	shiftRight(buf[offset:], shiftCount)
	return nil
}

// shiftRight moves the first len(region)-count bytes of region to start
// at index count and zero-fills the vacated prefix. The caller has
// already validated 1 <= count <= len(region).
func shiftRight(region []byte, count int) {
	copy(region[count:], region[:len(region)-count])
	for i := 0; i < count; i++ {
		region[i] = 0
	}
}
