// Package bayer is the public surface of the frame repair engine. It
// wraps the internal implementation behind a small, stable API.
package bayer

import (
	"image"

	"github.com/csug/gobayer/internal/bayer"
)

// Frame geometry defaults for the standard sensor readout.
const (
	DefaultWidth  = bayer.DefaultWidth
	DefaultHeight = bayer.DefaultHeight
	DefaultPatch  = bayer.DefaultPatch
)

// Error kinds re-exported so callers can match with errors.Is.
var (
	ErrFrameSize          = bayer.ErrFrameSize
	ErrInvalidShiftCount  = bayer.ErrInvalidShiftCount
	ErrInvalidOrigin      = bayer.ErrInvalidOrigin
	ErrInvalidOffset      = bayer.ErrInvalidOffset
	ErrShiftExceedsRegion = bayer.ErrShiftExceedsRegion
)

// Options configures a Fixer. Zero values select the standard sensor
// geometry, an 8x8 patch grid and the RGGB phase.
type Options struct {
	// Width and Height describe the full readout including metadata rows.
	Width  int
	Height int
	// Patch is the side length of the scoring grid tiles.
	Patch int
	// CFA names the Bayer phase: "RGGB", "GRBG", "GBRG" or "BGGR".
	CFA string
}

// Fixer detects and repairs byte-shift corruption in raw frame buffers.
type Fixer struct {
	geom  bayer.Geometry
	patch int
	cfa   bayer.CFA
}

// New creates a Fixer from the provided options.
func New(opts Options) (*Fixer, error) {
	geom := bayer.Geometry{Width: opts.Width, Height: opts.Height}
	if geom.Width == 0 && geom.Height == 0 {
		geom = bayer.DefaultGeometry()
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	patch := opts.Patch
	if patch == 0 {
		patch = bayer.DefaultPatch
	}
	cfa := bayer.CFARGGB
	if opts.CFA != "" {
		var err error
		cfa, err = bayer.ParseCFA(opts.CFA)
		if err != nil {
			return nil, err
		}
	}
	return &Fixer{geom: geom, patch: patch, cfa: cfa}, nil
}

// Geometry returns the configured frame dimensions.
func (f *Fixer) Geometry() (width, height int) {
	return f.geom.Width, f.geom.Height
}

// Locate returns the most likely fault offset in buf. It is a heuristic:
// a well-formed buffer always yields an offset, even when no real fault
// exists.
func (f *Fixer) Locate(buf []byte) (int, error) {
	return bayer.LocateShift(buf, f.geom, f.patch, f.cfa)
}

// Repair returns a copy of buf with a single-byte drop at offset undone.
func (f *Fixer) Repair(buf []byte, offset int) ([]byte, error) {
	return bayer.Repair(buf, offset)
}

// LocateAndRepair runs detection and correction in one step, returning
// the repaired buffer and the offset that was used.
func (f *Fixer) LocateAndRepair(buf []byte) ([]byte, int, error) {
	offset, err := f.Locate(buf)
	if err != nil {
		return nil, 0, err
	}
	fixed, err := f.Repair(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	return fixed, offset, nil
}

// ShiftRegion right-shifts the tail of buf starting at (startRow,
// startCol) by shiftCount bytes in place, zero-filling the vacated
// bytes. This is the manual override for multi-byte or targeted shifts.
func (f *Fixer) ShiftRegion(buf []byte, shiftCount, startRow, startCol int) error {
	return bayer.ShiftRegionRight(buf, f.geom, shiftCount, startRow, startCol)
}

// Metadata decodes the header/footer fields of a readout buffer.
func (f *Fixer) Metadata(buf []byte) (Metadata, error) {
	m, err := bayer.ParseMetadata(buf, f.geom)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		AnalogGain:        m.AnalogGain,
		IntegrationTicks:  m.IntegrationTicks,
		IntegrationTimeMs: m.IntegrationTimeMs(),
	}, nil
}

// Grayscale renders the active area as a raw-mosaic grayscale image.
func (f *Fixer) Grayscale(buf []byte) (*image.Gray, error) {
	return bayer.Grayscale(buf, f.geom)
}

// Colorize demosaics the active area into a color image.
func (f *Fixer) Colorize(buf []byte) (*image.RGBA, error) {
	return bayer.Colorize(buf, f.geom, f.cfa)
}

// Metadata is the decoded form of a frame's header fields.
type Metadata struct {
	AnalogGain        uint8
	IntegrationTicks  uint16
	IntegrationTimeMs float64
}
