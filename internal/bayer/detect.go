package bayer

import (
	"fmt"
	"math"
)

// scoreEpsilon keeps the color-balance ratio defined on all-dark patches.
const scoreEpsilon = 1e-6

// LocateShift scans buf in a grid of patch x patch tiles and returns the
// linear offset of the patch where the green-dominance score jumps the
// most against its scan-order predecessor. A dropped byte breaks the
// Bayer phase from the fault point onward, so the first misaligned patch
// shows an abrupt change in meanG/(meanR+meanB).
//
// The result is a heuristic best guess, never an error: with fewer than
// two patches there is nothing to compare and the offset defaults to 0.
func LocateShift(buf []byte, geom Geometry, patch int, cfa CFA) (int, error) {
	if err := geom.CheckFrame(buf); err != nil {
		return 0, err
	}
	if patch < 2 {
		return 0, fmt.Errorf("patch size %d too small, need at least one 2x2 CFA tile", patch)
	}

	// Strict > keeps the first maximum, so ties resolve to the earliest
	// patch in scan order. Starting below zero makes the first comparison
	// always win.
	bestDiff := -1.0
	bestOffset := 0
	prevScore := 0.0
	havePrev := false

	tile := make([]byte, patch*patch)
	for row := 0; row < geom.Height-patch; row += patch {
		for col := 0; col < geom.Width-patch; col += patch {
			extractTile(buf, geom, row, col, patch, tile)
			meanR, meanG, meanB := PatchMeans(tile, patch, patch, cfa)
			score := meanG / (meanR + meanB + scoreEpsilon)

			if havePrev {
				if d := math.Abs(score - prevScore); d > bestDiff {
					bestDiff = d
					bestOffset = geom.Offset(row, col)
				}
			}
			prevScore = score
			havePrev = true
		}
	}
	return bestOffset, nil
}

// extractTile copies the patch-sized block with top-left (row, col) into
// dst, row by row.
func extractTile(buf []byte, geom Geometry, row, col, patch int, dst []byte) {
	for y := 0; y < patch; y++ {
		src := geom.Offset(row+y, col)
		copy(dst[y*patch:(y+1)*patch], buf[src:src+patch])
	}
}

// Repair returns a copy of buf with a single-byte drop at offset undone:
// the byte at offset becomes zero (the lost sample is unrecoverable) and
// everything after it moves right by one, discarding the final byte so
// the length is preserved. Equivalent to ShiftRegionRight with a
// shift count of 1 over the tail starting at offset.
func Repair(buf []byte, offset int) ([]byte, error) {
	if offset < 0 || offset >= len(buf) {
		return nil, fmt.Errorf("%w: %d outside [0,%d)", ErrInvalidOffset, offset, len(buf))
	}
	fixed := make([]byte, len(buf))
	copy(fixed, buf)
	shiftRight(fixed[offset:], 1)
	return fixed, nil
}
