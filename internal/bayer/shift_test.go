package bayer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftRegionRightBasic(t *testing.T) {
	// The worked example from the tool's contract: shifting the second
	// row of a 3x2 frame right by one drops the final byte, moves the
	// rest and zero-fills the vacated position. The first row is
	// untouched.
	buf := []byte{1, 2, 3, 4, 5, 6}
	geom := Geometry{Width: 3, Height: 2}

	err := ShiftRegionRight(buf, geom, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 0, 4, 5}, buf)
}

func TestShiftRegionRightMultiByte(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6}
	geom := Geometry{Width: 3, Height: 2}

	err := ShiftRegionRight(buf, geom, 2, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0, 0, 3, 4}, buf)
}

func TestShiftRegionRightWholeRegion(t *testing.T) {
	// Shifting by exactly the region size zeroes the whole region.
	buf := []byte{1, 2, 3, 4, 5, 6}
	geom := Geometry{Width: 3, Height: 2}

	err := ShiftRegionRight(buf, geom, 4, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0, 0, 0, 0}, buf)
}

func TestShiftRegionRightValidation(t *testing.T) {
	geom := Geometry{Width: 3, Height: 2}

	tests := []struct {
		name       string
		shiftCount int
		startRow   int
		startCol   int
		want       error
	}{
		{"zero shift", 0, 0, 0, ErrInvalidShiftCount},
		{"negative shift", -1, 0, 0, ErrInvalidShiftCount},
		{"row too large", 1, 2, 0, ErrInvalidOrigin},
		{"negative row", 1, -1, 0, ErrInvalidOrigin},
		{"col too large", 1, 0, 3, ErrInvalidOrigin},
		{"negative col", 1, 0, -1, ErrInvalidOrigin},
		{"shift exceeds region", 4, 1, 0, ErrShiftExceedsRegion},
		{"shift exceeds region by one", 7, 0, 0, ErrShiftExceedsRegion},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := []byte{1, 2, 3, 4, 5, 6}
			before := bytes.Clone(buf)

			err := ShiftRegionRight(buf, geom, tc.shiftCount, tc.startRow, tc.startCol)
			assert.ErrorIs(t, err, tc.want)
			// Validation failures must leave the buffer untouched.
			assert.Equal(t, before, buf)
		})
	}
}

func TestShiftRegionRightFrameSizeMismatch(t *testing.T) {
	geom := Geometry{Width: 3, Height: 2}
	buf := []byte{1, 2, 3, 4, 5}
	before := bytes.Clone(buf)

	err := ShiftRegionRight(buf, geom, 1, 0, 0)
	assert.ErrorIs(t, err, ErrFrameSize)
	assert.Equal(t, before, buf)
}

func TestShiftRegionRightEquivalentToRepair(t *testing.T) {
	// Repair is a single-byte whole-tail region shift; the two must
	// agree for every valid offset.
	geom := Geometry{Width: 4, Height: 3}
	original := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 11, 12}

	for offset := 0; offset < geom.Size(); offset++ {
		repaired, err := Repair(original, offset)
		require.NoError(t, err)

		shifted := bytes.Clone(original)
		row, col := geom.RowCol(offset)
		require.NoError(t, ShiftRegionRight(shifted, geom, 1, row, col))

		assert.Equal(t, shifted, repaired, "offset %d", offset)
	}
}

func TestDoubleRepairEqualsTwoByteShift(t *testing.T) {
	// Verified with literal bytes rather than assumed: repairing twice
	// at the same offset inserts two zeros, exactly what a two-byte
	// region shift does.
	original := []byte{1, 2, 3, 4, 5, 6}
	geom := Geometry{Width: 3, Height: 2}

	once, err := Repair(original, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0, 3, 4, 5}, once)

	twice, err := Repair(once, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0, 0, 3, 4}, twice)

	// Repairing at the inserted zero's right neighbor lands on the same
	// bytes as well.
	neighbor, err := Repair(once, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 0, 0, 3, 4}, neighbor)

	shifted := bytes.Clone(original)
	require.NoError(t, ShiftRegionRight(shifted, geom, 2, 0, 2))
	assert.Equal(t, shifted, twice)
}
