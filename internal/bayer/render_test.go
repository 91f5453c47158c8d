package bayer

import (
	"errors"
	"testing"
)

func TestActiveArea(t *testing.T) {
	geom := Geometry{Width: 4, Height: 6}
	buf := make([]byte, geom.Size())
	for i := range buf {
		buf[i] = byte(i)
	}

	area, active, err := ActiveArea(buf, geom)
	if err != nil {
		t.Fatalf("ActiveArea: %v", err)
	}
	if active.Width != 4 || active.Height != 4 {
		t.Errorf("Active geometry %dx%d, want 4x4", active.Width, active.Height)
	}
	// Header row dropped: the area starts at the second readout row.
	if area[0] != 4 {
		t.Errorf("First active byte %d, want 4", area[0])
	}
	if len(area) != active.Size() {
		t.Errorf("Active area length %d, want %d", len(area), active.Size())
	}
	// Footer row dropped: last active byte precedes the final row.
	if area[len(area)-1] != byte(geom.Size()-geom.Width-1) {
		t.Errorf("Last active byte %d, want %d", area[len(area)-1], geom.Size()-geom.Width-1)
	}
}

func TestActiveAreaTooShort(t *testing.T) {
	geom := Geometry{Width: 4, Height: 2}
	_, _, err := ActiveArea(make([]byte, geom.Size()), geom)
	if err == nil {
		t.Error("Expected error for a frame with no rows beyond the metadata rows")
	}
}

func TestActiveAreaSizeMismatch(t *testing.T) {
	geom := Geometry{Width: 4, Height: 6}
	_, _, err := ActiveArea(make([]byte, 5), geom)
	if !errors.Is(err, ErrFrameSize) {
		t.Errorf("Expected ErrFrameSize, got %v", err)
	}
}

func TestGrayscale(t *testing.T) {
	geom := Geometry{Width: 8, Height: 6}
	buf := make([]byte, geom.Size())
	for i := range buf {
		buf[i] = byte(i)
	}

	img, err := Grayscale(buf, geom)
	if err != nil {
		t.Fatalf("Grayscale: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 4 {
		t.Errorf("Image bounds %dx%d, want 8x4", bounds.Dx(), bounds.Dy())
	}
	if img.GrayAt(0, 0).Y != buf[geom.Width] {
		t.Errorf("Pixel (0,0) = %d, want %d", img.GrayAt(0, 0).Y, buf[geom.Width])
	}
}

func TestColorizeFlatField(t *testing.T) {
	geom := Geometry{Width: 8, Height: 6}
	buf := make([]byte, geom.Size())
	for i := range buf {
		buf[i] = 100
	}

	img, err := Colorize(buf, geom, CFARGGB)
	if err != nil {
		t.Fatalf("Colorize: %v", err)
	}
	c := img.RGBAAt(3, 2)
	if c.R != 100 || c.G != 100 || c.B != 100 || c.A != 255 {
		t.Errorf("Pixel (3,2) = %v, want 100/100/100/255", c)
	}
}
