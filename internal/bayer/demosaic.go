package bayer

import "fmt"

// CFA identifies the 2x2 color-filter-array phase of a Bayer mosaic.
type CFA int

const (
	CFARGGB CFA = iota
	CFAGRBG
	CFAGBRG
	CFABGGR
)

func (c CFA) String() string {
	switch c {
	case CFARGGB:
		return "RGGB"
	case CFAGRBG:
		return "GRBG"
	case CFAGBRG:
		return "GBRG"
	case CFABGGR:
		return "BGGR"
	default:
		return fmt.Sprintf("CFA(%d)", int(c))
	}
}

// ParseCFA maps a pattern name to its CFA value.
func ParseCFA(s string) (CFA, error) {
	switch s {
	case "RGGB", "rggb":
		return CFARGGB, nil
	case "GRBG", "grbg":
		return CFAGRBG, nil
	case "GBRG", "gbrg":
		return CFAGBRG, nil
	case "BGGR", "bggr":
		return CFABGGR, nil
	default:
		return 0, fmt.Errorf("unknown CFA pattern %q", s)
	}
}

// phase returns the row/col parity offsets that map this pattern onto
// the canonical RGGB layout.
func (c CFA) phase() (rowOff, colOff int) {
	switch c {
	case CFARGGB:
		return 0, 0
	case CFAGRBG:
		return 0, 1
	case CFAGBRG:
		return 1, 0
	default: // CFABGGR
		return 1, 1
	}
}

// Demosaic reconstructs per-pixel R, G, B estimates from an 8-bit
// Bayer-filtered tile by bilinear interpolation. Edge pixels use clamped
// (replicated) neighbor lookups. Canonical RGGB layout (row-major):
//
//	(even row, even col) = R
//	(even row, odd  col) = G  (Gr)
//	(odd  row, even col) = G  (Gb)
//	(odd  row, odd  col) = B
//
// Other phases are handled by shifting the parity test.
func Demosaic(tile []byte, width, height int, cfa CFA) (r, g, b []float64) {
	r = make([]float64, width*height)
	g = make([]float64, width*height)
	b = make([]float64, width*height)

	clampX := func(x int) int {
		if x < 0 {
			return 0
		}
		if x >= width {
			return width - 1
		}
		return x
	}
	clampY := func(y int) int {
		if y < 0 {
			return 0
		}
		if y >= height {
			return height - 1
		}
		return y
	}
	px := func(x, y int) float64 {
		return float64(tile[clampY(y)*width+clampX(x)])
	}

	rowOff, colOff := cfa.phase()
	for y := 0; y < height; y++ {
		evenRow := (y+rowOff)%2 == 0
		for x := 0; x < width; x++ {
			evenCol := (x+colOff)%2 == 0
			i := y*width + x

			switch {
			case evenRow && evenCol:
				// Red site, interpolate G and B.
				r[i] = px(x, y)
				g[i] = (px(x-1, y) + px(x+1, y) + px(x, y-1) + px(x, y+1)) / 4
				b[i] = (px(x-1, y-1) + px(x+1, y-1) + px(x-1, y+1) + px(x+1, y+1)) / 4

			case evenRow && !evenCol:
				// Green site on a red row.
				r[i] = (px(x-1, y) + px(x+1, y)) / 2
				g[i] = px(x, y)
				b[i] = (px(x, y-1) + px(x, y+1)) / 2

			case !evenRow && evenCol:
				// Green site on a blue row.
				r[i] = (px(x, y-1) + px(x, y+1)) / 2
				g[i] = px(x, y)
				b[i] = (px(x-1, y) + px(x+1, y)) / 2

			default:
				// Blue site, interpolate R and G.
				r[i] = (px(x-1, y-1) + px(x+1, y-1) + px(x-1, y+1) + px(x+1, y+1)) / 4
				g[i] = (px(x-1, y) + px(x+1, y) + px(x, y-1) + px(x, y+1)) / 4
				b[i] = px(x, y)
			}
		}
	}
	return r, g, b
}

// PatchMeans demosaics a tile and returns the per-channel means.
func PatchMeans(tile []byte, width, height int, cfa CFA) (meanR, meanG, meanB float64) {
	r, g, b := Demosaic(tile, width, height, cfa)
	n := float64(width * height)
	for i := range r {
		meanR += r[i]
		meanG += g[i]
		meanB += b[i]
	}
	return meanR / n, meanG / n, meanB / n
}
