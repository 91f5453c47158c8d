package bayer

import (
	"image"
)

// ActiveArea returns the sensor rows of a readout buffer, dropping the
// leading header row and the trailing footer row. The returned slice
// aliases buf.
func ActiveArea(buf []byte, geom Geometry) ([]byte, Geometry, error) {
	if err := geom.CheckFrame(buf); err != nil {
		return nil, Geometry{}, err
	}
	active := Geometry{Width: geom.Width, Height: geom.Height - 2}
	if err := active.Validate(); err != nil {
		return nil, Geometry{}, err
	}
	return buf[geom.Width : geom.Width+active.Size()], active, nil
}

// Grayscale renders the active area of a readout as an 8-bit grayscale
// image of the raw mosaic samples.
func Grayscale(buf []byte, geom Geometry) (*image.Gray, error) {
	area, active, err := ActiveArea(buf, geom)
	if err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, active.Width, active.Height))
	// image.Gray stride equals width here, so the rows copy straight in.
	copy(img.Pix, area)
	return img, nil
}

// Colorize demosaics the active area of a readout into an RGBA image.
func Colorize(buf []byte, geom Geometry, cfa CFA) (*image.RGBA, error) {
	area, active, err := ActiveArea(buf, geom)
	if err != nil {
		return nil, err
	}
	r, g, b := Demosaic(area, active.Width, active.Height, cfa)
	img := image.NewRGBA(image.Rect(0, 0, active.Width, active.Height))
	for i := 0; i < active.Size(); i++ {
		img.Pix[i*4+0] = clampByte(r[i])
		img.Pix[i*4+1] = clampByte(g[i])
		img.Pix[i*4+2] = clampByte(b[i])
		img.Pix[i*4+3] = 0xFF
	}
	return img, nil
}

func clampByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}
