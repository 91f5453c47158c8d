package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
)

// createTestFrame writes a synthetic RGGB readout: a header row, a
// smooth color-gradient mosaic for the active area and a footer row.
// When drop >= 0 the frame is corrupted the way a real transfer fault
// corrupts it: the byte at that offset is deleted and a zero byte is
// appended so the file size stays unchanged.
func createTestFrame(filename string, width, height, drop int, gain uint8, integration uint16) error {
	if width < 2 || height < 4 {
		return fmt.Errorf("frame too small: %dx%d", width, height)
	}
	buf := make([]byte, width*height)

	// Header row: 11 meaningful bytes, gain at byte 8, integration time
	// ticks little-endian at bytes 9..10.
	copy(buf[:8], []byte{0xA5, 0x5A, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00})
	buf[8] = gain
	binary.LittleEndian.PutUint16(buf[9:11], integration)

	// Active area: gradient scene sampled through the RGGB mosaic.
	for row := 1; row < height-1; row++ {
		for col := 0; col < width; col++ {
			r := byte(col * 255 / width)
			g := byte(200)
			b := byte(row * 255 / height)

			var sample byte
			switch {
			case row%2 == 1 && col%2 == 0: // red site (active rows start at row 1)
				sample = r
			case row%2 == 1 && col%2 == 1:
				sample = g
			case row%2 == 0 && col%2 == 0:
				sample = g
			default:
				sample = b
			}
			buf[row*width+col] = sample
		}
	}

	// Footer row: 66 meaningful bytes.
	footerStart := (height - 1) * width
	for i := 0; i < 66 && i < width; i++ {
		buf[footerStart+i] = byte(i)
	}

	if drop >= 0 {
		if drop >= len(buf) {
			return fmt.Errorf("drop offset %d outside frame of %d bytes", drop, len(buf))
		}
		copy(buf[drop:], buf[drop+1:])
		buf[len(buf)-1] = 0
	}

	return os.WriteFile(filename, buf, 0o644)
}

func main() {
	var output = flag.String("output", "test_frame.bin", "Output .bin file")
	var width = flag.Int("width", 4096, "Frame width")
	var height = flag.Int("height", 4098, "Frame height including metadata rows")
	var drop = flag.Int("drop", -1, "Simulate a dropped byte at this offset (-1 for a clean frame)")
	var gain = flag.Int("gain", 0x10, "Analog gain header byte")
	var integration = flag.Int("integration", 0x0400, "Integration time ticks")
	flag.Parse()

	err := createTestFrame(*output, *width, *height, *drop, uint8(*gain), uint16(*integration))
	if err != nil {
		log.Fatalf("Failed to create test frame: %v", err)
	}

	if *drop >= 0 {
		fmt.Printf("Created corrupted test frame %s (%dx%d, byte dropped at %d)\n",
			*output, *width, *height, *drop)
	} else {
		fmt.Printf("Created test frame %s (%dx%d)\n", *output, *width, *height)
	}
}
