package bayer

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

const (
	// HeaderLen is the number of meaningful bytes in the leading
	// metadata row of a readout.
	HeaderLen = 11
	// FooterLen is the number of meaningful bytes in the trailing
	// metadata row.
	FooterLen = 66

	// integrationTickMs converts integration-time ticks to milliseconds.
	integrationTickMs = 0.0104
)

// Metadata holds the header/footer bytes of a frame and the fields
// decoded from them.
type Metadata struct {
	Header []byte
	Footer []byte

	AnalogGain       uint8
	IntegrationTicks uint16
}

// IntegrationTimeMs returns the exposure time in milliseconds.
func (m Metadata) IntegrationTimeMs() float64 {
	return float64(m.IntegrationTicks) * integrationTickMs
}

// ParseMetadata extracts the header row and footer row fields from a
// full readout buffer. The header occupies the first bytes of row 0, the
// footer the first bytes of the last row.
func ParseMetadata(buf []byte, geom Geometry) (Metadata, error) {
	if err := geom.CheckFrame(buf); err != nil {
		return Metadata{}, err
	}
	if geom.Width < FooterLen {
		return Metadata{}, fmt.Errorf("geometry width %d too narrow for %d-byte footer",
			geom.Width, FooterLen)
	}

	header := make([]byte, HeaderLen)
	copy(header, buf[:HeaderLen])
	footerStart := geom.Offset(geom.Height-1, 0)
	footer := make([]byte, FooterLen)
	copy(footer, buf[footerStart:footerStart+FooterLen])

	return Metadata{
		Header:           header,
		Footer:           footer,
		AnalogGain:       header[8],
		IntegrationTicks: binary.LittleEndian.Uint16(header[9:11]),
	}, nil
}

// Render writes the text dump of the metadata, labeled with name
// (typically the image number extracted from the file name).
func (m Metadata) Render(w io.Writer, name string) error {
	ticks := m.IntegrationTicks
	_, err := fmt.Fprintf(w,
		"File: %s\nHeader : %s\n         %s\nAnalog Gain : 0x%02X (%d)\nIntegration Time  : 0x%04X (%d = %.3f ms)\nFooter : %s\n         %s\n\n",
		name,
		hexBytes(m.Header), decBytes(m.Header),
		m.AnalogGain, m.AnalogGain,
		ticks, ticks, m.IntegrationTimeMs(),
		hexBytes(m.Footer), decBytes(m.Footer))
	return err
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " ")
}

func decBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}
