// Package binfile loads and persists raw .bin frame dumps and discovers
// them on disk. The repair engine itself never touches the filesystem;
// everything file-shaped lives here.
package binfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/csug/gobayer/internal/bayer"
)

// Load reads a frame file and requires it to be exactly one frame of the
// given geometry. Repair tools use this strict form: a short or long
// file is an input error, not something to paper over.
func Load(path string, geom bayer.Geometry) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := geom.CheckFrame(buf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// LoadPadded reads a frame file, zero-padding a short file and
// truncating a long one to the geometry size. The viewer pipeline uses
// this form so a partially transferred frame still renders.
func LoadPadded(path string, geom bayer.Geometry) ([]byte, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	size := geom.Size()
	switch {
	case len(buf) < size:
		padded := make([]byte, size)
		copy(padded, buf)
		return padded, nil
	case len(buf) > size:
		return buf[:size], nil
	default:
		return buf, nil
	}
}

// Write persists buf to path, creating or truncating the file.
func Write(path string, buf []byte) error {
	return os.WriteFile(path, buf, 0o644)
}

// Rewrite updates an existing frame file in place. The file must already
// be exactly len(buf) bytes; a size change would mean the caller is
// writing the wrong frame.
func Rewrite(path string, buf []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() != int64(len(buf)) {
		return fmt.Errorf("%s: file is %d bytes, refusing to rewrite with %d",
			path, info.Size(), len(buf))
	}
	return os.WriteFile(path, buf, info.Mode().Perm())
}

// Discover expands a mix of .bin files and directories into a sorted
// list of frame files. When series is non-empty only files named
// "<series>_*.bin" are kept.
func Discover(inputs []string, series string) ([]string, error) {
	var files []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			pattern := "*.bin"
			if series != "" {
				pattern = series + "_*.bin"
			}
			matches, err := filepath.Glob(filepath.Join(in, pattern))
			if err != nil {
				return nil, err
			}
			files = append(files, matches...)
			continue
		}
		if !strings.HasSuffix(strings.ToLower(in), ".bin") {
			continue
		}
		if series != "" && !strings.HasPrefix(filepath.Base(in), series+"_") {
			continue
		}
		files = append(files, in)
	}
	sort.Strings(files)
	return files, nil
}

// ImageNumber extracts the trailing image-number token from a frame file
// name of the form regionID_timestamp_NNNN.bin. Without underscores the
// whole base name is returned.
func ImageNumber(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if i := strings.LastIndex(base, "_"); i >= 0 {
		return base[i+1:]
	}
	return base
}
