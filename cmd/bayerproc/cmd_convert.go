package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	ibayer "github.com/csug/gobayer/internal/bayer"
	"github.com/csug/gobayer/internal/binfile"
)

var (
	convertOutput       string
	convertMode         string
	convertCompression  int
	convertHeaderFooter bool
	convertSeries       string
	convertJobs         int
)

var convertCmd = &cobra.Command{
	Use:   "convert [inputs...]",
	Short: "Convert .bin frames to PNG and dump metadata",
	Long: `Converts raw .bin frame dumps to PNG. Inputs may be files or
directories; directories are expanded to the .bin files they contain.

Modes:
  normal    - raw mosaic as grayscale PNG
  colorize  - demosaiced color PNG
  both      - both outputs
  none      - no PNG, metadata dump only

Short files are zero-padded and long files truncated to the frame size
before conversion, so partially transferred frames still render.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", ".", "output directory")
	convertCmd.Flags().StringVarP(&convertMode, "mode", "m", "colorize", "output mode: normal, colorize, both or none")
	convertCmd.Flags().IntVarP(&convertCompression, "compression", "c", 3, "PNG compression level 0-9")
	convertCmd.Flags().BoolVar(&convertHeaderFooter, "headerfooter", false, "write header/footer metadata to a text file")
	convertCmd.Flags().StringVarP(&convertSeries, "series", "s", "", "only process files named <series>_*.bin, combined metadata dump")
	convertCmd.Flags().IntVarP(&convertJobs, "jobs", "j", runtime.NumCPU(), "frames converted in parallel")
}

func runConvert(cmd *cobra.Command, args []string) error {
	switch convertMode {
	case "normal", "colorize", "both", "none":
	default:
		return fmt.Errorf("invalid mode %q", convertMode)
	}
	if convertCompression < 0 || convertCompression > 9 {
		return fmt.Errorf("invalid compression level %d", convertCompression)
	}

	fixer, err := newFixer()
	if err != nil {
		return err
	}

	files, err := binfile.Discover(args, convertSeries)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no matching .bin files found")
	}
	if err := os.MkdirAll(convertOutput, 0o755); err != nil {
		return err
	}

	logger.Info("converting frames",
		zap.Int("count", len(files)),
		zap.String("mode", convertMode),
		zap.Int("jobs", convertJobs))

	// Each frame buffer is owned by exactly one worker for the duration
	// of its conversion, so frames parallelize freely.
	metaDumps := make([][]byte, len(files))
	eg := &errgroup.Group{}
	eg.SetLimit(convertJobs)
	for i, file := range files {
		i, file := i, file
		eg.Go(func() error {
			dump, err := convertOne(fixer, file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			metaDumps[i] = dump
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if convertHeaderFooter {
		if err := writeMetadataDumps(files, metaDumps); err != nil {
			return err
		}
	}
	return nil
}

// convertOne renders the PNG outputs for one frame and returns its
// metadata dump when requested.
func convertOne(fixer fixerLike, file string) ([]byte, error) {
	geom := ibayer.Geometry{Width: frameWidth, Height: frameHeight}
	buf, err := binfile.LoadPadded(file, geom)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

	if convertMode == "normal" || convertMode == "both" {
		img, err := fixer.Grayscale(buf)
		if err != nil {
			return nil, err
		}
		if err := writePNG(filepath.Join(convertOutput, base+".png"), img); err != nil {
			return nil, err
		}
	}
	if convertMode == "colorize" || convertMode == "both" {
		img, err := fixer.Colorize(buf)
		if err != nil {
			return nil, err
		}
		if err := writePNG(filepath.Join(convertOutput, base+"_colorize.png"), img); err != nil {
			return nil, err
		}
	}
	logger.Debug("converted frame", zap.String("file", file))

	if !convertHeaderFooter {
		return nil, nil
	}
	meta, err := ibayer.ParseMetadata(buf, geom)
	if err != nil {
		return nil, err
	}
	var dump bytes.Buffer
	if err := meta.Render(&dump, binfile.ImageNumber(file)); err != nil {
		return nil, err
	}
	return dump.Bytes(), nil
}

// fixerLike is the slice of the engine facade convert needs; it keeps
// convertOne testable without a full CLI run.
type fixerLike interface {
	Grayscale(buf []byte) (*image.Gray, error)
	Colorize(buf []byte) (*image.RGBA, error)
}

// writeMetadataDumps writes one combined <series>_header_footer.txt in
// series mode, otherwise one <base>_header_footer.txt per frame.
func writeMetadataDumps(files []string, dumps [][]byte) error {
	if convertSeries != "" {
		combined := filepath.Join(convertOutput, convertSeries+"_header_footer.txt")
		var all bytes.Buffer
		for _, d := range dumps {
			all.Write(d)
		}
		return os.WriteFile(combined, all.Bytes(), 0o644)
	}
	for i, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		out := filepath.Join(convertOutput, base+"_header_footer.txt")
		if err := os.WriteFile(out, dumps[i], 0o644); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := png.Encoder{CompressionLevel: pngLevel(convertCompression)}
	return enc.Encode(f, img)
}

// pngLevel maps the 0-9 scale of the original tooling onto the four
// levels the stdlib encoder supports.
func pngLevel(level int) png.CompressionLevel {
	switch {
	case level == 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
