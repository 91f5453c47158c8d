package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ibayer "github.com/csug/gobayer/internal/bayer"
	"github.com/csug/gobayer/internal/binfile"
)

var fixshiftCmd = &cobra.Command{
	Use:   "fixshift <input.bin> <output.bin>",
	Short: "Detect a single-byte shift fault and write a repaired copy",
	Long: `Scans the frame in a patch grid, scores each patch by its
green-channel dominance and treats the largest score discontinuity as
the fault offset. The lost byte is replaced with zero and everything
after it shifts right by one.

Detection is a best-effort heuristic: an offset is always reported,
even when the frame has no real fault. Use shiftregion for manual
override when detection is wrong or the drop spans multiple bytes.`,
	Args: cobra.ExactArgs(2),
	RunE: runFixshift,
}

func runFixshift(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	fixer, err := newFixer()
	if err != nil {
		return err
	}
	geom := ibayer.Geometry{Width: frameWidth, Height: frameHeight}
	buf, err := binfile.Load(input, geom)
	if err != nil {
		return err
	}

	fixed, offset, err := fixer.LocateAndRepair(buf)
	if err != nil {
		return err
	}
	row, col := geom.RowCol(offset)
	logger.Info("likely missing byte located",
		zap.String("file", input),
		zap.Int("offset", offset),
		zap.Int("row", row),
		zap.Int("col", col))

	if err := binfile.Write(output, fixed); err != nil {
		return err
	}
	logger.Info("corrected frame written", zap.String("file", output))
	return nil
}
