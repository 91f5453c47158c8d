// Package main implements bayerproc, the operator CLI for raw Bayer
// frame dumps: conversion to viewable PNGs, byte-shift detection and
// repair, manual region shifting and frame diffing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/csug/gobayer/pkg/bayer"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	frameWidth  int
	frameHeight int
	patchSize   int
	cfaName     string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bayerproc",
	Short: "Process and repair raw Bayer sensor frame dumps",
	Long: `bayerproc works on raw single-channel Bayer .bin frame dumps
(default geometry 4096x4098: a 4096x4096 active area plus one header
row and one footer row).

Subcommands:
  convert      - convert .bin frames to PNG, optionally dumping metadata
  fixshift     - detect a single-byte shift fault and repair it
  shiftregion  - manually right-shift a frame region in place
  diff         - report differing byte ranges of two .bin files
  watch        - process .bin frames as they arrive in a directory`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyConfigFile(cmd); err != nil {
			return err
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newFixer builds the engine facade from the effective global settings.
func newFixer() (*bayer.Fixer, error) {
	return bayer.New(bayer.Options{
		Width:  frameWidth,
		Height: frameHeight,
		Patch:  patchSize,
		CFA:    cfaName,
	})
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file with geometry defaults")
	rootCmd.PersistentFlags().IntVar(&frameWidth, "width", bayer.DefaultWidth, "frame width in pixels")
	rootCmd.PersistentFlags().IntVar(&frameHeight, "height", bayer.DefaultHeight, "frame height in rows, metadata rows included")
	rootCmd.PersistentFlags().IntVar(&patchSize, "patch", bayer.DefaultPatch, "patch size for shift detection")
	rootCmd.PersistentFlags().StringVar(&cfaName, "cfa", "RGGB", "Bayer phase: RGGB, GRBG, GBRG or BGGR")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fixshiftCmd)
	rootCmd.AddCommand(shiftregionCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
