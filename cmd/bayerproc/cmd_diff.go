package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ibayer "github.com/csug/gobayer/internal/bayer"
)

var diffCmd = &cobra.Command{
	Use:   "diff <file1.bin> <file2.bin>",
	Short: "Report differing byte ranges of two .bin files",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	b, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	for _, r := range ibayer.DiffBuffers(a, b) {
		fmt.Printf("Difference from byte %d to %d\n", r.Start, r.End)
	}
	switch {
	case len(a) > len(b):
		fmt.Printf("%s is longer starting at byte %d\n", args[0], len(b))
	case len(b) > len(a):
		fmt.Printf("%s is longer starting at byte %d\n", args[1], len(a))
	}
	return nil
}
