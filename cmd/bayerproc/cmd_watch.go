package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ibayer "github.com/csug/gobayer/internal/bayer"
	"github.com/csug/gobayer/internal/binfile"
)

var (
	watchFix      bool
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Convert .bin frames as they arrive in a directory",
	Long: `Watches a directory and converts each newly written .bin frame
using the convert settings. With --fix, an automatic shift detection and
repair pass runs first and the repaired frame replaces the original.

Frames are only picked up once their size matches the configured
geometry, so partially transferred files are left alone until complete.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&convertOutput, "output", "o", ".", "output directory")
	watchCmd.Flags().StringVarP(&convertMode, "mode", "m", "colorize", "output mode: normal, colorize, both or none")
	watchCmd.Flags().IntVarP(&convertCompression, "compression", "c", 3, "PNG compression level 0-9")
	watchCmd.Flags().BoolVar(&watchFix, "fix", false, "run shift detection and repair before converting")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "quiet period before a changed file is processed")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	fixer, err := newFixer()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(convertOutput, 0o755); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for frames", zap.String("dir", dir))

	// Writers deliver a burst of events per file; a per-path timer
	// collapses the burst into one processing attempt after the quiet
	// period.
	var mu sync.Mutex
	timers := make(map[string]*time.Timer)
	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := timers[path]; ok {
			t.Reset(watchDebounce)
			return
		}
		timers[path] = time.AfterFunc(watchDebounce, func() {
			mu.Lock()
			delete(timers, path)
			mu.Unlock()
			processArrival(fixer, path)
		})
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !strings.HasSuffix(strings.ToLower(event.Name), ".bin") {
				continue
			}
			schedule(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// processArrival handles one settled frame file: optional repair in
// place, then PNG conversion.
func processArrival(fixer fixerLike, path string) {
	geom := ibayer.Geometry{Width: frameWidth, Height: frameHeight}
	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("frame vanished before processing", zap.String("file", path), zap.Error(err))
		return
	}
	if info.Size() != int64(geom.Size()) {
		logger.Debug("frame not complete yet, skipping",
			zap.String("file", path),
			zap.Int64("size", info.Size()),
			zap.Int("expected", geom.Size()))
		return
	}

	if watchFix {
		if err := fixArrival(path, geom); err != nil {
			logger.Error("auto-repair failed", zap.String("file", path), zap.Error(err))
			return
		}
	}
	if convertMode == "none" {
		return
	}
	if _, err := convertOne(fixer, path); err != nil {
		logger.Error("conversion failed", zap.String("file", path), zap.Error(err))
		return
	}
	logger.Info("frame processed", zap.String("file", filepath.Base(path)))
}

func fixArrival(path string, geom ibayer.Geometry) error {
	buf, err := binfile.Load(path, geom)
	if err != nil {
		return err
	}
	cfa, err := ibayer.ParseCFA(cfaName)
	if err != nil {
		return err
	}
	offset, err := ibayer.LocateShift(buf, geom, patchSize, cfa)
	if err != nil {
		return err
	}
	fixed, err := ibayer.Repair(buf, offset)
	if err != nil {
		return err
	}
	row, col := geom.RowCol(offset)
	logger.Info("auto-repair applied",
		zap.String("file", path),
		zap.Int("offset", offset),
		zap.Int("row", row),
		zap.Int("col", col))
	return binfile.Rewrite(path, fixed)
}
