package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateTestFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bin")

	err := createTestFrame(path, 128, 130, -1, 0x10, 0x0400)
	if err != nil {
		t.Fatalf("createTestFrame: %v", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(buf) != 128*130 {
		t.Fatalf("Frame size %d, want %d", len(buf), 128*130)
	}
	if buf[8] != 0x10 {
		t.Errorf("Gain byte %#x, want 0x10", buf[8])
	}
	if buf[9] != 0x00 || buf[10] != 0x04 {
		t.Errorf("Integration bytes %#x %#x, want 0x00 0x04", buf[9], buf[10])
	}
}

func TestCreateTestFrameWithDrop(t *testing.T) {
	dir := t.TempDir()
	clean := filepath.Join(dir, "clean.bin")
	broken := filepath.Join(dir, "broken.bin")

	if err := createTestFrame(clean, 64, 66, -1, 0x10, 0x0400); err != nil {
		t.Fatalf("createTestFrame: %v", err)
	}
	const drop = 64 * 8
	if err := createTestFrame(broken, 64, 66, drop, 0x10, 0x0400); err != nil {
		t.Fatalf("createTestFrame: %v", err)
	}

	a, _ := os.ReadFile(clean)
	b, _ := os.ReadFile(broken)
	if len(a) != len(b) {
		t.Fatalf("Sizes differ: %d vs %d", len(a), len(b))
	}
	for i := 0; i < drop; i++ {
		if a[i] != b[i] {
			t.Fatalf("Byte %d differs before the drop offset", i)
		}
	}
	for i := drop; i < len(a)-1; i++ {
		if b[i] != a[i+1] {
			t.Fatalf("Byte %d not shifted left after the drop offset", i)
		}
	}
	if b[len(b)-1] != 0 {
		t.Errorf("Trailing pad byte %d, want 0", b[len(b)-1])
	}
}

func TestCreateTestFrameInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bin")

	if err := createTestFrame(path, 1, 1, -1, 0, 0); err == nil {
		t.Error("Expected error for a frame below the minimum size")
	}
	if err := createTestFrame(path, 64, 66, 64*66, 0, 0); err == nil {
		t.Error("Expected error for a drop offset outside the frame")
	}
}
