// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package content

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

// pngBytes encodes a w by h test image as PNG.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}
	return buf.Bytes()
}

func TestNopManager(t *testing.T) {
	var m Nop

	if _, err := m.Open("anything"); !errors.Is(err, ErrNoContent) {
		t.Errorf("Open() err = %v, want ErrNoContent", err)
	}
	if _, err := m.LoadImage("anything"); !errors.Is(err, ErrNoContent) {
		t.Errorf("LoadImage() err = %v, want ErrNoContent", err)
	}
}

func TestFSOpen(t *testing.T) {
	m := NewFS(fstest.MapFS{
		"data/config.txt": {Data: []byte("hello")},
	})

	f, err := m.Open("data/config.txt")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("Size() = %d, want 5", info.Size())
	}
}

func TestFSOpenMissing(t *testing.T) {
	m := NewFS(fstest.MapFS{})

	_, err := m.Open("missing.txt")
	if err == nil {
		t.Fatal("Open() succeeded for missing asset")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() err = %v, want wrapped fs.ErrNotExist", err)
	}
}

func TestFSLoadImage(t *testing.T) {
	m := NewFS(fstest.MapFS{
		"sprites/ship.png": {Data: pngBytes(t, 4, 4)},
	})

	img, err := m.LoadImage("sprites/ship.png")
	if err != nil {
		t.Fatalf("LoadImage() failed: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 4 || got.Dy() != 4 {
		t.Errorf("Bounds() = %v, want 4x4", got)
	}
}

func TestFSLoadImageCaches(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png": {Data: pngBytes(t, 4, 4)},
	}
	m := NewFS(fsys)

	first, err := m.LoadImage("a.png")
	if err != nil {
		t.Fatalf("first LoadImage() failed: %v", err)
	}

	// Corrupt the backing file; the cached decode must still be served.
	fsys["a.png"].Data = []byte("not a png")

	second, err := m.LoadImage("a.png")
	if err != nil {
		t.Fatalf("second LoadImage() failed: %v", err)
	}
	if first != second {
		t.Error("second load did not return the cached image")
	}
}

func TestFSLoadImageErrors(t *testing.T) {
	m := NewFS(fstest.MapFS{
		"broken.png": {Data: []byte("these are not pixels")},
	})

	tests := []struct {
		name  string
		asset string
	}{
		{name: "missing asset", asset: "absent.png"},
		{name: "undecodable bytes", asset: "broken.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.LoadImage(tt.asset); err == nil {
				t.Errorf("LoadImage(%q) succeeded, want error", tt.asset)
			}
		})
	}
}
