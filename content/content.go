// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package content

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	// Registered decoders for LoadImage. Assets in other formats need
	// their decoder imported by the host application.
	_ "image/jpeg"
	_ "image/png"

	"github.com/gogpu/engine/cache"
)

// Errors.
var (
	// ErrNoContent is returned by the Nop manager for every request.
	ErrNoContent = errors.New("content: no content configured")
)

// Manager loads named assets for systems during their LoadContent phase.
//
// Managers are safe for concurrent use: all systems load content at the
// same time.
type Manager interface {
	// Open opens the named asset for reading.
	Open(name string) (fs.File, error)

	// LoadImage opens and decodes the named image asset.
	LoadImage(name string) (image.Image, error)
}

// defaultImageCacheSize bounds the decoded-image cache of an FS manager.
const defaultImageCacheSize = 64

// FS is a Manager backed by an fs.FS. Decoded images are cached by name,
// so systems sharing an asset decode it once.
type FS struct {
	fsys   fs.FS
	images *cache.Cache[string, image.Image]
}

var _ Manager = (*FS)(nil)

// NewFS creates a Manager reading assets from fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{
		fsys:   fsys,
		images: cache.New[string, image.Image](defaultImageCacheSize),
	}
}

// Open opens the named asset for reading.
func (m *FS) Open(name string) (fs.File, error) {
	f, err := m.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("content: open %q: %w", name, err)
	}
	return f, nil
}

// LoadImage opens and decodes the named image asset. Repeated loads of
// the same name return the cached decode.
func (m *FS) LoadImage(name string) (image.Image, error) {
	if img, ok := m.images.Get(name); ok {
		return img, nil
	}

	f, err := m.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("content: decode %q: %w", name, err)
	}
	logger().Debug("content: decoded image",
		"name", name,
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	m.images.Set(name, img)
	return img, nil
}

// Nop is the Manager used when no content source is configured. Every
// request fails with ErrNoContent, which systems treat as "no assets".
type Nop struct{}

var _ Manager = Nop{}

// Open implements Manager.
func (Nop) Open(name string) (fs.File, error) {
	return nil, fmt.Errorf("%w: %q", ErrNoContent, name)
}

// LoadImage implements Manager.
func (Nop) LoadImage(name string) (image.Image, error) {
	return nil, fmt.Errorf("%w: %q", ErrNoContent, name)
}
