// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package content loads named assets for game systems.
//
// # Overview
//
// A Manager hands out assets by name during the LoadContent phase of the
// frame driver. The engine itself never interprets assets; it only routes
// the manager to systems, which decide what to load and when it is ready.
//
// # Managers
//
// NewFS adapts any fs.FS: an os.DirFS for development, an embed.FS for
// shipped binaries, or an fstest.MapFS in tests.
//
//	//go:embed assets
//	var assets embed.FS
//
//	game, err := engine.New(
//	    engine.WithContent(content.NewFS(assets)),
//	)
//
// The zero-configuration default is Nop, whose every request fails with
// ErrNoContent. Systems without assets never notice; systems with assets
// surface the missing configuration at load time.
//
// # Textures
//
// LoadTexture is the bridge from decoded images to GPU resources: it
// decodes, scales to the requested dimensions, and uploads into a fresh
// RGBA8 texture.
//
//	tex, err := content.LoadTexture(dev, mgr, "sprites/ship.png", 256, 256)
//
// Decoded images are cached per manager, so several systems loading the
// same asset share one decode.
package content
