// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package content

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/engine/render"
)

// LoadTexture loads the named image asset, scales it to width by height,
// and uploads it into a new RGBA8 texture on dev.
//
// Scaling uses Catmull-Rom resampling for quality; assets already at the
// target size skip the resample. The caller owns the returned texture.
func LoadTexture(dev render.Device, m Manager, name string, width, height uint32) (render.Texture, error) {
	if dev == nil {
		return nil, fmt.Errorf("content: load texture %q: nil device", name)
	}
	if m == nil {
		return nil, fmt.Errorf("content: load texture %q: nil manager", name)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("content: load texture %q: zero dimensions", name)
	}

	img, err := m.LoadImage(name)
	if err != nil {
		return nil, err
	}
	rgba := scaleToRGBA(img, int(width), int(height))

	desc := render.TextureDescriptor{
		Label:         name,
		Width:         width,
		Height:        height,
		ArrayLayers:   1,
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
	tex, err := dev.CreateTexture(&desc)
	if err != nil {
		return nil, fmt.Errorf("content: create texture %q: %w", name, err)
	}

	if err := dev.WriteTexture(tex, rgba.Pix, uint32(rgba.Stride)); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("content: upload texture %q: %w", name, err)
	}

	logger().Debug("content: texture loaded",
		"name", name,
		"width", width,
		"height", height)
	return tex, nil
}

// scaleToRGBA converts img to RGBA at the given dimensions, resampling
// with Catmull-Rom when the sizes differ.
func scaleToRGBA(img image.Image, width, height int) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	if bounds.Dx() == width && bounds.Dy() == height {
		xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
		return dst
	}

	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
