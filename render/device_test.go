// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultTextureDescriptor(t *testing.T) {
	desc := DefaultTextureDescriptor(1920, 1080, gputypes.TextureFormatBGRA8Unorm)

	if desc.Width != 1920 || desc.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", desc.Width, desc.Height)
	}
	if desc.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("format = %v, want BGRA8Unorm", desc.Format)
	}
	if desc.ArrayLayers != 1 {
		t.Errorf("ArrayLayers = %d, want 1", desc.ArrayLayers)
	}
	if desc.MipLevelCount != 1 {
		t.Errorf("MipLevelCount = %d, want 1", desc.MipLevelCount)
	}
	if desc.SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1", desc.SampleCount)
	}
	if desc.Usage&gputypes.TextureUsageRenderAttachment == 0 {
		t.Error("default usage missing RenderAttachment")
	}
}

func TestStereoCapable(t *testing.T) {
	tests := []struct {
		name   string
		layers uint32
		want   bool
	}{
		{"no layers", 0, false},
		{"single layer", 1, false},
		{"two layers", 2, true},
		{"many layers", 256, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := DeviceCapabilities{MaxArrayLayers: tt.layers}
			if got := caps.StereoCapable(); got != tt.want {
				t.Errorf("StereoCapable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFullViewport(t *testing.T) {
	vp := FullViewport(800, 600)
	if vp.X != 0 || vp.Y != 0 || vp.W != 800 || vp.H != 600 {
		t.Errorf("FullViewport(800, 600) = %+v", vp)
	}
	if vp.MinDepth != 0 || vp.MaxDepth != 1 {
		t.Errorf("depth range = [%v, %v], want [0, 1]", vp.MinDepth, vp.MaxDepth)
	}
}

func TestFullScissor(t *testing.T) {
	sc := FullScissor(1024, 768)
	if sc.X != 0 || sc.Y != 0 || sc.W != 1024 || sc.H != 768 {
		t.Errorf("FullScissor(1024, 768) = %+v", sc)
	}
}
