// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/nle/render"
	"github.com/gogpu/nle/value"
	"github.com/gogpu/wgpu/hal"
	"golang.org/x/image/draw"
)

const frameUsage = gputypes.TextureUsageTextureBinding |
	gputypes.TextureUsageRenderAttachment |
	gputypes.TextureUsageCopySrc |
	gputypes.TextureUsageCopyDst

// Target allocates a texture at the effective frame size of params.
// The texture belongs to the backend until Release or Close.
func (b *Backend) Target(params render.VideoParams) (value.Texture, error) {
	if b.isClosed() {
		return value.Texture{}, ErrClosed
	}
	if !params.IsValid() {
		return value.Texture{}, fmt.Errorf("%w: %s", ErrInvalidParams, params)
	}

	id := b.nextID.Add(1)
	format := params.Format().TextureFormat()
	tex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label:         b.label(fmt.Sprintf("frame-%d", id)),
		Size:          params.Extent(),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         frameUsage,
	})
	if err != nil {
		return value.Texture{}, fmt.Errorf("native: create texture: %w", err)
	}

	handle := value.Texture{
		ID:     id,
		Width:  params.EffectiveWidth(),
		Height: params.EffectiveHeight(),
		Format: format,
	}
	b.mu.Lock()
	b.frames[id] = frame{tex: tex, handle: handle}
	b.mu.Unlock()
	return handle, nil
}

// Upload scales img to the effective frame size of params, allocates a
// texture and writes the converted pixels to it.
func (b *Backend) Upload(img image.Image, params render.VideoParams) (value.Texture, error) {
	if !params.IsValid() {
		return value.Texture{}, fmt.Errorf("%w: %s", ErrInvalidParams, params)
	}
	pixels, err := encodeFrame(img, params)
	if err != nil {
		return value.Texture{}, err
	}

	handle, err := b.Target(params)
	if err != nil {
		return value.Texture{}, err
	}
	tex, err := b.lookup(handle.ID)
	if err != nil {
		return value.Texture{}, err
	}

	extent := params.Extent()
	err = b.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, Aspect: gputypes.TextureAspectAll},
		pixels,
		&hal.ImageDataLayout{
			BytesPerRow:  uint32(params.EffectiveWidth() * params.Format().BytesPerPixel()),
			RowsPerImage: extent.Height,
		},
		&extent,
	)
	if err != nil {
		b.Release(handle)
		return value.Texture{}, fmt.Errorf("native: write texture: %w", err)
	}
	return handle, nil
}

// Release destroys a texture allocated by Target or Upload. Unknown
// handles are ignored.
func (b *Backend) Release(t value.Texture) {
	b.mu.Lock()
	f, ok := b.frames[t.ID]
	delete(b.frames, t.ID)
	b.mu.Unlock()
	if ok {
		b.device.DestroyTexture(f.tex)
	}
}

// Textures returns the number of textures the backend owns.
func (b *Backend) Textures() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.frames)
}

func (b *Backend) lookup(id uint64) (hal.Texture, error) {
	b.mu.RLock()
	f, ok := b.frames[id]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTexture, id)
	}
	return f.tex, nil
}

// encodeFrame scales img to the effective size of params and packs it in
// the params' pixel format.
func encodeFrame(img image.Image, params render.VideoParams) ([]byte, error) {
	w, h := params.EffectiveWidth(), params.EffectiveHeight()
	rect := image.Rect(0, 0, w, h)

	switch params.Format() {
	case render.PixelFormatRGBA8:
		dst := image.NewRGBA(rect)
		draw.ApproxBiLinear.Scale(dst, rect, img, img.Bounds(), draw.Src, nil)
		return dst.Pix, nil

	case render.PixelFormatRGBA16U:
		dst := image.NewRGBA64(rect)
		draw.ApproxBiLinear.Scale(dst, rect, img, img.Bounds(), draw.Src, nil)
		// image.RGBA64 is big-endian; textures are little-endian.
		out := make([]byte, len(dst.Pix))
		for i := 0; i < len(out); i += 2 {
			out[i], out[i+1] = dst.Pix[i+1], dst.Pix[i]
		}
		return out, nil

	case render.PixelFormatRGBA32F:
		dst := image.NewRGBA64(rect)
		draw.ApproxBiLinear.Scale(dst, rect, img, img.Bounds(), draw.Src, nil)
		out := make([]byte, len(dst.Pix)*2)
		for i := 0; i < len(dst.Pix); i += 2 {
			c := float32(binary.BigEndian.Uint16(dst.Pix[i:])) / math.MaxUint16
			binary.LittleEndian.PutUint32(out[i*2:], math.Float32bits(c))
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, params.Format())
	}
}
