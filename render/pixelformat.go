// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// PixelFormat is the storage format of a video frame.
type PixelFormat uint8

const (
	// PixelFormatInvalid is the zero format.
	PixelFormatInvalid PixelFormat = iota
	// PixelFormatRGBA8 is 8-bit unsigned normalized RGBA.
	PixelFormatRGBA8
	// PixelFormatRGBA16U is 16-bit unsigned normalized RGBA.
	PixelFormatRGBA16U
	// PixelFormatRGBA16F is 16-bit float RGBA.
	PixelFormatRGBA16F
	// PixelFormatRGBA32F is 32-bit float RGBA.
	PixelFormatRGBA32F
)

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBA8:
		return "RGBA8"
	case PixelFormatRGBA16U:
		return "RGBA16U"
	case PixelFormatRGBA16F:
		return "RGBA16F"
	case PixelFormatRGBA32F:
		return "RGBA32F"
	default:
		return "Invalid"
	}
}

// IsValid reports whether f is a known format.
func (f PixelFormat) IsValid() bool {
	return f >= PixelFormatRGBA8 && f <= PixelFormatRGBA32F
}

// TextureFormat returns the GPU texture format frames of f are stored in.
func (f PixelFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case PixelFormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case PixelFormatRGBA16U:
		return gputypes.TextureFormatRGBA16Unorm
	case PixelFormatRGBA16F:
		return gputypes.TextureFormatRGBA16Float
	case PixelFormatRGBA32F:
		return gputypes.TextureFormatRGBA32Float
	default:
		return gputypes.TextureFormatUndefined
	}
}

// BytesPerPixel returns the size of one pixel, or 0 for invalid formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGBA8:
		return 4
	case PixelFormatRGBA16U, PixelFormatRGBA16F:
		return 8
	case PixelFormatRGBA32F:
		return 16
	default:
		return 0
	}
}
