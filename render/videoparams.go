// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render describes the geometry and format of rendered video frames.
package render

import (
	"fmt"
	"math"

	"github.com/gogpu/wgpu/hal"
)

// autoDividerTarget is the pixel count AutoDivider aims to stay under.
const autoDividerTarget = 1024 * 1024

// VideoParams describes a video frame: its full size, time base, pixel
// format and the divider used to render at reduced resolution.
//
// VideoParams is immutable; the effective size is computed once at
// construction.
type VideoParams struct {
	width    int
	height   int
	timeBase Rational
	format   PixelFormat
	divider  int

	effectiveWidth  int
	effectiveHeight int
}

// NewVideoParams returns parameters for a width x height frame. A divider
// below 1 is treated as 1.
func NewVideoParams(width, height int, timeBase Rational, format PixelFormat, divider int) VideoParams {
	if divider < 1 {
		divider = 1
	}
	return VideoParams{
		width:           width,
		height:          height,
		timeBase:        timeBase,
		format:          format,
		divider:         divider,
		effectiveWidth:  width / divider,
		effectiveHeight: height / divider,
	}
}

// Width returns the full frame width.
func (p VideoParams) Width() int { return p.width }

// Height returns the full frame height.
func (p VideoParams) Height() int { return p.height }

// TimeBase returns the frame duration.
func (p VideoParams) TimeBase() Rational { return p.timeBase }

// Format returns the pixel format.
func (p VideoParams) Format() PixelFormat { return p.format }

// Divider returns the resolution divider.
func (p VideoParams) Divider() int { return p.divider }

// EffectiveWidth returns the width frames are rendered at.
func (p VideoParams) EffectiveWidth() int { return p.effectiveWidth }

// EffectiveHeight returns the height frames are rendered at.
func (p VideoParams) EffectiveHeight() int { return p.effectiveHeight }

// IsValid reports whether frames can be allocated for p.
func (p VideoParams) IsValid() bool {
	return p.width > 0 && p.height > 0 &&
		p.effectiveWidth > 0 && p.effectiveHeight > 0 &&
		p.format.IsValid()
}

// Equal reports whether p and o describe the same frames.
func (p VideoParams) Equal(o VideoParams) bool {
	return p.width == o.width &&
		p.height == o.height &&
		p.timeBase.Equal(o.timeBase) &&
		p.format == o.format &&
		p.divider == o.divider
}

// Extent returns the effective size as a texture extent.
func (p VideoParams) Extent() hal.Extent3D {
	return hal.Extent3D{
		Width:              uint32(max(p.effectiveWidth, 0)),
		Height:             uint32(max(p.effectiveHeight, 0)),
		DepthOrArrayLayers: 1,
	}
}

// String implements fmt.Stringer.
func (p VideoParams) String() string {
	return fmt.Sprintf("%dx%d/%d %s @%s", p.width, p.height, p.divider, p.format, p.timeBase)
}

// AutoDivider returns the smallest divider that brings a width x height
// frame to about one megapixel. Frames at or under that size get 1.
func AutoDivider(width, height int64) int {
	if width <= 0 || height <= 0 {
		return 1
	}
	ratio := float64(width*height) / autoDividerTarget
	d := math.Sqrt(ratio)
	if d <= 1 {
		return 1
	}
	return int(math.Ceil(d))
}
