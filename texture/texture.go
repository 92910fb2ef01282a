// Package texture describes how a renderer uploads a glyph atlas to the GPU.
//
// The atlas is a tightly packed single-channel image; Describe returns the
// WebGPU texture format, extent, row layout and usage a consumer needs to
// create the texture and copy the pixels into it in one call.
package texture

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrInvalidSize is returned when the atlas dimensions are not positive.
var ErrInvalidSize = errors.New("texture: atlas dimensions must be positive")

// Format represents the pixel format of an atlas texture.
type Format uint8

const (
	// FormatR8 is single-channel 8-bit format, used for coverage masks.
	FormatR8 Format = iota

	// FormatRGBA8 is the standard RGBA format with 8 bits per channel.
	FormatRGBA8
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatR8:
		return "R8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// WGSLName returns the WebGPU texture format identifier.
func (f Format) WGSLName() string {
	switch f {
	case FormatR8:
		return "r8unorm"
	default:
		return "rgba8unorm"
	}
}

// BytesPerPixel returns the number of bytes per pixel.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatR8:
		return 1
	default:
		return 4
	}
}

// ToWGPUFormat converts to gputypes.TextureFormat.
func (f Format) ToWGPUFormat() gputypes.TextureFormat {
	switch f {
	case FormatR8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}

// DefaultUsage is the usage of an atlas texture: written once by a copy,
// then sampled.
const DefaultUsage = gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding

// Descriptor is the GPU upload description of an atlas.
type Descriptor struct {
	Format    Format
	Dimension gputypes.TextureDimension
	Size      gputypes.Extent3D
	Layout    gputypes.TextureDataLayout
	Usage     gputypes.TextureUsage
}

// Describe returns the descriptor for a tightly packed width x height atlas.
func Describe(width, height int, format Format) (Descriptor, error) {
	if width <= 0 || height <= 0 {
		return Descriptor{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	bytesPerRow := width * format.BytesPerPixel()
	return Descriptor{
		Format:    format,
		Dimension: gputypes.TextureDimension2D,
		Size: gputypes.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		Layout: gputypes.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(bytesPerRow),
			RowsPerImage: uint32(height),
		},
		Usage: DefaultUsage,
	}, nil
}

// SizeBytes returns the number of bytes the upload copies.
func (d Descriptor) SizeBytes() int {
	return int(d.Layout.BytesPerRow) * int(d.Layout.RowsPerImage) * int(d.Size.DepthOrArrayLayers)
}

// AlignedBytesPerRow returns the row pitch rounded up to the 256-byte
// alignment WebGPU requires for buffer-to-texture copies. Queue writes
// accept the tight pitch in Layout.BytesPerRow.
func (d Descriptor) AlignedBytesPerRow() int {
	const align = 256
	return (int(d.Layout.BytesPerRow) + align - 1) / align * align
}
