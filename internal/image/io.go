package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrNilImage is returned when there is nothing to encode.
	ErrNilImage = errors.New("image: nil image")
)

// Format is an output image encoding.
type Format int

const (
	// FormatPNG encodes 8-bit grayscale PNG.
	FormatPNG Format = iota

	// FormatBMP encodes 8-bit paletted grayscale BMP.
	FormatBMP

	// FormatTIFF encodes 8-bit grayscale TIFF.
	FormatTIFF
)

// String returns the canonical file extension of the format (without dot).
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFromPath picks an encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// GrayView returns a grayscale image sharing a's pixels, so coverage
// is stored as luminance in a single channel.
func GrayView(a *image.Alpha) *image.Gray {
	return &image.Gray{Pix: a.Pix, Stride: a.Stride, Rect: a.Rect}
}

// Encode writes the coverage canvas to w in format f.
func Encode(w io.Writer, a *image.Alpha, f Format) error {
	if a == nil {
		return ErrNilImage
	}
	img := GrayView(a)

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", f, err)
	}
	return nil
}

// EncodeBytes encodes the canvas into memory.
func EncodeBytes(a *image.Alpha, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, a, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
