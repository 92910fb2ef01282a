package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gomono"
)

// Load parses font data and opens a Face at size points.
func Load(data []byte, size float64, opts ...LoadOption) (Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	config := defaultLoadConfig()
	for _, opt := range opts {
		opt(&config)
	}

	r, err := LookupRasterizer(config.rasterizerName)
	if err != nil {
		return nil, err
	}
	return r.Open(data, size)
}

// LoadFile reads a font file and opens a Face at size points.
// A missing file yields an error wrapping fs.ErrNotExist.
func LoadFile(path string, size float64, opts ...LoadOption) (Face, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return Load(data, size, opts...)
}

// SampleFont returns the bundled sample font (Go Mono).
func SampleFont() []byte {
	return gomono.TTF
}

// SampleFontName is the display name of the bundled sample font.
const SampleFontName = "gomono.ttf"
