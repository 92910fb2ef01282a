package text

import (
	"fmt"
	"sort"
	"sync"
)

// Rasterizer is an interface for font rasterization backends.
// This abstraction allows swapping the font library
// (golang.org/x/image, go-text/typesetting, seehuhn.de/go/sfnt).
//
// The default implementation uses golang.org/x/image/font/opentype.
type Rasterizer interface {
	// Open parses font data (TTF or OTF) and returns a Face at the
	// given size in points (72 DPI, so points equal pixels).
	Open(data []byte, size float64) (Face, error)
}

// Names of the built-in rasterizers.
const (
	RasterizerXImage = "ximage"
	RasterizerGoText = "gotext"
	RasterizerSFNT   = "sfnt"
)

// DefaultRasterizer is the name of the default rasterizer.
const DefaultRasterizer = RasterizerXImage

var (
	registryMu sync.RWMutex

	// rasterizerRegistry holds registered rasterizers.
	rasterizerRegistry = map[string]Rasterizer{
		RasterizerXImage: ximageRasterizer{},
		RasterizerGoText: gotextRasterizer{},
		RasterizerSFNT:   sfntRasterizer{},
	}
)

// RegisterRasterizer registers a custom rasterizer under name,
// replacing any previous registration.
func RegisterRasterizer(name string, r Rasterizer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	rasterizerRegistry[name] = r
}

// LookupRasterizer returns the rasterizer registered under name.
// An empty name selects DefaultRasterizer.
func LookupRasterizer(name string) (Rasterizer, error) {
	if name == "" {
		name = DefaultRasterizer
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := rasterizerRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRasterizer, name)
	}
	return r, nil
}

// Rasterizers returns the registered rasterizer names in sorted order.
func Rasterizers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(rasterizerRegistry))
	for name := range rasterizerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
