package fontatlas

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	imageio "github.com/gogpu/fontatlas/internal/image"
	"github.com/gogpu/fontatlas/text"
)

// Result describes a completed run.
type Result struct {
	Atlas    *Atlas
	Metadata Metadata

	// FontName is the family name reported by the font, if any.
	FontName string

	ImagePath    string
	HeaderPath   string
	ManifestPath string
}

// Skipped returns the glyphs that were left blank.
func (r *Result) Skipped() []*GlyphError {
	return r.Atlas.Skipped
}

// Build plans and renders an atlas from an already opened glyph source.
func Build(cfg Config, src GlyphSource) (*Atlas, error) {
	layout, err := Plan(cfg)
	if err != nil {
		return nil, err
	}
	return Render(layout, src, cfg.Tuning), nil
}

// Generate renders the atlas for the font at fontPath and writes the
// image to outputPath and the metadata header next to it.
//
// An empty fontPath selects the bundled sample font. Nothing is written
// unless the whole run succeeds; individual glyph failures are not run
// failures and are reported in Result.Skipped.
func Generate(fontPath, outputPath string, cfg Config, opts ...Option) (*Result, error) {
	gc := generateConfig{}
	for _, opt := range opts {
		opt(&gc)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	format, err := imageio.FormatFromPath(outputPath)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: output %s: %w", outputPath, err)
	}
	layout, err := Plan(cfg)
	if err != nil {
		return nil, err
	}

	log := Logger()
	log.Info("planned atlas",
		slog.Int("cellWidth", cfg.CellWidth),
		slog.Int("cellHeight", cfg.CellHeight),
		slog.Float64("fontSize", layout.FontSize),
		slog.Int("glyphs", layout.Len()),
		slog.Int("width", layout.Width),
		slog.Int("height", layout.Height))

	face, source, err := openFace(fontPath, layout.FontSize, cfg.Rasterizer, gc)
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	if gc.sourceName != "" {
		source = gc.sourceName
	}
	log.Info("loaded font",
		slog.String("source", source),
		slog.String("name", face.Name()),
		slog.String("rasterizer", rasterizerName(cfg.Rasterizer)))

	atlas := Render(layout, face, cfg.Tuning)

	res := &Result{
		Atlas:      atlas,
		Metadata:   NewMetadata(layout, source),
		FontName:   face.Name(),
		ImagePath:  outputPath,
		HeaderPath: HeaderPath(outputPath),
	}

	imageData, err := imageio.EncodeBytes(atlas.Image, format)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: %w", err)
	}
	files := []imageio.File{
		{Path: res.ImagePath, Data: imageData},
		{Path: res.HeaderPath, Data: res.Metadata.Header()},
	}

	if gc.manifestPath != "" {
		m, err := NewManifest(atlas, res.Metadata.Source, rasterizerName(cfg.Rasterizer))
		if err != nil {
			return nil, err
		}
		data, err := m.Marshal()
		if err != nil {
			return nil, err
		}
		res.ManifestPath = gc.manifestPath
		files = append(files, imageio.File{Path: gc.manifestPath, Data: data})
	}

	if err := imageio.WriteFiles(files...); err != nil {
		return nil, fmt.Errorf("fontatlas: write outputs: %w", err)
	}

	log.Info("saved atlas",
		slog.String("image", res.ImagePath),
		slog.String("header", res.HeaderPath),
		slog.Int("skipped", len(atlas.Skipped)))
	return res, nil
}

// openFace opens the font selected by fontPath and gc at size points.
// It returns the face and the base name recorded as the metadata source.
func openFace(fontPath string, size float64, rasterizer string, gc generateConfig) (text.Face, string, error) {
	opts := []text.LoadOption{text.WithRasterizer(rasterizerName(rasterizer))}

	var (
		data   []byte
		source string
	)
	switch {
	case gc.fontData != nil:
		data, source = gc.fontData, filepath.Base(fontPath)
		if fontPath == "" {
			source = text.SampleFontName
		}
	case fontPath == "":
		data, source = text.SampleFont(), text.SampleFontName
	default:
		// #nosec G304 -- Font file path is provided by the user
		b, err := os.ReadFile(fontPath)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %w", ErrFontNotFound, err)
		}
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrFontLoad, err)
		}
		data, source = b, filepath.Base(fontPath)
	}

	face, err := text.Load(data, size, opts...)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrFontLoad, source, err)
	}
	return face, source, nil
}

// rasterizerName resolves the empty name to the default rasterizer.
func rasterizerName(name string) string {
	if name == "" {
		return text.DefaultRasterizer
	}
	return name
}
