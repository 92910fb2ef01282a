package fontatlas

// Option configures Generate.
type Option func(*generateConfig)

// generateConfig holds configuration for Generate.
type generateConfig struct {
	manifestPath string
	sourceName   string
	fontData     []byte
}

// WithManifest additionally writes a JSON manifest to path.
func WithManifest(path string) Option {
	return func(c *generateConfig) {
		c.manifestPath = path
	}
}

// WithSourceName overrides the font name recorded in the metadata header.
func WithSourceName(name string) Option {
	return func(c *generateConfig) {
		c.sourceName = name
	}
}

// WithFontData renders from in-memory font data instead of a font file.
// The font path passed to Generate is then only used as the source name.
func WithFontData(data []byte) Option {
	return func(c *generateConfig) {
		c.fontData = data
	}
}
