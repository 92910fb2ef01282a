package text

// LoadOption configures font loading.
type LoadOption func(*loadConfig)

// loadConfig holds configuration for Load.
type loadConfig struct {
	rasterizerName string
}

// defaultLoadConfig returns the default load configuration.
func defaultLoadConfig() loadConfig {
	return loadConfig{
		rasterizerName: DefaultRasterizer,
	}
}

// WithRasterizer specifies the rasterizer backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom rasterizers can be registered with RegisterRasterizer.
func WithRasterizer(name string) LoadOption {
	return func(c *loadConfig) {
		c.rasterizerName = name
	}
}
