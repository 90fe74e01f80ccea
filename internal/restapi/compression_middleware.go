package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress (default: 1024)
	MinSize int
	// Level is the compression level 1-9 (default: 6 for balanced speed/compression)
	Level int
	// ContentTypes restricts compression to these media types. Empty means
	// gzhttp's default filter, which already skips PNG and other compressed formats.
	ContentTypes []string
}

// DefaultCompressionConfig compresses JSON, SVG charts and the dashboard page.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   6,
		ContentTypes: []string{
			"application/json",
			"image/svg+xml",
			"text/html",
			"text/javascript",
		},
	}
}

// NewCompressionMiddleware creates a compression middleware with the given configuration
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var (
			wrapper func(http.Handler) http.HandlerFunc
			err     error
		)
		if len(config.ContentTypes) > 0 {
			wrapper, err = gzhttp.NewWrapper(
				gzhttp.MinSize(config.MinSize),
				gzhttp.CompressionLevel(config.Level),
				gzhttp.ContentTypes(config.ContentTypes),
			)
		} else {
			wrapper, err = gzhttp.NewWrapper(
				gzhttp.MinSize(config.MinSize),
				gzhttp.CompressionLevel(config.Level),
			)
		}
		if err != nil {
			return gzhttp.GzipHandler(next)
		}
		return wrapper(next)
	}
}

// CompressionMiddleware applies gzip compression with default settings
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}
