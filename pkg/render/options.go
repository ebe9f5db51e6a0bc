package render

import (
	"go.uber.org/zap"

	pkgloader "github.com/goliatone/go-articlerender/pkg/loader"
)

// Option configures the Engine before construction.
type Option func(*config)

type config struct {
	loader pkgloader.Loader
	cache  *Cache
	logger *zap.Logger
}

// WithLoader sets the storage collaborator used for file and resource
// templates. The default reads files from the operating system only.
func WithLoader(l pkgloader.Loader) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.loader = l
		}
	}
}

// WithCache shares an existing template cache instead of creating one.
func WithCache(c *Cache) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.cache = c
		}
	}
}

// WithLogger routes engine diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
