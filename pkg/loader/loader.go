package loader

import (
	"context"
	"io/fs"
)

// Loader fetches template text from a Source. Implementations live under
// internal/loader; construction helpers live in the top-level package.
type Loader interface {
	Load(ctx context.Context, src Source) (string, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, src Source) (string, error)

// Load implements Loader.
func (f LoaderFunc) Load(ctx context.Context, src Source) (string, error) {
	return f(ctx, src)
}

// Options configures how a Loader resolves sources.
type Options struct {
	// Resources backs resource:/// sources, typically an embed.FS. Resource
	// sources fail when it is nil.
	Resources fs.FS

	// DisableFiles rejects file sources, useful when only embedded templates
	// should ever be served.
	DisableFiles bool
}

// Option mutates Options prior to construction.
type Option func(*Options)

// WithResources injects the fs.FS used for resource:/// sources.
func WithResources(files fs.FS) Option {
	return func(opts *Options) {
		opts.Resources = files
	}
}

// WithoutFiles disables the operating system file strategy.
func WithoutFiles() Option {
	return func(opts *Options) {
		opts.DisableFiles = true
	}
}

// NewOptions applies a set of Option values and returns the resulting
// configuration.
func NewOptions(options ...Option) Options {
	cfg := Options{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
