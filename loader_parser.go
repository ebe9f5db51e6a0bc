package articlerender

import (
	internalloader "github.com/goliatone/go-articlerender/internal/loader"
	pkgloader "github.com/goliatone/go-articlerender/pkg/loader"
)

// NewLoader constructs a template loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgloader.Option) pkgloader.Loader {
	return internalloader.New(pkgloader.NewOptions(options...))
}
