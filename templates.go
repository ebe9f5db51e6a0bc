package articlerender

import (
	"io/fs"

	"github.com/goliatone/go-articlerender/pkg/legacy"
)

// EmbeddedTemplates exposes the bundled article templates so callers can
// serve or extend them without importing the legacy package directly.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(legacy.Resources(), "templates")
	if err != nil {
		return legacy.Resources()
	}
	return sub
}
