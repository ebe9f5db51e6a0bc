package template

import (
	"context"
	"io"

	"github.com/goliatone/go-articlerender/pkg/vars"
)

// TemplateRenderer renders Mustache-style templates against a typed binding.
// Output is returned and, when writers are supplied, also copied to each.
type TemplateRenderer interface {
	// RenderTemplate renders a file-backed or embedded template identified by
	// location (a path, file:// URI or resource:/// URI). Implementations are
	// expected to cache the compiled form per location.
	RenderTemplate(ctx context.Context, location string, data vars.Store, out ...io.Writer) (string, error)
	// RenderString compiles and renders inline template text.
	RenderString(templateContent string, data vars.Store, out ...io.Writer) (string, error)
}
