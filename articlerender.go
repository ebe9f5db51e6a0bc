package articlerender

import (
	"context"

	"github.com/goliatone/go-articlerender/pkg/legacy"
	"github.com/goliatone/go-articlerender/pkg/render"
	"github.com/goliatone/go-articlerender/pkg/vars"
)

// Binding is the immutable variable set a template renders against.
type Binding = vars.Binding

// Content aliases legacy.Content for callers decorating provider articles.
type Content = legacy.Content

// Error is the structured failure returned by every render path.
type Error = render.Error

// New exposes the render engine constructor from the top-level module.
func New(options ...render.Option) *render.Engine {
	return render.New(options...)
}

// NewPipeline exposes the legacy article pipeline constructor.
func NewPipeline(options ...legacy.Option) (*legacy.Pipeline, error) {
	return legacy.New(options...)
}

// RenderString compiles text and renders it once against binding.
func RenderString(text string, binding Binding) (string, error) {
	return render.New().RenderString(text, binding)
}

// RenderLegacy decorates one article with the bundled source table and
// template. Callers rendering many articles should keep a Pipeline instead.
func RenderLegacy(ctx context.Context, bodyHTML, source, sourceName, originalURI, license, title string, showTitle, useScrollManager bool) (string, error) {
	p, err := legacy.New()
	if err != nil {
		return "", err
	}
	return p.Render(ctx, legacy.Content{
		BodyHTML:         bodyHTML,
		Source:           source,
		SourceName:       sourceName,
		OriginalURI:      originalURI,
		License:          license,
		Title:            title,
		ShowTitle:        showTitle,
		UseScrollManager: useScrollManager,
	})
}
