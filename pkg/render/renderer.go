package render

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	internalloader "github.com/goliatone/go-articlerender/internal/loader"
	"github.com/goliatone/go-articlerender/internal/mustache"
	pkgloader "github.com/goliatone/go-articlerender/pkg/loader"
	"github.com/goliatone/go-articlerender/pkg/render/template"
	"github.com/goliatone/go-articlerender/pkg/vars"
)

// Template is a compiled, immutable template. It may be rendered any number
// of times, concurrently, against different bindings.
type Template struct {
	root *mustache.Template
}

// Compile parses template text. Syntax errors are returned as *Error with
// KindCompile and the offending line.
func Compile(text string) (*Template, error) {
	root, err := mustache.CompileString(text)
	if err != nil {
		return nil, CompileFailure(err)
	}
	return &Template{root: root}, nil
}

// Render executes tmpl against binding in a fresh session.
func (t *Template) Render(binding vars.Store) (string, error) {
	if t == nil || t.root == nil {
		return "", errors.New("render: template is nil")
	}
	if binding == nil {
		binding = vars.Binding{}
	}
	s := newSession(binding)
	if err := t.root.Render(s); err != nil {
		return "", err
	}
	return s.out.String(), nil
}

// Variables lists variable names referenced by the template.
func (t *Template) Variables() []string {
	if t == nil {
		return nil
	}
	return t.root.Variables()
}

// Sections lists section names referenced by the template.
func (t *Template) Sections() []string {
	if t == nil {
		return nil
	}
	return t.root.Sections()
}

// Engine renders inline and file-backed templates. File-backed templates are
// compiled once and cached by source URI for the lifetime of the engine.
type Engine struct {
	loader pkgloader.Loader
	cache  *Cache
	logger *zap.Logger
}

// Ensure Engine implements the TemplateRenderer interface.
var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) *Engine {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.loader == nil {
		cfg.loader = internalloader.New(pkgloader.NewOptions())
	}
	if cfg.cache == nil {
		cfg.cache = NewCache(cfg.logger)
	}

	return &Engine{
		loader: cfg.loader,
		cache:  cfg.cache,
		logger: cfg.logger,
	}
}

// Compile parses template text without caching it.
func (e *Engine) Compile(text string) (*Template, error) {
	return Compile(text)
}

// Render executes a compiled template against binding.
func (e *Engine) Render(tmpl *Template, binding vars.Store, out ...io.Writer) (string, error) {
	rendered, err := tmpl.Render(binding)
	if err != nil {
		e.logger.Debug("template render failed", zap.Error(err))
		return "", err
	}
	if err := writeAll(rendered, out); err != nil {
		return "", err
	}
	return rendered, nil
}

// RenderString compiles and renders inline template text. Inline templates
// are not cached.
func (e *Engine) RenderString(templateContent string, binding vars.Store, out ...io.Writer) (string, error) {
	tmpl, err := Compile(templateContent)
	if err != nil {
		return "", err
	}
	return e.Render(tmpl, binding, out...)
}

// RenderTemplate renders the template identified by location, a file path,
// file:// URI or resource:/// URI.
func (e *Engine) RenderTemplate(ctx context.Context, location string, binding vars.Store, out ...io.Writer) (string, error) {
	src, err := pkgloader.ParseURI(location)
	if err != nil {
		return "", LoadFailure(location, err)
	}
	return e.RenderSource(ctx, src, binding, out...)
}

// RenderSource renders the template read from src, compiling it on first use.
func (e *Engine) RenderSource(ctx context.Context, src pkgloader.Source, binding vars.Store, out ...io.Writer) (string, error) {
	tmpl, err := e.Load(ctx, src)
	if err != nil {
		return "", err
	}
	return e.Render(tmpl, binding, out...)
}

// Load returns the compiled template for src from the cache, reading and
// compiling it through the loader on a miss.
func (e *Engine) Load(ctx context.Context, src pkgloader.Source) (*Template, error) {
	if src == nil {
		return nil, errors.New("render: source is nil")
	}
	id := src.URI()
	tmpl, err := e.cache.GetOrCompile(id, func() (string, error) {
		text, err := e.loader.Load(ctx, src)
		if err != nil {
			return "", LoadFailure(id, err)
		}
		return text, nil
	})
	if err != nil {
		e.logger.Debug("template load failed", zap.String("uri", id), zap.Error(err))
		return nil, err
	}
	return tmpl, nil
}

// Cache exposes the engine's compiled template cache.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Close releases cached templates. The engine stays usable and recompiles on
// the next request.
func (e *Engine) Close() error {
	e.cache.Clear()
	return nil
}

func writeAll(rendered string, out []io.Writer) error {
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return err
		}
	}
	return nil
}
