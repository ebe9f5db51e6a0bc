package legacy

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/goliatone/go-articlerender/pkg/render/template"
)

// Option configures the Pipeline before construction.
type Option func(*config)

type config struct {
	renderer    template.TemplateRenderer
	logger      *zap.Logger
	sourcesFS   fs.FS
	sourcesPath string
	table       *Table
	translator  Translator
	onMissing   MissingTranslationHandler
	locale      string
	templateURI string
	mathJaxPath string
}

// WithRenderer sets the engine used to render the article template. The
// renderer must be able to resolve ArticleTemplateURI.
func WithRenderer(r template.TemplateRenderer) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.renderer = r
		}
	}
}

// WithLogger routes pipeline diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSourcesFS reads the source table from path within fsys instead of the
// bundled sources.yaml.
func WithSourcesFS(fsys fs.FS, path string) Option {
	return func(cfg *config) {
		if fsys != nil {
			cfg.sourcesFS = fsys
			cfg.sourcesPath = path
		}
	}
}

// WithSources uses an already parsed source table.
func WithSources(table *Table) Option {
	return func(cfg *config) {
		if table != nil {
			cfg.table = table
		}
	}
}

// WithTranslator resolves page literals through t.
func WithTranslator(t Translator) Option {
	return func(cfg *config) {
		cfg.translator = t
	}
}

// WithMissingTranslationHandler overrides the English fallback used when
// the translator fails.
func WithMissingTranslationHandler(h MissingTranslationHandler) Option {
	return func(cfg *config) {
		cfg.onMissing = h
	}
}

// WithLocale sets the locale passed to the translator.
func WithLocale(locale string) Option {
	return func(cfg *config) {
		cfg.locale = locale
	}
}

// WithTemplateURI renders a different article template.
func WithTemplateURI(uri string) Option {
	return func(cfg *config) {
		if uri != "" {
			cfg.templateURI = uri
		}
	}
}

// WithMathJaxPath overrides MathJaxPath for this pipeline.
func WithMathJaxPath(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.mathJaxPath = path
		}
	}
}
