package legacy

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	internalloader "github.com/goliatone/go-articlerender/internal/loader"
	pkgloader "github.com/goliatone/go-articlerender/pkg/loader"
	"github.com/goliatone/go-articlerender/pkg/render"
	"github.com/goliatone/go-articlerender/pkg/render/template"
	"github.com/goliatone/go-articlerender/pkg/vars"
)

// Binding keys consumed by the article template.
const (
	VarTitle           = "title"
	VarBodyHTML        = "body-html"
	VarDisclaimer      = "disclaimer"
	VarCopyButtonText  = "copy-button-text"
	VarCSSFiles        = "css-files"
	VarJavaScriptFiles = "javascript-files"
	VarIncludeMathJax  = "include-mathjax"
	VarMathJaxPath     = "mathjax-path"
)

// Scripts injected into every article, in load order.
var baseScripts = []string{"content-fixes.js", "hide-broken-images.js"}

const scrollManagerScript = "scroll-manager.js"

// Content is one externally sourced article to decorate.
type Content struct {
	BodyHTML         string
	Source           string
	SourceName       string
	OriginalURI      string
	License          string
	Title            string
	ShowTitle        bool
	UseScrollManager bool
}

// Pipeline turns legacy article HTML into a complete page.
type Pipeline struct {
	renderer    template.TemplateRenderer
	sources     *Table
	logger      *zap.Logger
	translator  Translator
	onMissing   MissingTranslationHandler
	locale      string
	templateURI string
	mathJaxPath string
}

// New constructs a Pipeline. Without WithRenderer it renders through a
// render.Engine reading the bundled resources.
func New(options ...Option) (*Pipeline, error) {
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

	table := cfg.table
	if table == nil {
		var err error
		if cfg.sourcesFS != nil {
			table, err = LoadSources(cfg.sourcesFS, cfg.sourcesPath)
		} else {
			table, err = DefaultSources()
		}
		if err != nil {
			return nil, err
		}
	}

	if cfg.renderer == nil {
		cfg.renderer = render.New(
			render.WithLogger(cfg.logger),
			render.WithLoader(internalloader.New(pkgloader.NewOptions(
				pkgloader.WithResources(Resources()),
			))),
		)
	}
	if cfg.templateURI == "" {
		cfg.templateURI = ArticleTemplateURI
	}
	if cfg.mathJaxPath == "" {
		cfg.mathJaxPath = MathJaxPath
	}

	return &Pipeline{
		renderer:    cfg.renderer,
		sources:     table,
		logger:      cfg.logger,
		translator:  cfg.translator,
		onMissing:   cfg.onMissing,
		locale:      cfg.locale,
		templateURI: cfg.templateURI,
		mathJaxPath: cfg.mathJaxPath,
	}, nil
}

// Sources lists the recognized source identifiers.
func (p *Pipeline) Sources() []string {
	return p.sources.Sources.List()
}

// Render decorates content and renders the article template. Unknown sources
// fail with render.ErrUnknownSource before any template work happens.
func (p *Pipeline) Render(ctx context.Context, content Content, out ...io.Writer) (string, error) {
	binding, err := p.Binding(content)
	if err != nil {
		p.logger.Debug("legacy binding failed", zap.String("source", content.Source), zap.Error(err))
		return "", err
	}

	html, err := p.renderer.RenderTemplate(ctx, p.templateURI, binding, out...)
	if err != nil {
		p.logger.Debug("legacy render failed",
			zap.String("source", content.Source),
			zap.String("template", p.templateURI),
			zap.Error(err),
		)
		return "", fmt.Errorf("legacy: render %s article: %w", content.Source, err)
	}
	return html, nil
}

// Binding assembles the variables the article template consumes.
func (p *Pipeline) Binding(content Content) (vars.Binding, error) {
	src, ok := p.sources.Sources.Get(content.Source)
	if !ok {
		return vars.Binding{}, render.UnknownSource(content.Source)
	}

	body, err := StripDocument(content.BodyHTML)
	if err != nil {
		return vars.Binding{}, err
	}

	b := vars.NewBuilder().
		String(VarBodyHTML, body).
		String(VarCopyButtonText, translate(p.locale, KeyCopyButton, p.translator, p.onMissing)).
		Strings(VarCSSFiles, src.CSSFiles...).
		Strings(VarJavaScriptFiles, p.scripts(content.UseScrollManager)...).
		Bool(VarIncludeMathJax, src.MathJax).
		String(VarMathJaxPath, p.mathJaxPath)

	if content.ShowTitle {
		b.String(VarTitle, content.Title)
	} else {
		b.Bool(VarTitle, false)
	}

	disclaimer, ok := p.disclaimer(disclaimerInput{
		source:      src,
		sourceName:  content.SourceName,
		originalURI: content.OriginalURI,
		license:     content.License,
		title:       content.Title,
	})
	if ok {
		b.String(VarDisclaimer, disclaimer)
	} else {
		b.Bool(VarDisclaimer, false)
	}

	return b.Build(), nil
}

func (p *Pipeline) scripts(scrollManager bool) []string {
	scripts := append([]string(nil), baseScripts...)
	if scrollManager {
		scripts = append(scripts, scrollManagerScript)
	}
	return scripts
}
