package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-articlerender/internal/prompt"
	"github.com/goliatone/go-articlerender/pkg/legacy"
	"github.com/goliatone/go-articlerender/pkg/render"
	"github.com/goliatone/go-articlerender/pkg/vars"
)

func main() {
	tmpl := flag.String("template", "", "template path, file:// or resource:/// URI")
	varsFile := flag.String("vars", "", "YAML file with template variables")
	body := flag.String("body", "", "HTML body file to legacy-render instead of -template")
	source := flag.String("source", "wikipedia", "legacy content source")
	sourceName := flag.String("source-name", "", "display name of the content source")
	originalURI := flag.String("original-uri", "", "URI of the original article")
	license := flag.String("license", "", "content license")
	title := flag.String("title", "", "article title")
	showTitle := flag.Bool("show-title", true, "render the article title")
	scrollManager := flag.Bool("scroll-manager", false, "load the scroll manager script")
	interactive := flag.Bool("interactive", false, "prompt for legacy article metadata")
	locale := flag.String("locale", "", "locale for page literals")
	output := flag.String("output", "", "output file (stdout if empty)")
	verbose := flag.Bool("verbose", false, "log engine diagnostics to stderr")
	flag.Parse()

	ctx := context.Background()

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to build logger: %v", err)
		}
		logger = dev
	}
	defer func() { _ = logger.Sync() }()

	var (
		html string
		err  error
	)
	switch {
	case *body != "":
		content := legacy.Content{
			Source:           *source,
			SourceName:       *sourceName,
			OriginalURI:      *originalURI,
			License:          *license,
			Title:            *title,
			ShowTitle:        *showTitle,
			UseScrollManager: *scrollManager,
		}
		html, err = renderLegacy(ctx, logger, *body, *locale, content, *interactive)
	case *tmpl != "":
		html, err = renderTemplate(ctx, logger, *tmpl, *varsFile)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Page written to %s\n", *output)
	} else {
		fmt.Print(html)
	}
}

func renderTemplate(ctx context.Context, logger *zap.Logger, location, varsFile string) (string, error) {
	binding := vars.Binding{}
	if varsFile != "" {
		f, err := os.Open(varsFile)
		if err != nil {
			return "", err
		}
		defer f.Close()
		if binding, err = vars.DecodeYAML(f); err != nil {
			return "", err
		}
	}

	engine := render.New(render.WithLogger(logger))
	defer engine.Close()
	return engine.RenderTemplate(ctx, location, binding)
}

func renderLegacy(ctx context.Context, logger *zap.Logger, bodyFile, locale string, content legacy.Content, interactive bool) (string, error) {
	data, err := os.ReadFile(bodyFile)
	if err != nil {
		return "", err
	}
	content.BodyHTML = string(data)

	pipeline, err := legacy.New(legacy.WithLogger(logger), legacy.WithLocale(locale))
	if err != nil {
		return "", err
	}

	if interactive {
		content, err = prompt.Article(ctx, prompt.NewSurvey(), pipeline.Sources(), content)
		if err != nil {
			return "", err
		}
	}
	return pipeline.Render(ctx, content)
}
