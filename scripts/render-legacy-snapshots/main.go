package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	articlerender "github.com/goliatone/go-articlerender"
	"github.com/goliatone/go-articlerender/pkg/legacy"
)

func main() {
	var (
		bodyPath  = flag.String("body", "examples/fixtures/article.html", "HTML body rendered for every source")
		outputDir = flag.String("output", "build/legacy-snapshots", "directory receiving one page per source")
		title     = flag.String("title", "Go gopher", "article title")
	)
	flag.Parse()

	ctx := context.Background()

	body, err := os.ReadFile(*bodyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read body: %v\n", err)
		os.Exit(1)
	}

	pipeline, err := articlerender.NewPipeline()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build pipeline: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output dir: %v\n", err)
		os.Exit(1)
	}

	for _, source := range pipeline.Sources() {
		page, err := pipeline.Render(ctx, legacy.Content{
			BodyHTML:    string(body),
			Source:      source,
			SourceName:  source,
			OriginalURI: "https://example.org/" + source + "/Go_gopher",
			License:     "CC-BY-SA 3.0",
			Title:       *title,
			ShowTitle:   true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to render %s: %v\n", source, err)
			os.Exit(1)
		}
		path := filepath.Join(*outputDir, source+".html")
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Wrote %s\n", path)
	}
}
