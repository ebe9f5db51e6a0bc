package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	articlerender "github.com/goliatone/go-articlerender"
	pkgloader "github.com/goliatone/go-articlerender/pkg/loader"
	"github.com/goliatone/go-articlerender/pkg/render"
)

type report struct {
	URI       string   `json:"uri"`
	Variables []string `json:"variables"`
	Sections  []string `json:"sections"`
}

func main() {
	location := flag.String("template", "resource:///legacy-article.mst", "template path or URI; resource:/// reads the bundled templates")
	flag.Parse()

	src, err := pkgloader.ParseURI(*location)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid template location: %v\n", err)
		os.Exit(1)
	}

	engine := articlerender.New(render.WithLoader(articlerender.NewLoader(
		pkgloader.WithResources(articlerender.EmbeddedTemplates()),
	)))
	tmpl, err := engine.Load(context.Background(), src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to compile template: %v\n", err)
		os.Exit(1)
	}

	payload, err := json.MarshalIndent(report{
		URI:       src.URI(),
		Variables: tmpl.Variables(),
		Sections:  tmpl.Sections(),
	}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(payload))
}
