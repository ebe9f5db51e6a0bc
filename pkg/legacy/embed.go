package legacy

import (
	"embed"
	"io/fs"
)

// ArticleTemplateURI locates the bundled article template inside Resources.
const ArticleTemplateURI = "resource:///templates/legacy-article.mst"

// MathJaxPath is the directory the article template loads MathJax from.
// Packagers override it at link time:
//
//	go build -ldflags "-X github.com/goliatone/go-articlerender/pkg/legacy.MathJaxPath=/opt/mathjax"
var MathJaxPath = "/usr/share/javascript/mathjax"

//go:embed templates/*.mst sources.yaml
var resources embed.FS

// Resources exposes the bundled template and source table. The result is
// suitable for loader.WithResources.
func Resources() fs.FS {
	return resources
}
