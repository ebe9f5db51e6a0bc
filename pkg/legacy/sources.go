package legacy

import (
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const defaultSourcesFile = "sources.yaml"

// DisclaimerStyle selects the attribution sentence rendered for a source.
type DisclaimerStyle string

const (
	// DisclaimerNone omits the disclaimer entirely.
	DisclaimerNone DisclaimerStyle = ""
	// DisclaimerSourceLicense links the original article, labeled with the
	// source name, and the content license.
	DisclaimerSourceLicense DisclaimerStyle = "source-license"
	// DisclaimerArticleBrand links the original article, labeled with its
	// title, and the provider's brand page.
	DisclaimerArticleBrand DisclaimerStyle = "article-brand"
)

// Link is a labeled URI.
type Link struct {
	Label string `yaml:"label"`
	URI   string `yaml:"uri"`
}

// Source describes how content from one provider is decorated.
type Source struct {
	Name       string          `yaml:"-"`
	CSSFiles   []string        `yaml:"css"`
	MathJax    bool            `yaml:"mathjax"`
	Disclaimer DisclaimerStyle `yaml:"disclaimer"`
	Brand      Link            `yaml:"brand"`
}

// Table is the parsed source configuration.
type Table struct {
	Sources  *Registry
	Licenses map[string]string
}

type tableDocument struct {
	Sources  map[string]Source `yaml:"sources"`
	Licenses map[string]string `yaml:"licenses"`
}

// LicenseName returns the human readable name of license, or license itself
// when the table has no entry for it.
func (t *Table) LicenseName(license string) string {
	if t != nil {
		if name, ok := t.Licenses[license]; ok && strings.TrimSpace(name) != "" {
			return name
		}
	}
	return license
}

// LoadSources parses the YAML source table at path within fsys.
func LoadSources(fsys fs.FS, path string) (*Table, error) {
	if fsys == nil {
		return nil, fmt.Errorf("legacy: sources filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("legacy: read sources %q: %w", path, err)
	}
	return ParseSources(data)
}

// ParseSources decodes a YAML source table.
func ParseSources(data []byte) (*Table, error) {
	var doc tableDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("legacy: decode sources: %w", err)
	}

	registry := NewRegistry()
	for name, src := range doc.Sources {
		switch src.Disclaimer {
		case DisclaimerNone, DisclaimerSourceLicense, DisclaimerArticleBrand:
		default:
			return nil, fmt.Errorf("legacy: source %q: unknown disclaimer style %q", name, src.Disclaimer)
		}
		if src.Disclaimer == DisclaimerArticleBrand && (src.Brand.URI == "" || src.Brand.Label == "") {
			return nil, fmt.Errorf("legacy: source %q: article-brand disclaimer requires a brand label and uri", name)
		}
		src.Name = name
		if err := registry.Register(src); err != nil {
			return nil, err
		}
	}

	licenses := doc.Licenses
	if licenses == nil {
		licenses = map[string]string{}
	}
	return &Table{Sources: registry, Licenses: licenses}, nil
}

var (
	defaultTableOnce sync.Once
	defaultTable     *Table
	defaultTableErr  error
)

// DefaultSources returns the table bundled with the package.
func DefaultSources() (*Table, error) {
	defaultTableOnce.Do(func() {
		defaultTable, defaultTableErr = LoadSources(resources, defaultSourcesFile)
	})
	return defaultTable, defaultTableErr
}
