package loader

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Source identifies where template text lives so loaders can read files or
// fs.FS resources without leaking implementation details. URI is the stable
// identifier the template cache keys on.
type Source interface {
	Kind() SourceKind
	Location() string
	URI() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
)

const (
	fileScheme     = "file://"
	resourceScheme = "resource:///"
)

// fileSource identifies on-disk templates.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

func (s fileSource) URI() string {
	return fileScheme + filepath.ToSlash(s.path)
}

// SourceFromFile returns a Source pointing to a file path. Relative paths are
// made absolute so the same file always yields the same URI.
func SourceFromFile(p string) Source {
	cleaned := filepath.Clean(p)
	if abs, err := filepath.Abs(cleaned); err == nil {
		cleaned = abs
	}
	return fileSource{path: cleaned}
}

// fsSource references a path within an fs.FS, addressed as resource:///name.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

func (s fsSource) URI() string {
	return resourceScheme + s.name
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	cleaned := path.Clean("/" + strings.TrimSpace(name))
	return fsSource{name: strings.TrimPrefix(cleaned, "/")}
}

// ParseURI maps a location string to a Source. file:// and resource:///
// URIs are recognised; anything else is treated as a filesystem path.
func ParseURI(raw string) (Source, error) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return nil, fmt.Errorf("loader: empty location")
	case strings.HasPrefix(trimmed, resourceScheme):
		name := strings.TrimPrefix(trimmed, resourceScheme)
		if name == "" {
			return nil, fmt.Errorf("loader: resource uri %q has no path", raw)
		}
		return SourceFromFS(name), nil
	case strings.HasPrefix(trimmed, fileScheme):
		p := strings.TrimPrefix(trimmed, fileScheme)
		if p == "" {
			return nil, fmt.Errorf("loader: file uri %q has no path", raw)
		}
		return SourceFromFile(filepath.FromSlash(p)), nil
	case strings.Contains(trimmed, "://"):
		return nil, fmt.Errorf("loader: unsupported uri scheme in %q", raw)
	default:
		return SourceFromFile(trimmed), nil
	}
}
