package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"

	pkgloader "github.com/goliatone/go-articlerender/pkg/loader"
)

// Loader implements pkgloader.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level package.
type Loader struct {
	resources fs.FS
	files     bool
}

// Ensure the implementation satisfies the public interface.
var _ pkgloader.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgloader.Options) *Loader {
	return &Loader{
		resources: options.Resources,
		files:     !options.DisableFiles,
	}
}

// Load reads template text for the provided source.
func (l *Loader) Load(ctx context.Context, src pkgloader.Source) (string, error) {
	if src == nil {
		return "", errors.New("template loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgloader.SourceKindFile:
		if !l.files {
			return "", errors.New("template loader: file sources disabled")
		}
		data, err = loadFile(ctx, src.Location())
	case pkgloader.SourceKindFS:
		data, err = loadFromFS(ctx, l.resources, src.Location())
	default:
		err = errors.New("template loader: unsupported source kind")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("template loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
