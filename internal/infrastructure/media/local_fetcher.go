package media

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mecanica_quotes/internal/usecase/interfaces"
)

// LocalFetcher reads uploaded media stored under a root directory. URLs are
// paths relative to that root, optionally with a leading slash
// ("/uploads/os-1/photo.jpg"). Paths are cleaned as if rooted, so ".."
// segments cannot leave the root.
type LocalFetcher struct {
	root string
}

var _ interfaces.IImageFetcher = (*LocalFetcher)(nil)

func NewLocalFetcher(root string) *LocalFetcher {
	return &LocalFetcher{root: root}
}

func (f *LocalFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, newFetchError(url, KindNetwork, err)
	}

	path, err := f.resolve(url)
	if err != nil {
		return nil, newFetchError(url, KindInvalidURL, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newFetchError(url, KindNotFound, ErrMediaNotFound)
		}
		return nil, newFetchError(url, KindNetwork, err)
	}
	if info.IsDir() {
		return nil, newFetchError(url, KindNotFound, ErrMediaNotFound)
	}
	if info.Size() > MaxMediaBytes {
		return nil, newFetchError(url, KindTooLarge, ErrMediaTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newFetchError(url, KindNetwork, err)
	}
	return data, nil
}

func (f *LocalFetcher) resolve(url string) (string, error) {
	rel := filepath.Clean("/" + strings.TrimSpace(url))
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" || rel == "." {
		return "", ErrUnsupportedURL
	}
	return filepath.Join(f.root, rel), nil
}
