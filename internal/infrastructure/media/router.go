package media

import (
	"context"
	"fmt"
	"strings"

	"mecanica_quotes/internal/usecase/interfaces"
)

// Router picks a fetcher from the URL scheme: http(s) goes to the network,
// s3 to object storage, anything else is a path under the local media root.
type Router struct {
	http  interfaces.IImageFetcher
	s3    interfaces.IImageFetcher
	local interfaces.IImageFetcher
}

var _ interfaces.IImageFetcher = (*Router)(nil)

// NewRouter builds a Router. s3 may be nil when object storage is not
// configured; s3:// URLs then fail as unsupported.
func NewRouter(http, s3, local interfaces.IImageFetcher) *Router {
	return &Router{http: http, s3: s3, local: local}
}

func (r *Router) Fetch(ctx context.Context, url string) ([]byte, error) {
	lower := strings.ToLower(strings.TrimSpace(url))
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return r.http.Fetch(ctx, url)
	case strings.HasPrefix(lower, "s3://"):
		if r.s3 == nil {
			return nil, newFetchError(url, KindInvalidURL, fmt.Errorf("%w: object storage not configured", ErrUnsupportedURL))
		}
		return r.s3.Fetch(ctx, url)
	default:
		return r.local.Fetch(ctx, url)
	}
}
