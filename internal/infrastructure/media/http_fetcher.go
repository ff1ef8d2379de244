package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"mecanica_quotes/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultFetchTimeout = 5 * time.Second
	MaxMediaBytes       = 10 << 20
)

// HTTPFetcher downloads remote photos. Each request is bounded by its own
// timeout so one unreachable host cannot hold a render.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

var _ interfaces.IImageFetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher(client *http.Client, timeout time.Duration, logger *zap.Logger) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPFetcher{client: client, timeout: timeout, logger: logger.Named("media.http")}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newFetchError(url, KindInvalidURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("fetch failed", zap.String("url", url), zap.Error(err))
		return nil, newFetchError(url, KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxMediaBytes+1))
	if err != nil {
		return nil, newFetchError(url, KindNetwork, err)
	}
	if len(body) > MaxMediaBytes {
		return nil, newFetchError(url, KindTooLarge, fmt.Errorf("%w: more than %d bytes", ErrMediaTooLarge, MaxMediaBytes))
	}
	return body, nil
}
