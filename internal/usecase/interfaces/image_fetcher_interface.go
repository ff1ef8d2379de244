package interfaces

//go:generate mockgen -source=image_fetcher_interface.go -destination=mocks/mock_image_fetcher.go -package=mock_interfaces

import "context"

// IImageFetcher loads the bytes behind a media URL.
//
// Failures are expected (remote host down, file removed) and callers skip the
// affected photo; implementations should return *media.FetchError so the
// reason can be logged.
type IImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
