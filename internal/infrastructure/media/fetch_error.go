package media

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies why a media URL could not be loaded.
type FetchErrorKind string

const (
	KindNetwork    FetchErrorKind = "network"
	KindStatus     FetchErrorKind = "status"
	KindNotFound   FetchErrorKind = "not_found"
	KindInvalidURL FetchErrorKind = "invalid_url"
	KindTooLarge   FetchErrorKind = "too_large"
)

var (
	ErrMediaNotFound  = errors.New("media not found")
	ErrMediaTooLarge  = errors.New("media exceeds size limit")
	ErrUnsupportedURL = errors.New("unsupported media url")
)

// FetchError is returned by every fetcher in this package.
type FetchError struct {
	URL        string
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newFetchError(url string, kind FetchErrorKind, err error) *FetchError {
	return &FetchError{URL: url, Kind: kind, Err: err}
}
