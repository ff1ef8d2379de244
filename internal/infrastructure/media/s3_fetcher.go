package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"mecanica_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3GetObjectAPI is the part of *s3.Client the fetcher needs.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Fetcher loads media stored as "s3://bucket/key" objects.
type S3Fetcher struct {
	client S3GetObjectAPI
}

var _ interfaces.IImageFetcher = (*S3Fetcher)(nil)

func NewS3Fetcher(client S3GetObjectAPI) *S3Fetcher {
	return &S3Fetcher{client: client}
}

func (f *S3Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	bucket, key, err := parseS3URL(rawURL)
	if err != nil {
		return nil, newFetchError(rawURL, KindInvalidURL, err)
	}

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, newFetchError(rawURL, KindNotFound, ErrMediaNotFound)
		}
		return nil, newFetchError(rawURL, KindNetwork, err)
	}
	defer out.Body.Close()

	if out.ContentLength != nil && *out.ContentLength > MaxMediaBytes {
		return nil, newFetchError(rawURL, KindTooLarge, ErrMediaTooLarge)
	}

	body, err := io.ReadAll(io.LimitReader(out.Body, MaxMediaBytes+1))
	if err != nil {
		return nil, newFetchError(rawURL, KindNetwork, err)
	}
	if len(body) > MaxMediaBytes {
		return nil, newFetchError(rawURL, KindTooLarge, ErrMediaTooLarge)
	}
	return body, nil
}

func parseS3URL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedURL, rawURL)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("%w: missing object key", ErrUnsupportedURL)
	}
	return u.Host, key, nil
}
