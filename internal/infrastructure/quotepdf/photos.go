package quotepdf

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"mecanica_quotes/internal/domain/entities"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Thumbnails are stored at twice the cell size so they stay sharp in print.
const (
	thumbnailPixels  = int(photoCellSize) * 2
	thumbnailQuality = 80
)

// photoResult is the outcome of loading one photo: either a JPEG thumbnail
// or the reason it will be left out.
type photoResult struct {
	media entities.Media
	jpeg  []byte
	err   error
}

// loadPhotos fetches every photo, at most r.concurrency at a time, and
// returns the results indexed like the input.
func (r *Renderer) loadPhotos(ctx context.Context, photos []entities.Media) []photoResult {
	results := make([]photoResult, len(photos))
	if len(photos) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, m := range photos {
		g.Go(func() error {
			results[i] = r.loadPhoto(ctx, m)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Renderer) loadPhoto(ctx context.Context, m entities.Media) photoResult {
	raw, err := r.fetcher.Fetch(ctx, m.URL)
	if err != nil {
		return photoResult{media: m, err: err}
	}
	thumb, err := makeThumbnail(raw)
	if err != nil {
		return photoResult{media: m, err: fmt.Errorf("decode photo %q: %w", m.URL, err)}
	}
	return photoResult{media: m, jpeg: thumb}
}

// makeThumbnail center-crops the image to a square and re-encodes it as JPEG.
func makeThumbnail(raw []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Fill(img, thumbnailPixels, thumbnailPixels, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(thumbnailQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawPhotos lays out the loaded photos three per row. Photos that failed to
// load are logged and skipped; the remaining ones keep their relative order.
// Nothing is drawn when no photo could be loaded.
func drawPhotos(c *pageCursor, results []photoResult, log *zap.Logger) {
	var loaded []photoResult
	for _, res := range results {
		if res.err != nil {
			log.Warn("skipping quote photo", zap.String("url", res.media.URL), zap.Error(res.err))
			continue
		}
		loaded = append(loaded, res)
	}
	if len(loaded) == 0 {
		return
	}

	c.breakIfBelow(photoSectionBreakY)
	drawHeading(c, "FOTOS")

	for i, res := range loaded {
		col := i % photosPerRow
		if col == 0 {
			if i > 0 {
				c.y += photoRowAdvance
			}
			c.breakIfBelow(photoRowBreakY)
		}

		x := margin + float64(col)*(photoCellSize+photoGap)
		c.image("photo-"+strconv.Itoa(i), res.jpeg, x, c.y, photoCellSize, photoCellSize, res.media.URL)

		if res.media.Caption != nil && *res.media.Caption != "" {
			c.font("", 8, colorMuted)
			caption := truncateToWidth(c, *res.media.Caption, photoCellSize)
			c.text(x, c.y+photoCellSize+2, photoCellSize, photoCaptionHeight-2, caption, "C")
		}
	}
	c.y += photoRowAdvance
}
