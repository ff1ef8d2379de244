package quotepdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mecanica_quotes/internal/domain/entities"
	"mecanica_quotes/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultFetchConcurrency = 4

// Section names, in drawing order.
const (
	sectionHeader       = "header"
	sectionQuoteInfo    = "quote_info"
	sectionVehicle      = "vehicle"
	sectionCustomer     = "customer"
	sectionItems        = "items"
	sectionPhotos       = "photos"
	sectionObservations = "observations"
	sectionFooter       = "footer"
)

var ErrNilFetcher = errors.New("quotepdf: image fetcher is required")

// RenderError reports the section whose drawing failed. A failed render never
// produces output.
type RenderError struct {
	Section string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s section: %v", e.Section, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer draws quote documents. It holds no per-document state and is safe
// for concurrent use.
type Renderer struct {
	fetcher     interfaces.IImageFetcher
	logger      *zap.Logger
	now         func() time.Time
	location    *time.Location
	concurrency int
}

var _ interfaces.IQuoteRenderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithClock overrides the render time used for the expiry banner and the
// generation line.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithLocation sets the time zone dates are printed in.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) {
		r.location = loc
	}
}

// WithFetchConcurrency bounds how many photos are fetched at once.
func WithFetchConcurrency(n int) Option {
	return func(r *Renderer) {
		r.concurrency = n
	}
}

func NewRenderer(fetcher interfaces.IImageFetcher, opts ...Option) *Renderer {
	r := &Renderer{
		fetcher:     fetcher,
		logger:      zap.NewNop(),
		now:         time.Now,
		location:    time.UTC,
		concurrency: defaultFetchConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency < 1 {
		r.concurrency = 1
	}
	return r
}

// renderedQuote is a finished document plus the layout trace that produced it.
type renderedQuote struct {
	content []byte
	pages   int
	trace   []placement
}

// Render draws the quote and returns the serialized PDF with its page count.
// issuedBy is the display name of whoever requested the document, if any.
func (r *Renderer) Render(ctx context.Context, quote entities.QuoteRecord, issuedBy *string) ([]byte, int, error) {
	out, err := r.render(ctx, quote, issuedBy)
	if err != nil {
		return nil, 0, err
	}
	return out.content, out.pages, nil
}

func (r *Renderer) render(ctx context.Context, quote entities.QuoteRecord, issuedBy *string) (*renderedQuote, error) {
	if r.fetcher == nil {
		return nil, ErrNilFetcher
	}

	now := r.now().In(r.location)
	log := r.logger.With(zap.String("order_id", quote.OrderID), zap.String("public_token", quote.PublicToken))
	start := time.Now()

	// Photos are loaded before anything is drawn; the grid is then filled in
	// source order regardless of which fetch finished first.
	photos := r.loadPhotos(ctx, quote.Photos())

	c := newPageCursor(quote.Description, quote.Workshop.Name, now)

	sections := []struct {
		name string
		draw func(*pageCursor)
	}{
		{sectionHeader, func(c *pageCursor) { drawHeader(c, quote.Workshop) }},
		{sectionQuoteInfo, func(c *pageCursor) { drawQuoteInfo(c, quote, issuedBy, r.location) }},
		{sectionVehicle, func(c *pageCursor) { drawVehicle(c, quote.Vehicle) }},
		{sectionCustomer, func(c *pageCursor) { drawCustomer(c, quote.Customer) }},
		{sectionItems, func(c *pageCursor) { drawItems(c, quote.Items, quote.TotalAmount) }},
		{sectionPhotos, func(c *pageCursor) { drawPhotos(c, photos, log) }},
		{sectionObservations, func(c *pageCursor) { drawObservations(c, quote.Observations) }},
		{sectionFooter, func(c *pageCursor) { drawFooter(c, quote.ExpiresAt, now) }},
	}

	for _, s := range sections {
		c.beginSection(s.name)
		s.draw(c)
		if err := c.err(); err != nil {
			log.Error("quote render failed", zap.String("section", s.name), zap.Error(err))
			return nil, &RenderError{Section: s.name, Err: err}
		}
	}

	pages := c.pages()
	content, err := c.finish()
	if err != nil {
		log.Error("quote serialization failed", zap.Error(err))
		return nil, &RenderError{Section: "output", Err: err}
	}

	log.Info("quote rendered",
		zap.Int("pages", pages),
		zap.Int("items", len(quote.Items)),
		zap.Int("photos", len(photos)),
		zap.Int("bytes", len(content)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &renderedQuote{content: content, pages: pages, trace: c.trace}, nil
}
