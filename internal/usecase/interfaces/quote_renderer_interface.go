package interfaces

//go:generate mockgen -source=quote_renderer_interface.go -destination=mocks/mock_quote_renderer.go -package=mock_interfaces

import (
	"context"
	"mecanica_quotes/internal/domain/entities"
)

// IQuoteRenderer turns a quote into a finished PDF.
type IQuoteRenderer interface {
	Render(ctx context.Context, quote entities.QuoteRecord, issuedBy *string) (content []byte, pages int, err error)
}
