package interfaces

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository.go -package=mock_interfaces

import (
	"context"
	"mecanica_quotes/internal/domain/entities"
)

// IQuoteRepository resolves the fully joined quote behind a public token.
//
// Implementations return a zero QuoteRecord (empty OrderID) and a nil error
// when the token is unknown.

type IQuoteRepository interface {
	GetByPublicToken(ctx context.Context, token string) (entities.QuoteRecord, error)
}
