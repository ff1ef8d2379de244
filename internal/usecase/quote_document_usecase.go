package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mecanica_quotes/internal/domain/entities"
	"mecanica_quotes/internal/infrastructure/quotepdf"
	"mecanica_quotes/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidQuoteToken = errors.New("invalid quote token")
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrQuoteRenderFailed = errors.New("quote render failed")
)

// IQuoteDocumentUseCase exposes quote document operations.
//   - "Gerar PDF do orçamento" => GenerateByToken()

type IQuoteDocumentUseCase interface {
	GenerateByToken(ctx context.Context, token string, issuedBy *string) (entities.QuoteDocument, error)
}

type QuoteDocumentUseCase struct {
	repo     interfaces.IQuoteRepository
	renderer interfaces.IQuoteRenderer
	logger   *zap.Logger
}

var _ IQuoteDocumentUseCase = (*QuoteDocumentUseCase)(nil)

func NewQuoteDocumentUseCase(repo interfaces.IQuoteRepository, renderer interfaces.IQuoteRenderer, logger *zap.Logger) *QuoteDocumentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteDocumentUseCase{repo: repo, renderer: renderer, logger: logger}
}

func (u *QuoteDocumentUseCase) GenerateByToken(ctx context.Context, token string, issuedBy *string) (entities.QuoteDocument, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.QuoteDocument{}, ErrInvalidQuoteToken
	}

	quote, err := u.repo.GetByPublicToken(ctx, token)
	if err != nil {
		return entities.QuoteDocument{}, err
	}
	if quote.OrderID == "" {
		return entities.QuoteDocument{}, ErrQuoteNotFound
	}

	log := u.logger.With(zap.String("order_id", quote.OrderID), zap.String("public_token", token))

	// The stored total is what the customer approves; a mismatch is reported,
	// never corrected.
	if sum := quote.ItemsTotal(); sum != quote.TotalAmount {
		log.Warn("quote total differs from item sum",
			zap.Int64("total_amount", quote.TotalAmount),
			zap.Int64("items_total", sum),
		)
	}
	if !quote.Status.Known() {
		log.Warn("unknown order status", zap.String("status", string(quote.Status)))
	}

	if issuedBy != nil && strings.TrimSpace(*issuedBy) == "" {
		issuedBy = nil
	}

	content, pages, err := u.renderer.Render(ctx, quote, issuedBy)
	if err != nil {
		return entities.QuoteDocument{}, fmt.Errorf("%w: %w", ErrQuoteRenderFailed, err)
	}

	return entities.QuoteDocument{
		Filename: quotepdf.SuggestedFilename(quote.Description, token),
		Content:  content,
		Pages:    pages,
	}, nil
}
