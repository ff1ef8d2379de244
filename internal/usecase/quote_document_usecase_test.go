package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mecanica_quotes/internal/domain/entities"
	mock_interfaces "mecanica_quotes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func quoteFixture() entities.QuoteRecord {
	return entities.QuoteRecord{
		OrderID:     "os-1",
		PublicToken: "Ab12Cd",
		Description: "Troca de óleo",
		Status:      entities.OrderStatusPendingApproval,
		TotalAmount: 22000,
		Items: []entities.LineItem{
			{Description: "Óleo 5W30", Quantity: 2, UnitPrice: 5000},
			{Description: "Mão de obra", Quantity: 1, UnitPrice: 12000},
		},
		CreatedAt: time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC),
		Workshop:  entities.Workshop{Name: "Oficina XPTO", Document: "12345678000195"},
		Customer:  entities.Customer{Name: "João"},
		Vehicle:   entities.Vehicle{Plate: "abc1d23", Brand: "Fiat", Model: "Uno"},
	}
}

func TestQuoteDocumentUseCase_GenerateByToken(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		uc := NewQuoteDocumentUseCase(nil, nil, nil)
		_, err := uc.GenerateByToken(context.Background(), "   ", nil)
		if !errors.Is(err, ErrInvalidQuoteToken) {
			t.Fatalf("expected ErrInvalidQuoteToken, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewQuoteDocumentUseCase(repo, renderer, nil)

		repo.EXPECT().GetByPublicToken(gomock.Any(), "Ab12Cd").Return(entities.QuoteRecord{}, errors.New("db"))

		_, err := uc.GenerateByToken(context.Background(), "Ab12Cd", nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewQuoteDocumentUseCase(repo, renderer, nil)

		repo.EXPECT().GetByPublicToken(gomock.Any(), "Ab12Cd").Return(entities.QuoteRecord{}, nil)

		_, err := uc.GenerateByToken(context.Background(), " Ab12Cd ", nil)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("render error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewQuoteDocumentUseCase(repo, renderer, nil)

		cause := errors.New("boom")
		repo.EXPECT().GetByPublicToken(gomock.Any(), "Ab12Cd").Return(quoteFixture(), nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil, 0, cause)

		_, err := uc.GenerateByToken(context.Background(), "Ab12Cd", nil)
		if !errors.Is(err, ErrQuoteRenderFailed) || !errors.Is(err, cause) {
			t.Fatalf("expected ErrQuoteRenderFailed wrapping cause, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewQuoteDocumentUseCase(repo, renderer, nil)

		issuer := "Carlos"
		repo.EXPECT().GetByPublicToken(gomock.Any(), "Ab12Cd").Return(quoteFixture(), nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRecord{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRecord, issuedBy *string) ([]byte, int, error) {
				if q.OrderID != "os-1" {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if issuedBy == nil || *issuedBy != "Carlos" {
					t.Fatalf("expected issuer Carlos, got %v", issuedBy)
				}
				return []byte("%PDF-1.4"), 1, nil
			},
		)

		doc, err := uc.GenerateByToken(context.Background(), "Ab12Cd", &issuer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Filename != "Troca_de_oleo_Ab12Cd.pdf" {
			t.Fatalf("expected Troca_de_oleo_Ab12Cd.pdf, got %q", doc.Filename)
		}
		if doc.Pages != 1 || !strings.HasPrefix(string(doc.Content), "%PDF") {
			t.Fatalf("unexpected document: %d pages, %q", doc.Pages, doc.Content)
		}
	})

	t.Run("blank issuer is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewQuoteDocumentUseCase(repo, renderer, nil)

		blank := "  "
		repo.EXPECT().GetByPublicToken(gomock.Any(), "Ab12Cd").Return(quoteFixture(), nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Nil()).Return([]byte("%PDF"), 1, nil)

		if _, err := uc.GenerateByToken(context.Background(), "Ab12Cd", &blank); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("total drift is logged and kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		core, logs := observer.New(zapcore.WarnLevel)
		uc := NewQuoteDocumentUseCase(repo, renderer, zap.New(core))

		q := quoteFixture()
		q.TotalAmount = 99999
		repo.EXPECT().GetByPublicToken(gomock.Any(), "Ab12Cd").Return(q, nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.QuoteRecord, _ *string) ([]byte, int, error) {
				if got.TotalAmount != 99999 {
					t.Fatalf("expected stored total to be passed through, got %d", got.TotalAmount)
				}
				return []byte("%PDF"), 1, nil
			},
		)

		if _, err := uc.GenerateByToken(context.Background(), "Ab12Cd", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entries := logs.FilterMessage("quote total differs from item sum").All()
		if len(entries) != 1 {
			t.Fatalf("expected 1 drift warning, got %d", len(entries))
		}
		if got := entries[0].ContextMap()["items_total"]; got != int64(22000) {
			t.Fatalf("expected items_total 22000, got %v", got)
		}
	})
}
