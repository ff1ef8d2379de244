package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mecanica_quotes/internal/domain/entities"
	"mecanica_quotes/internal/usecase/interfaces"
)

// QuoteFileRepository reads quote documents stored as <dir>/<token>.json.
// It is meant for local rendering and fixtures; the JSON shape is the
// QuoteRecord one.
type QuoteFileRepository struct {
	dir string
}

var _ interfaces.IQuoteRepository = (*QuoteFileRepository)(nil)

func NewQuoteFileRepository(dir string) *QuoteFileRepository {
	return &QuoteFileRepository{dir: dir}
}

func (r *QuoteFileRepository) GetByPublicToken(ctx context.Context, token string) (entities.QuoteRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.QuoteRecord{}, err
	}
	// Tokens never contain path separators; anything that does cannot exist.
	if token == "" || strings.ContainsAny(token, `/\`) || token == "." || token == ".." {
		return entities.QuoteRecord{}, nil
	}

	raw, err := os.ReadFile(filepath.Join(r.dir, token+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entities.QuoteRecord{}, nil
		}
		return entities.QuoteRecord{}, err
	}

	var q entities.QuoteRecord
	if err := json.Unmarshal(raw, &q); err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("quote file %s: %w", token, err)
	}
	return q, nil
}
