package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestQuoteFileRepository_GetByPublicToken(t *testing.T) {
	dir := t.TempDir()
	raw, err := json.Marshal(sampleQuote())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tok-abc.json"), raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	repo := NewQuoteFileRepository(dir)

	t.Run("found", func(t *testing.T) {
		q, err := repo.GetByPublicToken(context.Background(), "tok-abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.OrderID != "os-1" || len(q.Items) != 2 || q.Vehicle.Plate != "ABC1D23" {
			t.Fatalf("unexpected record: %+v", q)
		}
	})

	t.Run("missing file returns zero record", func(t *testing.T) {
		q, err := repo.GetByPublicToken(context.Background(), "nope")
		if err != nil || q.OrderID != "" {
			t.Fatalf("expected zero record, got %+v, %v", q, err)
		}
	})

	t.Run("path-like token returns zero record", func(t *testing.T) {
		q, err := repo.GetByPublicToken(context.Background(), "../tok-abc")
		if err != nil || q.OrderID != "" {
			t.Fatalf("expected zero record, got %+v, %v", q, err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := repo.GetByPublicToken(context.Background(), "broken"); err == nil {
			t.Fatalf("expected decode error")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := repo.GetByPublicToken(ctx, "tok-abc"); err == nil {
			t.Fatalf("expected context error")
		}
	})
}
