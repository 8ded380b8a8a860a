package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-report-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
)

type fakeRepo struct {
	category string
	rows     []model.OutOfStockProduct
	err      error
}

func (f *fakeRepo) CountOutOfStock(ctx context.Context, category string) (int64, error) {
	f.category = category
	return int64(len(f.rows)), f.err
}

func (f *fakeRepo) ListOutOfStock(ctx context.Context, category string) ([]model.OutOfStockProduct, error) {
	f.category = category
	return f.rows, f.err
}

func TestListOutOfStock(t *testing.T) {
	repo := &fakeRepo{rows: []model.OutOfStockProduct{{ProductID: 1, ProductName: "Hammer", VariantCount: 2}}}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	rows, err := uc.ListOutOfStock(context.Background(), &dto.OutOfStockFilters{Category: "Tools"})
	if err != nil {
		t.Fatalf("ListOutOfStock() error: %v", err)
	}
	if len(rows) != 1 || rows[0].ProductName != "Hammer" {
		t.Errorf("unexpected rows %+v", rows)
	}
	if repo.category != "Tools" {
		t.Errorf("category not forwarded, got %q", repo.category)
	}
}

func TestListOutOfStock_Error(t *testing.T) {
	repoErr := errors.New("boom")
	uc := NewInventoryUseCase(&fakeRepo{err: repoErr}, logger.NewNop())

	if _, err := uc.ListOutOfStock(context.Background(), &dto.OutOfStockFilters{}); !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
