package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-report-service/pkg/logger"
)

type fakeRepo struct {
	names []string
	err   error
}

func (f fakeRepo) ListNames(ctx context.Context) ([]string, error) {
	return f.names, f.err
}

func TestGetFilters(t *testing.T) {
	uc := NewCategoryUseCase(fakeRepo{names: []string{"Garden", "Tools"}}, logger.NewNop())

	got, err := uc.GetFilters(context.Background())
	if err != nil {
		t.Fatalf("GetFilters() error: %v", err)
	}
	if len(got.Categories) != 2 || got.Categories[1] != "Tools" {
		t.Errorf("unexpected categories %v", got.Categories)
	}
}

func TestGetFilters_NilBecomesEmpty(t *testing.T) {
	uc := NewCategoryUseCase(fakeRepo{}, logger.NewNop())

	got, err := uc.GetFilters(context.Background())
	if err != nil {
		t.Fatalf("GetFilters() error: %v", err)
	}
	if got.Categories == nil {
		t.Error("expected empty slice so the response encodes []")
	}
}

func TestGetFilters_Error(t *testing.T) {
	repoErr := errors.New("boom")
	uc := NewCategoryUseCase(fakeRepo{err: repoErr}, logger.NewNop())

	if _, err := uc.GetFilters(context.Background()); !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
