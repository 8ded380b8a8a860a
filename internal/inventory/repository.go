package inventory

import (
	"context"

	"github.com/fekuna/omnipos-report-service/internal/model"
)

type Repository interface {
	// CountOutOfStock counts active products whose variants sum to zero stock.
	CountOutOfStock(ctx context.Context, category string) (int64, error)
	ListOutOfStock(ctx context.Context, category string) ([]model.OutOfStockProduct, error)
}
