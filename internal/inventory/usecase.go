package inventory

import (
	"context"

	"github.com/fekuna/omnipos-report-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-report-service/internal/model"
)

type UseCase interface {
	ListOutOfStock(ctx context.Context, filters *dto.OutOfStockFilters) ([]model.OutOfStockProduct, error)
}
