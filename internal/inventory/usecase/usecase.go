package usecase

import (
	"context"

	"github.com/fekuna/omnipos-report-service/internal/inventory"
	"github.com/fekuna/omnipos-report-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) ListOutOfStock(ctx context.Context, filters *dto.OutOfStockFilters) ([]model.OutOfStockProduct, error) {
	rows, err := uc.repo.ListOutOfStock(ctx, filters.Category)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("out of stock products listed",
		zap.String("category", filters.Category),
		zap.Int("count", len(rows)),
	)
	return rows, nil
}
