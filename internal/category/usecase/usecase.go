package usecase

import (
	"context"

	"github.com/fekuna/omnipos-report-service/internal/category"
	"github.com/fekuna/omnipos-report-service/internal/category/dto"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) GetFilters(ctx context.Context) (*dto.Filters, error) {
	names, err := uc.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return &dto.Filters{Categories: names}, nil
}
