package report

import (
	"context"

	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/internal/report/dto"
)

type UseCase interface {
	GetKPISummary(ctx context.Context, filters *dto.ReportFilters) (*model.KPISummary, error)
	GetTopProducts(ctx context.Context, filters *dto.ReportFilters) ([]model.ProductSales, error)
	GetLeastSoldProducts(ctx context.Context, filters *dto.ReportFilters) ([]model.ProductSales, error)
	GetMostReturnedProducts(ctx context.Context, filters *dto.ReportFilters) ([]model.ProductSales, error)
	GetCategoryComparison(ctx context.Context, filters *dto.ReportFilters) ([]model.CategorySales, error)

	// InvalidateCache drops every cached report. A no-op when caching is off.
	InvalidateCache(ctx context.Context) error
}
