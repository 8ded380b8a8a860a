package report

import (
	"context"

	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/internal/query"
)

type Repository interface {
	SalesSummary(ctx context.Context, filters query.Filters) (*model.SalesAggregate, error)
	TopProducts(ctx context.Context, filters query.Filters, limit int) ([]model.ProductSales, error)
	LeastSoldProducts(ctx context.Context, filters query.Filters, limit int) ([]model.ProductSales, error)
	MostReturnedProducts(ctx context.Context, filters query.Filters, limit int) ([]model.ProductSales, error)
	CategoryComparison(ctx context.Context, filters query.Filters) ([]model.CategorySales, error)
}
