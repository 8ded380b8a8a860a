package usecase

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-report-service/internal/inventory"
	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/internal/report"
	"github.com/fekuna/omnipos-report-service/internal/report/dto"
	"github.com/fekuna/omnipos-report-service/pkg/cache"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const cachePrefix = "reports:"

var hundred = decimal.NewFromInt(100)

type Options struct {
	TopProductsLimit  int
	LeastSoldLimit    int
	MostReturnedLimit int

	// MaxLimit caps any requested limit. Zero disables the cap.
	MaxLimit int
	CacheTTL time.Duration
}

type reportUseCase struct {
	repo   report.Repository
	stock  inventory.Repository
	cache  report.Cache
	opts   Options
	logger logger.ZapLogger
}

// NewReportUseCase wires the report queries. reportCache may be nil, in which case
// every call goes to the database.
func NewReportUseCase(repo report.Repository, stock inventory.Repository, reportCache report.Cache, opts Options, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		repo:   repo,
		stock:  stock,
		cache:  reportCache,
		opts:   opts,
		logger: log,
	}
}

func (uc *reportUseCase) GetKPISummary(ctx context.Context, filters *dto.ReportFilters) (*model.KPISummary, error) {
	filters = orEmpty(filters)
	return cached(ctx, uc, "kpis", filters, 0, func() (*model.KPISummary, error) {
		var (
			agg        *model.SalesAggregate
			outOfStock int64
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			agg, err = uc.repo.SalesSummary(gctx, filters.Filters)
			return err
		})
		g.Go(func() error {
			var err error
			outOfStock, err = uc.stock.CountOutOfStock(gctx, filters.Category)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		return computeKPIs(agg, outOfStock), nil
	})
}

// computeKPIs derives the summary metrics. Revenue is spread over distinct products,
// and the return rate is zero when nothing was sold.
func computeKPIs(agg *model.SalesAggregate, outOfStock int64) *model.KPISummary {
	products := agg.ProductCount
	if products == 0 {
		products = 1
	}

	returnPercent := decimal.Zero
	if agg.UnitsSold > 0 {
		returnPercent = decimal.NewFromInt(agg.ReturnCount).
			Div(decimal.NewFromInt(agg.UnitsSold)).
			Mul(hundred).
			Round(2)
	}

	return &model.KPISummary{
		UnitsSold:       agg.UnitsSold,
		RevenuePerSKU:   agg.TotalRevenue.Div(decimal.NewFromInt(products)).Round(2),
		ReturnPercent:   returnPercent,
		OutOfStockCount: outOfStock,
	}
}

func (uc *reportUseCase) GetTopProducts(ctx context.Context, filters *dto.ReportFilters) ([]model.ProductSales, error) {
	filters = orEmpty(filters)
	limit := uc.limit(filters.Limit, uc.opts.TopProductsLimit)
	return cached(ctx, uc, "top-products", filters, limit, func() ([]model.ProductSales, error) {
		rows, err := uc.repo.TopProducts(ctx, filters.Filters, limit)
		return roundRevenue(rows), err
	})
}

func (uc *reportUseCase) GetLeastSoldProducts(ctx context.Context, filters *dto.ReportFilters) ([]model.ProductSales, error) {
	filters = orEmpty(filters)
	limit := uc.limit(filters.Limit, uc.opts.LeastSoldLimit)
	return cached(ctx, uc, "least-sold-products", filters, limit, func() ([]model.ProductSales, error) {
		rows, err := uc.repo.LeastSoldProducts(ctx, filters.Filters, limit)
		return roundRevenue(rows), err
	})
}

func (uc *reportUseCase) GetMostReturnedProducts(ctx context.Context, filters *dto.ReportFilters) ([]model.ProductSales, error) {
	filters = orEmpty(filters)
	limit := uc.limit(filters.Limit, uc.opts.MostReturnedLimit)
	return cached(ctx, uc, "most-returned-products", filters, limit, func() ([]model.ProductSales, error) {
		rows, err := uc.repo.MostReturnedProducts(ctx, filters.Filters, limit)
		return roundRevenue(rows), err
	})
}

func (uc *reportUseCase) GetCategoryComparison(ctx context.Context, filters *dto.ReportFilters) ([]model.CategorySales, error) {
	filters = orEmpty(filters)
	return cached(ctx, uc, "category-comparison", filters, 0, func() ([]model.CategorySales, error) {
		rows, err := uc.repo.CategoryComparison(ctx, filters.Filters)
		for i := range rows {
			rows[i].TotalRevenue = rows[i].TotalRevenue.Round(2)
		}
		return rows, err
	})
}

func (uc *reportUseCase) InvalidateCache(ctx context.Context) error {
	if uc.cache == nil {
		return nil
	}
	n, err := uc.cache.DeletePattern(ctx, cachePrefix+"*")
	if err != nil {
		return fmt.Errorf("invalidate report cache: %w", err)
	}
	uc.logger.Debug("report cache invalidated", zap.Int("keys", n))
	return nil
}

// limit applies the report default to an unset limit and caps oversized ones.
func (uc *reportUseCase) limit(requested, def int) int {
	if requested <= 0 {
		return def
	}
	if uc.opts.MaxLimit > 0 && requested > uc.opts.MaxLimit {
		return uc.opts.MaxLimit
	}
	return requested
}

func roundRevenue(rows []model.ProductSales) []model.ProductSales {
	for i := range rows {
		rows[i].Revenue = rows[i].Revenue.Round(2)
	}
	return rows
}

func orEmpty(filters *dto.ReportFilters) *dto.ReportFilters {
	if filters == nil {
		return &dto.ReportFilters{}
	}
	return filters
}

// cached serves a report from the cache when possible and stores fresh results.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, uc *reportUseCase, name string, filters *dto.ReportFilters, limit int, load func() (T, error)) (T, error) {
	if uc.cache == nil {
		return load()
	}

	key := cacheKey(name, filters, limit)
	if raw, err := uc.cache.Get(ctx, key); err == nil {
		var hit T
		if err := json.Unmarshal(raw, &hit); err == nil {
			return hit, nil
		}
		uc.logger.Warn("discarding undecodable cached report", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrMiss) {
		uc.logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
	}

	result, err := load()
	if err != nil {
		return result, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := uc.cache.Set(ctx, key, raw, uc.opts.CacheTTL); err != nil {
			uc.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return result, nil
}

func cacheKey(name string, filters *dto.ReportFilters, limit int) string {
	raw, _ := json.Marshal(struct {
		Filters any `json:"f"`
		Limit   int `json:"l"`
	}{filters.Filters, limit})
	sum := md5.Sum(raw)
	return cachePrefix + name + ":" + hex.EncodeToString(sum[:])
}
