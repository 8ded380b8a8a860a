package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/internal/query"
	"github.com/jmoiron/sqlx"
)

// outOfStockProducts lists active products with at least one variant and a summed
// stock of exactly zero. Products without variants have no stock to run out of.
const outOfStockProducts = `
        SELECT
            p.id AS product_id,
            p.name AS product_name,
            c.name AS category_name,
            COUNT(pv.id) AS variant_count
        FROM products p
        JOIN product_variants pv ON pv.product_id = p.id
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.status = %d%s
        GROUP BY p.id, p.name, c.name
        HAVING SUM(pv.stock) = 0`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) CountOutOfStock(ctx context.Context, category string) (int64, error) {
	inner, args := outOfStockQuery(category)
	q := fmt.Sprintf(`SELECT COUNT(*) FROM (%s
        ) oos`, inner)

	var count int64
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(q), args...); err != nil {
		return 0, fmt.Errorf("count out of stock: %w", err)
	}
	return count, nil
}

func (r *SQLRepository) ListOutOfStock(ctx context.Context, category string) ([]model.OutOfStockProduct, error) {
	inner, args := outOfStockQuery(category)
	q := inner + `
        ORDER BY p.id ASC`

	rows := []model.OutOfStockProduct{}
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("list out of stock: %w", err)
	}
	return rows, nil
}

func outOfStockQuery(category string) (string, []any) {
	where, args := query.NewBuilder(query.Filters{Category: category}).Where(query.KeyCategory)
	return fmt.Sprintf(outOfStockProducts, model.ProductStatusActive, where), args
}
