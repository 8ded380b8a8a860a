package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-report-service/internal/model"
	"github.com/fekuna/omnipos-report-service/internal/query"
	"github.com/jmoiron/sqlx"
)

// Returns are pre-aggregated per order item so an item with several return requests
// is not counted several times in quantity and revenue sums.
const returnsPerItem = `SELECT order_item_id, COUNT(*) AS return_count FROM return_requests GROUP BY order_item_id`

const stockPerProduct = `SELECT product_id, SUM(stock) AS current_stock FROM product_variants GROUP BY product_id`

const revenueExpr = `oi.quantity * COALESCE(oi.discounted_price, oi.price)`

// salesJoins is the order item -> order -> variant -> product -> category chain shared
// by the sales reports. The caller appends its WHERE.
var salesJoins = fmt.Sprintf(`
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        JOIN product_variants pv ON pv.id = oi.product_variant_id
        JOIN products p ON p.id = pv.product_id
        LEFT JOIN categories c ON c.id = p.category_id
        LEFT JOIN (%s) rr ON rr.order_item_id = oi.id`, returnsPerItem)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) SalesSummary(ctx context.Context, f query.Filters) (*model.SalesAggregate, error) {
	where, args := query.NewBuilder(f).Where()

	q := fmt.Sprintf(`
        SELECT
            COALESCE(SUM(oi.quantity), 0) AS units_sold,
            COALESCE(SUM(%s), 0) AS total_revenue,
            COUNT(DISTINCT p.id) AS product_count,
            COALESCE(SUM(rr.return_count), 0) AS return_count
        %s
        WHERE p.status = %d%s
    `, revenueExpr, salesJoins, model.ProductStatusActive, where)

	var agg model.SalesAggregate
	if err := r.DB.GetContext(ctx, &agg, r.DB.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &agg, nil
}

func (r *SQLRepository) TopProducts(ctx context.Context, f query.Filters, limit int) ([]model.ProductSales, error) {
	rows, err := r.selectProductSales(ctx, f, limit,
		"SUM(oi.quantity) > 0",
		"revenue DESC, p.id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	return rows, nil
}

func (r *SQLRepository) MostReturnedProducts(ctx context.Context, f query.Filters, limit int) ([]model.ProductSales, error) {
	rows, err := r.selectProductSales(ctx, f, limit,
		"COALESCE(SUM(rr.return_count), 0) > 0",
		"return_count DESC, p.id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("most returned products: %w", err)
	}
	return rows, nil
}

// selectProductSales groups matching order items per product. Only products with at
// least one matching order item can appear.
func (r *SQLRepository) selectProductSales(ctx context.Context, f query.Filters, limit int, having, orderBy string) ([]model.ProductSales, error) {
	where, args := query.NewBuilder(f).Where()

	q := fmt.Sprintf(`
        SELECT
            p.id AS product_id,
            p.name AS product_name,
            c.name AS category_name,
            SUM(oi.quantity) AS units_sold,
            SUM(%s) AS revenue,
            COALESCE(SUM(rr.return_count), 0) AS return_count,
            COALESCE(MAX(st.current_stock), 0) AS current_stock
        %s
        LEFT JOIN (%s) st ON st.product_id = p.id
        WHERE p.status = %d%s
        GROUP BY p.id, p.name, c.name
        HAVING %s
        ORDER BY %s
        LIMIT ?
    `, revenueExpr, salesJoins, stockPerProduct, model.ProductStatusActive, where, having, orderBy)
	args = append(args, limit)

	rows := []model.ProductSales{}
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(q), args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// LeastSoldProducts starts from products so that products without any sale in the
// window are listed with zero units. Date bounds are applied inside the sales
// subquery; filtering the outer query on o.delivery_date would drop those products.
func (r *SQLRepository) LeastSoldProducts(ctx context.Context, f query.Filters, limit int) ([]model.ProductSales, error) {
	b := query.NewBuilder(f)
	dateWhere, dateArgs := b.Where(query.DateKeys()...)
	categoryWhere, categoryArgs := b.Where(query.KeyCategory)

	q := fmt.Sprintf(`
        SELECT
            p.id AS product_id,
            p.name AS product_name,
            c.name AS category_name,
            COALESCE(s.qty, 0) AS units_sold,
            COALESCE(s.rev, 0) AS revenue,
            COALESCE(s.ret, 0) AS return_count,
            COALESCE(st.current_stock, 0) AS current_stock
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        LEFT JOIN (%s) st ON st.product_id = p.id
        LEFT JOIN (
            SELECT
                pv.product_id,
                SUM(oi.quantity) AS qty,
                SUM(%s) AS rev,
                SUM(COALESCE(rr.return_count, 0)) AS ret
            FROM order_items oi
            JOIN orders o ON o.id = oi.order_id
            JOIN product_variants pv ON pv.id = oi.product_variant_id
            LEFT JOIN (%s) rr ON rr.order_item_id = oi.id
            WHERE 1 = 1%s
            GROUP BY pv.product_id
        ) s ON s.product_id = p.id
        WHERE p.status = %d%s
        ORDER BY units_sold ASC, p.id ASC
        LIMIT ?
    `, stockPerProduct, revenueExpr, returnsPerItem, dateWhere, model.ProductStatusActive, categoryWhere)

	args := make([]any, 0, len(dateArgs)+len(categoryArgs)+1)
	args = append(args, dateArgs...)
	args = append(args, categoryArgs...)
	args = append(args, limit)

	rows := []model.ProductSales{}
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("least sold products: %w", err)
	}
	return rows, nil
}

func (r *SQLRepository) CategoryComparison(ctx context.Context, f query.Filters) ([]model.CategorySales, error) {
	where, args := query.NewBuilder(f).Where()

	q := fmt.Sprintf(`
        SELECT
            c.name AS category_name,
            SUM(oi.quantity) AS total_units_sold,
            SUM(%s) AS total_revenue,
            COALESCE(SUM(rr.return_count), 0) AS total_returns
        %s
        WHERE p.status = %d%s
        GROUP BY c.name
        ORDER BY total_revenue DESC, c.name ASC
    `, revenueExpr, salesJoins, model.ProductStatusActive, where)

	rows := []model.CategorySales{}
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("category comparison: %w", err)
	}
	return rows, nil
}
