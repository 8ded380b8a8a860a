package model

import "github.com/shopspring/decimal"

// SalesAggregate is the single row returned by the KPI sales query.
type SalesAggregate struct {
	UnitsSold    int64           `db:"units_sold"`
	TotalRevenue decimal.Decimal `db:"total_revenue"`
	ProductCount int64           `db:"product_count"`
	ReturnCount  int64           `db:"return_count"`
}

type KPISummary struct {
	UnitsSold       int64
	RevenuePerSKU   decimal.Decimal
	ReturnPercent   decimal.Decimal
	OutOfStockCount int64
}

// ProductSales is one row of the top, least-sold and most-returned product reports.
type ProductSales struct {
	ProductID    int64           `db:"product_id"`
	ProductName  string          `db:"product_name"`
	CategoryName *string         `db:"category_name"`
	UnitsSold    int64           `db:"units_sold"`
	Revenue      decimal.Decimal `db:"revenue"`
	ReturnCount  int64           `db:"return_count"`
	CurrentStock int64           `db:"current_stock"`
}

type CategorySales struct {
	CategoryName   *string         `db:"category_name"`
	TotalUnitsSold int64           `db:"total_units_sold"`
	TotalRevenue   decimal.Decimal `db:"total_revenue"`
	TotalReturns   int64           `db:"total_returns"`
}
