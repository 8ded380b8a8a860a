package dto

type KPIResponse struct {
	UnitsSold       int64   `json:"units_sold"`
	RevenuePerSKU   float64 `json:"revenue_per_sku"`
	ReturnPercent   float64 `json:"return_percent"`
	OutOfStockCount int64   `json:"out_of_stock_count"`
}

type ProductRow struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	CategoryName *string `json:"category_name"`
	UnitsSold    int64   `json:"units_sold"`
	Revenue      float64 `json:"revenue"`
	ReturnCount  int64   `json:"return_count"`
	CurrentStock int64   `json:"current_stock"`
}

type CategoryRow struct {
	CategoryName   *string `json:"category_name"`
	TotalUnitsSold int64   `json:"total_units_sold"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalReturns   int64   `json:"total_returns"`
}
