package model

// OutOfStockProduct is an active product whose variants sum to zero stock.
type OutOfStockProduct struct {
	ProductID    int64   `db:"product_id"`
	ProductName  string  `db:"product_name"`
	CategoryName *string `db:"category_name"`
	VariantCount int64   `db:"variant_count"`
}
