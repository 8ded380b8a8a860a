package dto

import "strings"

type OutOfStockFilters struct {
	Category string
}

// OutOfStockRequest accepts the same category parameter as the report endpoints.
// Date bounds are ignored: stock is a current value.
type OutOfStockRequest struct {
	Category string `json:"category" form:"category"`
}

func (r *OutOfStockRequest) ToFilters() *OutOfStockFilters {
	return &OutOfStockFilters{Category: strings.TrimSpace(r.Category)}
}

type OutOfStockRow struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	CategoryName *string `json:"category_name"`
	VariantCount int64   `json:"variant_count"`
}
