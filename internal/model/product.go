package model

import "github.com/shopspring/decimal"

// ProductStatusActive is the only status value that makes a product visible to reports.
const ProductStatusActive = 1

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	CategoryID  int64   `db:"category_id" json:"category_id"`
	Description *string `db:"description" json:"description"`
	Status      int     `db:"status" json:"status"`
}

func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

type ProductVariant struct {
	ID          int64           `db:"id" json:"id"`
	ProductID   int64           `db:"product_id" json:"product_id"`
	VariantName string          `db:"variant_name" json:"variant_name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	SKU         string          `db:"sku" json:"sku"`
	Stock       int64           `db:"stock" json:"stock"`
}

type ProductRating struct {
	ID        int64   `db:"id" json:"id"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Rating    int     `db:"rating" json:"rating"`
	Review    *string `db:"review" json:"review"`
}
