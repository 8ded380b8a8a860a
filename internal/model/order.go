package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           int64      `db:"id" json:"id"`
	DateAdded    time.Time  `db:"date_added" json:"date_added"`
	DeliveryDate *time.Time `db:"delivery_date" json:"delivery_date"`
}

type OrderItem struct {
	ID               int64               `db:"id" json:"id"`
	OrderID          int64               `db:"order_id" json:"order_id"`
	ProductVariantID int64               `db:"product_variant_id" json:"product_variant_id"`
	Quantity         int64               `db:"quantity" json:"quantity"`
	Price            decimal.Decimal     `db:"price" json:"price"`
	DiscountedPrice  decimal.NullDecimal `db:"discounted_price" json:"discounted_price"`
}

// EffectivePrice is the unit price actually charged: the discounted price when set.
func (i *OrderItem) EffectivePrice() decimal.Decimal {
	if i.DiscountedPrice.Valid {
		return i.DiscountedPrice.Decimal
	}
	return i.Price
}

// Revenue is quantity times the effective price.
func (i *OrderItem) Revenue() decimal.Decimal {
	return i.EffectivePrice().Mul(decimal.NewFromInt(i.Quantity))
}

type ReturnRequest struct {
	ID          int64     `db:"id" json:"id"`
	OrderItemID int64     `db:"order_item_id" json:"order_item_id"`
	Reason      string    `db:"reason" json:"reason"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Transaction struct {
	ID        int64           `db:"id" json:"id"`
	OrderID   int64           `db:"order_id" json:"order_id"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Status    string          `db:"status" json:"status"`
	Timestamp time.Time       `db:"timestamp" json:"timestamp"`
}
