package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderItem_Revenue(t *testing.T) {
	tests := []struct {
		name string
		item OrderItem
		want string
	}{
		{
			name: "list price",
			item: OrderItem{Quantity: 3, Price: decimal.RequireFromString("10.00")},
			want: "30",
		},
		{
			name: "discounted price wins",
			item: OrderItem{
				Quantity:        2,
				Price:           decimal.RequireFromString("10.00"),
				DiscountedPrice: decimal.NewNullDecimal(decimal.RequireFromString("8.00")),
			},
			want: "16",
		},
		{
			name: "zero quantity",
			item: OrderItem{Quantity: 0, Price: decimal.RequireFromString("99.99")},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Revenue(); !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Revenue() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestProduct_IsActive(t *testing.T) {
	if !(&Product{Status: 1}).IsActive() {
		t.Error("status 1 should be active")
	}
	if (&Product{Status: 0}).IsActive() {
		t.Error("status 0 should not be active")
	}
}
