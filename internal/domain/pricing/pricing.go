package pricing

import (
	"github.com/makelifebetter/storefront-service/internal/domain/cart"
)

type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
}

// ComputeTotals derives the order totals from the cart lines and the selected
// shipping cost. Pure: same inputs always produce the same totals.
func ComputeTotals(items []cart.LineItem, shippingCost float64) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	return Totals{
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Total:        subtotal + shippingCost,
	}
}

// Discount returns the discount percentage between the regular and the
// promotional price, zero when the promotion is absent or not cheaper.
func Discount(price, promotionalPrice float64) int {
	if price <= 0 || promotionalPrice <= 0 || promotionalPrice >= price {
		return 0
	}
	return int((1-promotionalPrice/price)*100 + 0.5)
}
