package cart

// LineItem is one distinct product entry in the cart. Prices are captured at
// add time and are not re-fetched from the catalog afterwards.
type LineItem struct {
	ProductID        string  `json:"id"`
	Name             string  `json:"name"`
	UnitPrice        float64 `json:"unitPrice"`
	PromotionalPrice float64 `json:"promotionalPrice,omitempty"`
	ImageURL         string  `json:"imageRef,omitempty"`
	Quantity         int     `json:"quantity"`
}

// EffectivePrice returns the promotional price when one is set, otherwise the
// regular unit price. Every total in the system derives from this rule.
func (i LineItem) EffectivePrice() float64 {
	if i.PromotionalPrice > 0 {
		return i.PromotionalPrice
	}
	return i.UnitPrice
}

// LineTotal is the effective price multiplied by the quantity.
func (i LineItem) LineTotal() float64 {
	return i.EffectivePrice() * float64(i.Quantity)
}
