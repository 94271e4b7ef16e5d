package checkout

type ShippingType string

const (
	ShippingNormal  ShippingType = "normal"
	ShippingExpress ShippingType = "express"
	ShippingSameDay ShippingType = "sameday"
)

type ShippingOption struct {
	Type          ShippingType `json:"type"`
	Price         float64      `json:"price"`
	Label         string       `json:"label"`
	EstimatedTime string       `json:"estimated_time"`
}

// The configured shipping set is fixed; options are looked up by type and
// never mutated.
var shippingOptions = []ShippingOption{
	{Type: ShippingNormal, Price: 15.90, Label: "Normal", EstimatedTime: "5-8 dias"},
	{Type: ShippingExpress, Price: 29.90, Label: "Expresso", EstimatedTime: "2-3 dias"},
	{Type: ShippingSameDay, Price: 49.90, Label: "Same Day", EstimatedTime: "Hoje"},
}

func ShippingOptions() []ShippingOption {
	options := make([]ShippingOption, len(shippingOptions))
	copy(options, shippingOptions)
	return options
}

// ShippingOptionByType looks the option up in the configured set.
func ShippingOptionByType(t ShippingType) (ShippingOption, bool) {
	for _, option := range shippingOptions {
		if option.Type == t {
			return option, true
		}
	}
	return ShippingOption{}, false
}

func DefaultShipping() ShippingOption {
	return shippingOptions[0]
}
