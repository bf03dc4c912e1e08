package pricing

import "math"

// DefaultOrderShipping is the flat JPY surcharge added to an order's cost
// basis when the caller supplies no specific value. Inventory pricing does
// not use it: listing prices sum the international and domestic shipping
// amounts from Settings. The two shipping models are separate on purpose
// and must not be merged into one value.
const DefaultOrderShipping = 1000

// Settings holds the global pricing parameters shared by every calculation.
// One Settings value exists per deployment; it is stored as a singleton row
// and passed explicitly into each formula call. Callers validate a Settings
// value at the update boundary (the struct tags carry the rules); the
// formulas themselves never reject input.
type Settings struct {
	ExchangeRate          float64 `db:"exchange_rate" json:"exchangeRate" validate:"gt=0"`
	InternationalShipping int     `db:"international_shipping" json:"internationalShipping" validate:"gte=0"`
	DomesticShipping      int     `db:"domestic_shipping" json:"domesticShipping" validate:"gte=0"`
	TargetProfit          int     `db:"target_profit" json:"targetProfit" validate:"gte=0"`
	PlatformFeeRate       float64 `db:"platform_fee_rate" json:"platformFeeRate" validate:"gte=0,lt=1"`
}

// SellingPrice converts a CNY purchase cost into the JPY listing price.
// The marketplace keeps PlatformFeeRate of the listing price, so the
// converted cost, both shipping legs, and the target profit are grossed up
// by 1/(1-rate). The result rounds up: rounding down could put the listing
// below the cost-recovery threshold.
func SellingPrice(costCNY float64, s Settings) int {
	base := costCNY * s.ExchangeRate
	total := base + float64(s.InternationalShipping+s.DomesticShipping+s.TargetProfit)
	return int(math.Ceil(total / (1 - s.PlatformFeeRate)))
}

// ConvertedWithShipping is an order's cost basis in JPY: the CNY cost
// converted at the given rate plus a flat shipping surcharge, rounded up.
func ConvertedWithShipping(costCNY, exchangeRate float64, shippingJPY int) int {
	return int(math.Ceil(costCNY*exchangeRate + float64(shippingJPY)))
}

// Profit is what a sale actually netted: the payment received minus the
// converted cost basis. Negative when the sale lost money.
func Profit(actualPaymentJPY, convertedWithShippingJPY int) int {
	return actualPaymentJPY - convertedWithShippingJPY
}
