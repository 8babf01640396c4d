package booking

import (
	"github.com/shopspring/decimal"
)

// Quote is what the booking wizard renders on every date/time/quantity
// change: hours to one decimal place, price to two.
type Quote struct {
	Hours decimal.Decimal
	Price decimal.Decimal
}

type PriceCalculator interface {
	Quote(iv Interval, unitPrice *decimal.Decimal, quantity int32) Quote
}

// HourlyPriceCalculator prices a booking as hours × hourly rate × quantity.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) Quote(iv Interval, unitPrice *decimal.Decimal, quantity int32) Quote {
	hours := iv.Hours()
	return Quote{
		Hours: hours,
		Price: TotalPrice(hours, unitPrice, quantity),
	}
}

// TotalPrice returns hours × unitPrice × quantity rounded to two decimal
// places half-up (currency rounding). A nil unitPrice means a free or
// consultation-only product and always prices at zero. Quantity arrives
// already resolved by the caller (ResolveQuantity); it is not clamped here.
func TotalPrice(hours decimal.Decimal, unitPrice *decimal.Decimal, quantity int32) decimal.Decimal {
	if unitPrice == nil {
		return decimal.Zero
	}
	return hours.Mul(*unitPrice).Mul(decimal.NewFromInt32(quantity)).Round(2)
}

// ResolveQuantity decides the effective quantity for a booking. A product
// with a fixed quantity wins unconditionally; the quantity picker is
// disabled upstream for those. Otherwise any non-positive user input is
// silently floored to 1, mirroring the forgiving defaults used across the
// booking flow.
func ResolveQuantity(fixedQuantity *int32, userInput int32) int32 {
	if fixedQuantity != nil {
		return *fixedQuantity
	}
	if userInput < 1 {
		return 1
	}
	return userInput
}
