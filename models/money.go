package models

import "github.com/shopspring/decimal"

// PercentChange formats the month-over-month change between two window
// totals as a string with one decimal place, e.g. "20.0". A zero previous
// window yields "0"; the caller cannot distinguish "no prior data" from
// "no change", which matches the dashboard contract.
func PercentChange(current, previous decimal.Decimal) string {
	if previous.IsZero() {
		return "0"
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).StringFixed(1)
}

// AverageOrderValue is revenue spread over the order count, defined as 0
// when there are no orders.
func AverageOrderValue(revenue decimal.Decimal, orders int64) decimal.Decimal {
	if orders == 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(orders))
}
