package services

import (
	"github.com/shopspring/decimal"
)

// SalesTaxRate is the tax rate applied to the item amount when computing
// totals. Built from a decimal string so the multiplication stays exact.
// Named here rather than inlined so it can be made configurable without
// touching call sites.
var SalesTaxRate = decimal.RequireFromString("0.07")

// moneyScale is the number of fractional digits kept for computed tax.
const moneyScale = 2

// PricedLine is the read contract the aggregator needs from a line item.
// Both estimate and order items satisfy it. A zero decimal stands for a
// missing value.
type PricedLine interface {
	Cost() decimal.Decimal
	Amount() decimal.Decimal
	ShippingAmount() decimal.Decimal
}

// Totals holds the derived financial sums over a collection of line items.
// Totals are always recomputed from current line items; they are never
// trusted as a stale cache.
type Totals struct {
	// TotalCost is the sum of line costs.
	TotalCost decimal.Decimal

	// TotalItemAmount is the sum of line amounts (prices charged).
	TotalItemAmount decimal.Decimal

	// TotalShippingAmount is the sum of line shipping charges.
	TotalShippingAmount decimal.Decimal

	// Subtotal is TotalItemAmount + TotalShippingAmount. This is the one
	// subtotal formula used everywhere; deriving it as TotalAmount minus
	// SalesTax is not equivalent in general and is not used.
	Subtotal decimal.Decimal

	// SalesTax is TotalItemAmount × SalesTaxRate, rounded to cents.
	SalesTax decimal.Decimal

	// TotalAmount is Subtotal + SalesTax.
	TotalAmount decimal.Decimal
}

// AggregateTotals computes the financial totals over a collection of line
// items using exact decimal arithmetic throughout; no intermediate value
// passes through binary floating point.
//
// The function is pure: it never mutates its input, is deterministic, and is
// order-independent (decimal addition here is exact, so permuting the input
// cannot change any sum). An empty collection yields all-zero totals.
// Negative amounts (credits and discounts) are summed normally with no floor
// at zero.
func AggregateTotals[T PricedLine](items []T) Totals {
	totalCost := decimal.Zero
	totalItemAmount := decimal.Zero
	totalShippingAmount := decimal.Zero

	for _, item := range items {
		totalCost = totalCost.Add(item.Cost())
		totalItemAmount = totalItemAmount.Add(item.Amount())
		totalShippingAmount = totalShippingAmount.Add(item.ShippingAmount())
	}

	subtotal := totalItemAmount.Add(totalShippingAmount)
	salesTax := totalItemAmount.Mul(SalesTaxRate).Round(moneyScale)

	return Totals{
		TotalCost:           totalCost,
		TotalItemAmount:     totalItemAmount,
		TotalShippingAmount: totalShippingAmount,
		Subtotal:            subtotal,
		SalesTax:            salesTax,
		TotalAmount:         subtotal.Add(salesTax),
	}
}
