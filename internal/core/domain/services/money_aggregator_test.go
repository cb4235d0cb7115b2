package services_test

import (
	"testing"

	"printshop/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pricedLine struct {
	cost           decimal.Decimal
	amount         decimal.Decimal
	shippingAmount decimal.Decimal
}

func (l pricedLine) Cost() decimal.Decimal           { return l.cost }
func (l pricedLine) Amount() decimal.Decimal         { return l.amount }
func (l pricedLine) ShippingAmount() decimal.Decimal { return l.shippingAmount }

func line(cost, amount, shipping string) pricedLine {
	return pricedLine{
		cost:           decimal.RequireFromString(cost),
		amount:         decimal.RequireFromString(amount),
		shippingAmount: decimal.RequireFromString(shipping),
	}
}

func TestAggregateTotals_TwoItems(t *testing.T) {
	totals := services.AggregateTotals([]pricedLine{
		line("40.00", "100.00", "10.00"),
		line("20.00", "50.00", "0.00"),
	})

	assert.True(t, totals.TotalCost.Equal(decimal.RequireFromString("60.00")))
	assert.True(t, totals.TotalItemAmount.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, totals.TotalShippingAmount.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("160.00")))
	assert.True(t, totals.SalesTax.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, totals.TotalAmount.Equal(decimal.RequireFromString("170.50")))
}

func TestAggregateTotals_Empty(t *testing.T) {
	totals := services.AggregateTotals([]pricedLine{})

	assert.True(t, totals.TotalCost.IsZero())
	assert.True(t, totals.TotalItemAmount.IsZero())
	assert.True(t, totals.TotalShippingAmount.IsZero())
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.SalesTax.IsZero())
	assert.True(t, totals.TotalAmount.IsZero())
}

func TestAggregateTotals_NegativeLineIsCredit(t *testing.T) {
	totals := services.AggregateTotals([]pricedLine{
		line("40.00", "100.00", "10.00"),
		line("0.00", "-25.00", "0.00"),
	})

	assert.True(t, totals.TotalItemAmount.Equal(decimal.RequireFromString("75.00")))
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("85.00")))
	assert.True(t, totals.SalesTax.Equal(decimal.RequireFromString("5.25")))
	assert.True(t, totals.TotalAmount.Equal(decimal.RequireFromString("90.25")))
}

func TestAggregateTotals_TaxRoundsToCents(t *testing.T) {
	// 33.33 * 0.07 = 2.3331, rounds half-up to 2.33
	totals := services.AggregateTotals([]pricedLine{
		line("10.00", "33.33", "0.00"),
	})
	assert.True(t, totals.SalesTax.Equal(decimal.RequireFromString("2.33")))

	// 33.50 * 0.07 = 2.345, rounds half-up to 2.35
	totals = services.AggregateTotals([]pricedLine{
		line("10.00", "33.50", "0.00"),
	})
	assert.True(t, totals.SalesTax.Equal(decimal.RequireFromString("2.35")))
}

func TestAggregateTotals_OrderIndependent(t *testing.T) {
	items := []pricedLine{
		line("1.11", "17.23", "0.55"),
		line("2.22", "-4.17", "1.05"),
		line("3.33", "99.99", "0.00"),
		line("4.44", "0.01", "12.30"),
	}

	forward := services.AggregateTotals(items)

	reversed := make([]pricedLine, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		reversed = append(reversed, items[i])
	}
	backward := services.AggregateTotals(reversed)

	require.True(t, forward.TotalCost.Equal(backward.TotalCost))
	require.True(t, forward.TotalItemAmount.Equal(backward.TotalItemAmount))
	require.True(t, forward.TotalShippingAmount.Equal(backward.TotalShippingAmount))
	require.True(t, forward.Subtotal.Equal(backward.Subtotal))
	require.True(t, forward.SalesTax.Equal(backward.SalesTax))
	require.True(t, forward.TotalAmount.Equal(backward.TotalAmount))
}

func TestAggregateTotals_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style inputs stay exact under decimal arithmetic
	items := make([]pricedLine, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, line("0.00", "0.10", "0.00"))
	}

	totals := services.AggregateTotals(items)
	assert.Equal(t, "1", totals.TotalItemAmount.String())
	assert.True(t, totals.SalesTax.Equal(decimal.RequireFromString("0.07")))
}
