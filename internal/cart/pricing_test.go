package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/cookstore/pkg/money"
)

func TestComputeTotalsAboveFreeShipping(t *testing.T) {
	lines := []Line{
		{ID: "pan", UnitPrice: 8900, Quantity: 2},
		{ID: "set", UnitPrice: 44900, Quantity: 1},
	}
	totals := ComputeTotals(lines, DefaultRules())

	assert.Equal(t, money.Cents(62700), totals.Subtotal, "subtotal 627.00")
	assert.Equal(t, money.Cents(0), totals.Shipping, "free shipping above threshold")
	assert.Equal(t, money.Cents(5016), totals.Tax, "tax 50.16")
	assert.Equal(t, money.Cents(67716), totals.Total, "total 677.16")
	assert.Equal(t, money.Cents(0), totals.FreeShippingRemaining)
	assert.Equal(t, 3, totals.ItemCount)
}

func TestComputeTotalsBelowFreeShipping(t *testing.T) {
	lines := []Line{{ID: "lid", UnitPrice: 5000, Quantity: 1}}
	totals := ComputeTotals(lines, DefaultRules())

	assert.Equal(t, money.Cents(5000), totals.Subtotal, "subtotal 50.00")
	assert.Equal(t, money.Cents(999), totals.Shipping, "flat fee 9.99")
	assert.Equal(t, money.Cents(400), totals.Tax, "tax 4.00")
	assert.Equal(t, money.Cents(6399), totals.Total, "total 63.99")
	assert.Equal(t, money.Cents(4900), totals.FreeShippingRemaining, "49.00 to free shipping")
}

func TestComputeTotalsAtThresholdStillPaysShipping(t *testing.T) {
	// The free-shipping comparison is strict: exactly 99.00 pays the fee.
	lines := []Line{{ID: "x", UnitPrice: 9900, Quantity: 1}}
	totals := ComputeTotals(lines, DefaultRules())

	assert.Equal(t, money.Cents(999), totals.Shipping)
	assert.Equal(t, money.Cents(0), totals.FreeShippingRemaining)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, DefaultRules())

	assert.Equal(t, money.Cents(0), totals.Subtotal)
	assert.Equal(t, money.Cents(999), totals.Shipping)
	assert.Equal(t, money.Cents(0), totals.Tax)
	assert.Equal(t, money.Cents(999), totals.Total)
	assert.Equal(t, 0, totals.ItemCount)
}

func TestComputeTotalsCustomRules(t *testing.T) {
	rules := Rules{TaxRateBps: 0, FreeShippingThreshold: 0, ShippingFee: 500}
	lines := []Line{{ID: "x", UnitPrice: 100, Quantity: 1}}
	totals := ComputeTotals(lines, rules)

	// Subtotal 1.00 exceeds a zero threshold, so shipping is free.
	assert.Equal(t, money.Cents(0), totals.Shipping)
	assert.Equal(t, money.Cents(0), totals.Tax)
	assert.Equal(t, money.Cents(100), totals.Total)
}
