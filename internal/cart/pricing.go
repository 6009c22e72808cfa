package cart

import "github.com/yourusername/cookstore/pkg/money"

// Rules holds the pricing constants applied to a cart. They come from
// configuration; the defaults mirror the storefront's launch values.
type Rules struct {
	// TaxRateBps is the flat tax rate in basis points (800 = 8%).
	TaxRateBps int64
	// FreeShippingThreshold is the subtotal above which shipping is free.
	// The comparison is strict: a subtotal equal to the threshold still
	// pays shipping.
	FreeShippingThreshold money.Cents
	// ShippingFee is the flat fee charged below the threshold.
	ShippingFee money.Cents
}

// DefaultRules returns the launch pricing: 8% tax, free shipping over
// 99.00, otherwise a 9.99 flat fee.
func DefaultRules() Rules {
	return Rules{
		TaxRateBps:            800,
		FreeShippingThreshold: 9900,
		ShippingFee:           999,
	}
}

// Totals is the derived pricing for a cart.
type Totals struct {
	ItemCount int         `json:"itemCount"`
	Subtotal  money.Cents `json:"subtotal"`
	Shipping  money.Cents `json:"shipping"`
	Tax       money.Cents `json:"tax"`
	Total     money.Cents `json:"total"`
	// FreeShippingRemaining is how much more the customer must spend to
	// reach free shipping. It is only meaningful while shipping is
	// charged and is omitted from JSON otherwise.
	FreeShippingRemaining money.Cents `json:"freeShippingRemaining,omitempty"`
}

// ComputeTotals derives subtotal, shipping, tax and total for the given
// lines. All arithmetic is exact in cents; tax rounds half-up.
func ComputeTotals(lines []Line, rules Rules) Totals {
	t := Totals{ItemCount: countOf(lines)}
	for _, l := range lines {
		t.Subtotal += l.UnitPrice.MulQty(l.Quantity)
	}
	if t.Subtotal <= rules.FreeShippingThreshold {
		t.Shipping = rules.ShippingFee
		if remaining := rules.FreeShippingThreshold - t.Subtotal; remaining > 0 {
			t.FreeShippingRemaining = remaining
		}
	}
	t.Tax = t.Subtotal.ApplyBasisPoints(rules.TaxRateBps)
	t.Total = t.Subtotal + t.Shipping + t.Tax
	return t
}

// TotalsFor is a convenience that prices the store's current lines.
func (s *Store) TotalsFor(rules Rules) Totals {
	return ComputeTotals(s.Items(), rules)
}
