package ticket

import (
	"github.com/shopspring/decimal"
	"github.com/ticketera/backend/internal/domain/document"
)

var oneHundred = decimal.NewFromInt(100)

// Subtotal is one tax aggregation bucket. Buckets are keyed by the
// (tax rate, surcharge rate) pair and kept in first-seen line order.
type Subtotal struct {
	Label         string // resolved tax description
	TaxRate       decimal.Decimal
	SurchargeRate decimal.Decimal
	Base          decimal.Decimal // accumulated discounted net base
	TaxAmount     decimal.Decimal
	Surcharge     decimal.Decimal
}

// ComputeSubtotals groups lines by (tax rate, surcharge rate) and sums the
// discounted base, tax and surcharge amounts per bucket. The discount
// factor is applied to every line total before tax computation. All
// arithmetic stays in decimal until display time.
func ComputeSubtotals(lines []document.Line, discountFactor decimal.Decimal, fctx Context) []Subtotal {
	type key struct {
		rate      string
		surcharge string
	}

	index := make(map[key]int, len(lines))
	subtotals := make([]Subtotal, 0, len(lines))

	for _, line := range lines {
		k := key{rate: line.TaxRate.String(), surcharge: line.SurchargeRate.String()}
		pos, ok := index[k]
		if !ok {
			pos = len(subtotals)
			index[k] = pos
			subtotals = append(subtotals, Subtotal{
				Label:         fctx.taxLabel(line.TaxCode, line.TaxRate),
				TaxRate:       line.TaxRate,
				SurchargeRate: line.SurchargeRate,
			})
		}

		base := line.Total.Mul(discountFactor)
		subtotals[pos].Base = subtotals[pos].Base.Add(base)
		subtotals[pos].TaxAmount = subtotals[pos].TaxAmount.Add(base.Mul(line.TaxRate).Div(oneHundred))
		subtotals[pos].Surcharge = subtotals[pos].Surcharge.Add(base.Mul(line.SurchargeRate).Div(oneHundred))
	}

	return subtotals
}
