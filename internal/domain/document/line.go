package document

import (
	"github.com/shopspring/decimal"
)

// Line is a single document line. Total is net of tax; tax-inclusive
// amounts are derived at render time from the rate percentages.
type Line struct {
	Quantity      decimal.Decimal
	Description   string
	UnitPrice     decimal.Decimal // price per unit, net of tax
	TaxCode       string          // tax code for label lookup (may be empty)
	TaxRate       decimal.Decimal // tax rate in percent
	SurchargeRate decimal.Decimal // equivalence surcharge rate in percent
	Total         decimal.Decimal // Quantity * UnitPrice net of tax
	SerialNumbers []string        // lot/serial identifiers traced to this line
}

var oneHundred = decimal.NewFromInt(100)

// TotalWithTax returns the line total with tax and surcharge applied
func (l Line) TotalWithTax() decimal.Decimal {
	return l.Total.Mul(oneHundred.Add(l.TaxRate).Add(l.SurchargeRate)).Div(oneHundred)
}

// UnitPriceWithTax returns the unit price with tax and surcharge applied
func (l Line) UnitPriceWithTax() decimal.Decimal {
	return l.UnitPrice.Mul(oneHundred.Add(l.TaxRate).Add(l.SurchargeRate)).Div(oneHundred)
}
