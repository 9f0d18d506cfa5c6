package ticket

import (
	"github.com/shopspring/decimal"
	"github.com/ticketera/backend/internal/domain/document"
)

// Labels holds every user-visible literal used by the formatters. They are
// passed explicitly so tickets can be rendered in any language without
// ambient lookups.
type Labels struct {
	Quantity    string // item table quantity header, 5 chars max
	Description string
	Net         string
	Total       string
	Price       string
	TaxBase     string
	Surcharge   string // prefix for the equivalence surcharge row
	Date        string
	Customer    string
	Phone       string
	Material    string
	Receipts    string // receipt schedule title
	Expiration  string // schedule due-date header, 10 chars max
	Paid        string
	Pending     string
	PostalCode  string // prefix of the company postal code line
}

// Context carries the read-only formatting configuration for one render:
// labels, date layout, number formatting and the tax label catalog. It is
// safe for concurrent use across renders.
type Context struct {
	Labels     Labels
	DateLayout string // layout for schedule and header dates
	TimeLayout string // layout for the header time component
	Taxes      document.TaxLabeler

	// FormatMoney renders a monetary amount for a right-justified
	// 10/11 character column.
	FormatMoney func(decimal.Decimal) string
}

// DefaultContext returns the Spanish-market formatting defaults
func DefaultContext() Context {
	return Context{
		Labels: Labels{
			Quantity:    "Ud.",
			Description: "Desc.",
			Net:         "Neto",
			Total:       "Total",
			Price:       "Precio",
			TaxBase:     "Base",
			Surcharge:   "RE",
			Date:        "Fecha",
			Customer:    "Cliente",
			Phone:       "Telefono",
			Material:    "Material",
			Receipts:    "Recibos",
			Expiration:  "Vto.",
			Paid:        "Pagado",
			Pending:     "Pendiente",
			PostalCode:  "CP",
		},
		DateLayout:  "02-01-2006",
		TimeLayout:  "15:04",
		Taxes:       document.DefaultTaxCatalog(),
		FormatMoney: func(d decimal.Decimal) string { return d.StringFixed(2) },
	}
}

// money formats an amount, tolerating a Context built without FormatMoney
func (c Context) money(d decimal.Decimal) string {
	if c.FormatMoney == nil {
		return d.StringFixed(2)
	}
	return c.FormatMoney(d)
}

// taxLabel resolves the display label for a subtotal bucket. Catalog hit
// wins, then the raw tax code, then the bare rate.
func (c Context) taxLabel(code string, rate decimal.Decimal) string {
	if c.Taxes != nil && code != "" {
		if label, ok := c.Taxes.LabelFor(code); ok {
			return label
		}
	}
	if code != "" {
		return code
	}
	return rate.String() + "%"
}
