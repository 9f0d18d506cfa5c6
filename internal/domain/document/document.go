package document

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/ticketera/backend/internal/domain/shared"
)

// Company is the issuing-company snapshot embedded in a document
type Company struct {
	Name       string
	Address    string
	PostalCode string
	City       string
	TaxIDType  string // e.g. "CIF", "NIF", "VAT"
	TaxID      string
}

// Customer is the customer snapshot embedded in a document
type Customer struct {
	Name   string
	Phone1 string
	Phone2 string
}

// Document is a read-only snapshot of the business document to print.
// It is assembled by the caller; the formatting engine never loads it.
type Document struct {
	Family      Family
	Code        string // identifying document code, e.g. "FAC-2024-001"
	Date        time.Time
	Company     Company
	Customer    Customer
	Description string // free text (service orders)
	Material    string // received material (service orders)
	Lines       []Line
	Total       decimal.Decimal // grand total, tax included

	// Document-level discount percentages. Both apply multiplicatively
	// to every line before tax computation.
	DiscountPercent1 decimal.Decimal
	DiscountPercent2 decimal.Decimal

	// Tax-authority QR payload, present on fiscal invoices only
	FiscalCode string // short code printed above the QR
	FiscalURL  string // URL encoded into the QR

	Installments []Installment
}

// DiscountFactor returns the multiplier in (0,1] applied to every line
// total before tax aggregation: (100-d1)/100 * (100-d2)/100.
func (d *Document) DiscountFactor() decimal.Decimal {
	f := oneHundred.Sub(d.DiscountPercent1).Div(oneHundred)
	return f.Mul(oneHundred.Sub(d.DiscountPercent2).Div(oneHundred))
}

// HasFiscalQR returns true if the document carries a tax-authority QR payload
func (d *Document) HasFiscalQR() bool {
	return d.FiscalCode != "" && d.FiscalURL != ""
}

// Validate checks the fields every ticket format requires
func (d *Document) Validate() error {
	if !d.Family.IsValid() {
		return shared.NewDomainError("INVALID_FAMILY", "Unknown document family")
	}
	if d.Code == "" {
		return shared.NewDomainError("INVALID_DOCUMENT", "Document code cannot be empty")
	}
	if d.Company.Name == "" {
		return shared.NewDomainError("MISSING_COMPANY", "Document has no company snapshot")
	}
	if d.Customer.Name == "" {
		return shared.NewDomainError("MISSING_CUSTOMER", "Document has no customer snapshot")
	}
	return nil
}
