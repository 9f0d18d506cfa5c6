package ticket

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/ticketera/backend/internal/domain/document"
	ticketdomain "github.com/ticketera/backend/internal/domain/ticket"
)

// PrintTicketRequest represents a request to render and queue one ticket
type PrintTicketRequest struct {
	PrinterID int64           `json:"printer_id"`
	Format    string          `json:"format" binding:"required"`
	Operator  string          `json:"operator" binding:"required"`
	AgentCode string          `json:"agent_code"`
	Document  DocumentRequest `json:"document" binding:"required"`
}

// DocumentRequest is the document snapshot carried in a print request
type DocumentRequest struct {
	Family           string               `json:"family" binding:"required"`
	Code             string               `json:"code" binding:"required"`
	Date             time.Time            `json:"date"`
	Company          CompanyRequest       `json:"company"`
	Customer         CustomerRequest      `json:"customer"`
	Description      string               `json:"description"`
	Material         string               `json:"material"`
	Lines            []LineRequest        `json:"lines"`
	Total            decimal.Decimal      `json:"total"`
	DiscountPercent1 decimal.Decimal      `json:"discount_percent_1"`
	DiscountPercent2 decimal.Decimal      `json:"discount_percent_2"`
	FiscalCode       string               `json:"fiscal_code"`
	FiscalURL        string               `json:"fiscal_url"`
	Installments     []InstallmentRequest `json:"installments"`
}

// CompanyRequest is the issuing-company snapshot
type CompanyRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	TaxIDType  string `json:"tax_id_type"`
	TaxID      string `json:"tax_id"`
}

// CustomerRequest is the customer snapshot
type CustomerRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone1 string `json:"phone1"`
	Phone2 string `json:"phone2"`
}

// LineRequest is one document line
type LineRequest struct {
	Quantity      decimal.Decimal `json:"quantity"`
	Description   string          `json:"description"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TaxCode       string          `json:"tax_code"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	SurchargeRate decimal.Decimal `json:"surcharge_rate"`
	Total         decimal.Decimal `json:"total"`
	SerialNumbers []string        `json:"serial_numbers"`
}

// InstallmentRequest is one receipt schedule entry
type InstallmentRequest struct {
	Number   int             `json:"number"`
	DueDate  time.Time       `json:"due_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToDomain converts the request into a domain document snapshot
func (r DocumentRequest) ToDomain() *document.Document {
	doc := &document.Document{
		Family: document.Family(r.Family),
		Code:   r.Code,
		Date:   r.Date,
		Company: document.Company{
			Name:       r.Company.Name,
			Address:    r.Company.Address,
			PostalCode: r.Company.PostalCode,
			City:       r.Company.City,
			TaxIDType:  r.Company.TaxIDType,
			TaxID:      r.Company.TaxID,
		},
		Customer: document.Customer{
			Name:   r.Customer.Name,
			Phone1: r.Customer.Phone1,
			Phone2: r.Customer.Phone2,
		},
		Description:      r.Description,
		Material:         r.Material,
		Total:            r.Total,
		DiscountPercent1: r.DiscountPercent1,
		DiscountPercent2: r.DiscountPercent2,
		FiscalCode:       r.FiscalCode,
		FiscalURL:        r.FiscalURL,
	}

	for _, l := range r.Lines {
		doc.Lines = append(doc.Lines, document.Line{
			Quantity:      l.Quantity,
			Description:   l.Description,
			UnitPrice:     l.UnitPrice,
			TaxCode:       l.TaxCode,
			TaxRate:       l.TaxRate,
			SurchargeRate: l.SurchargeRate,
			Total:         l.Total,
			SerialNumbers: l.SerialNumbers,
		})
	}
	for _, i := range r.Installments {
		doc.Installments = append(doc.Installments, document.Installment{
			Number:   i.Number,
			DueDate:  i.DueDate,
			PaidDate: i.PaidDate,
			Amount:   i.Amount,
		})
	}
	return doc
}

// TicketResponse represents a queued ticket record
type TicketResponse struct {
	ID         string    `json:"id"`
	PrinterID  int64     `json:"printer_id"`
	Nick       string    `json:"nick"`
	AgentCode  string    `json:"agent_code,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Base64     bool      `json:"base64"`
	AppVersion int       `json:"app_version"`
	Printed    bool      `json:"printed"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToTicketResponse converts a domain ticket to a response DTO
func ToTicketResponse(t *ticketdomain.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:         t.ID.String(),
		PrinterID:  t.PrinterID,
		Nick:       t.Nick,
		AgentCode:  t.AgentCode,
		Title:      t.Title,
		Body:       t.Body,
		Base64:     t.Base64,
		AppVersion: t.AppVersion,
		Printed:    t.Printed,
		CreatedAt:  t.CreatedAt,
	}
}

// PrinterResponse represents a printer configuration
type PrinterResponse struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	LineLen              int       `json:"line_len"`
	Head                 string    `json:"head,omitempty"`
	Footer               string    `json:"footer,omitempty"`
	PrintStoredLogo      bool      `json:"print_stored_logo"`
	PrintInvoiceReceipts bool      `json:"print_invoice_receipts"`
	PrintLinesNet        bool      `json:"print_lines_net"`
	PrintLinesPrice      bool      `json:"print_lines_price"`
	CreationDate         time.Time `json:"creation_date"`
}

// ToPrinterResponse converts a domain printer to a response DTO
func ToPrinterResponse(p ticketdomain.Printer) PrinterResponse {
	return PrinterResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		LineLen:              p.Width(),
		Head:                 p.Head,
		Footer:               p.Footer,
		PrintStoredLogo:      p.PrintStoredLogo,
		PrintInvoiceReceipts: p.PrintInvoiceReceipts,
		PrintLinesNet:        p.PrintLinesNet,
		PrintLinesPrice:      p.PrintLinesPrice,
		CreationDate:         p.CreationDate,
	}
}

// FormatsResponse lists the render formats valid for a document family
type FormatsResponse struct {
	Family  string   `json:"family"`
	Formats []string `json:"formats"`
}
