package models

import (
	"time"

	"github.com/ticketera/backend/internal/domain/ticket"
)

// TicketModel is the GORM model for the tickets table
type TicketModel struct {
	BaseModel
	PrinterID  int64  `gorm:"not null;index"`
	Nick       string `gorm:"size:50;not null"`
	AgentCode  string `gorm:"size:10"`
	Title      string `gorm:"size:100;not null"`
	Body       string `gorm:"type:text;not null"`
	Base64     bool   `gorm:"not null;default:false"`
	AppVersion int    `gorm:"not null;default:1"`
	Printed    bool   `gorm:"not null;default:false;index"`
}

// TableName returns the table name for TicketModel
func (TicketModel) TableName() string {
	return "tickets"
}

// ToDomain converts TicketModel to a domain Ticket
func (m *TicketModel) ToDomain() *ticket.Ticket {
	return &ticket.Ticket{
		BaseEntity: m.BaseModel.ToDomain(),
		PrinterID:  m.PrinterID,
		Nick:       m.Nick,
		AgentCode:  m.AgentCode,
		Title:      m.Title,
		Body:       m.Body,
		Base64:     m.Base64,
		AppVersion: m.AppVersion,
		Printed:    m.Printed,
	}
}

// FromDomain populates TicketModel from a domain Ticket
func (m *TicketModel) FromDomain(t *ticket.Ticket) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.PrinterID = t.PrinterID
	m.Nick = t.Nick
	m.AgentCode = t.AgentCode
	m.Title = t.Title
	m.Body = t.Body
	m.Base64 = t.Base64
	m.AppVersion = t.AppVersion
	m.Printed = t.Printed
}

// TicketPrinterModel is the GORM model for the ticket_printers table
type TicketPrinterModel struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	Name                 string    `gorm:"size:100;not null"`
	LineLen              int       `gorm:"not null;default:48"`
	Head                 string    `gorm:"size:300"`
	Footer               string    `gorm:"size:300"`
	CutCommand           string    `gorm:"size:100"`
	OpenCommand          string    `gorm:"size:100"`
	CreationDate         time.Time `gorm:"not null"`
	PrintStoredLogo      bool      `gorm:"not null;default:false"`
	PrintInvoiceReceipts bool      `gorm:"not null;default:false"`
	PrintLinesNet        bool      `gorm:"not null;default:false"`
	PrintLinesPrice      bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for TicketPrinterModel
func (TicketPrinterModel) TableName() string {
	return "ticket_printers"
}

// ToDomain converts TicketPrinterModel to a domain Printer
func (m *TicketPrinterModel) ToDomain() *ticket.Printer {
	return &ticket.Printer{
		ID:                   m.ID,
		Name:                 m.Name,
		LineLen:              m.LineLen,
		Head:                 m.Head,
		Footer:               m.Footer,
		CutCommand:           m.CutCommand,
		OpenCommand:          m.OpenCommand,
		CreationDate:         m.CreationDate,
		PrintStoredLogo:      m.PrintStoredLogo,
		PrintInvoiceReceipts: m.PrintInvoiceReceipts,
		PrintLinesNet:        m.PrintLinesNet,
		PrintLinesPrice:      m.PrintLinesPrice,
	}
}

// FromDomain populates TicketPrinterModel from a domain Printer
func (m *TicketPrinterModel) FromDomain(p *ticket.Printer) {
	m.ID = p.ID
	m.Name = p.Name
	m.LineLen = p.LineLen
	m.Head = p.Head
	m.Footer = p.Footer
	m.CutCommand = p.CutCommand
	m.OpenCommand = p.OpenCommand
	m.CreationDate = p.CreationDate
	m.PrintStoredLogo = p.PrintStoredLogo
	m.PrintInvoiceReceipts = p.PrintInvoiceReceipts
	m.PrintLinesNet = p.PrintLinesNet
	m.PrintLinesPrice = p.PrintLinesPrice
}
