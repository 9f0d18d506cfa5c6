package ticket

import (
	"context"

	"github.com/google/uuid"
)

// TicketRepository persists generated tickets
type TicketRepository interface {
	// Save persists a ticket record
	Save(ctx context.Context, t *Ticket) error

	// FindByID finds a ticket by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Ticket, error)

	// FindByPrinter finds the most recent tickets queued for a printer
	FindByPrinter(ctx context.Context, printerID int64, limit int) ([]Ticket, error)

	// MarkPrinted flags a ticket as sent to the device
	MarkPrinted(ctx context.Context, id uuid.UUID) error
}

// PrinterRepository provides printer configurations
type PrinterRepository interface {
	// FindByID finds a printer configuration by ID
	FindByID(ctx context.Context, id int64) (*Printer, error)

	// FindAll returns all configured printers, newest first
	FindAll(ctx context.Context) ([]Printer, error)

	// Save persists a printer configuration
	Save(ctx context.Context, p *Printer) error
}
