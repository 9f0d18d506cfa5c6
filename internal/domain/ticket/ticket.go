package ticket

import (
	"github.com/ticketera/backend/internal/domain/shared"
)

// SchemaVersion is the format version stamped on every new ticket record
const SchemaVersion = 1

// Ticket is the persisted, printer-ready output record. It is created once
// per print request and never mutated after persistence succeeds.
type Ticket struct {
	shared.BaseEntity
	PrinterID  int64  // target printer
	Nick       string // operator identifier
	AgentCode  string // optional salesperson code
	Title      string
	Body       string // plain text or base64-encoded command stream
	Base64     bool   // true when Body is a base64-encoded binary payload
	AppVersion int    // format/schema version
	Printed    bool   // set by the transport once the device confirms
}

// NewTicket creates a new ticket record ready for persistence
func NewTicket(printerID int64, nick, title, body string, base64Body bool) (*Ticket, error) {
	if nick == "" {
		return nil, shared.NewDomainError("INVALID_OPERATOR", "Operator nick cannot be empty")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Ticket title cannot be empty")
	}
	if body == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Ticket body cannot be empty")
	}

	return &Ticket{
		BaseEntity: shared.NewBaseEntity(),
		PrinterID:  printerID,
		Nick:       nick,
		Title:      title,
		Body:       body,
		Base64:     base64Body,
		AppVersion: SchemaVersion,
	}, nil
}

// SetAgent attaches an optional salesperson code
func (t *Ticket) SetAgent(code string) {
	t.AgentCode = code
}
