package ticket

import (
	"github.com/ticketera/backend/internal/domain/document"
)

// RenderFormat selects the ticket rendering for a print request
type RenderFormat string

const (
	FormatNormal    RenderFormat = "normal"    // plain-text sales ticket
	FormatGift      RenderFormat = "gift"      // sales ticket without amounts
	FormatReceipt   RenderFormat = "receipt"   // payment receipt summary
	FormatService   RenderFormat = "service"   // service order sheet
	FormatTicketBai RenderFormat = "ticketbai" // fiscal ticket, binary command stream
)

// IsValid checks if the RenderFormat is a valid value
func (f RenderFormat) IsValid() bool {
	switch f {
	case FormatNormal, FormatGift, FormatReceipt, FormatService, FormatTicketBai:
		return true
	}
	return false
}

// String returns the string representation of RenderFormat
func (f RenderFormat) String() string {
	return string(f)
}

// IsBinary returns true for formats serialized as binary command streams
func (f RenderFormat) IsBinary() bool {
	return f == FormatTicketBai
}

// FormatsFor returns the render formats valid for a document family.
// Families with no printable representation get an empty slice.
func FormatsFor(family document.Family) []RenderFormat {
	switch family {
	case document.FamilyInvoice, document.FamilyDelivery,
		document.FamilyOrder, document.FamilyEstimate:
		return []RenderFormat{FormatNormal, FormatGift, FormatTicketBai}
	case document.FamilyReceipt:
		return []RenderFormat{FormatReceipt}
	case document.FamilyService:
		return []RenderFormat{FormatService}
	}
	return nil
}

// ValidFor reports whether the format may be used for the given family
func (f RenderFormat) ValidFor(family document.Family) bool {
	for _, allowed := range FormatsFor(family) {
		if allowed == f {
			return true
		}
	}
	return false
}
