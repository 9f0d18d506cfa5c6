package ticket

import (
	"github.com/ticketera/backend/internal/domain/document"
	ticketdomain "github.com/ticketera/backend/internal/domain/ticket"
	"github.com/ticketera/backend/internal/infrastructure/escpos"
)

// buildService renders the service order sheet: no line table, free-text
// description and received material instead, plus the customer contact
// phones. serviceFooter is the configurable extra footer for this format.
func buildService(doc *document.Document, printer ticketdomain.Printer, fctx Context, serviceFooter string) *escpos.Stream {
	s := escpos.NewStream()

	companyBlock(s, fctx, doc)
	documentBlock(s, fctx, doc, ticketTitle(doc))
	if doc.Customer.Phone1 != "" {
		line(s, fctx.Labels.Phone+": "+doc.Customer.Phone1)
	}
	if doc.Customer.Phone2 != "" {
		line(s, fctx.Labels.Phone+": "+doc.Customer.Phone2)
	}

	if printer.Head != "" {
		s.Feed(1)
		line(s, printer.Head)
	}

	s.Feed(1)
	line(s, fctx.Labels.Description+": "+doc.Description)
	if doc.Material != "" {
		s.Feed(1)
		line(s, fctx.Labels.Material+": "+doc.Material)
	}
	line(s, printer.DashLine())

	closePlain(s, printer, serviceFooter)
	return s
}
