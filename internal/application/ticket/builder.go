package ticket

import (
	"github.com/ticketera/backend/internal/domain/document"
	ticketdomain "github.com/ticketera/backend/internal/domain/ticket"
	"github.com/ticketera/backend/internal/infrastructure/escpos"
)

// streamBuilder assembles the operation stream for one render format
type streamBuilder func(doc *document.Document, printer ticketdomain.Printer, fctx Context, serviceFooter string) *escpos.Stream

// builders dispatches by render format. Every valid format has an entry.
var builders = map[ticketdomain.RenderFormat]streamBuilder{
	ticketdomain.FormatNormal:    buildNormal,
	ticketdomain.FormatGift:      buildGift,
	ticketdomain.FormatReceipt:   buildReceipt,
	ticketdomain.FormatService:   buildService,
	ticketdomain.FormatTicketBai: buildTicketBai,
}

// ticketTitle resolves the ticket title from the family display name and
// the document code.
func ticketTitle(doc *document.Document) string {
	return doc.Family.DisplayName() + " " + doc.Code
}

// line appends sanitized text followed by a line feed
func line(s *escpos.Stream, text string) {
	s.Line(escpos.Sanitize(text))
}

// companyBlock writes the issuing company header: name at double size,
// then the address and tax id lines at normal size.
func companyBlock(s *escpos.Stream, fctx Context, doc *document.Document) {
	s.TextSize(2, 2)
	line(s, doc.Company.Name)
	s.TextSize(1, 1)

	line(s, doc.Company.Address)
	line(s, fctx.Labels.PostalCode+": "+doc.Company.PostalCode+", "+doc.Company.City)
	line(s, doc.Company.TaxIDType+": "+doc.Company.TaxID)
	s.Feed(1)
}

// documentBlock writes the title, date and customer lines
func documentBlock(s *escpos.Stream, fctx Context, doc *document.Document, title string) {
	line(s, title)
	line(s, fctx.Labels.Date+": "+doc.Date.Format(fctx.DateLayout+" "+fctx.TimeLayout))
	line(s, fctx.Labels.Customer+": "+doc.Customer.Name)
}

// rows appends a block of pre-formatted fixed-width rows
func rows(s *escpos.Stream, block []string) {
	for _, row := range block {
		line(s, row)
	}
}

// closePlain finishes a plain-text ticket: optional footer, paper feed,
// drawer pulse and cut. The text encoder resolves pulse and cut through
// the printer's named command table.
func closePlain(s *escpos.Stream, printer ticketdomain.Printer, footerExtra string) {
	if printer.Footer != "" {
		s.Feed(1)
		line(s, printer.Footer)
	}
	if footerExtra != "" {
		line(s, footerExtra)
	}
	s.Feed(5)
	s.Pulse()
	s.Cut()
}
