package ticket

import (
	"github.com/ticketera/backend/internal/domain/document"
	ticketdomain "github.com/ticketera/backend/internal/domain/ticket"
	"github.com/ticketera/backend/internal/infrastructure/escpos"
)

// buildNormal renders the standard plain-text sales ticket: company and
// document headers, the item table and the grand total.
func buildNormal(doc *document.Document, printer ticketdomain.Printer, fctx Context, _ string) *escpos.Stream {
	s := escpos.NewStream()

	companyBlock(s, fctx, doc)
	documentBlock(s, fctx, doc, ticketTitle(doc))
	s.Feed(1)

	if printer.Head != "" {
		line(s, printer.Head)
		s.Feed(1)
	}

	rows(s, itemTable(fctx, printer, doc.Lines, true))
	line(s, totalRow(fctx, printer, doc.Total))

	closePlain(s, printer, "")
	return s
}

// buildGift renders the gift variant of the sales ticket: the same layout
// as the normal ticket but without amounts or a totals block.
func buildGift(doc *document.Document, printer ticketdomain.Printer, fctx Context, _ string) *escpos.Stream {
	s := escpos.NewStream()

	companyBlock(s, fctx, doc)
	documentBlock(s, fctx, doc, ticketTitle(doc))
	s.Feed(1)

	if printer.Head != "" {
		line(s, printer.Head)
		s.Feed(1)
	}

	rows(s, itemTable(fctx, printer, doc.Lines, false))

	closePlain(s, printer, "")
	return s
}
