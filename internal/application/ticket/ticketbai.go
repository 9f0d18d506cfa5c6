package ticket

import (
	"github.com/ticketera/backend/internal/domain/document"
	ticketdomain "github.com/ticketera/backend/internal/domain/ticket"
	"github.com/ticketera/backend/internal/infrastructure/escpos"
)

const fiscalQRModuleSize = 7

// buildTicketBai renders the fiscal ticket as a full command stream:
// stored logo, sized and justified blocks, item and tax tables, the
// optional receipt schedule and the tax-authority QR code. The emission
// order is a fixed contract with the physical output.
func buildTicketBai(doc *document.Document, printer ticketdomain.Printer, fctx Context, _ string) *escpos.Stream {
	s := escpos.NewStream()

	if printer.PrintStoredLogo {
		s.Justify(escpos.JustifyCenter)
		s.StoredLogo()
		s.Feed(1)
	}

	s.TextSize(2, 2)
	line(s, doc.Company.Name)
	s.TextSize(1, 1)
	s.Justify(escpos.JustifyLeft)

	line(s, doc.Company.Address)
	line(s, fctx.Labels.PostalCode+": "+doc.Company.PostalCode+", "+doc.Company.City)
	line(s, doc.Company.TaxIDType+": "+doc.Company.TaxID)
	s.Feed(1)

	documentBlock(s, fctx, doc, ticketTitle(doc))
	s.Feed(1)

	if printer.Head != "" {
		s.Justify(escpos.JustifyCenter)
		line(s, printer.Head)
		s.Feed(1)
		s.Justify(escpos.JustifyLeft)
	}

	rows(s, itemTable(fctx, printer, doc.Lines, true))
	rows(s, taxTable(fctx, printer, ComputeSubtotals(doc.Lines, doc.DiscountFactor(), fctx)))
	line(s, printer.DashLine())
	line(s, totalRow(fctx, printer, doc.Total))

	if printer.PrintInvoiceReceipts && doc.Family == document.FamilyInvoice {
		if schedule := receiptSchedule(fctx, printer, doc.Installments); len(schedule) > 0 {
			s.Feed(2)
			rows(s, schedule)
			s.Feed(1)
		}
	}

	if doc.HasFiscalQR() {
		s.Justify(escpos.JustifyCenter)
		s.Feed(1)
		line(s, doc.FiscalCode)
		s.QR(doc.FiscalURL, fiscalQRModuleSize, escpos.QRLevelL)
		s.Justify(escpos.JustifyLeft)
	}

	if printer.Footer != "" {
		s.Justify(escpos.JustifyCenter)
		s.Feed(1)
		line(s, printer.Footer)
		s.Justify(escpos.JustifyLeft)
	}

	s.Feed(4)
	s.Pulse()
	s.Cut()
	return s
}
