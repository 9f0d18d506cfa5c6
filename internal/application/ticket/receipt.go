package ticket

import (
	"fmt"

	"github.com/ticketera/backend/internal/domain/document"
	ticketdomain "github.com/ticketera/backend/internal/domain/ticket"
	"github.com/ticketera/backend/internal/infrastructure/escpos"
)

// buildReceipt renders the payment receipt summary: amount, due date and
// payment state for a single receipt, no line table. A receipt document
// carries its schedule entry as the first installment; without one the
// document total and date stand in.
func buildReceipt(doc *document.Document, printer ticketdomain.Printer, fctx Context, _ string) *escpos.Stream {
	s := escpos.NewStream()

	companyBlock(s, fctx, doc)
	documentBlock(s, fctx, doc, ticketTitle(doc))
	s.Feed(1)

	inst := document.Installment{DueDate: doc.Date, Amount: doc.Total}
	if len(doc.Installments) > 0 {
		inst = doc.Installments[0]
	}

	width := printer.Width() - taxTableMargin
	line(s, printer.DashLine())
	line(s, fmt.Sprintf("%*s %10s", width, fctx.Labels.Total, fctx.money(inst.Amount)))
	line(s, fmt.Sprintf("%*s %10s", width, fctx.Labels.Expiration, inst.DueDate.Format(fctx.DateLayout)))
	if inst.IsPaid() {
		line(s, fmt.Sprintf("%*s %10s", width, fctx.Labels.Paid, inst.PaidDate.Format(fctx.DateLayout)))
	} else {
		line(s, fmt.Sprintf("%*s %10s", width, fctx.Labels.Pending, ""))
	}
	line(s, printer.DashLine())

	closePlain(s, printer, "")
	return s
}
