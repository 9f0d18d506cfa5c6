package ticket

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ticketera/backend/internal/domain/document"
	ticketdomain "github.com/ticketera/backend/internal/domain/ticket"
)

// Column geometry. Every emitted row is exactly lineLen characters wide:
// a 5 character quantity column, a description column absorbing the
// remainder and a right-justified 10 (11 for the header) character
// numeric column.
const (
	itemTableMargin = 17 // quantity column + numeric column + separators
	taxTableMargin  = 11 // numeric column + separator
	scheduleMargin  = 22 // two date columns + separators
)

// itemTable renders the line table: header, dashed rule, one row per line
// plus optional price and serial rows, closing dashed rule. When
// showAmounts is false the numeric columns stay blank (gift tickets).
func itemTable(fctx Context, printer ticketdomain.Printer, lines []document.Line, showAmounts bool) []string {
	width := printer.Width() - itemTableMargin

	amountHeader := fctx.Labels.Total
	if printer.PrintLinesNet {
		amountHeader = fctx.Labels.Net
	}
	if !showAmounts {
		amountHeader = ""
	}

	rows := []string{
		fmt.Sprintf("%5s %-*s%11s", fctx.Labels.Quantity, width, fctx.Labels.Description, amountHeader),
		printer.DashLine(),
	}

	for _, line := range lines {
		rows = append(rows, lineRows(fctx, printer, line, width, showAmounts)...)
		for _, serial := range wrapSerials(line.SerialNumbers, width) {
			rows = append(rows, fmt.Sprintf("%5s %-*s %10s", "", width, serial, ""))
		}
	}

	return append(rows, printer.DashLine())
}

func lineRows(fctx Context, printer ticketdomain.Printer, line document.Line, width int, showAmounts bool) []string {
	qty := line.Quantity.String()
	desc := truncate(line.Description, width)

	if !showAmounts {
		return []string{fmt.Sprintf("%5s %-*s %10s", qty, width, desc, "")}
	}

	amount := line.Total
	unitPrice := line.UnitPrice
	if !printer.PrintLinesNet {
		amount = line.TotalWithTax()
		unitPrice = line.UnitPriceWithTax()
	}
	total := fctx.money(amount)

	if !printer.PrintLinesPrice {
		return []string{fmt.Sprintf("%5s %-*s %10s", qty, width, desc, total)}
	}

	// the row total moves down to the unit-price row
	priceDesc := truncate(fctx.Labels.Price+": "+fctx.money(unitPrice), width)
	return []string{
		fmt.Sprintf("%5s %-*s %10s", qty, width, desc, ""),
		fmt.Sprintf("%5s %-*s %10s", "", width, priceDesc, total),
	}
}

// wrapSerials concatenates the identifiers separated by ", " and splits
// the result into rows of at most width characters. Unlike description
// truncation no character is lost: the concatenation of all returned rows
// reproduces the full identifier list. A row is flushed when the next
// character would not fit, and when a separator would leave less than one
// character of room the separator starts the next row instead. The final
// trailing separator is trimmed.
func wrapSerials(serials []string, width int) []string {
	if len(serials) == 0 || width <= 0 {
		return nil
	}

	var rows []string
	current := ""

	for _, serial := range serials {
		for _, r := range serial {
			if len(current)+1 > width {
				rows = append(rows, current)
				current = ""
			}
			current += string(r)
		}

		if len(current)+2 > width {
			rows = append(rows, current)
			current = ", "
			continue
		}
		current += ", "
	}

	if len(current) >= 2 && current[len(current)-2:] == ", " {
		current = current[:len(current)-2]
	}
	if current != "" {
		rows = append(rows, current)
	}
	return rows
}

// taxTable renders the subtotal block: per bucket a base row and a tax
// row, plus a surcharge row when the bucket accumulated any surcharge.
func taxTable(fctx Context, printer ticketdomain.Printer, subtotals []Subtotal) []string {
	width := printer.Width() - taxTableMargin

	var rows []string
	for _, st := range subtotals {
		rows = append(rows,
			fmt.Sprintf("%*s %10s", width, fctx.Labels.TaxBase+" "+st.TaxRate.String()+"%", fctx.money(st.Base)),
			fmt.Sprintf("%*s %10s", width, st.Label, fctx.money(st.TaxAmount)),
		)
		if !st.Surcharge.IsZero() {
			surchargeLabel := fctx.Labels.Surcharge + " " + st.SurchargeRate.String() + "%"
			rows = append(rows, fmt.Sprintf("%*s %10s", width, surchargeLabel, fctx.money(st.Surcharge)))
		}
	}
	return rows
}

// totalRow renders the grand total in the tax table template
func totalRow(fctx Context, printer ticketdomain.Printer, total decimal.Decimal) string {
	width := printer.Width() - taxTableMargin
	return fmt.Sprintf("%*s %10s", width, fctx.Labels.Total, fctx.money(total))
}

// receiptSchedule renders the installment table with its running totals.
// An empty installment list yields no rows at all, not an empty frame.
func receiptSchedule(fctx Context, printer ticketdomain.Printer, installments []document.Installment) []string {
	if len(installments) == 0 {
		return nil
	}

	lineLen := printer.Width()
	width := lineLen - scheduleMargin

	total := decimal.Zero
	paid := decimal.Zero

	dataRows := make([]string, 0, len(installments))
	for _, inst := range installments {
		total = total.Add(inst.Amount)

		paidDate := ""
		if inst.IsPaid() {
			paid = paid.Add(inst.Amount)
			paidDate = inst.PaidDate.Format(fctx.DateLayout)
		}

		dataRows = append(dataRows, fmt.Sprintf("%10s %10s %*s",
			inst.DueDate.Format(fctx.DateLayout), paidDate, width, fctx.money(inst.Amount)))
	}

	rows := []string{
		fmt.Sprintf("%*s", lineLen, fctx.Labels.Receipts),
		fmt.Sprintf("%10s %10s %*s", fctx.Labels.Expiration, fctx.Labels.Paid, width, fctx.Labels.Total),
		printer.DashLine(),
	}
	rows = append(rows, dataRows...)
	rows = append(rows, printer.DashLine())

	summaryWidth := lineLen - width - 1
	rows = append(rows,
		fmt.Sprintf("%*s %*s", summaryWidth, fctx.Labels.Total, width, fctx.money(total)),
		fmt.Sprintf("%*s %*s", summaryWidth, fctx.Labels.Paid, width, fctx.money(paid)),
		fmt.Sprintf("%*s %*s", summaryWidth, fctx.Labels.Pending, width, fctx.money(total.Sub(paid))),
	)
	return rows
}

// truncate cuts s at the given rune count, never wrapping
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
