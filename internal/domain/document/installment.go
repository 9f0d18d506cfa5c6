package document

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one entry of a document's receipt schedule.
// A nil PaidDate means the installment is still pending.
type Installment struct {
	Number   int
	DueDate  time.Time
	PaidDate *time.Time
	Amount   decimal.Decimal
}

// IsPaid returns true if the installment has been paid
func (i Installment) IsPaid() bool {
	return i.PaidDate != nil
}
