package document

// Family represents the kind of business document being printed
type Family string

const (
	// Sales documents
	FamilyInvoice  Family = "SALES_INVOICE"  // customer invoice
	FamilyDelivery Family = "SALES_DELIVERY" // delivery note
	FamilyOrder    Family = "SALES_ORDER"    // customer order
	FamilyEstimate Family = "SALES_ESTIMATE" // estimate / quotation

	// Other families
	FamilyService Family = "SERVICE_ORDER"   // workshop / after-sales service order
	FamilyReceipt Family = "PAYMENT_RECEIPT" // customer payment receipt
)

// IsValid checks if the Family is a valid value
func (f Family) IsValid() bool {
	switch f {
	case FamilyInvoice, FamilyDelivery, FamilyOrder, FamilyEstimate,
		FamilyService, FamilyReceipt:
		return true
	}
	return false
}

// String returns the string representation of Family
func (f Family) String() string {
	return string(f)
}

// IsSales returns true for the sales document families
func (f Family) IsSales() bool {
	switch f {
	case FamilyInvoice, FamilyDelivery, FamilyOrder, FamilyEstimate:
		return true
	}
	return false
}

// DisplayName returns the short display name used in ticket titles
func (f Family) DisplayName() string {
	switch f {
	case FamilyInvoice:
		return "Invoice"
	case FamilyDelivery:
		return "Delivery note"
	case FamilyOrder:
		return "Order"
	case FamilyEstimate:
		return "Estimate"
	case FamilyService:
		return "Service"
	case FamilyReceipt:
		return "Receipt"
	default:
		return string(f)
	}
}

// AllFamilies returns all valid Family values
func AllFamilies() []Family {
	return []Family{
		FamilyInvoice, FamilyDelivery, FamilyOrder, FamilyEstimate,
		FamilyService, FamilyReceipt,
	}
}
