package document

// TaxLabeler resolves a tax code into a human-readable description.
// Implementations must be safe for concurrent reads; the engine never
// mutates the catalog during formatting.
type TaxLabeler interface {
	LabelFor(code string) (string, bool)
}

// TaxCatalog is a static, in-memory TaxLabeler
type TaxCatalog map[string]string

// LabelFor returns the description for a tax code
func (c TaxCatalog) LabelFor(code string) (string, bool) {
	label, ok := c[code]
	return label, ok
}

// DefaultTaxCatalog returns the standard Spanish VAT catalog
func DefaultTaxCatalog() TaxCatalog {
	return TaxCatalog{
		"IVA21": "IVA 21%",
		"IVA10": "IVA 10%",
		"IVA4":  "IVA 4%",
		"IVA0":  "IVA Exento",
	}
}
