package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ticketera/backend/internal/domain/document"
)

func TestRenderFormatIsValid(t *testing.T) {
	for _, f := range []RenderFormat{FormatNormal, FormatGift, FormatReceipt, FormatService, FormatTicketBai} {
		assert.True(t, f.IsValid(), f.String())
	}
	assert.False(t, RenderFormat("poster").IsValid())
	assert.False(t, RenderFormat("").IsValid())
}

func TestRenderFormatIsBinary(t *testing.T) {
	assert.True(t, FormatTicketBai.IsBinary())
	assert.False(t, FormatNormal.IsBinary())
	assert.False(t, FormatGift.IsBinary())
	assert.False(t, FormatReceipt.IsBinary())
	assert.False(t, FormatService.IsBinary())
}

func TestFormatsFor(t *testing.T) {
	sales := []RenderFormat{FormatNormal, FormatGift, FormatTicketBai}

	tests := []struct {
		family   document.Family
		expected []RenderFormat
	}{
		{document.FamilyInvoice, sales},
		{document.FamilyDelivery, sales},
		{document.FamilyOrder, sales},
		{document.FamilyEstimate, sales},
		{document.FamilyReceipt, []RenderFormat{FormatReceipt}},
		{document.FamilyService, []RenderFormat{FormatService}},
		{document.Family("UNKNOWN"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.family.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatsFor(tt.family))
		})
	}
}

func TestValidFor(t *testing.T) {
	assert.True(t, FormatTicketBai.ValidFor(document.FamilyInvoice))
	assert.True(t, FormatService.ValidFor(document.FamilyService))
	assert.False(t, FormatTicketBai.ValidFor(document.FamilyService))
	assert.False(t, FormatReceipt.ValidFor(document.FamilyInvoice))
	assert.False(t, FormatNormal.ValidFor(document.Family("UNKNOWN")))
}

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket(2, "admin", "Invoice FAC-1", "body", false)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), tk.PrinterID)
	assert.Equal(t, SchemaVersion, tk.AppVersion)
	assert.False(t, tk.Printed)
	assert.NotEqual(t, "", tk.ID.String())

	tk.SetAgent("AG01")
	assert.Equal(t, "AG01", tk.AgentCode)

	_, err = NewTicket(1, "", "title", "body", false)
	assert.Error(t, err, "operator is required")
	_, err = NewTicket(1, "admin", "", "body", false)
	assert.Error(t, err, "title is required")
	_, err = NewTicket(1, "admin", "title", "", true)
	assert.Error(t, err, "body is required")
}
