package ticket_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	app "github.com/ticketera/backend/internal/application/ticket"
	"github.com/ticketera/backend/internal/domain/shared"
	"github.com/ticketera/backend/internal/domain/ticket"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByPrinter(ctx context.Context, printerID int64, limit int) ([]ticket.Ticket, error) {
	args := m.Called(ctx, printerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) MarkPrinted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPrinterRepository struct {
	mock.Mock
}

func (m *MockPrinterRepository) FindByID(ctx context.Context, id int64) (*ticket.Printer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Printer), args.Error(1)
}

func (m *MockPrinterRepository) FindAll(ctx context.Context) ([]ticket.Printer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ticket.Printer), args.Error(1)
}

func (m *MockPrinterRepository) Save(ctx context.Context, p *ticket.Printer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// =============================================================================
// Helpers
// =============================================================================

func newService(tr *MockTicketRepository, pr *MockPrinterRepository) *app.TicketService {
	return app.NewTicketService(tr, pr, app.DefaultContext(), "", zap.NewNop())
}

func salesDocument() app.DocumentRequest {
	return app.DocumentRequest{
		Family: "SALES_INVOICE",
		Code:   "FAC-2026-001",
		Date:   time.Date(2026, 2, 1, 12, 30, 0, 0, time.UTC),
		Company: app.CompanyRequest{
			Name:       "Ferretería García SL",
			Address:    "Calle Mayor 1",
			PostalCode: "28001",
			City:       "Madrid",
			TaxIDType:  "CIF",
			TaxID:      "B12345678",
		},
		Customer: app.CustomerRequest{Name: "Cliente de contado"},
		Lines: []app.LineRequest{
			{
				Quantity:    decimal.NewFromInt(2),
				Description: "Tornillos",
				UnitPrice:   decimal.RequireFromString("5.00"),
				TaxCode:     "IVA21",
				TaxRate:     decimal.NewFromInt(21),
				Total:       decimal.RequireFromString("10.00"),
			},
		},
		Total: decimal.RequireFromString("12.10"),
	}
}

// =============================================================================
// Print
// =============================================================================

func TestPrintNormalTicket(t *testing.T) {
	ticketRepo := new(MockTicketRepository)
	printerRepo := new(MockPrinterRepository)
	service := newService(ticketRepo, printerRepo)

	printer := &ticket.Printer{ID: 3, LineLen: 40, OpenCommand: "27.112.48", CutCommand: "27.105"}
	printerRepo.On("FindByID", mock.Anything, int64(3)).Return(printer, nil)

	var saved *ticket.Ticket
	ticketRepo.On("Save", mock.Anything, mock.AnythingOfType("*ticket.Ticket")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*ticket.Ticket) }).
		Return(nil)

	resp, err := service.Print(context.Background(), &app.PrintTicketRequest{
		PrinterID: 3,
		Format:    "normal",
		Operator:  "admin",
		Document:  salesDocument(),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Invoice FAC-2026-001", resp.Title)
	assert.False(t, resp.Base64)
	assert.Equal(t, int64(3), resp.PrinterID)
	assert.Equal(t, "admin", resp.Nick)
	assert.Equal(t, 1, resp.AppVersion)

	assert.Contains(t, saved.Body, "Ferreteria Garcia SL", "company name is sanitized")
	assert.Contains(t, saved.Body, "Tornillos")
	assert.Contains(t, saved.Body, "12.10")
	assert.Contains(t, saved.Body, "\x1B\x70\x30", "drawer command resolved from printer config")
	assert.Contains(t, saved.Body, "\x1B\x69", "cut command resolved from printer config")

	ticketRepo.AssertExpectations(t)
	printerRepo.AssertExpectations(t)
}

func TestPrintTicketBaiIsBinary(t *testing.T) {
	ticketRepo := new(MockTicketRepository)
	printerRepo := new(MockPrinterRepository)
	service := newService(ticketRepo, printerRepo)

	printer := &ticket.Printer{ID: 1, LineLen: 40, PrintStoredLogo: true}
	printerRepo.On("FindByID", mock.Anything, int64(1)).Return(printer, nil)

	var saved *ticket.Ticket
	ticketRepo.On("Save", mock.Anything, mock.AnythingOfType("*ticket.Ticket")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*ticket.Ticket) }).
		Return(nil)

	doc := salesDocument()
	doc.FiscalCode = "TBAI-01-123"
	doc.FiscalURL = "https://batuz.eus/QRTBAI/?id=TBAI-01-123"

	resp, err := service.Print(context.Background(), &app.PrintTicketRequest{
		PrinterID: 1,
		Format:    "ticketbai",
		Operator:  "admin",
		AgentCode: "AG01",
		Document:  doc,
	})

	require.NoError(t, err)
	assert.True(t, resp.Base64)
	assert.Equal(t, "AG01", saved.AgentCode)

	raw, err := base64.StdEncoding.DecodeString(saved.Body)
	require.NoError(t, err)

	body := string(raw)
	assert.True(t, strings.HasPrefix(body, "\x1B@"), "stream starts with initialize")

	logoAt := strings.Index(body, "\x1C\x70\x01\x00\x00")
	nameAt := strings.Index(body, "Ferreteria Garcia SL")
	require.GreaterOrEqual(t, logoAt, 0)
	require.GreaterOrEqual(t, nameAt, 0)
	assert.Less(t, logoAt, nameAt, "logo recall precedes any text")

	assert.Contains(t, body, "TBAI-01-123")
	assert.Contains(t, body, doc.FiscalURL, "QR payload embedded in the command stream")
	assert.True(t, strings.HasSuffix(body, "\x1D\x56\x41\x03"), "stream ends with the cut")
}

func TestPrintUnknownFormat(t *testing.T) {
	service := newService(new(MockTicketRepository), new(MockPrinterRepository))

	_, err := service.Print(context.Background(), &app.PrintTicketRequest{
		Format:   "poster",
		Operator: "admin",
		Document: salesDocument(),
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_FORMAT", domainErr.Code)
}

func TestPrintFormatNotAvailableForFamily(t *testing.T) {
	service := newService(new(MockTicketRepository), new(MockPrinterRepository))

	doc := salesDocument()
	doc.Family = "SERVICE_ORDER"

	_, err := service.Print(context.Background(), &app.PrintTicketRequest{
		Format:   "ticketbai",
		Operator: "admin",
		Document: doc,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "FORMAT_NOT_AVAILABLE", domainErr.Code)
}

func TestPrintInvalidDocument(t *testing.T) {
	service := newService(new(MockTicketRepository), new(MockPrinterRepository))

	doc := salesDocument()
	doc.Company.Name = ""

	_, err := service.Print(context.Background(), &app.PrintTicketRequest{
		Format:   "normal",
		Operator: "admin",
		Document: doc,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MISSING_COMPANY", domainErr.Code)
}

func TestPrintUnknownPrinterFallsBackToDefault(t *testing.T) {
	ticketRepo := new(MockTicketRepository)
	printerRepo := new(MockPrinterRepository)
	service := newService(ticketRepo, printerRepo)

	printerRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

	var saved *ticket.Ticket
	ticketRepo.On("Save", mock.Anything, mock.AnythingOfType("*ticket.Ticket")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*ticket.Ticket) }).
		Return(nil)

	_, err := service.Print(context.Background(), &app.PrintTicketRequest{
		PrinterID: 99,
		Format:    "normal",
		Operator:  "admin",
		Document:  salesDocument(),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), saved.PrinterID)
	printerRepo.AssertExpectations(t)
}

func TestPrintSaveFailure(t *testing.T) {
	ticketRepo := new(MockTicketRepository)
	printerRepo := new(MockPrinterRepository)
	service := newService(ticketRepo, printerRepo)

	printerRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&ticket.Printer{ID: 1, LineLen: 40}, nil)
	ticketRepo.On("Save", mock.Anything, mock.AnythingOfType("*ticket.Ticket")).
		Return(errors.New("connection refused"))

	_, err := service.Print(context.Background(), &app.PrintTicketRequest{
		PrinterID: 1,
		Format:    "normal",
		Operator:  "admin",
		Document:  salesDocument(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save ticket")
}

func TestPrintServiceFormatIncludesFooterText(t *testing.T) {
	ticketRepo := new(MockTicketRepository)
	printerRepo := new(MockPrinterRepository)
	service := app.NewTicketService(ticketRepo, printerRepo, app.DefaultContext(),
		"Garantía de 3 meses", zap.NewNop())

	printerRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&ticket.Printer{ID: 1, LineLen: 40}, nil)

	var saved *ticket.Ticket
	ticketRepo.On("Save", mock.Anything, mock.AnythingOfType("*ticket.Ticket")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*ticket.Ticket) }).
		Return(nil)

	doc := salesDocument()
	doc.Family = "SERVICE_ORDER"
	doc.Code = "SERV-7"
	doc.Description = "Pantalla rota"
	doc.Material = "Cargador"
	doc.Customer.Phone1 = "600123456"
	doc.Lines = nil

	resp, err := service.Print(context.Background(), &app.PrintTicketRequest{
		PrinterID: 1,
		Format:    "service",
		Operator:  "admin",
		Document:  doc,
	})

	require.NoError(t, err)
	assert.Equal(t, "Service SERV-7", resp.Title)
	assert.Contains(t, saved.Body, "Telefono: 600123456")
	assert.Contains(t, saved.Body, "Pantalla rota")
	assert.Contains(t, saved.Body, "Cargador")
	assert.Contains(t, saved.Body, "Garantia de 3 meses")
}

// =============================================================================
// Queries
// =============================================================================

func TestListPrinters(t *testing.T) {
	printerRepo := new(MockPrinterRepository)
	service := newService(new(MockTicketRepository), printerRepo)

	printerRepo.On("FindAll", mock.Anything).Return([]ticket.Printer{
		{ID: 1, Name: "Barra", LineLen: 48},
		{ID: 2, Name: "Cocina"},
	}, nil)

	printers, err := service.ListPrinters(context.Background())
	require.NoError(t, err)
	require.Len(t, printers, 2)
	assert.Equal(t, "Barra", printers[0].Name)
	assert.Equal(t, 48, printers[0].LineLen)
	assert.Equal(t, ticket.DefaultLineLen, printers[1].LineLen, "unset width reports the default")
}

func TestFormatsForFamily(t *testing.T) {
	service := newService(new(MockTicketRepository), new(MockPrinterRepository))

	tests := []struct {
		family   string
		expected []string
	}{
		{"SALES_INVOICE", []string{"normal", "gift", "ticketbai"}},
		{"SALES_DELIVERY", []string{"normal", "gift", "ticketbai"}},
		{"PAYMENT_RECEIPT", []string{"receipt"}},
		{"SERVICE_ORDER", []string{"service"}},
		{"PURCHASE_INVOICE", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			resp := service.FormatsForFamily(tt.family)
			assert.Equal(t, tt.expected, resp.Formats)
		})
	}
}

func TestMarkPrinted(t *testing.T) {
	ticketRepo := new(MockTicketRepository)
	service := newService(ticketRepo, new(MockPrinterRepository))

	id := uuid.New()
	ticketRepo.On("MarkPrinted", mock.Anything, id).Return(nil)

	require.NoError(t, service.MarkPrinted(context.Background(), id))
	ticketRepo.AssertExpectations(t)
}

func TestListQueued(t *testing.T) {
	ticketRepo := new(MockTicketRepository)
	service := newService(ticketRepo, new(MockPrinterRepository))

	ticketRepo.On("FindByPrinter", mock.Anything, int64(1), 20).
		Return([]ticket.Ticket{}, nil)

	out, err := service.ListQueued(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}
