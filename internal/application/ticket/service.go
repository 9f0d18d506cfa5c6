package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ticketera/backend/internal/domain/document"
	"github.com/ticketera/backend/internal/domain/shared"
	ticketdomain "github.com/ticketera/backend/internal/domain/ticket"
	"github.com/ticketera/backend/internal/infrastructure/escpos"
	"go.uber.org/zap"
)

// TicketService renders documents into printer-ready tickets and queues
// them for their target printer. Rendering is a pure computation over the
// request snapshot; persistence of the finished ticket is the only write.
type TicketService struct {
	ticketRepo    ticketdomain.TicketRepository
	printerRepo   ticketdomain.PrinterRepository
	fctx          Context
	serviceFooter string
	logger        *zap.Logger
}

// NewTicketService creates a new TicketService
func NewTicketService(
	ticketRepo ticketdomain.TicketRepository,
	printerRepo ticketdomain.PrinterRepository,
	fctx Context,
	serviceFooter string,
	logger *zap.Logger,
) *TicketService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		ticketRepo:    ticketRepo,
		printerRepo:   printerRepo,
		fctx:          fctx,
		serviceFooter: serviceFooter,
		logger:        logger,
	}
}

// Print renders the document in the requested format and persists the
// resulting ticket. An unknown printer id falls back to the default
// configuration; an invalid family/format pairing is rejected before any
// rendering happens. Nothing is persisted when rendering fails.
func (s *TicketService) Print(ctx context.Context, req *PrintTicketRequest) (*TicketResponse, error) {
	format := ticketdomain.RenderFormat(req.Format)
	if !format.IsValid() {
		return nil, shared.NewDomainError("INVALID_FORMAT", "Unknown render format: "+req.Format)
	}

	doc := req.Document.ToDomain()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if !format.ValidFor(doc.Family) {
		return nil, shared.NewDomainError("FORMAT_NOT_AVAILABLE",
			fmt.Sprintf("Format %s is not available for family %s", format, doc.Family))
	}

	printer := s.resolvePrinter(ctx, req.PrinterID)

	stream := builders[format](doc, printer, s.fctx, s.serviceFooter)
	var body string
	if format.IsBinary() {
		body = escpos.EncodeBase64(stream)
	} else {
		body = escpos.EncodeText(stream, printer.CommandBytes)
	}

	t, err := ticketdomain.NewTicket(printer.ID, req.Operator, ticketTitle(doc), body, format.IsBinary())
	if err != nil {
		return nil, err
	}
	if req.AgentCode != "" {
		t.SetAgent(req.AgentCode)
	}

	if err := s.ticketRepo.Save(ctx, t); err != nil {
		s.logger.Error("failed to save ticket",
			zap.String("title", t.Title),
			zap.Int64("printer_id", printer.ID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	s.logger.Info("ticket queued",
		zap.String("id", t.ID.String()),
		zap.String("format", format.String()),
		zap.Int64("printer_id", printer.ID),
		zap.String("operator", t.Nick))
	return ToTicketResponse(t), nil
}

// resolvePrinter loads the printer configuration, substituting the default
// one when the id is unknown or the lookup fails.
func (s *TicketService) resolvePrinter(ctx context.Context, id int64) ticketdomain.Printer {
	if id == 0 {
		return ticketdomain.DefaultPrinter()
	}
	p, err := s.printerRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("printer lookup failed, using default configuration",
				zap.Int64("printer_id", id), zap.Error(err))
		}
		return ticketdomain.DefaultPrinter()
	}
	return *p
}

// GetTicket returns one queued ticket by id
func (s *TicketService) GetTicket(ctx context.Context, id uuid.UUID) (*TicketResponse, error) {
	t, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTicketResponse(t), nil
}

// ListQueued returns the most recent tickets queued for a printer
func (s *TicketService) ListQueued(ctx context.Context, printerID int64, limit int) ([]TicketResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	tickets, err := s.ticketRepo.FindByPrinter(ctx, printerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, *ToTicketResponse(&tickets[i]))
	}
	return out, nil
}

// MarkPrinted flags a ticket as sent to the physical device
func (s *TicketService) MarkPrinted(ctx context.Context, id uuid.UUID) error {
	if err := s.ticketRepo.MarkPrinted(ctx, id); err != nil {
		return fmt.Errorf("failed to mark ticket printed: %w", err)
	}
	return nil
}

// ListPrinters returns all configured printers, newest first
func (s *TicketService) ListPrinters(ctx context.Context) ([]PrinterResponse, error) {
	printers, err := s.printerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list printers: %w", err)
	}

	out := make([]PrinterResponse, 0, len(printers))
	for _, p := range printers {
		out = append(out, ToPrinterResponse(p))
	}
	return out, nil
}

// FormatsForFamily returns the render formats valid for a family tag.
// Unknown families get an empty list, not an error.
func (s *TicketService) FormatsForFamily(family string) FormatsResponse {
	resp := FormatsResponse{Family: family, Formats: []string{}}
	for _, f := range ticketdomain.FormatsFor(document.Family(family)) {
		resp.Formats = append(resp.Formats, f.String())
	}
	return resp
}
