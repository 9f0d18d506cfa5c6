package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	app "github.com/ticketera/backend/internal/application/ticket"
	"github.com/ticketera/backend/internal/interfaces/http/middleware"
)

// TicketHandler handles ticket rendering and queue endpoints
type TicketHandler struct {
	BaseHandler
	service *app.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(service *app.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// Print renders a document and queues the resulting ticket
// POST /api/v1/tickets/print
func (h *TicketHandler) Print(c *gin.Context) {
	var req app.PrintTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.Print(c.Request.Context(), &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns one queued ticket
// GET /api/v1/tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ticket id")
		return
	}

	resp, err := h.service.GetTicket(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkPrinted flags a ticket as sent to the device
// PUT /api/v1/tickets/:id/printed
func (h *TicketHandler) MarkPrinted(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ticket id")
		return
	}

	if err := h.service.MarkPrinted(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// listQueuedRequest holds the queue listing query parameters
type listQueuedRequest struct {
	PrinterID int64 `form:"printer_id" binding:"required"`
	Limit     int   `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ListQueued returns the most recent tickets queued for a printer
// GET /api/v1/tickets?printer_id=1&limit=20
func (h *TicketHandler) ListQueued(c *gin.Context) {
	var req listQueuedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.ListQueued(c.Request.Context(), req.PrinterID, req.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListPrinters returns all configured printers
// GET /api/v1/tickets/printers
func (h *TicketHandler) ListPrinters(c *gin.Context) {
	resp, err := h.service.ListPrinters(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Formats returns the render formats valid for a document family.
// Unknown families yield an empty list.
// GET /api/v1/tickets/formats/:family
func (h *TicketHandler) Formats(c *gin.Context) {
	h.Success(c, h.service.FormatsForFamily(c.Param("family")))
}
