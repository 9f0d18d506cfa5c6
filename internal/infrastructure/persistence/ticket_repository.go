package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ticketera/backend/internal/domain/shared"
	"github.com/ticketera/backend/internal/domain/ticket"
	"github.com/ticketera/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTicketRepository implements TicketRepository using GORM
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GormTicketRepository
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// Save persists a ticket record. Tickets are immutable after creation, so
// this is always an insert.
func (r *GormTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	var model models.TicketModel
	model.FromDomain(t)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByID finds a ticket by ID
func (r *GormTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPrinter finds the most recent tickets queued for a printer
func (r *GormTicketRepository) FindByPrinter(ctx context.Context, printerID int64, limit int) ([]ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	if err := r.db.WithContext(ctx).
		Where("printer_id = ?", printerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, err
	}

	tickets := make([]ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		tickets[i] = *model.ToDomain()
	}
	return tickets, nil
}

// MarkPrinted flags a ticket as sent to the device
func (r *GormTicketRepository) MarkPrinted(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Update("printed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
