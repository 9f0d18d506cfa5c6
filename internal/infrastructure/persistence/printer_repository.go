package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/ticketera/backend/internal/domain/shared"
	"github.com/ticketera/backend/internal/domain/ticket"
	"github.com/ticketera/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPrinterRepository implements PrinterRepository using GORM
type GormPrinterRepository struct {
	db *gorm.DB
}

// NewGormPrinterRepository creates a new GormPrinterRepository
func NewGormPrinterRepository(db *gorm.DB) *GormPrinterRepository {
	return &GormPrinterRepository{db: db}
}

// FindByID finds a printer configuration by ID
func (r *GormPrinterRepository) FindByID(ctx context.Context, id int64) (*ticket.Printer, error) {
	var model models.TicketPrinterModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all configured printers, newest first
func (r *GormPrinterRepository) FindAll(ctx context.Context) ([]ticket.Printer, error) {
	var printerModels []models.TicketPrinterModel
	if err := r.db.WithContext(ctx).
		Order("creation_date DESC").
		Find(&printerModels).Error; err != nil {
		return nil, err
	}

	printers := make([]ticket.Printer, len(printerModels))
	for i, model := range printerModels {
		printers[i] = *model.ToDomain()
	}
	return printers, nil
}

// Save persists a printer configuration
func (r *GormPrinterRepository) Save(ctx context.Context, p *ticket.Printer) error {
	var model models.TicketPrinterModel
	model.FromDomain(p)
	if model.CreationDate.IsZero() {
		model.CreationDate = time.Now()
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return err
	}

	// propagate the generated id and defaults back to the domain object
	p.ID = model.ID
	p.CreationDate = model.CreationDate
	return nil
}
