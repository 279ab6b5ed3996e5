package repository

import (
	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailTemplateRepository handles database operations for email templates
type EmailTemplateRepository struct {
	db *gorm.DB
}

// NewEmailTemplateRepository creates a new email template repository
func NewEmailTemplateRepository(db *gorm.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{db: db}
}

var _ EmailTemplateRepositoryInterface = (*EmailTemplateRepository)(nil)

// Create creates a new template
func (r *EmailTemplateRepository) Create(tpl *models.EmailTemplate) error {
	return r.db.Create(tpl).Error
}

// GetByID retrieves a template by ID
func (r *EmailTemplateRepository) GetByID(id uuid.UUID) (*models.EmailTemplate, error) {
	var tpl models.EmailTemplate
	if err := r.db.First(&tpl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ListForCompany lists a company's templates followed by the global ones
func (r *EmailTemplateRepository) ListForCompany(companyID uuid.UUID) ([]models.EmailTemplate, error) {
	var templates []models.EmailTemplate
	err := r.db.
		Where("company_id = ? OR company_id IS NULL", companyID).
		Order("company_id IS NULL, event, name").
		Find(&templates).Error
	return templates, err
}

// FindForEvent returns the company's template for an event, falling back to the global one
func (r *EmailTemplateRepository) FindForEvent(companyID *uuid.UUID, event models.EmailEvent) (*models.EmailTemplate, error) {
	var tpl models.EmailTemplate
	if companyID != nil {
		err := r.db.Where("company_id = ? AND event = ?", *companyID, event).Order("created_at DESC").First(&tpl).Error
		if err == nil {
			return &tpl, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}
	err := r.db.Where("company_id IS NULL AND event = ?", event).Order("created_at DESC").First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// DaysBeforeFor lists the distinct DaysBefore values configured for an event
func (r *EmailTemplateRepository) DaysBeforeFor(event models.EmailEvent) ([]int, error) {
	var days []int
	err := r.db.Model(&models.EmailTemplate{}).Where("event = ?", event).Distinct().Pluck("days_before", &days).Error
	return days, err
}

// Update updates a template
func (r *EmailTemplateRepository) Update(tpl *models.EmailTemplate) error {
	return r.db.Save(tpl).Error
}

// Delete deletes a template
func (r *EmailTemplateRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.EmailTemplate{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EmailLogRepository handles database operations for email logs
type EmailLogRepository struct {
	db *gorm.DB
}

// NewEmailLogRepository creates a new email log repository
func NewEmailLogRepository(db *gorm.DB) *EmailLogRepository {
	return &EmailLogRepository{db: db}
}

var _ EmailLogRepositoryInterface = (*EmailLogRepository)(nil)

// Create writes a log entry
func (r *EmailLogRepository) Create(entry *models.EmailLog) error {
	return r.db.Create(entry).Error
}

// List lists send attempts, optionally for one recipient, newest first
func (r *EmailLogRepository) List(to string, limit, offset int) ([]models.EmailLog, int64, error) {
	var logs []models.EmailLog
	var total int64

	query := r.db.Model(&models.EmailLog{})
	if to != "" {
		query = query.Where(`"to" = ?`, to)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("sent_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
