package repository

import (
	"myjobs/internal/database/models"

	"gorm.io/gorm"
)

// ImportRecordRepository writes feed import audits to the QC database
type ImportRecordRepository struct {
	db *gorm.DB
}

// NewImportRecordRepository creates a new import record repository
func NewImportRecordRepository(db *gorm.DB) *ImportRecordRepository {
	return &ImportRecordRepository{db: db}
}

var _ ImportRecordRepositoryInterface = (*ImportRecordRepository)(nil)

// Create writes an import record
func (r *ImportRecordRepository) Create(record *models.ImportRecord) error {
	return r.db.Create(record).Error
}

// ListByBUID lists a business unit's imports, newest first
func (r *ImportRecordRepository) ListByBUID(buid int, limit int) ([]models.ImportRecord, error) {
	var records []models.ImportRecord
	err := r.db.Where("buid = ?", buid).Order("started_at DESC").Limit(limit).Find(&records).Error
	return records, err
}
