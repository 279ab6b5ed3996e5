package repository

import (
	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessUnitRepository handles database operations for business units
type BusinessUnitRepository struct {
	db *gorm.DB
}

// NewBusinessUnitRepository creates a new business unit repository
func NewBusinessUnitRepository(db *gorm.DB) *BusinessUnitRepository {
	return &BusinessUnitRepository{db: db}
}

var _ BusinessUnitRepositoryInterface = (*BusinessUnitRepository)(nil)

// Create creates a new business unit
func (r *BusinessUnitRepository) Create(bu *models.BusinessUnit) error {
	return r.db.Create(bu).Error
}

// GetByID retrieves a business unit by BUID
func (r *BusinessUnitRepository) GetByID(id int) (*models.BusinessUnit, error) {
	var bu models.BusinessUnit
	if err := r.db.First(&bu, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bu, nil
}

// GetAll retrieves all business units with pagination
func (r *BusinessUnitRepository) GetAll(limit, offset int) ([]models.BusinessUnit, int64, error) {
	var units []models.BusinessUnit
	var total int64

	if err := r.db.Model(&models.BusinessUnit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&units).Error
	if err != nil {
		return nil, 0, err
	}

	return units, total, nil
}

// GetByCompanyID lists the business units owned by a company
func (r *BusinessUnitRepository) GetByCompanyID(companyID uuid.UUID) ([]models.BusinessUnit, error) {
	var units []models.BusinessUnit
	err := r.db.Where("company_id = ?", companyID).Order("id").Find(&units).Error
	return units, err
}

// IDsForCompany returns the BUIDs owned by a company
func (r *BusinessUnitRepository) IDsForCompany(companyID uuid.UUID) ([]int, error) {
	var ids []int
	err := r.db.Model(&models.BusinessUnit{}).Where("company_id = ?", companyID).Order("id").Pluck("id", &ids).Error
	return ids, err
}

// AssignToCompany sets or clears the owner of a business unit
func (r *BusinessUnitRepository) AssignToCompany(id int, companyID *uuid.UUID) error {
	res := r.db.Model(&models.BusinessUnit{}).Where("id = ?", id).Update("company_id", companyID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
