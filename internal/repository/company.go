package repository

import (
	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies and their users
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

var _ CompanyRepositoryInterface = (*CompanyRepository)(nil)

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("BusinessUnits").First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetBySlug retrieves a company by slug
func (r *CompanyRepository) GetBySlug(slug string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetAll retrieves all companies with pagination
func (r *CompanyRepository) GetAll(limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	if err := r.db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Update updates a company
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Omit("BusinessUnits").Save(company).Error
}

// Delete deletes a company and its memberships
func (r *CompanyRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CompanyUser{}, "company_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Company{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AddUser adds a membership
func (r *CompanyRepository) AddUser(cu *models.CompanyUser) error {
	return r.db.Create(cu).Error
}

// RemoveUser removes a membership
func (r *CompanyRepository) RemoveUser(companyID, userID uuid.UUID) error {
	res := r.db.Delete(&models.CompanyUser{}, "company_id = ? AND user_id = ?", companyID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetMembership retrieves a user's membership in a company
func (r *CompanyRepository) GetMembership(companyID, userID uuid.UUID) (*models.CompanyUser, error) {
	var cu models.CompanyUser
	err := r.db.Preload("Company").First(&cu, "company_id = ? AND user_id = ?", companyID, userID).Error
	if err != nil {
		return nil, err
	}
	return &cu, nil
}

// ListUsers lists a company's memberships with their users
func (r *CompanyRepository) ListUsers(companyID uuid.UUID) ([]models.CompanyUser, error) {
	var members []models.CompanyUser
	err := r.db.Preload("User").Where("company_id = ?", companyID).Order("created_at").Find(&members).Error
	return members, err
}

// ListForUser lists a user's memberships with their companies
func (r *CompanyRepository) ListForUser(userID uuid.UUID) ([]models.CompanyUser, error) {
	var members []models.CompanyUser
	err := r.db.Preload("Company").Where("user_id = ?", userID).Order("created_at").Find(&members).Error
	return members, err
}
