package repository

import (
	"strings"

	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteRepository handles database operations for microsites
type SiteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

var _ SiteRepositoryInterface = (*SiteRepository)(nil)

// Create creates a new site
func (r *SiteRepository) Create(site *models.SeoSite) error {
	site.Domain = strings.ToLower(site.Domain)
	return r.db.Create(site).Error
}

// GetByID retrieves a site with its business units
func (r *SiteRepository) GetByID(id uuid.UUID) (*models.SeoSite, error) {
	var site models.SeoSite
	if err := r.db.Preload("BusinessUnits").First(&site, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

// GetByDomain retrieves a site by its host name
func (r *SiteRepository) GetByDomain(domain string) (*models.SeoSite, error) {
	var site models.SeoSite
	err := r.db.Preload("BusinessUnits").First(&site, "domain = ?", strings.ToLower(domain)).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// GetByCompanyID lists a company's sites
func (r *SiteRepository) GetByCompanyID(companyID uuid.UUID) ([]models.SeoSite, error) {
	var sites []models.SeoSite
	err := r.db.Preload("BusinessUnits").Where("company_id = ?", companyID).Order("domain").Find(&sites).Error
	return sites, err
}

// Update updates a site's own columns
func (r *SiteRepository) Update(site *models.SeoSite) error {
	site.Domain = strings.ToLower(site.Domain)
	return r.db.Omit("BusinessUnits").Save(site).Error
}

// Delete deletes a site and its business unit links
func (r *SiteRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		site := &models.SeoSite{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(site).Association("BusinessUnits").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.SeoSite{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SetBusinessUnits replaces the site's business units
func (r *SiteRepository) SetBusinessUnits(site *models.SeoSite, buids []int) error {
	var units []models.BusinessUnit
	if len(buids) > 0 {
		if err := r.db.Where("id IN ?", buids).Find(&units).Error; err != nil {
			return err
		}
	}
	if err := r.db.Model(site).Association("BusinessUnits").Replace(units); err != nil {
		return err
	}
	site.BusinessUnits = units
	return nil
}
