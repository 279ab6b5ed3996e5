package repository

import (
	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedSearchRepository handles database operations for saved searches and their logs
type SavedSearchRepository struct {
	db *gorm.DB
}

// NewSavedSearchRepository creates a new saved search repository
func NewSavedSearchRepository(db *gorm.DB) *SavedSearchRepository {
	return &SavedSearchRepository{db: db}
}

var _ SavedSearchRepositoryInterface = (*SavedSearchRepository)(nil)

// Create creates a new saved search
func (r *SavedSearchRepository) Create(search *models.SavedSearch) error {
	return r.db.Create(search).Error
}

// GetByID retrieves a saved search by ID
func (r *SavedSearchRepository) GetByID(id uuid.UUID) (*models.SavedSearch, error) {
	var search models.SavedSearch
	if err := r.db.First(&search, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &search, nil
}

// ListByUser lists a user's own saved searches
func (r *SavedSearchRepository) ListByUser(userID uuid.UUID) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&searches).Error
	return searches, err
}

// ListByPartner lists the saved searches a company created for a partner's contacts
func (r *SavedSearchRepository) ListByPartner(companyID, partnerID uuid.UUID) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	err := r.db.Where("company_id = ? AND partner_id = ?", companyID, partnerID).Order("created_at").Find(&searches).Error
	return searches, err
}

// ListActive lists searches that may receive digests
func (r *SavedSearchRepository) ListActive() ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	err := r.db.Where("is_active = ? AND unsubscribed = ?", true, false).Order("created_at").Find(&searches).Error
	return searches, err
}

// Update updates a saved search
func (r *SavedSearchRepository) Update(search *models.SavedSearch) error {
	return r.db.Save(search).Error
}

// Delete deletes a saved search and its logs
func (r *SavedSearchRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SavedSearchLog{}, "saved_search_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.SavedSearch{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CreateLog records a digest run
func (r *SavedSearchRepository) CreateLog(entry *models.SavedSearchLog) error {
	return r.db.Create(entry).Error
}

// ListLogs lists a search's digest runs, newest first
func (r *SavedSearchRepository) ListLogs(searchID uuid.UUID, limit int) ([]models.SavedSearchLog, error) {
	var logs []models.SavedSearchLog
	err := r.db.Where("saved_search_id = ?", searchID).Order("sent_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
