package repository

import (
	"time"

	"myjobs/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RedirectRepository reads redirects from the primary database and falls back to the archive
type RedirectRepository struct {
	db      *gorm.DB
	archive *gorm.DB
}

// NewRedirectRepository creates a new redirect repository. archive may equal db.
func NewRedirectRepository(db, archive *gorm.DB) *RedirectRepository {
	if archive == nil {
		archive = db
	}
	return &RedirectRepository{db: db, archive: archive}
}

var _ RedirectRepositoryInterface = (*RedirectRepository)(nil)

// Get retrieves a redirect by GUID from the primary, then the archive
func (r *RedirectRepository) Get(guid string) (*models.Redirect, error) {
	var redirect models.Redirect
	err := r.db.First(&redirect, "guid = ?", guid).Error
	if err == nil {
		return &redirect, nil
	}
	if err != gorm.ErrRecordNotFound || r.archive == r.db {
		return nil, err
	}
	if err := r.archive.First(&redirect, "guid = ?", guid).Error; err != nil {
		return nil, err
	}
	return &redirect, nil
}

// Upsert inserts a redirect or refreshes it and clears its expiry
func (r *RedirectRepository) Upsert(redirect *models.Redirect) (bool, error) {
	var existing models.Redirect
	err := r.db.Select("guid").First(&existing, "guid = ?", redirect.GUID).Error
	created := err == gorm.ErrRecordNotFound
	if err != nil && !created {
		return false, err
	}

	if redirect.NewDate.IsZero() {
		redirect.NewDate = time.Now()
	}
	redirect.ExpiredDate = nil
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guid"}},
		DoUpdates: clause.AssignmentColumns([]string{"buid", "url", "title", "company_name", "expired_date", "updated_at"}),
	}).Create(redirect).Error
	if err != nil {
		return false, err
	}
	return created, nil
}

// ActiveGUIDs lists the unexpired GUIDs of a business unit
func (r *RedirectRepository) ActiveGUIDs(buid int) ([]string, error) {
	var guids []string
	err := r.db.Model(&models.Redirect{}).
		Where("buid = ? AND expired_date IS NULL", buid).
		Order("guid").
		Pluck("guid", &guids).Error
	return guids, err
}

// ExpireMissing expires the business unit's live redirects not listed in keep.
// Redirects of live posted jobs are not part of any feed and are left alone.
func (r *RedirectRepository) ExpireMissing(buid int, keep []string, at time.Time) (int64, error) {
	posted := r.db.Model(&models.PostedJob{}).Select("guid").Where("is_expired = ?", false)
	query := r.db.Model(&models.Redirect{}).
		Where("buid = ? AND expired_date IS NULL", buid).
		Where("guid NOT IN (?)", posted)
	if len(keep) > 0 {
		query = query.Where("guid NOT IN ?", keep)
	}
	res := query.Update("expired_date", at)
	return res.RowsAffected, res.Error
}

// Expire marks one redirect as expired
func (r *RedirectRepository) Expire(guid string, at time.Time) error {
	res := r.db.Model(&models.Redirect{}).Where("guid = ?", guid).Update("expired_date", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DestinationManipulationRepository handles database operations for manipulations
type DestinationManipulationRepository struct {
	db *gorm.DB
}

// NewDestinationManipulationRepository creates a new manipulation repository
func NewDestinationManipulationRepository(db *gorm.DB) *DestinationManipulationRepository {
	return &DestinationManipulationRepository{db: db}
}

var _ DestinationManipulationRepositoryInterface = (*DestinationManipulationRepository)(nil)

// Create creates a new manipulation
func (r *DestinationManipulationRepository) Create(m *models.DestinationManipulation) error {
	return r.db.Create(m).Error
}

// GetByID retrieves a manipulation by ID
func (r *DestinationManipulationRepository) GetByID(id uint) (*models.DestinationManipulation, error) {
	var m models.DestinationManipulation
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List lists manipulations, all of them when buid is 0
func (r *DestinationManipulationRepository) List(buid int, limit, offset int) ([]models.DestinationManipulation, int64, error) {
	var ms []models.DestinationManipulation
	var total int64

	query := r.db.Model(&models.DestinationManipulation{})
	if buid != 0 {
		query = query.Where("buid = ?", buid)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("buid, view_source, action_type, id").Limit(limit).Offset(offset).Find(&ms).Error
	if err != nil {
		return nil, 0, err
	}

	return ms, total, nil
}

// ListFor lists the manipulations applied to one (buid, view source), in application order
func (r *DestinationManipulationRepository) ListFor(buid, viewSource int) ([]models.DestinationManipulation, error) {
	var ms []models.DestinationManipulation
	err := r.db.Where("buid = ? AND view_source = ?", buid, viewSource).Order("action_type, id").Find(&ms).Error
	return ms, err
}

// FindByKey retrieves the manipulation matching the bulk-import key
func (r *DestinationManipulationRepository) FindByKey(buid, viewSource, actionType int, action string) (*models.DestinationManipulation, error) {
	var m models.DestinationManipulation
	err := r.db.First(&m, "buid = ? AND view_source = ? AND action_type = ? AND action = ?",
		buid, viewSource, actionType, action).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update updates a manipulation
func (r *DestinationManipulationRepository) Update(m *models.DestinationManipulation) error {
	return r.db.Save(m).Error
}

// Delete deletes a manipulation
func (r *DestinationManipulationRepository) Delete(id uint) error {
	res := r.db.Delete(&models.DestinationManipulation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ViewSourceRepository handles database operations for view sources
type ViewSourceRepository struct {
	db *gorm.DB
}

// NewViewSourceRepository creates a new view source repository
func NewViewSourceRepository(db *gorm.DB) *ViewSourceRepository {
	return &ViewSourceRepository{db: db}
}

var _ ViewSourceRepositoryInterface = (*ViewSourceRepository)(nil)

// Create creates a new view source
func (r *ViewSourceRepository) Create(vs *models.ViewSource) error {
	return r.db.Create(vs).Error
}

// GetByID retrieves a view source by ID
func (r *ViewSourceRepository) GetByID(id int) (*models.ViewSource, error) {
	var vs models.ViewSource
	if err := r.db.First(&vs, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vs, nil
}

// List lists every view source
func (r *ViewSourceRepository) List() ([]models.ViewSource, error) {
	var sources []models.ViewSource
	err := r.db.Order("id").Find(&sources).Error
	return sources, err
}
