package repository

import (
	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for profile units
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ ProfileRepositoryInterface = (*ProfileRepository)(nil)

// ListNames lists a user's names, primary first
func (r *ProfileRepository) ListNames(userID uuid.UUID) ([]models.Name, error) {
	var names []models.Name
	err := r.db.Where("user_id = ?", userID).Order(`"primary" DESC, created_at`).Find(&names).Error
	return names, err
}

// GetName retrieves one of a user's names
func (r *ProfileRepository) GetName(userID, id uuid.UUID) (*models.Name, error) {
	var name models.Name
	if err := r.db.First(&name, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &name, nil
}

// SaveName creates or updates a name. A primary name demotes the user's other names.
func (r *ProfileRepository) SaveName(name *models.Name) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if name.Primary {
			q := tx.Model(&models.Name{}).Where("user_id = ?", name.UserID)
			if name.ID != uuid.Nil {
				q = q.Where("id <> ?", name.ID)
			}
			if err := q.Update("primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(name).Error
	})
}

// DeleteName deletes one of a user's names
func (r *ProfileRepository) DeleteName(userID, id uuid.UUID) error {
	res := r.db.Delete(&models.Name{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAddresses lists a user's addresses
func (r *ProfileRepository) ListAddresses(userID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&addresses).Error
	return addresses, err
}

// GetAddress retrieves one of a user's addresses
func (r *ProfileRepository) GetAddress(userID, id uuid.UUID) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// SaveAddress creates or updates an address
func (r *ProfileRepository) SaveAddress(address *models.Address) error {
	return r.db.Save(address).Error
}

// DeleteAddress deletes one of a user's addresses
func (r *ProfileRepository) DeleteAddress(userID, id uuid.UUID) error {
	res := r.db.Delete(&models.Address{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
