package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// Archivable is embedded by PRM rows that are hidden instead of deleted
type Archivable struct {
	ArchivedOn *time.Time `json:"archived_on,omitempty" gorm:"index"`
}

// IsArchived reports whether the row has been archived
func (a Archivable) IsArchived() bool {
	return a.ArchivedOn != nil
}
