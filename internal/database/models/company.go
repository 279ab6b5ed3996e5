package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant every PRM, posting and report row belongs to
type Company struct {
	BaseModel
	Name          string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug          string `json:"slug" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
	Member        bool   `json:"member" gorm:"not null;default:false"`
	ProductAccess bool   `json:"product_access" gorm:"not null;default:false"`
	PostingAccess bool   `json:"posting_access" gorm:"not null;default:false"`
	PRMAccess     bool   `json:"prm_access" gorm:"not null;default:false"`
	ReportsAccess bool   `json:"reports_access" gorm:"not null;default:false"`

	BusinessUnits []BusinessUnit `json:"business_units,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}

// BusinessUnit is a feed source identified by its integer BUID
type BusinessUnit struct {
	ID        int        `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title     string     `json:"title" gorm:"size:500"`
	CompanyID *uuid.UUID `json:"company_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName returns the table name for BusinessUnit
func (BusinessUnit) TableName() string {
	return "business_units"
}

// SeoSite is a microsite served on its own domain
type SeoSite struct {
	BaseModel
	Domain            string    `json:"domain" gorm:"uniqueIndex;not null;size:255" validate:"required,hostname,max=255"`
	Name              string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	CompanyID         uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	DefaultViewSource int       `json:"default_view_source" gorm:"not null;default:0"`
	PostajobEnabled   bool      `json:"postajob_enabled" gorm:"not null;default:false"`

	BusinessUnits []BusinessUnit `json:"business_units,omitempty" gorm:"many2many:site_business_units"`
}

// TableName returns the table name for SeoSite
func (SeoSite) TableName() string {
	return "seo_sites"
}

// BUIDs returns the ids of the site's business units
func (s *SeoSite) BUIDs() []int {
	ids := make([]int, 0, len(s.BusinessUnits))
	for _, bu := range s.BusinessUnits {
		ids = append(ids, bu.ID)
	}
	return ids
}
