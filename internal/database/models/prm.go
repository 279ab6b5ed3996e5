package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag labels partners, contacts and contact records inside one company
type Tag struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	HexColor  string    `json:"hex_color" gorm:"size:6" validate:"omitempty,hexadecimal,len=6"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "prm_tags"
}

// Partner is an organisation a company recruits with
type Partner struct {
	BaseModel
	Archivable
	CompanyID        uuid.UUID      `json:"company_id" gorm:"type:uuid;not null;index"`
	Name             string         `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	URI              string         `json:"uri" gorm:"size:255" validate:"omitempty,url,max=255"`
	DataSource       string         `json:"data_source" gorm:"size:255" validate:"max=255"`
	PrimaryContactID *uuid.UUID     `json:"primary_contact_id,omitempty" gorm:"type:uuid"`
	ApprovalStatus   ApprovalStatus `json:"approval_status" gorm:"type:varchar(20);not null;default:'approved'"`

	Tags           []Tag    `json:"tags,omitempty" gorm:"many2many:prm_partner_tags"`
	PrimaryContact *Contact `json:"primary_contact,omitempty" gorm:"foreignKey:PrimaryContactID"`
}

// TableName returns the table name for Partner
func (Partner) TableName() string {
	return "prm_partners"
}

// Contact is a person at a partner
type Contact struct {
	BaseModel
	Archivable
	PartnerID uuid.UUID  `json:"partner_id" gorm:"type:uuid;not null;index"`
	Name      string     `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Email     string     `json:"email" gorm:"size:255;index" validate:"omitempty,email,max=255"`
	Phone     string     `json:"phone" gorm:"size:30" validate:"max=30"`
	Locations string     `json:"locations" gorm:"type:text"`
	Notes     string     `json:"notes" gorm:"type:text"`
	UserID    *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid"`

	Tags []Tag `json:"tags,omitempty" gorm:"many2many:prm_contact_tags"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "prm_contacts"
}

// ContactRecord is one logged communication with a partner
type ContactRecord struct {
	BaseModel
	Archivable
	PartnerID       uuid.UUID   `json:"partner_id" gorm:"type:uuid;not null;index"`
	ContactID       *uuid.UUID  `json:"contact_id,omitempty" gorm:"type:uuid;index"`
	ContactType     ContactType `json:"contact_type" gorm:"type:varchar(20);not null"`
	ContactEmail    string      `json:"contact_email" gorm:"size:255"`
	Subject         string      `json:"subject" gorm:"size:255"`
	Notes           string      `json:"notes" gorm:"type:text"`
	DateTime        time.Time   `json:"date_time" gorm:"not null;index"`
	LengthMinutes   int         `json:"length_minutes"`
	JobApplications int         `json:"job_applications"`
	JobInterviews   int         `json:"job_interviews"`
	JobHires        int         `json:"job_hires"`
	CreatedByID     *uuid.UUID  `json:"created_by_id,omitempty" gorm:"type:uuid"`

	Tags    []Tag    `json:"tags,omitempty" gorm:"many2many:prm_contact_record_tags"`
	Contact *Contact `json:"contact,omitempty" gorm:"foreignKey:ContactID"`
}

// TableName returns the table name for ContactRecord
func (ContactRecord) TableName() string {
	return "prm_contact_records"
}

// ContactLogEntry records a mutation made through the PRM
type ContactLogEntry struct {
	BaseModel
	CompanyID     uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	Action        LogAction  `json:"action" gorm:"type:varchar(20);not null"`
	ObjectType    string     `json:"object_type" gorm:"size:50;not null"`
	ObjectID      uuid.UUID  `json:"object_id" gorm:"type:uuid;not null"`
	ObjectRepr    string     `json:"object_repr" gorm:"size:255"`
	ChangeMessage string     `json:"change_message" gorm:"type:text"`
	UserID        *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid"`
	PartnerID     *uuid.UUID `json:"partner_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for ContactLogEntry
func (ContactLogEntry) TableName() string {
	return "prm_contact_log_entries"
}
