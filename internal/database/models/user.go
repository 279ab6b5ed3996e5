package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in
type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	IsActive     bool       `json:"is_active" gorm:"not null"`
	IsStaff      bool       `json:"is_staff" gorm:"not null;default:false"`
	LastLogin    *time.Time `json:"last_login,omitempty"`

	Names     []Name        `json:"names,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Addresses []Address     `json:"addresses,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Companies []CompanyUser `json:"companies,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Name is a profile unit holding a person's name
type Name struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	GivenName  string    `json:"given_name" gorm:"not null;size:30" validate:"required,max=30"`
	FamilyName string    `json:"family_name" gorm:"not null;size:30" validate:"required,max=30"`
	Primary    bool      `json:"primary" gorm:"not null;default:false"`
}

// TableName returns the table name for Name
func (Name) TableName() string {
	return "profile_names"
}

// Address is a profile unit holding a postal address
type Address struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Label      string    `json:"label" gorm:"size:60" validate:"max=60"`
	Line1      string    `json:"line1" gorm:"size:255" validate:"max=255"`
	Line2      string    `json:"line2" gorm:"size:255" validate:"max=255"`
	City       string    `json:"city" gorm:"size:255" validate:"max=255"`
	Region     string    `json:"region" gorm:"size:255" validate:"max=255"`
	PostalCode string    `json:"postal_code" gorm:"size:12" validate:"max=12"`
	Country    string    `json:"country" gorm:"size:3" validate:"max=3"`
}

// TableName returns the table name for Address
func (Address) TableName() string {
	return "profile_addresses"
}

// CompanyUser links a user to a company with a role
type CompanyUser struct {
	BaseModel
	CompanyID uuid.UUID   `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_company_user"`
	UserID    uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_company_user"`
	Role      CompanyRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`

	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for CompanyUser
func (CompanyUser) TableName() string {
	return "company_users"
}
