package models

import (
	"time"
)

// Redirect maps a job GUID to its destination URL
type Redirect struct {
	GUID        string     `json:"guid" gorm:"primaryKey;size:32"`
	BUID        int        `json:"buid" gorm:"column:buid;not null;index"`
	URL         string     `json:"url" gorm:"type:text;not null"`
	Title       string     `json:"title" gorm:"size:500"`
	CompanyName string     `json:"company_name" gorm:"size:500"`
	NewDate     time.Time  `json:"new_date" gorm:"not null"`
	ExpiredDate *time.Time `json:"expired_date,omitempty" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name for Redirect
func (Redirect) TableName() string {
	return "redirects"
}

// IsExpired reports whether the job behind the redirect is gone
func (r *Redirect) IsExpired() bool {
	return r.ExpiredDate != nil
}

// DestinationManipulation rewrites the destination URL for one BUID and view source
type DestinationManipulation struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BUID       int       `json:"buid" gorm:"column:buid;not null;index:idx_manipulation_lookup"`
	ViewSource int       `json:"view_source" gorm:"not null;index:idx_manipulation_lookup"`
	ActionType int       `json:"action_type" gorm:"not null;default:1"`
	Action     string    `json:"action" gorm:"not null;size:50"`
	Value1     string    `json:"value_1" gorm:"type:text"`
	Value2     string    `json:"value_2" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for DestinationManipulation
func (DestinationManipulation) TableName() string {
	return "destination_manipulations"
}

// ViewSource identifies where a click came from
type ViewSource struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name         string    `json:"name" gorm:"not null;size:255"`
	FriendlyName string    `json:"friendly_name" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the table name for ViewSource
func (ViewSource) TableName() string {
	return "view_sources"
}
