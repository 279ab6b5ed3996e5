package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedSearch is a stored job query mailed to its owner on a schedule
type SavedSearch struct {
	BaseModel
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Label        string     `json:"label" gorm:"not null;size:60"`
	URL          string     `json:"url" gorm:"size:2000"`
	Query        string     `json:"query" gorm:"size:255"`
	Location     string     `json:"location" gorm:"size:255"`
	Email        string     `json:"email" gorm:"not null;size:255"`
	Frequency    Frequency  `json:"frequency" gorm:"type:varchar(1);not null;default:'W'"`
	DayOfWeek    int        `json:"day_of_week"`
	DayOfMonth   int        `json:"day_of_month"`
	IsActive     bool       `json:"is_active" gorm:"not null"`
	Notes        string     `json:"notes" gorm:"type:text"`
	SortBy       string     `json:"sort_by" gorm:"size:20;not null;default:'relevance'"`
	JobsPerEmail int        `json:"jobs_per_email" gorm:"not null;default:5"`
	LastSent     *time.Time `json:"last_sent,omitempty"`
	Unsubscribed bool       `json:"unsubscribed" gorm:"not null;default:false"`

	// Partner saved searches are created by a company on behalf of a contact
	CompanyID *uuid.UUID `json:"company_id,omitempty" gorm:"type:uuid;index"`
	PartnerID *uuid.UUID `json:"partner_id,omitempty" gorm:"type:uuid;index"`
	ContactID *uuid.UUID `json:"contact_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for SavedSearch
func (SavedSearch) TableName() string {
	return "saved_searches"
}

// IsDue reports whether a digest should be sent on now's date
func (s *SavedSearch) IsDue(now time.Time) bool {
	if !s.IsActive || s.Unsubscribed {
		return false
	}
	if s.LastSent != nil {
		ly, lm, ld := s.LastSent.In(now.Location()).Date()
		ny, nm, nd := now.Date()
		if ly == ny && lm == nm && ld == nd {
			return false
		}
	}

	switch s.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return weekday == s.DayOfWeek
	case FrequencyMonthly:
		day := now.Day()
		if day == s.DayOfMonth {
			return true
		}
		lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
		return day == lastDay && s.DayOfMonth > lastDay
	}
	return false
}

// SavedSearchLog records each digest run for a search
type SavedSearchLog struct {
	BaseModel
	SavedSearchID uuid.UUID `json:"saved_search_id" gorm:"type:uuid;not null;index"`
	WasSent       bool      `json:"was_sent"`
	Reason        string    `json:"reason" gorm:"size:255"`
	NewJobs       int       `json:"new_jobs"`
	SentAt        time.Time `json:"sent_at" gorm:"not null"`
}

// TableName returns the table name for SavedSearchLog
func (SavedSearchLog) TableName() string {
	return "saved_search_logs"
}
