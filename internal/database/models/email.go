package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplate customises an outgoing email for one event.
// A nil CompanyID marks a global template.
type EmailTemplate struct {
	BaseModel
	CompanyID  *uuid.UUID `json:"company_id,omitempty" gorm:"type:uuid;index"`
	Name       string     `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Event      EmailEvent `json:"event" gorm:"type:varchar(40);not null;index"`
	Subject    string     `json:"subject" gorm:"not null;size:255" validate:"required,max=255"`
	Header     string     `json:"header" gorm:"type:text"`
	Body       string     `json:"body" gorm:"type:text"`
	Footer     string     `json:"footer" gorm:"type:text"`
	DaysBefore int        `json:"days_before" gorm:"not null;default:0"`
}

// TableName returns the table name for EmailTemplate
func (EmailTemplate) TableName() string {
	return "email_templates"
}

// EmailLog records every send attempt
type EmailLog struct {
	BaseModel
	To      string      `json:"to" gorm:"not null;size:255;index"`
	Subject string      `json:"subject" gorm:"size:255"`
	Event   EmailEvent  `json:"event" gorm:"type:varchar(40)"`
	Status  EmailStatus `json:"status" gorm:"type:varchar(10);not null"`
	Error   string      `json:"error" gorm:"type:text"`
	SentAt  time.Time   `json:"sent_at" gorm:"not null"`
}

// TableName returns the table name for EmailLog
func (EmailLog) TableName() string {
	return "email_logs"
}
