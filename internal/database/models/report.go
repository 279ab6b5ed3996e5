package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Report is a saved report definition with its last results
type Report struct {
	BaseModel
	CompanyID   uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	Name        string          `json:"name" gorm:"not null;size:255"`
	ReportType  string          `json:"report_type" gorm:"not null;size:50"`
	DataType    string          `json:"data_type" gorm:"not null;size:50"`
	Filters     json.RawMessage `json:"filters" gorm:"type:jsonb"`
	Values      json.RawMessage `json:"values" gorm:"type:jsonb"`
	OrderBy     string          `json:"order_by" gorm:"size:100"`
	Results     json.RawMessage `json:"-" gorm:"type:jsonb"`
	RowCount    int             `json:"row_count"`
	RunAt       *time.Time      `json:"run_at,omitempty"`
	CreatedByID *uuid.UUID      `json:"created_by_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Report
func (Report) TableName() string {
	return "reports"
}
