package models

import "time"

// ImportRecord audits one feed import in the QC database
type ImportRecord struct {
	BaseModel
	BUID       int          `json:"buid" gorm:"column:buid;not null;index"`
	Added      int          `json:"added"`
	Updated    int          `json:"updated"`
	Expired    int          `json:"expired"`
	Errors     int          `json:"errors"`
	Status     ImportStatus `json:"status" gorm:"type:varchar(10);not null"`
	Message    string       `json:"message" gorm:"type:text"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

// TableName returns the table name for ImportRecord
func (ImportRecord) TableName() string {
	return "import_records"
}
