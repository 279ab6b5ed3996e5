package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a job-posting package a company sells on its sites
type Product struct {
	BaseModel
	CompanyID         uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	Name              string          `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Cost              decimal.Decimal `json:"cost" gorm:"type:numeric(20,2);not null"`
	PostingWindowDays int             `json:"posting_window_days" gorm:"not null;default:30" validate:"min=1"`
	MaxJobLengthDays  int             `json:"max_job_length_days" gorm:"not null;default:30" validate:"min=1"`
	NumJobsAllowed    int             `json:"num_jobs_allowed" gorm:"not null" validate:"min=0"`
	IsDisplayed       bool            `json:"is_displayed" gorm:"not null"`
	RequiresApproval  bool            `json:"requires_approval" gorm:"not null;default:false"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "postajob_products"
}

// Unlimited reports whether the product allows any number of jobs
func (p *Product) Unlimited() bool {
	return p.NumJobsAllowed == 0
}

// Purchase is a company's instance of a product
type Purchase struct {
	BaseModel
	ProductID      uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	CompanyID      uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	PurchaseDate   time.Time `json:"purchase_date" gorm:"not null"`
	ExpirationDate time.Time `json:"expiration_date" gorm:"not null;index"`
	NumJobsAllowed int       `json:"num_jobs_allowed" gorm:"not null"`
	JobsRemaining  int       `json:"jobs_remaining" gorm:"not null"`
	Paid           bool      `json:"paid" gorm:"not null;default:false"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for Purchase
func (Purchase) TableName() string {
	return "postajob_purchases"
}

// IsExpired reports whether the posting window closed before the given day
func (p *Purchase) IsExpired(now time.Time) bool {
	return truncateDay(p.ExpirationDate).Before(truncateDay(now))
}

// Unlimited reports whether the purchase allows any number of jobs
func (p *Purchase) Unlimited() bool {
	return p.NumJobsAllowed == 0
}

// PostedJob is a job entered through the posting flow
type PostedJob struct {
	BaseModel
	CompanyID   uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	PurchaseID  *uuid.UUID `json:"purchase_id,omitempty" gorm:"type:uuid;index"`
	Title       string     `json:"title" gorm:"not null;size:255"`
	Description string     `json:"description" gorm:"type:text"`
	ApplyLink   string     `json:"apply_link" gorm:"size:2000"`
	ApplyEmail  string     `json:"apply_email" gorm:"size:255"`
	City        string     `json:"city" gorm:"size:255"`
	State       string     `json:"state" gorm:"size:255"`
	Country     string     `json:"country" gorm:"size:255"`
	GUID        string     `json:"guid" gorm:"uniqueIndex;not null;size:32"`
	BUID        int        `json:"buid" gorm:"column:buid;index"`
	IsApproved  bool       `json:"is_approved" gorm:"not null;default:false"`
	IsExpired   bool       `json:"is_expired" gorm:"not null;default:false;index"`
	DateExpired time.Time  `json:"date_expired" gorm:"not null;index"`
}

// TableName returns the table name for PostedJob
func (PostedJob) TableName() string {
	return "postajob_jobs"
}

// ApplyURL is where applicants are sent: the apply link, or a mailto for the apply email
func (j *PostedJob) ApplyURL() string {
	if j.ApplyLink != "" {
		return j.ApplyLink
	}
	return "mailto:" + j.ApplyEmail
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
