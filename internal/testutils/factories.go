package testutils

import (
	"fmt"
	"strings"
	"time"

	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	base := newBase()
	return &models.User{
		BaseModel:    base,
		Email:        "user-" + base.ID.String()[:8] + "@example.com",
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoO5QdPmxs1z2/2wYzrtzQF3gB5sZmM6i.",
		IsActive:     true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	u := f.Create()
	u.Email = email
	return u
}

// Staff creates a staff user
func (f *UserFactory) Staff() *models.User {
	u := f.Create()
	u.IsStaff = true
	return u
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with every feature enabled
func (f *CompanyFactory) Create() *models.Company {
	base := newBase()
	return &models.Company{
		BaseModel:     base,
		Name:          "Acme " + base.ID.String()[:6],
		Slug:          "acme-" + base.ID.String()[:8],
		Member:        true,
		ProductAccess: true,
		PostingAccess: true,
		PRMAccess:     true,
		ReportsAccess: true,
	}
}

// WithName sets a custom name and slug for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	c := f.Create()
	c.Name = name
	c.Slug = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return c
}

// SiteFactory provides methods to create test SeoSite data
type SiteFactory struct{}

// NewSiteFactory creates a new SiteFactory
func NewSiteFactory() *SiteFactory {
	return &SiteFactory{}
}

// WithCompany creates a test site owned by the company
func (f *SiteFactory) WithCompany(companyID uuid.UUID) *models.SeoSite {
	base := newBase()
	return &models.SeoSite{
		BaseModel:         base,
		Domain:            "jobs-" + base.ID.String()[:8] + ".example.com",
		Name:              "Test Jobs",
		CompanyID:         companyID,
		DefaultViewSource: 1,
	}
}

// PRMFactory provides methods to create partners, contacts and records
type PRMFactory struct{}

// NewPRMFactory creates a new PRMFactory
func NewPRMFactory() *PRMFactory {
	return &PRMFactory{}
}

// Partner creates an approved test partner
func (f *PRMFactory) Partner(companyID uuid.UUID, name string) *models.Partner {
	return &models.Partner{
		BaseModel:      newBase(),
		CompanyID:      companyID,
		Name:           name,
		URI:            "https://partner.example.org",
		ApprovalStatus: models.ApprovalApproved,
	}
}

// Contact creates a test contact at a partner
func (f *PRMFactory) Contact(partnerID uuid.UUID, name string) *models.Contact {
	return &models.Contact{
		BaseModel: newBase(),
		PartnerID: partnerID,
		Name:      name,
		Email:     strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@partner.example.org",
		Phone:     "555-0100",
	}
}

// Record creates a test email record at a partner
func (f *PRMFactory) Record(partnerID uuid.UUID, contactID *uuid.UUID, at time.Time) *models.ContactRecord {
	return &models.ContactRecord{
		BaseModel:    newBase(),
		PartnerID:    partnerID,
		ContactID:    contactID,
		ContactType:  models.ContactTypeEmail,
		ContactEmail: "someone@partner.example.org",
		Subject:      "Follow up",
		DateTime:     at,
	}
}

// PostajobFactory provides methods to create products, purchases and jobs
type PostajobFactory struct{}

// NewPostajobFactory creates a new PostajobFactory
func NewPostajobFactory() *PostajobFactory {
	return &PostajobFactory{}
}

// Product creates a test product allowing the given number of jobs
func (f *PostajobFactory) Product(companyID uuid.UUID, jobs int) *models.Product {
	return &models.Product{
		BaseModel:         newBase(),
		CompanyID:         companyID,
		Name:              fmt.Sprintf("%d job package", jobs),
		Cost:              decimal.RequireFromString("99.00"),
		PostingWindowDays: 30,
		MaxJobLengthDays:  30,
		NumJobsAllowed:    jobs,
		IsDisplayed:       true,
	}
}

// Purchase creates a test purchase of the product made now
func (f *PostajobFactory) Purchase(product *models.Product, buyerID uuid.UUID) *models.Purchase {
	now := time.Now()
	return &models.Purchase{
		BaseModel:      newBase(),
		ProductID:      product.ID,
		CompanyID:      buyerID,
		PurchaseDate:   now,
		ExpirationDate: now.AddDate(0, 0, product.PostingWindowDays),
		NumJobsAllowed: product.NumJobsAllowed,
		JobsRemaining:  product.NumJobsAllowed,
		Paid:           true,
	}
}

// Job creates a test posted job expiring in a week
func (f *PostajobFactory) Job(companyID uuid.UUID) *models.PostedJob {
	base := newBase()
	return &models.PostedJob{
		BaseModel:   base,
		CompanyID:   companyID,
		Title:       "Welder",
		Description: "Welds things",
		ApplyLink:   "https://acme.example.com/apply",
		City:        "Indianapolis",
		State:       "IN",
		Country:     "USA",
		GUID:        strings.ToUpper(strings.ReplaceAll(base.ID.String(), "-", "")),
		DateExpired: time.Now().AddDate(0, 0, 7),
	}
}

// RedirectFactory provides methods to create redirects
type RedirectFactory struct{}

// NewRedirectFactory creates a new RedirectFactory
func NewRedirectFactory() *RedirectFactory {
	return &RedirectFactory{}
}

// Create creates a live test redirect for a business unit
func (f *RedirectFactory) Create(buid int) *models.Redirect {
	return &models.Redirect{
		GUID:        strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")),
		BUID:        buid,
		URL:         "https://careers.example.com/job/1",
		Title:       "Welder",
		CompanyName: "Acme",
		NewDate:     time.Now(),
	}
}

// FactorySet contains all factories for easy access in tests
type FactorySet struct {
	User     *UserFactory
	Company  *CompanyFactory
	Site     *SiteFactory
	PRM      *PRMFactory
	Postajob *PostajobFactory
	Redirect *RedirectFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Company:  NewCompanyFactory(),
		Site:     NewSiteFactory(),
		PRM:      NewPRMFactory(),
		Postajob: NewPostajobFactory(),
		Redirect: NewRedirectFactory(),
	}
}
