package repository

import (
	"context"
	"time"

	"myjobs/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetWithCompanies(id uuid.UUID) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	UpdateLastLogin(id uuid.UUID, at time.Time) error
}

// ProfileRepositoryInterface defines the interface for profile unit operations
type ProfileRepositoryInterface interface {
	ListNames(userID uuid.UUID) ([]models.Name, error)
	GetName(userID, id uuid.UUID) (*models.Name, error)
	SaveName(name *models.Name) error
	DeleteName(userID, id uuid.UUID) error
	ListAddresses(userID uuid.UUID) ([]models.Address, error)
	GetAddress(userID, id uuid.UUID) (*models.Address, error)
	SaveAddress(address *models.Address) error
	DeleteAddress(userID, id uuid.UUID) error
}

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetBySlug(slug string) (*models.Company, error)
	GetAll(limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
	Delete(id uuid.UUID) error
	AddUser(cu *models.CompanyUser) error
	RemoveUser(companyID, userID uuid.UUID) error
	GetMembership(companyID, userID uuid.UUID) (*models.CompanyUser, error)
	ListUsers(companyID uuid.UUID) ([]models.CompanyUser, error)
	ListForUser(userID uuid.UUID) ([]models.CompanyUser, error)
}

// BusinessUnitRepositoryInterface defines the interface for business unit operations
type BusinessUnitRepositoryInterface interface {
	Create(bu *models.BusinessUnit) error
	GetByID(id int) (*models.BusinessUnit, error)
	GetAll(limit, offset int) ([]models.BusinessUnit, int64, error)
	GetByCompanyID(companyID uuid.UUID) ([]models.BusinessUnit, error)
	IDsForCompany(companyID uuid.UUID) ([]int, error)
	AssignToCompany(id int, companyID *uuid.UUID) error
}

// SiteRepositoryInterface defines the interface for microsite operations
type SiteRepositoryInterface interface {
	Create(site *models.SeoSite) error
	GetByID(id uuid.UUID) (*models.SeoSite, error)
	GetByDomain(domain string) (*models.SeoSite, error)
	GetByCompanyID(companyID uuid.UUID) ([]models.SeoSite, error)
	Update(site *models.SeoSite) error
	Delete(id uuid.UUID) error
	SetBusinessUnits(site *models.SeoSite, buids []int) error
}

// TagRepositoryInterface defines the interface for PRM tag operations
type TagRepositoryInterface interface {
	List(companyID uuid.UUID, prefix string) ([]models.Tag, error)
	GetOrCreate(companyID uuid.UUID, names []string) ([]models.Tag, error)
}

// PartnerFilter narrows a partner listing
type PartnerFilter struct {
	CompanyID uuid.UUID
	Query     string
	Tags      []string
	Archived  bool
	SortBy    string
	Limit     int
	Offset    int
}

// PartnerRepositoryInterface defines the interface for partner operations
type PartnerRepositoryInterface interface {
	Create(partner *models.Partner) error
	CreateWithPrimaryContact(partner *models.Partner, contact *models.Contact) error
	GetByID(companyID, id uuid.UUID) (*models.Partner, error)
	List(filter PartnerFilter) ([]models.Partner, int64, error)
	Update(partner *models.Partner) error
	ReplaceTags(partner *models.Partner, tags []models.Tag) error
	SetArchived(companyID, id uuid.UUID, at *time.Time) error
	ClearPrimaryContact(partnerID, contactID uuid.UUID) error
}

// ContactRepositoryInterface defines the interface for contact operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(partnerID, id uuid.UUID) (*models.Contact, error)
	ListByPartner(partnerID uuid.UUID, archived bool) ([]models.Contact, error)
	Update(contact *models.Contact) error
	ReplaceTags(contact *models.Contact, tags []models.Tag) error
	SetArchived(partnerID, id uuid.UUID, at *time.Time) error
}

// ContactRecordFilter narrows a contact record listing
type ContactRecordFilter struct {
	PartnerID   uuid.UUID
	ContactID   *uuid.UUID
	ContactType string
	From        *time.Time
	To          *time.Time
	Archived    bool
	Limit       int
	Offset      int
}

// ContactRecordRepositoryInterface defines the interface for communication record operations
type ContactRecordRepositoryInterface interface {
	Create(record *models.ContactRecord) error
	GetByID(partnerID, id uuid.UUID) (*models.ContactRecord, error)
	List(filter ContactRecordFilter) ([]models.ContactRecord, int64, error)
	Update(record *models.ContactRecord) error
	ReplaceTags(record *models.ContactRecord, tags []models.Tag) error
	SetArchived(partnerID, id uuid.UUID, at *time.Time) error
}

// ContactLogRepositoryInterface defines the interface for the PRM activity log
type ContactLogRepositoryInterface interface {
	Create(entry *models.ContactLogEntry) error
	ListByPartner(companyID, partnerID uuid.UUID, limit, offset int) ([]models.ContactLogEntry, int64, error)
}

// ProductRepositoryInterface defines the interface for product operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByID(id uuid.UUID) (*models.Product, error)
	ListByCompany(companyID uuid.UUID, displayedOnly bool) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uuid.UUID) error
}

// PurchaseRepositoryInterface defines the interface for purchase operations
type PurchaseRepositoryInterface interface {
	Create(purchase *models.Purchase) error
	GetByID(id uuid.UUID) (*models.Purchase, error)
	ListByCompany(companyID uuid.UUID) ([]models.Purchase, error)
	ExpiringOn(day time.Time) ([]models.Purchase, error)
}

// PostedJobRepositoryInterface defines the interface for posted job operations
type PostedJobRepositoryInterface interface {
	CreateForPurchase(job *models.PostedJob, purchaseID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.PostedJob, error)
	GetByGUID(guid string) (*models.PostedJob, error)
	ListByCompany(companyID uuid.UUID, limit, offset int) ([]models.PostedJob, int64, error)
	ListPendingApproval(companyIDs []uuid.UUID) ([]models.PostedJob, error)
	Update(job *models.PostedJob) error
	Delete(id uuid.UUID) error
	ListExpirable(before time.Time) ([]models.PostedJob, error)
	MarkExpired(ids []uuid.UUID) error
}

// SavedSearchRepositoryInterface defines the interface for saved search operations
type SavedSearchRepositoryInterface interface {
	Create(search *models.SavedSearch) error
	GetByID(id uuid.UUID) (*models.SavedSearch, error)
	ListByUser(userID uuid.UUID) ([]models.SavedSearch, error)
	ListByPartner(companyID, partnerID uuid.UUID) ([]models.SavedSearch, error)
	ListActive() ([]models.SavedSearch, error)
	Update(search *models.SavedSearch) error
	Delete(id uuid.UUID) error
	CreateLog(entry *models.SavedSearchLog) error
	ListLogs(searchID uuid.UUID, limit int) ([]models.SavedSearchLog, error)
}

// EmailTemplateRepositoryInterface defines the interface for email template operations
type EmailTemplateRepositoryInterface interface {
	Create(tpl *models.EmailTemplate) error
	GetByID(id uuid.UUID) (*models.EmailTemplate, error)
	ListForCompany(companyID uuid.UUID) ([]models.EmailTemplate, error)
	FindForEvent(companyID *uuid.UUID, event models.EmailEvent) (*models.EmailTemplate, error)
	DaysBeforeFor(event models.EmailEvent) ([]int, error)
	Update(tpl *models.EmailTemplate) error
	Delete(id uuid.UUID) error
}

// EmailLogRepositoryInterface defines the interface for email log operations
type EmailLogRepositoryInterface interface {
	Create(entry *models.EmailLog) error
	List(to string, limit, offset int) ([]models.EmailLog, int64, error)
}

// ReportRepositoryInterface defines the interface for report operations
type ReportRepositoryInterface interface {
	Create(report *models.Report) error
	GetByID(companyID, id uuid.UUID) (*models.Report, error)
	ListByCompany(companyID uuid.UUID, limit, offset int) ([]models.Report, int64, error)
	Update(report *models.Report) error
	Delete(companyID, id uuid.UUID) error
	Execute(ctx context.Context, sql string, args []interface{}) ([]map[string]interface{}, error)
}

// RedirectRepositoryInterface defines the interface for redirect operations
type RedirectRepositoryInterface interface {
	Get(guid string) (*models.Redirect, error)
	Upsert(redirect *models.Redirect) (created bool, err error)
	ActiveGUIDs(buid int) ([]string, error)
	ExpireMissing(buid int, keep []string, at time.Time) (int64, error)
	Expire(guid string, at time.Time) error
}

// DestinationManipulationRepositoryInterface defines the interface for manipulation operations
type DestinationManipulationRepositoryInterface interface {
	Create(m *models.DestinationManipulation) error
	GetByID(id uint) (*models.DestinationManipulation, error)
	List(buid int, limit, offset int) ([]models.DestinationManipulation, int64, error)
	ListFor(buid, viewSource int) ([]models.DestinationManipulation, error)
	FindByKey(buid, viewSource, actionType int, action string) (*models.DestinationManipulation, error)
	Update(m *models.DestinationManipulation) error
	Delete(id uint) error
}

// ViewSourceRepositoryInterface defines the interface for view source operations
type ViewSourceRepositoryInterface interface {
	Create(vs *models.ViewSource) error
	GetByID(id int) (*models.ViewSource, error)
	List() ([]models.ViewSource, error)
}

// ImportRecordRepositoryInterface defines the interface for feed import audits
type ImportRecordRepositoryInterface interface {
	Create(record *models.ImportRecord) error
	ListByBUID(buid int, limit int) ([]models.ImportRecord, error)
}
