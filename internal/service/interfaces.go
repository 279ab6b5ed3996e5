package service

import (
	"context"
	"io"
	"time"

	"myjobs/internal/analytics"
	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	"myjobs/internal/reporting"
	"myjobs/internal/search"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SiteResolver finds the microsite serving a host name
type SiteResolver interface {
	GetSiteByDomain(ctx context.Context, domain string) (*models.SeoSite, error)
}

// TemplateRenderer renders the email a company sends for an event
type TemplateRenderer interface {
	RenderEvent(companyID *uuid.UUID, event models.EmailEvent, data interface{}) (subject, html string, err error)
}

// UnsubscribeTokens signs and verifies digest unsubscribe links
type UnsubscribeTokens interface {
	GenerateUnsubscribeToken(searchID uuid.UUID) (string, error)
	ValidateUnsubscribeToken(token string) (uuid.UUID, error)
}

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	Register(req *RegisterRequest) (*UserResponse, error)
	Login(req *LoginRequest) (*LoginResponse, error)
	Me(userID uuid.UUID) (*MeResponse, error)
	ListNames(userID uuid.UUID) ([]models.Name, error)
	CreateName(userID uuid.UUID, req *NameRequest) (*models.Name, error)
	UpdateName(userID, id uuid.UUID, req *NameRequest) (*models.Name, error)
	DeleteName(userID, id uuid.UUID) error
	ListAddresses(userID uuid.UUID) ([]models.Address, error)
	CreateAddress(userID uuid.UUID, req *AddressRequest) (*models.Address, error)
	UpdateAddress(userID, id uuid.UUID, req *AddressRequest) (*models.Address, error)
	DeleteAddress(userID, id uuid.UUID) error
}

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	CreateCompany(req *CreateCompanyRequest) (*models.Company, error)
	GetCompany(id uuid.UUID) (*models.Company, error)
	ListCompanies(page, pageSize int) (*CompanyListResponse, error)
	UpdateCompany(id uuid.UUID, req *UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(id uuid.UUID) error
	ListCompanyUsers(companyID uuid.UUID) ([]CompanyUserResponse, error)
	AddCompanyUser(companyID uuid.UUID, req *AddCompanyUserRequest) (*CompanyUserResponse, error)
	RemoveCompanyUser(companyID, userID uuid.UUID) error
	CreateBusinessUnit(req *CreateBusinessUnitRequest) (*models.BusinessUnit, error)
	ListBusinessUnits(page, pageSize int) (*BusinessUnitListResponse, error)
	CompanyBusinessUnits(companyID uuid.UUID) ([]models.BusinessUnit, error)
	AssignBusinessUnit(id int, companyID *uuid.UUID) error
}

// SiteServiceInterface defines the interface for microsite service
type SiteServiceInterface interface {
	CreateSite(ctx context.Context, companyID uuid.UUID, req *SiteRequest) (*models.SeoSite, error)
	ListSites(companyID uuid.UUID) ([]models.SeoSite, error)
	GetSite(companyID, id uuid.UUID) (*models.SeoSite, error)
	UpdateSite(ctx context.Context, companyID, id uuid.UUID, req *SiteRequest) (*models.SeoSite, error)
	DeleteSite(ctx context.Context, companyID, id uuid.UUID) error
	GetSiteByDomain(ctx context.Context, domain string) (*models.SeoSite, error)
	SearchJobs(ctx context.Context, domain string, req *JobSearchRequest) (*search.Results, error)
	GetJob(ctx context.Context, domain, guid string) (*search.JobDocument, error)
}

// ImportServiceInterface defines the interface for feed import service
type ImportServiceInterface interface {
	ImportFeed(ctx context.Context, buid int, r io.Reader) (*ImportSummary, error)
	ListImports(buid, limit int) ([]models.ImportRecord, error)
}

// PRMServiceInterface defines the interface for partner relationship service
type PRMServiceInterface interface {
	ListTags(companyID uuid.UUID, prefix string) ([]models.Tag, error)
	CreatePartner(caller auth.Caller, req *PartnerRequest) (*models.Partner, error)
	ListPartners(companyID uuid.UUID, q *PartnerQuery) (*PartnerListResponse, error)
	GetPartner(companyID, id uuid.UUID) (*models.Partner, error)
	UpdatePartner(caller auth.Caller, id uuid.UUID, req *PartnerRequest) (*models.Partner, error)
	SetPartnerApproval(caller auth.Caller, id uuid.UUID, status models.ApprovalStatus) (*models.Partner, error)
	ArchivePartner(caller auth.Caller, id uuid.UUID) error
	RestorePartner(caller auth.Caller, id uuid.UUID) error
	CreateContact(caller auth.Caller, partnerID uuid.UUID, req *ContactRequest) (*models.Contact, error)
	ListContacts(companyID, partnerID uuid.UUID, archived bool) ([]models.Contact, error)
	GetContact(companyID, partnerID, id uuid.UUID) (*models.Contact, error)
	UpdateContact(caller auth.Caller, partnerID, id uuid.UUID, req *ContactRequest) (*models.Contact, error)
	ArchiveContact(caller auth.Caller, partnerID, id uuid.UUID) error
	RestoreContact(caller auth.Caller, partnerID, id uuid.UUID) error
	CreateRecord(caller auth.Caller, partnerID uuid.UUID, req *ContactRecordRequest) (*models.ContactRecord, error)
	ListRecords(companyID, partnerID uuid.UUID, q *ContactRecordQuery) (*ContactRecordListResponse, error)
	GetRecord(companyID, partnerID, id uuid.UUID) (*models.ContactRecord, error)
	UpdateRecord(caller auth.Caller, partnerID, id uuid.UUID, req *ContactRecordRequest) (*models.ContactRecord, error)
	ArchiveRecord(caller auth.Caller, partnerID, id uuid.UUID) error
	ListLog(companyID, partnerID uuid.UUID, page, pageSize int) (*ContactLogListResponse, error)
}

// PostajobServiceInterface defines the interface for job posting service
type PostajobServiceInterface interface {
	CreateProduct(companyID uuid.UUID, req *ProductRequest) (*models.Product, error)
	ListProducts(companyID uuid.UUID) ([]models.Product, error)
	GetProduct(companyID, id uuid.UUID) (*models.Product, error)
	UpdateProduct(companyID, id uuid.UUID, req *ProductRequest) (*models.Product, error)
	DeleteProduct(companyID, id uuid.UUID) error
	ListSiteProducts(ctx context.Context, domain string) ([]models.Product, error)
	PurchaseProduct(companyID, productID uuid.UUID) (*models.Purchase, error)
	ListPurchases(companyID uuid.UUID) ([]models.Purchase, error)
	GetPurchase(companyID, id uuid.UUID) (*models.Purchase, error)
	PostJob(ctx context.Context, caller auth.Caller, purchaseID uuid.UUID, req *PostJobRequest) (*models.PostedJob, error)
	ListJobs(companyID uuid.UUID, page, pageSize int) (*PostedJobListResponse, error)
	ListPendingJobs(sellerID uuid.UUID) ([]models.PostedJob, error)
	ApproveJob(ctx context.Context, caller auth.Caller, id uuid.UUID) (*models.PostedJob, error)
	DeleteJob(ctx context.Context, companyID, id uuid.UUID) error
	ExpireJobs(ctx context.Context, now time.Time) (int, error)
}

// EmailServiceInterface defines the interface for email template service
type EmailServiceInterface interface {
	CreateTemplate(companyID *uuid.UUID, req *EmailTemplateRequest) (*models.EmailTemplate, error)
	ListTemplates(companyID uuid.UUID) ([]models.EmailTemplate, error)
	GetTemplate(companyID uuid.UUID, id uuid.UUID) (*models.EmailTemplate, error)
	UpdateTemplate(companyID *uuid.UUID, id uuid.UUID, req *EmailTemplateRequest) (*models.EmailTemplate, error)
	DeleteTemplate(companyID *uuid.UUID, id uuid.UUID) error
	ResolveTemplate(companyID *uuid.UUID, event models.EmailEvent) (*models.EmailTemplate, error)
	RenderEvent(companyID *uuid.UUID, event models.EmailEvent, data interface{}) (string, string, error)
	ListEmailLogs(to string, page, pageSize int) (*EmailLogListResponse, error)
	SendPurchaseExpiryNotices(ctx context.Context, now time.Time) (int, error)
}

// SavedSearchServiceInterface defines the interface for saved search service
type SavedSearchServiceInterface interface {
	CreateSearch(userID uuid.UUID, userEmail string, req *SavedSearchRequest) (*models.SavedSearch, error)
	ListSearches(userID uuid.UUID) ([]models.SavedSearch, error)
	GetSearch(userID, id uuid.UUID) (*models.SavedSearch, error)
	UpdateSearch(userID, id uuid.UUID, req *SavedSearchRequest) (*models.SavedSearch, error)
	DeleteSearch(userID, id uuid.UUID) error
	CreatePartnerSearch(caller auth.Caller, partnerID uuid.UUID, req *PartnerSearchRequest) (*models.SavedSearch, error)
	ListPartnerSearches(companyID, partnerID uuid.UUID) ([]models.SavedSearch, error)
	DeletePartnerSearch(companyID, partnerID, id uuid.UUID) error
	Preview(ctx context.Context, userID, id uuid.UUID) (*search.Results, error)
	ListLogs(userID, id uuid.UUID, limit int) ([]models.SavedSearchLog, error)
	SendDigests(ctx context.Context, now time.Time) (int, error)
	Unsubscribe(token string) (*models.SavedSearch, error)
}

// ReportServiceInterface defines the interface for dynamic report service
type ReportServiceInterface interface {
	ListReportTypes() []reporting.ReportType
	ListDataTypes(reportType string) ([]reporting.DataType, error)
	CreateReport(ctx context.Context, caller auth.Caller, req *ReportRequest) (*ReportResponse, error)
	ListReports(companyID uuid.UUID, page, pageSize int) (*ReportListResponse, error)
	GetReport(companyID, id uuid.UUID) (*ReportResponse, error)
	RerunReport(ctx context.Context, companyID, id uuid.UUID) (*ReportResponse, error)
	DeleteReport(companyID, id uuid.UUID) error
	Download(companyID, id uuid.UUID, format string, values []string, orderBy string, w io.Writer) (reporting.PresentationType, error)
	Help(ctx context.Context, companyID uuid.UUID, dataType, field, partial string) ([]string, error)
}

// RedirectServiceInterface defines the interface for redirect service
type RedirectServiceInterface interface {
	Resolve(ctx context.Context, req ResolveRequest) (*Resolution, *ExpiredJob, error)
	CreateManipulation(req *ManipulationRequest) (*models.DestinationManipulation, error)
	ListManipulations(buid, page, pageSize int) (*ManipulationListResponse, error)
	GetManipulation(id uint) (*models.DestinationManipulation, error)
	UpdateManipulation(id uint, req *ManipulationRequest) (*models.DestinationManipulation, error)
	DeleteManipulation(id uint) error
	ListViewSources() ([]models.ViewSource, error)
	CreateViewSource(req *ViewSourceRequest) (*models.ViewSource, error)
	KnownActions() []string
}

// AnalyticsServiceInterface defines the interface for analytics service
type AnalyticsServiceInterface interface {
	RecordClick(ctx context.Context, click analytics.Click) error
	ClicksOverTime(ctx context.Context, companyID uuid.UUID, q *AnalyticsQuery) ([]analytics.TimeBucket, error)
	ClicksByViewSource(ctx context.Context, companyID uuid.UUID, q *AnalyticsQuery) ([]analytics.ViewSourceCount, error)
	TopJobs(ctx context.Context, companyID uuid.UUID, q *AnalyticsQuery) ([]analytics.JobCount, error)
}

// AutomationServiceInterface defines the interface for bulk source code service
type AutomationServiceInterface interface {
	ImportSourceCodes(r io.Reader) ([]SourceCodeResult, error)
}

var (
	_ AccountServiceInterface     = (*AccountService)(nil)
	_ CompanyServiceInterface     = (*CompanyService)(nil)
	_ SiteServiceInterface        = (*SiteService)(nil)
	_ ImportServiceInterface      = (*ImportService)(nil)
	_ PRMServiceInterface         = (*PRMService)(nil)
	_ PostajobServiceInterface    = (*PostajobService)(nil)
	_ EmailServiceInterface       = (*EmailService)(nil)
	_ SavedSearchServiceInterface = (*SavedSearchService)(nil)
	_ ReportServiceInterface      = (*ReportService)(nil)
	_ RedirectServiceInterface    = (*RedirectService)(nil)
	_ AnalyticsServiceInterface   = (*AnalyticsService)(nil)
	_ AutomationServiceInterface  = (*AutomationService)(nil)
	_ TemplateRenderer            = (*EmailService)(nil)
	_ SiteResolver                = (*SiteService)(nil)
	_ UnsubscribeTokens           = (*auth.AuthService)(nil)
)
