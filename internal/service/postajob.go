package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/logger"
	"myjobs/internal/mailer"
	"myjobs/internal/repository"
	"myjobs/internal/tasks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PostajobService sells job-posting products and manages the jobs posted against purchases
type PostajobService struct {
	products  repository.ProductRepositoryInterface
	purchases repository.PurchaseRepositoryInterface
	jobs      repository.PostedJobRepositoryInterface
	companies repository.CompanyRepositoryInterface
	units     repository.BusinessUnitRepositoryInterface
	redirects repository.RedirectRepositoryInterface
	sites     SiteResolver
	renderer  TemplateRenderer
	queue     tasks.Enqueuer
	validator *validator.Validate
	now       func() time.Time
}

// NewPostajobService creates a new postajob service. renderer may be nil to skip job-posted emails.
func NewPostajobService(
	products repository.ProductRepositoryInterface,
	purchases repository.PurchaseRepositoryInterface,
	jobs repository.PostedJobRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	units repository.BusinessUnitRepositoryInterface,
	redirects repository.RedirectRepositoryInterface,
	sites SiteResolver,
	renderer TemplateRenderer,
	queue tasks.Enqueuer,
	validator *validator.Validate,
) *PostajobService {
	return &PostajobService{
		products:  products,
		purchases: purchases,
		jobs:      jobs,
		companies: companies,
		units:     units,
		redirects: redirects,
		sites:     sites,
		renderer:  renderer,
		queue:     queue,
		validator: validator,
		now:       time.Now,
	}
}

// ProductRequest creates or updates a product
type ProductRequest struct {
	Name              string          `json:"name" validate:"required,max=255"`
	Cost              decimal.Decimal `json:"cost"`
	PostingWindowDays int             `json:"posting_window_days" validate:"required,min=1,max=3650"`
	MaxJobLengthDays  int             `json:"max_job_length_days" validate:"required,min=1,max=3650"`
	NumJobsAllowed    int             `json:"num_jobs_allowed" validate:"min=0"`
	IsDisplayed       *bool           `json:"is_displayed,omitempty"`
	RequiresApproval  bool            `json:"requires_approval"`
}

// PostJobRequest is a job entered against a purchase
type PostJobRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"required"`
	ApplyLink   string     `json:"apply_link" validate:"omitempty,url,max=2000"`
	ApplyEmail  string     `json:"apply_email" validate:"omitempty,email,max=255"`
	City        string     `json:"city" validate:"max=255"`
	State       string     `json:"state" validate:"max=255"`
	Country     string     `json:"country" validate:"max=255"`
	BUID        int        `json:"buid" validate:"min=0"`
	DateExpired *time.Time `json:"date_expired,omitempty"`
}

// PostedJobListResponse represents a paginated list of posted jobs
type PostedJobListResponse struct {
	Jobs     []models.PostedJob `json:"jobs"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// CreateProduct creates a product sold by the company
func (s *PostajobService) CreateProduct(companyID uuid.UUID, req *ProductRequest) (*models.Product, error) {
	if err := s.validateProduct(req); err != nil {
		return nil, err
	}
	product := &models.Product{CompanyID: companyID, IsDisplayed: true}
	applyProduct(product, req)
	if err := s.products.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// ListProducts lists every product the company sells
func (s *PostajobService) ListProducts(companyID uuid.UUID) ([]models.Product, error) {
	products, err := s.products.ListByCompany(companyID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves one of the company's products
func (s *PostajobService) GetProduct(companyID, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrProductNotFound, "get product")
	}
	if product.CompanyID != companyID {
		return nil, apperrors.ErrProductNotFound
	}
	return product, nil
}

// UpdateProduct updates a product. Existing purchases keep their snapshot.
func (s *PostajobService) UpdateProduct(companyID, id uuid.UUID, req *ProductRequest) (*models.Product, error) {
	if err := s.validateProduct(req); err != nil {
		return nil, err
	}
	product, err := s.GetProduct(companyID, id)
	if err != nil {
		return nil, err
	}
	applyProduct(product, req)
	if err := s.products.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct deletes a product
func (s *PostajobService) DeleteProduct(companyID, id uuid.UUID) error {
	if _, err := s.GetProduct(companyID, id); err != nil {
		return err
	}
	if err := s.products.Delete(id); err != nil {
		return notFound(err, apperrors.ErrProductNotFound, "delete product")
	}
	return nil
}

// ListSiteProducts lists the displayed products of the company behind a microsite
func (s *PostajobService) ListSiteProducts(ctx context.Context, domain string) ([]models.Product, error) {
	site, err := s.sites.GetSiteByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	if !site.PostajobEnabled {
		return []models.Product{}, nil
	}
	products, err := s.products.ListByCompany(site.CompanyID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// PurchaseProduct buys a product for the caller's company. The purchase snapshots the
// product's allowance and expires at the end of its posting window.
func (s *PostajobService) PurchaseProduct(companyID, productID uuid.UUID) (*models.Purchase, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrProductNotFound, "get product")
	}
	if !product.IsDisplayed && product.CompanyID != companyID {
		return nil, apperrors.ErrProductNotFound
	}

	now := s.now()
	purchase := &models.Purchase{
		ProductID:      product.ID,
		CompanyID:      companyID,
		PurchaseDate:   now,
		ExpirationDate: now.AddDate(0, 0, product.PostingWindowDays),
		NumJobsAllowed: product.NumJobsAllowed,
		JobsRemaining:  product.NumJobsAllowed,
		Paid:           true,
	}
	if err := s.purchases.Create(purchase); err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}
	purchase.Product = product
	return purchase, nil
}

// ListPurchases lists the company's purchases, newest first
func (s *PostajobService) ListPurchases(companyID uuid.UUID) ([]models.Purchase, error) {
	purchases, err := s.purchases.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// GetPurchase retrieves one of the company's purchases
func (s *PostajobService) GetPurchase(companyID, id uuid.UUID) (*models.Purchase, error) {
	purchase, err := s.purchases.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPurchaseNotFound, "get purchase")
	}
	if purchase.CompanyID != companyID {
		return nil, apperrors.ErrPurchaseNotFound
	}
	return purchase, nil
}

// PostJob posts a job against one of the caller's purchases. Jobs of products that do not
// require approval are published right away.
func (s *PostajobService) PostJob(ctx context.Context, caller auth.Caller, purchaseID uuid.UUID, req *PostJobRequest) (*models.PostedJob, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if (req.ApplyLink == "") == (req.ApplyEmail == "") {
		return nil, apperrors.ErrApplyMethodRequired
	}

	purchase, err := s.GetPurchase(caller.CompanyID, purchaseID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if purchase.IsExpired(now) {
		return nil, apperrors.ErrPurchaseExpired
	}
	if !purchase.Unlimited() && purchase.JobsRemaining <= 0 {
		return nil, apperrors.ErrNoJobsRemaining
	}
	product := purchase.Product
	if product == nil {
		if product, err = s.products.GetByID(purchase.ProductID); err != nil {
			return nil, notFound(err, apperrors.ErrProductNotFound, "get product")
		}
	}

	today := dayStart(now)
	latest := today.AddDate(0, 0, product.MaxJobLengthDays)
	expires := latest
	if req.DateExpired != nil {
		expires = dayStart(*req.DateExpired)
		if expires.After(latest) {
			return nil, apperrors.ErrJobLengthExceeded
		}
		if expires.Before(today) {
			return nil, apperrors.NewValidationError("date_expired", "must not be in the past")
		}
	}

	buid, err := s.jobBUID(product.CompanyID, req.BUID)
	if err != nil {
		return nil, err
	}

	job := &models.PostedJob{
		CompanyID:   caller.CompanyID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ApplyLink:   req.ApplyLink,
		ApplyEmail:  req.ApplyEmail,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		GUID:        NewGUID(),
		BUID:        buid,
		IsApproved:  !product.RequiresApproval,
		DateExpired: expires,
	}
	if err := s.jobs.CreateForPurchase(job, purchase.ID); err != nil {
		if errors.Is(err, apperrors.ErrNoJobsRemaining) {
			return nil, apperrors.ErrNoJobsRemaining
		}
		return nil, notFound(err, apperrors.ErrPurchaseNotFound, "create posted job")
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{"guid": job.GUID, "purchase_id": purchase.ID})
	if job.IsApproved {
		if err := s.publish(ctx, job); err != nil {
			return nil, err
		}
		log.Info("job posted and published")
	} else {
		log.Info("job posted, waiting for approval")
	}
	s.notifyPosted(ctx, caller, job)
	return job, nil
}

// ListJobs lists the jobs the company posted
func (s *PostajobService) ListJobs(companyID uuid.UUID, page, pageSize int) (*PostedJobListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	jobs, total, err := s.jobs.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posted jobs: %w", err)
	}
	return &PostedJobListResponse{Jobs: jobs, Total: total, Page: page, PageSize: pageSize}, nil
}

// ListPendingJobs lists jobs posted against the seller's products that wait for approval
func (s *PostajobService) ListPendingJobs(sellerID uuid.UUID) ([]models.PostedJob, error) {
	jobs, err := s.jobs.ListPendingApproval([]uuid.UUID{sellerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending jobs: %w", err)
	}
	return jobs, nil
}

// ApproveJob publishes a pending job. Only admins of the selling company may approve.
func (s *PostajobService) ApproveJob(ctx context.Context, caller auth.Caller, id uuid.UUID) (*models.PostedJob, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrNotCompanyAdmin
	}
	job, err := s.jobs.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPostedJobNotFound, "get posted job")
	}
	if job.PurchaseID == nil {
		return nil, apperrors.ErrPostedJobNotFound
	}
	purchase, err := s.purchases.GetByID(*job.PurchaseID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPurchaseNotFound, "get purchase")
	}
	if purchase.Product == nil || purchase.Product.CompanyID != caller.CompanyID {
		return nil, apperrors.ErrPostedJobNotFound
	}
	if job.IsApproved {
		return job, nil
	}

	job.IsApproved = true
	if err := s.jobs.Update(job); err != nil {
		return nil, fmt.Errorf("failed to approve job: %w", err)
	}
	if !job.IsExpired {
		if err := s.publish(ctx, job); err != nil {
			return nil, err
		}
	}
	logger.WithContext(ctx).WithField("guid", job.GUID).Info("posted job approved")
	return job, nil
}

// DeleteJob deletes one of the company's posted jobs and takes it off the index
func (s *PostajobService) DeleteJob(ctx context.Context, companyID, id uuid.UUID) error {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		return notFound(err, apperrors.ErrPostedJobNotFound, "get posted job")
	}
	if job.CompanyID != companyID {
		return apperrors.ErrPostedJobNotFound
	}
	if err := s.jobs.Delete(id); err != nil {
		return notFound(err, apperrors.ErrPostedJobNotFound, "delete posted job")
	}
	return s.unpublish(ctx, job.GUID)
}

// ExpireJobs flags posted jobs whose expiration day has passed and removes them from the index
func (s *PostajobService) ExpireJobs(ctx context.Context, now time.Time) (int, error) {
	jobs, err := s.jobs.ListExpirable(dayStart(now))
	if err != nil {
		return 0, fmt.Errorf("failed to list expirable jobs: %w", err)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	if err := s.jobs.MarkExpired(ids); err != nil {
		return 0, fmt.Errorf("failed to mark jobs expired: %w", err)
	}
	for _, j := range jobs {
		if err := s.unpublish(ctx, j.GUID); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("guid", j.GUID).Warn("failed to unpublish expired job")
		}
	}
	return len(jobs), nil
}

// publish creates the job's redirect and queues it for indexing
func (s *PostajobService) publish(ctx context.Context, job *models.PostedJob) error {
	redirect := &models.Redirect{
		GUID:    job.GUID,
		BUID:    job.BUID,
		URL:     job.ApplyURL(),
		Title:   job.Title,
		NewDate: s.now(),
	}
	if company, err := s.companies.GetByID(job.CompanyID); err == nil {
		redirect.CompanyName = company.Name
	}
	if _, err := s.redirects.Upsert(redirect); err != nil {
		return fmt.Errorf("failed to create redirect: %w", err)
	}
	if err := s.queue.Enqueue(ctx, tasks.IndexJob, tasks.IndexJobPayload{GUID: job.GUID}); err != nil {
		return fmt.Errorf("failed to enqueue index job: %w", err)
	}
	return nil
}

func (s *PostajobService) unpublish(ctx context.Context, guid string) error {
	if err := s.queue.Enqueue(ctx, tasks.RemoveJob, tasks.RemoveJobPayload{GUID: guid}); err != nil {
		return fmt.Errorf("failed to enqueue remove job: %w", err)
	}
	if err := s.redirects.Expire(guid, s.now()); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to expire redirect: %w", err)
	}
	return nil
}

func (s *PostajobService) notifyPosted(ctx context.Context, caller auth.Caller, job *models.PostedJob) {
	if s.renderer == nil || caller.Email == "" {
		return
	}
	log := logger.WithContext(ctx).WithField("guid", job.GUID)
	companyID := caller.CompanyID
	subject, html, err := s.renderer.RenderEvent(&companyID, models.EmailEventJobPosted, mailer.JobPostedData{
		Title: job.Title,
		GUID:  job.GUID,
		URL:   job.ApplyURL(),
	})
	if err != nil {
		log.WithError(err).Warn("failed to render job posted email")
		return
	}
	payload := tasks.SendEmailPayload{To: caller.Email, Subject: subject, HTML: html, Event: string(models.EmailEventJobPosted)}
	if err := s.queue.Enqueue(ctx, tasks.SendEmail, payload); err != nil {
		log.WithError(err).Warn("failed to enqueue job posted email")
	}
}

// jobBUID checks a requested BUID against the seller, or picks the seller's first one
func (s *PostajobService) jobBUID(sellerID uuid.UUID, requested int) (int, error) {
	owned, err := s.units.IDsForCompany(sellerID)
	if err != nil {
		return 0, fmt.Errorf("failed to list seller business units: %w", err)
	}
	if requested == 0 {
		if len(owned) == 0 {
			return 0, nil
		}
		return owned[0], nil
	}
	if !containsInt(owned, requested) {
		return 0, apperrors.NewValidationError("buid", "business unit is not sold by this product's company")
	}
	return requested, nil
}

func (s *PostajobService) validateProduct(req *ProductRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if req.Cost.IsNegative() {
		return apperrors.NewValidationError("cost", "must not be negative")
	}
	return nil
}

func applyProduct(p *models.Product, req *ProductRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.Cost = req.Cost.Round(2)
	p.PostingWindowDays = req.PostingWindowDays
	p.MaxJobLengthDays = req.MaxJobLengthDays
	p.NumJobsAllowed = req.NumJobsAllowed
	p.RequiresApproval = req.RequiresApproval
	if req.IsDisplayed != nil {
		p.IsDisplayed = *req.IsDisplayed
	}
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
