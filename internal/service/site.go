package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"myjobs/internal/cache"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/logger"
	"myjobs/internal/repository"
	"myjobs/internal/search"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const siteCachePrefix = "site:domain:"

// SiteService handles microsites and their public job search
type SiteService struct {
	repo      repository.SiteRepositoryInterface
	units     repository.BusinessUnitRepositoryInterface
	cache     cache.Cache
	cacheTTL  time.Duration
	index     search.Index
	validator *validator.Validate
}

// NewSiteService creates a new site service. index may be nil when search is not configured.
func NewSiteService(repo repository.SiteRepositoryInterface, units repository.BusinessUnitRepositoryInterface, c cache.Cache, cacheTTL time.Duration, index search.Index, validator *validator.Validate) *SiteService {
	return &SiteService{
		repo:      repo,
		units:     units,
		cache:     c,
		cacheTTL:  cacheTTL,
		index:     index,
		validator: validator,
	}
}

// SiteRequest creates or updates a microsite
type SiteRequest struct {
	Domain            string `json:"domain" validate:"required,hostname,max=255"`
	Name              string `json:"name" validate:"required,max=200"`
	DefaultViewSource int    `json:"default_view_source" validate:"min=0"`
	PostajobEnabled   bool   `json:"postajob_enabled"`
	BusinessUnits     []int  `json:"business_units" validate:"dive,min=1"`
}

// JobSearchRequest is a public microsite search
type JobSearchRequest struct {
	Q        string `form:"q" json:"q"`
	Location string `form:"location" json:"location"`
	Sort     string `form:"sort" json:"sort" validate:"omitempty,oneof=relevance date"`
	Page     int    `form:"page" json:"page"`
	PerPage  int    `form:"per_page" json:"per_page"`
}

// CreateSite creates a microsite for the company
func (s *SiteService) CreateSite(ctx context.Context, companyID uuid.UUID, req *SiteRequest) (*models.SeoSite, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	domain := strings.ToLower(req.Domain)
	existing, err := s.repo.GetByDomain(domain)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing site: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSiteExists
	}
	if err := s.checkUnits(companyID, req.BusinessUnits); err != nil {
		return nil, err
	}

	site := &models.SeoSite{
		Domain:            domain,
		Name:              req.Name,
		CompanyID:         companyID,
		DefaultViewSource: req.DefaultViewSource,
		PostajobEnabled:   req.PostajobEnabled,
	}
	if err := s.repo.Create(site); err != nil {
		return nil, fmt.Errorf("failed to create site: %w", err)
	}
	if err := s.repo.SetBusinessUnits(site, req.BusinessUnits); err != nil {
		return nil, fmt.Errorf("failed to set site business units: %w", err)
	}
	s.invalidate(ctx, domain)
	return site, nil
}

// ListSites lists the company's microsites
func (s *SiteService) ListSites(companyID uuid.UUID) ([]models.SeoSite, error) {
	sites, err := s.repo.GetByCompanyID(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	return sites, nil
}

// GetSite retrieves one of the company's microsites
func (s *SiteService) GetSite(companyID, id uuid.UUID) (*models.SeoSite, error) {
	site, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSiteNotFound, "get site")
	}
	if site.CompanyID != companyID {
		return nil, apperrors.ErrSiteNotFound
	}
	return site, nil
}

// UpdateSite updates a microsite and drops its cached lookup
func (s *SiteService) UpdateSite(ctx context.Context, companyID, id uuid.UUID, req *SiteRequest) (*models.SeoSite, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	site, err := s.GetSite(companyID, id)
	if err != nil {
		return nil, err
	}

	domain := strings.ToLower(req.Domain)
	if domain != site.Domain {
		other, err := s.repo.GetByDomain(domain)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing site: %w", err)
		}
		if other != nil {
			return nil, apperrors.ErrSiteExists
		}
	}
	if err := s.checkUnits(companyID, req.BusinessUnits); err != nil {
		return nil, err
	}

	oldDomain := site.Domain
	site.Domain = domain
	site.Name = req.Name
	site.DefaultViewSource = req.DefaultViewSource
	site.PostajobEnabled = req.PostajobEnabled
	if err := s.repo.Update(site); err != nil {
		return nil, fmt.Errorf("failed to update site: %w", err)
	}
	if err := s.repo.SetBusinessUnits(site, req.BusinessUnits); err != nil {
		return nil, fmt.Errorf("failed to set site business units: %w", err)
	}

	s.invalidate(ctx, oldDomain)
	s.invalidate(ctx, domain)
	return site, nil
}

// DeleteSite deletes a microsite
func (s *SiteService) DeleteSite(ctx context.Context, companyID, id uuid.UUID) error {
	site, err := s.GetSite(companyID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(site.ID); err != nil {
		return notFound(err, apperrors.ErrSiteNotFound, "delete site")
	}
	s.invalidate(ctx, site.Domain)
	return nil
}

// GetSiteByDomain resolves a microsite by its host name through the shared cache
func (s *SiteService) GetSiteByDomain(ctx context.Context, domain string) (*models.SeoSite, error) {
	domain = normalizeHost(domain)
	key := siteCachePrefix + domain

	if s.cache != nil {
		var cached models.SeoSite
		err := cache.GetJSON(ctx, s.cache, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			logger.WithContext(ctx).WithError(err).WithField("domain", domain).Warn("site cache read failed")
		}
	}

	site, err := s.repo.GetByDomain(domain)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSiteNotFound, "get site")
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, key, site, s.cacheTTL); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("domain", domain).Warn("site cache write failed")
		}
	}
	return site, nil
}

// SearchJobs searches the job index restricted to the site's business units
func (s *SiteService) SearchJobs(ctx context.Context, domain string, req *JobSearchRequest) (*search.Results, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if s.index == nil {
		return nil, apperrors.ErrSearchNotConfigured
	}

	site, err := s.GetSiteByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	buids := site.BUIDs()
	if len(buids) == 0 {
		return &search.Results{Page: 1, Hits: []search.JobDocument{}}, nil
	}

	results, err := s.index.Search(ctx, search.Query{
		Q:          req.Q,
		Location:   req.Location,
		BUIDs:      buids,
		SortByDate: req.Sort == "date",
		Page:       req.Page,
		PerPage:    req.PerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return results, nil
}

// GetJob returns one indexed job when it belongs to one of the site's business units
func (s *SiteService) GetJob(ctx context.Context, domain, guid string) (*search.JobDocument, error) {
	if s.index == nil {
		return nil, apperrors.ErrSearchNotConfigured
	}

	site, err := s.GetSiteByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}

	doc, err := s.index.Get(ctx, strings.ToUpper(guid))
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if doc == nil || !containsInt(site.BUIDs(), doc.BUID) {
		return nil, apperrors.ErrJobNotFound
	}
	return doc, nil
}

func (s *SiteService) checkUnits(companyID uuid.UUID, buids []int) error {
	if len(buids) == 0 {
		return nil
	}
	owned, err := s.units.IDsForCompany(companyID)
	if err != nil {
		return fmt.Errorf("failed to list company business units: %w", err)
	}
	for _, id := range buids {
		if !containsInt(owned, id) {
			return apperrors.NewValidationError("business_units", fmt.Sprintf("business unit %d does not belong to this company", id))
		}
	}
	return nil
}

func (s *SiteService) invalidate(ctx context.Context, domain string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, siteCachePrefix+domain); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("domain", domain).Warn("site cache invalidation failed")
	}
}

// normalizeHost strips a port and lower-cases a Host header value
func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if i := strings.LastIndex(host, ":"); i > 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	return strings.TrimSuffix(host, ".")
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
