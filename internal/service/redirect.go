package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"myjobs/internal/cache"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/logger"
	"myjobs/internal/redirect"
	"myjobs/internal/repository"
	"myjobs/internal/tasks"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const redirectCachePrefix = "redirect:"

// RedirectService resolves job GUIDs to their rewritten destinations and manages the rewrite rules
type RedirectService struct {
	primary       repository.RedirectRepositoryInterface
	archive       repository.RedirectRepositoryInterface
	manipulations repository.DestinationManipulationRepositoryInterface
	viewSources   repository.ViewSourceRepositoryInterface
	cache         cache.Cache
	cacheTTL      time.Duration
	queue         tasks.Enqueuer
	baseURL       string
	validator     *validator.Validate
	now           func() time.Time
}

// NewRedirectService creates a new redirect service. archive and c may be nil.
func NewRedirectService(
	primary repository.RedirectRepositoryInterface,
	archive repository.RedirectRepositoryInterface,
	manipulations repository.DestinationManipulationRepositoryInterface,
	viewSources repository.ViewSourceRepositoryInterface,
	c cache.Cache,
	cacheTTL time.Duration,
	queue tasks.Enqueuer,
	baseURL string,
	validator *validator.Validate,
) *RedirectService {
	return &RedirectService{
		primary:       primary,
		archive:       archive,
		manipulations: manipulations,
		viewSources:   viewSources,
		cache:         c,
		cacheTTL:      cacheTTL,
		queue:         queue,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		validator:     validator,
		now:           time.Now,
	}
}

// ResolveRequest is one hit on the redirect endpoint
type ResolveRequest struct {
	Path      string
	VS        string
	Referrer  string
	UserAgent string
	IP        string
}

// Resolution is where a redirect sends the visitor
type Resolution struct {
	GUID        string           `json:"guid"`
	BUID        int              `json:"buid"`
	ViewSource  int              `json:"view_source"`
	Original    string           `json:"original_url"`
	Destination string           `json:"destination"`
	Debug       bool             `json:"debug"`
	Steps       []redirect.Step  `json:"steps,omitempty"`
	Redirect    *models.Redirect `json:"-"`
}

// ExpiredJob describes a job that is gone, with a link to search for similar ones
type ExpiredJob struct {
	GUID        string `json:"guid"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	SearchURL   string `json:"search_url"`
}

// ManipulationRequest creates or updates a destination manipulation
type ManipulationRequest struct {
	BUID       int    `json:"buid" validate:"required,min=1"`
	ViewSource int    `json:"view_source" validate:"min=0"`
	ActionType int    `json:"action_type" validate:"required,oneof=1 2"`
	Action     string `json:"action" validate:"required,max=50"`
	Value1     string `json:"value_1"`
	Value2     string `json:"value_2"`
}

// ViewSourceRequest registers a view source
type ViewSourceRequest struct {
	ID           int    `json:"id" validate:"min=0"`
	Name         string `json:"name" validate:"required,max=255"`
	FriendlyName string `json:"friendly_name" validate:"max=255"`
}

// ManipulationListResponse represents a paginated list of manipulations
type ManipulationListResponse struct {
	Manipulations []models.DestinationManipulation `json:"manipulations"`
	Total         int64                            `json:"total"`
	Page          int                              `json:"page"`
	PageSize      int                              `json:"page_size"`
}

// Resolve looks up a GUID and rewrites its destination for the view source.
// An expired job returns ErrRedirectExpired together with an ExpiredJob.
func (s *RedirectService) Resolve(ctx context.Context, req ResolveRequest) (*Resolution, *ExpiredJob, error) {
	parsed, err := redirect.ParsePath(req.Path, req.VS)
	if err != nil {
		return nil, nil, err
	}
	log := logger.WithContext(ctx).WithField("guid", parsed.GUID)

	rd, err := s.lookup(ctx, parsed.GUID)
	if err != nil {
		return nil, nil, err
	}
	if rd.IsExpired() {
		return nil, &ExpiredJob{
			GUID:        rd.GUID,
			Title:       rd.Title,
			CompanyName: rd.CompanyName,
			SearchURL:   s.baseURL + "/jobs?q=" + url.QueryEscape(rd.Title),
		}, apperrors.ErrRedirectExpired
	}

	ms, err := s.manipulations.ListFor(rd.BUID, parsed.ViewSource)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list manipulations: %w", err)
	}
	dest, steps := redirect.ApplyAll(rd.URL, ms, redirect.Context{GUID: rd.GUID, ViewSource: parsed.ViewSource})
	for _, st := range steps {
		if st.Skipped {
			log.WithFields(map[string]interface{}{"manipulation_id": st.ID, "action": st.Action}).Warn("skipped unknown manipulation")
		}
	}

	res := &Resolution{
		GUID:        rd.GUID,
		BUID:        rd.BUID,
		ViewSource:  parsed.ViewSource,
		Original:    rd.URL,
		Destination: dest,
		Debug:       parsed.Debug,
		Redirect:    rd,
	}
	if parsed.Debug {
		res.Steps = steps
		return res, nil, nil
	}

	click := tasks.RecordClickPayload{
		GUID:       rd.GUID,
		BUID:       rd.BUID,
		ViewSource: parsed.ViewSource,
		URL:        dest,
		Referrer:   req.Referrer,
		UserAgent:  req.UserAgent,
		IP:         req.IP,
		At:         s.now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, tasks.RecordClick, click); err != nil {
		log.WithError(err).Warn("failed to enqueue click")
	}
	return res, nil, nil
}

// lookup finds a redirect in the cache, the primary database, then the archive
func (s *RedirectService) lookup(ctx context.Context, guid string) (*models.Redirect, error) {
	key := redirectCachePrefix + guid
	if s.cache != nil {
		var cached models.Redirect
		if err := cache.GetJSON(ctx, s.cache, key, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			logger.WithContext(ctx).WithError(err).Warn("redirect cache read failed")
		}
	}

	rd, err := s.primary.Get(guid)
	if errors.Is(err, gorm.ErrRecordNotFound) && s.archive != nil {
		rd, err = s.archive.Get(guid)
	}
	if err != nil {
		return nil, notFound(err, apperrors.ErrRedirectNotFound, "get redirect")
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, key, rd, s.cacheTTL); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("redirect cache write failed")
		}
	}
	return rd, nil
}

// CreateManipulation adds a rewrite rule for a business unit and view source
func (s *RedirectService) CreateManipulation(req *ManipulationRequest) (*models.DestinationManipulation, error) {
	if err := s.validateManipulation(req); err != nil {
		return nil, err
	}
	existing, err := s.manipulations.FindByKey(req.BUID, req.ViewSource, req.ActionType, req.Action)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing manipulation: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDestinationManipulationExists
	}

	m := &models.DestinationManipulation{}
	applyManipulation(m, req)
	if err := s.manipulations.Create(m); err != nil {
		return nil, fmt.Errorf("failed to create manipulation: %w", err)
	}
	return m, nil
}

// ListManipulations lists manipulations, optionally for one business unit
func (s *RedirectService) ListManipulations(buid, page, pageSize int) (*ManipulationListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	ms, total, err := s.manipulations.List(buid, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list manipulations: %w", err)
	}
	return &ManipulationListResponse{Manipulations: ms, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetManipulation retrieves a manipulation by ID
func (s *RedirectService) GetManipulation(id uint) (*models.DestinationManipulation, error) {
	m, err := s.manipulations.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrDestinationManipulationNotFound, "get manipulation")
	}
	return m, nil
}

// UpdateManipulation updates a manipulation
func (s *RedirectService) UpdateManipulation(id uint, req *ManipulationRequest) (*models.DestinationManipulation, error) {
	if err := s.validateManipulation(req); err != nil {
		return nil, err
	}
	m, err := s.GetManipulation(id)
	if err != nil {
		return nil, err
	}
	other, err := s.manipulations.FindByKey(req.BUID, req.ViewSource, req.ActionType, req.Action)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing manipulation: %w", err)
	}
	if other != nil && other.ID != m.ID {
		return nil, apperrors.ErrDestinationManipulationExists
	}

	applyManipulation(m, req)
	if err := s.manipulations.Update(m); err != nil {
		return nil, fmt.Errorf("failed to update manipulation: %w", err)
	}
	return m, nil
}

// DeleteManipulation deletes a manipulation
func (s *RedirectService) DeleteManipulation(id uint) error {
	if err := s.manipulations.Delete(id); err != nil {
		return notFound(err, apperrors.ErrDestinationManipulationNotFound, "delete manipulation")
	}
	return nil
}

// ListViewSources lists every view source
func (s *RedirectService) ListViewSources() ([]models.ViewSource, error) {
	vs, err := s.viewSources.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list view sources: %w", err)
	}
	return vs, nil
}

// CreateViewSource registers a view source
func (s *RedirectService) CreateViewSource(req *ViewSourceRequest) (*models.ViewSource, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	existing, err := s.viewSources.GetByID(req.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing view source: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrViewSourceExists
	}
	vs := &models.ViewSource{ID: req.ID, Name: req.Name, FriendlyName: req.FriendlyName}
	if err := s.viewSources.Create(vs); err != nil {
		return nil, fmt.Errorf("failed to create view source: %w", err)
	}
	return vs, nil
}

// KnownActions lists the supported manipulation actions
func (s *RedirectService) KnownActions() []string {
	return redirect.KnownActions()
}

func (s *RedirectService) validateManipulation(req *ManipulationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	req.Action = strings.ToLower(strings.TrimSpace(req.Action))
	if !redirect.IsKnownAction(req.Action) {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownAction, req.Action)
	}
	return nil
}

func applyManipulation(m *models.DestinationManipulation, req *ManipulationRequest) {
	m.BUID = req.BUID
	m.ViewSource = req.ViewSource
	m.ActionType = req.ActionType
	m.Action = req.Action
	m.Value1 = req.Value1
	m.Value2 = req.Value2
}
