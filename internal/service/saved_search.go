package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/logger"
	"myjobs/internal/mailer"
	"myjobs/internal/repository"
	"myjobs/internal/search"
	"myjobs/internal/tasks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultJobsPerEmail = 5
	reasonNoJobs        = "no jobs"
)

// SavedSearchService handles saved searches and their email digests
type SavedSearchService struct {
	repo      repository.SavedSearchRepositoryInterface
	partners  repository.PartnerRepositoryInterface
	contacts  repository.ContactRepositoryInterface
	units     repository.BusinessUnitRepositoryInterface
	index     search.Index
	renderer  TemplateRenderer
	tokens    UnsubscribeTokens
	queue     tasks.Enqueuer
	baseURL   string
	validator *validator.Validate
}

// NewSavedSearchService creates a new saved search service. index may be nil when search is not configured.
func NewSavedSearchService(
	repo repository.SavedSearchRepositoryInterface,
	partners repository.PartnerRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	units repository.BusinessUnitRepositoryInterface,
	index search.Index,
	renderer TemplateRenderer,
	tokens UnsubscribeTokens,
	queue tasks.Enqueuer,
	baseURL string,
	validator *validator.Validate,
) *SavedSearchService {
	return &SavedSearchService{
		repo:      repo,
		partners:  partners,
		contacts:  contacts,
		units:     units,
		index:     index,
		renderer:  renderer,
		tokens:    tokens,
		queue:     queue,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		validator: validator,
	}
}

// SavedSearchRequest creates or updates a saved search
type SavedSearchRequest struct {
	Label        string           `json:"label" validate:"required,max=60"`
	URL          string           `json:"url" validate:"omitempty,url,max=2000"`
	Query        string           `json:"query" validate:"max=255"`
	Location     string           `json:"location" validate:"max=255"`
	Email        string           `json:"email" validate:"omitempty,email,max=255"`
	Frequency    models.Frequency `json:"frequency" validate:"required"`
	DayOfWeek    int              `json:"day_of_week" validate:"min=0,max=7"`
	DayOfMonth   int              `json:"day_of_month" validate:"min=0,max=31"`
	IsActive     *bool            `json:"is_active,omitempty"`
	Notes        string           `json:"notes"`
	SortBy       string           `json:"sort_by" validate:"omitempty,oneof=relevance date"`
	JobsPerEmail int              `json:"jobs_per_email" validate:"min=0,max=100"`
}

// PartnerSearchRequest creates a saved search on behalf of a partner's contact
type PartnerSearchRequest struct {
	SavedSearchRequest
	ContactID uuid.UUID `json:"contact_id" validate:"required"`
}

// CreateSearch creates a saved search for the caller. The digest goes to the caller's email unless another is given.
func (s *SavedSearchService) CreateSearch(userID uuid.UUID, userEmail string, req *SavedSearchRequest) (*models.SavedSearch, error) {
	if err := s.validateSearch(req); err != nil {
		return nil, err
	}
	ss := &models.SavedSearch{UserID: userID, IsActive: true, Email: strings.ToLower(userEmail)}
	applySearch(ss, req)
	if ss.Email == "" {
		return nil, apperrors.NewValidationError("email", "is required")
	}
	if err := s.repo.Create(ss); err != nil {
		return nil, fmt.Errorf("failed to create saved search: %w", err)
	}
	return ss, nil
}

// ListSearches lists the caller's saved searches
func (s *SavedSearchService) ListSearches(userID uuid.UUID) ([]models.SavedSearch, error) {
	searches, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	return searches, nil
}

// GetSearch retrieves one of the caller's saved searches
func (s *SavedSearchService) GetSearch(userID, id uuid.UUID) (*models.SavedSearch, error) {
	ss, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSavedSearchNotFound, "get saved search")
	}
	if ss.UserID != userID {
		return nil, apperrors.ErrSavedSearchNotFound
	}
	return ss, nil
}

// UpdateSearch updates one of the caller's saved searches
func (s *SavedSearchService) UpdateSearch(userID, id uuid.UUID, req *SavedSearchRequest) (*models.SavedSearch, error) {
	if err := s.validateSearch(req); err != nil {
		return nil, err
	}
	ss, err := s.GetSearch(userID, id)
	if err != nil {
		return nil, err
	}
	if ss.PartnerID != nil && req.Email != "" && !strings.EqualFold(req.Email, ss.Email) {
		return nil, apperrors.ErrSearchEmailMismatch
	}
	applySearch(ss, req)
	if err := s.repo.Update(ss); err != nil {
		return nil, fmt.Errorf("failed to update saved search: %w", err)
	}
	return ss, nil
}

// DeleteSearch deletes one of the caller's saved searches
func (s *SavedSearchService) DeleteSearch(userID, id uuid.UUID) error {
	if _, err := s.GetSearch(userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return notFound(err, apperrors.ErrSavedSearchNotFound, "delete saved search")
	}
	return nil
}

// CreatePartnerSearch creates a saved search for one of a partner's contacts.
// The digest email must be the contact's.
func (s *SavedSearchService) CreatePartnerSearch(caller auth.Caller, partnerID uuid.UUID, req *PartnerSearchRequest) (*models.SavedSearch, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.validateSearch(&req.SavedSearchRequest); err != nil {
		return nil, err
	}

	if _, err := s.partners.GetByID(caller.CompanyID, partnerID); err != nil {
		return nil, notFound(err, apperrors.ErrPartnerNotFound, "get partner")
	}
	contact, err := s.contacts.GetByID(partnerID, req.ContactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotInPartner
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if contact.Email == "" {
		return nil, apperrors.NewValidationError("contact_id", "contact has no email")
	}
	if req.Email != "" && !strings.EqualFold(req.Email, contact.Email) {
		return nil, apperrors.ErrSearchEmailMismatch
	}

	owner := caller.UserID
	if contact.UserID != nil {
		owner = *contact.UserID
	}
	companyID, contactID := caller.CompanyID, contact.ID
	ss := &models.SavedSearch{
		UserID:    owner,
		IsActive:  true,
		CompanyID: &companyID,
		PartnerID: &partnerID,
		ContactID: &contactID,
	}
	applySearch(ss, &req.SavedSearchRequest)
	ss.Email = strings.ToLower(contact.Email)
	if err := s.repo.Create(ss); err != nil {
		return nil, fmt.Errorf("failed to create saved search: %w", err)
	}
	return ss, nil
}

// ListPartnerSearches lists the saved searches the company created for a partner
func (s *SavedSearchService) ListPartnerSearches(companyID, partnerID uuid.UUID) ([]models.SavedSearch, error) {
	if _, err := s.partners.GetByID(companyID, partnerID); err != nil {
		return nil, notFound(err, apperrors.ErrPartnerNotFound, "get partner")
	}
	searches, err := s.repo.ListByPartner(companyID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list partner saved searches: %w", err)
	}
	return searches, nil
}

// DeletePartnerSearch deletes a saved search the company created for a partner
func (s *SavedSearchService) DeletePartnerSearch(companyID, partnerID, id uuid.UUID) error {
	ss, err := s.repo.GetByID(id)
	if err != nil {
		return notFound(err, apperrors.ErrSavedSearchNotFound, "get saved search")
	}
	if !sameUUID(ss.CompanyID, &companyID) || !sameUUID(ss.PartnerID, &partnerID) {
		return apperrors.ErrSavedSearchNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return notFound(err, apperrors.ErrSavedSearchNotFound, "delete saved search")
	}
	return nil
}

// Preview runs one of the caller's saved searches against the job index
func (s *SavedSearchService) Preview(ctx context.Context, userID, id uuid.UUID) (*search.Results, error) {
	ss, err := s.GetSearch(userID, id)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, ss, time.Time{})
}

// ListLogs lists the latest digest runs of one of the caller's saved searches
func (s *SavedSearchService) ListLogs(userID, id uuid.UUID, limit int) ([]models.SavedSearchLog, error) {
	if _, err := s.GetSearch(userID, id); err != nil {
		return nil, err
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	logs, err := s.repo.ListLogs(id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved search logs: %w", err)
	}
	return logs, nil
}

// SendDigests queues a digest email for every saved search due at now and logs each run.
// Returns the number of digests queued.
func (s *SavedSearchService) SendDigests(ctx context.Context, now time.Time) (int, error) {
	if s.index == nil {
		return 0, apperrors.ErrSearchNotConfigured
	}
	searches, err := s.repo.ListActive()
	if err != nil {
		return 0, fmt.Errorf("failed to list saved searches: %w", err)
	}

	sent := 0
	for i := range searches {
		ss := &searches[i]
		if !ss.IsDue(now) {
			continue
		}
		ok, err := s.sendDigest(ctx, ss, now)
		if err != nil {
			logger.WithContext(ctx).WithError(err).WithField("saved_search_id", ss.ID).Warn("saved search digest failed")
			s.writeLog(ctx, ss.ID, false, truncate(err.Error(), 255), 0, now)
			continue
		}
		if ok {
			sent++
		}
	}
	return sent, nil
}

// Unsubscribe deactivates the saved search named by a signed unsubscribe token
func (s *SavedSearchService) Unsubscribe(token string) (*models.SavedSearch, error) {
	id, err := s.tokens.ValidateUnsubscribeToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidUnsubscribeToken
	}
	ss, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSavedSearchNotFound, "get saved search")
	}
	ss.Unsubscribed = true
	ss.IsActive = false
	if err := s.repo.Update(ss); err != nil {
		return nil, fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return ss, nil
}

func (s *SavedSearchService) sendDigest(ctx context.Context, ss *models.SavedSearch, now time.Time) (bool, error) {
	results, err := s.run(ctx, ss, digestSince(ss, now))
	if err != nil {
		return false, err
	}
	if len(results.Hits) == 0 {
		s.writeLog(ctx, ss.ID, false, reasonNoJobs, 0, now)
		return false, nil
	}

	token, err := s.tokens.GenerateUnsubscribeToken(ss.ID)
	if err != nil {
		return false, fmt.Errorf("failed to sign unsubscribe link: %w", err)
	}
	data := mailer.DigestData{
		Label:          ss.Label,
		SearchURL:      ss.URL,
		UnsubscribeURL: s.baseURL + "/api/v1/saved-searches/unsubscribe?token=" + url.QueryEscape(token),
	}
	for _, hit := range results.Hits {
		data.Jobs = append(data.Jobs, mailer.DigestJob{
			Title:    hit.Title,
			Company:  hit.Company,
			Location: hit.Location,
			URL:      s.baseURL + "/" + hit.GUID,
		})
	}

	subject, html, err := s.renderer.RenderEvent(ss.CompanyID, models.EmailEventSavedSearchDigest, data)
	if err != nil {
		return false, err
	}
	payload := tasks.SendEmailPayload{To: ss.Email, Subject: subject, HTML: html, Event: string(models.EmailEventSavedSearchDigest)}
	if err := s.queue.Enqueue(ctx, tasks.SendEmail, payload); err != nil {
		return false, fmt.Errorf("failed to enqueue digest: %w", err)
	}

	ss.LastSent = &now
	if err := s.repo.Update(ss); err != nil {
		return false, fmt.Errorf("failed to update last sent: %w", err)
	}
	s.writeLog(ctx, ss.ID, true, "", len(results.Hits), now)
	return true, nil
}

// run searches the index with the saved query. Partner searches only see the company's jobs.
func (s *SavedSearchService) run(ctx context.Context, ss *models.SavedSearch, since time.Time) (*search.Results, error) {
	if s.index == nil {
		return nil, apperrors.ErrSearchNotConfigured
	}
	q := search.Query{
		Q:          ss.Query,
		Location:   ss.Location,
		SortByDate: ss.SortBy == "date",
		NewerThan:  since,
		Page:       1,
		PerPage:    ss.JobsPerEmail,
	}
	if q.PerPage < 1 {
		q.PerPage = defaultJobsPerEmail
	}
	if ss.CompanyID != nil {
		buids, err := s.units.IDsForCompany(*ss.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to list company business units: %w", err)
		}
		if len(buids) == 0 {
			return &search.Results{Page: 1, Hits: []search.JobDocument{}}, nil
		}
		q.BUIDs = buids
	}

	results, err := s.index.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return results, nil
}

func (s *SavedSearchService) writeLog(ctx context.Context, id uuid.UUID, sent bool, reason string, jobs int, at time.Time) {
	entry := &models.SavedSearchLog{SavedSearchID: id, WasSent: sent, Reason: reason, NewJobs: jobs, SentAt: at}
	if err := s.repo.CreateLog(entry); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("saved_search_id", id).Error("failed to write saved search log")
	}
}

func (s *SavedSearchService) validateSearch(req *SavedSearchRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	switch req.Frequency {
	case models.FrequencyDaily:
	case models.FrequencyWeekly:
		if req.DayOfWeek < 1 {
			return apperrors.ErrInvalidFrequency
		}
	case models.FrequencyMonthly:
		if req.DayOfMonth < 1 {
			return apperrors.ErrInvalidFrequency
		}
	default:
		return apperrors.ErrInvalidFrequency
	}
	return nil
}

func applySearch(ss *models.SavedSearch, req *SavedSearchRequest) {
	ss.Label = strings.TrimSpace(req.Label)
	ss.URL = req.URL
	ss.Query = strings.TrimSpace(req.Query)
	ss.Location = strings.TrimSpace(req.Location)
	if req.Email != "" {
		ss.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	ss.Frequency = req.Frequency
	ss.DayOfWeek = req.DayOfWeek
	ss.DayOfMonth = req.DayOfMonth
	if req.IsActive != nil {
		ss.IsActive = *req.IsActive
	}
	ss.Notes = req.Notes
	ss.SortBy = req.SortBy
	if ss.SortBy == "" {
		ss.SortBy = "relevance"
	}
	ss.JobsPerEmail = req.JobsPerEmail
	if ss.JobsPerEmail == 0 {
		ss.JobsPerEmail = defaultJobsPerEmail
	}
}

// digestSince is the start of the window a digest covers: the last send, or one period back
func digestSince(ss *models.SavedSearch, now time.Time) time.Time {
	if ss.LastSent != nil {
		return *ss.LastSent
	}
	switch ss.Frequency {
	case models.FrequencyDaily:
		return now.AddDate(0, 0, -1)
	case models.FrequencyMonthly:
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}
