package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/logger"
	"myjobs/internal/mailer"
	"myjobs/internal/repository"
	"myjobs/internal/tasks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailService manages email templates, renders event emails and sends scheduled notices
type EmailService struct {
	templates repository.EmailTemplateRepositoryInterface
	logs      repository.EmailLogRepositoryInterface
	companies repository.CompanyRepositoryInterface
	purchases repository.PurchaseRepositoryInterface
	queue     tasks.Enqueuer
	validator *validator.Validate
}

// NewEmailService creates a new email service
func NewEmailService(templates repository.EmailTemplateRepositoryInterface, logs repository.EmailLogRepositoryInterface, companies repository.CompanyRepositoryInterface, purchases repository.PurchaseRepositoryInterface, queue tasks.Enqueuer, validator *validator.Validate) *EmailService {
	return &EmailService{
		templates: templates,
		logs:      logs,
		companies: companies,
		purchases: purchases,
		queue:     queue,
		validator: validator,
	}
}

// EmailTemplateRequest creates or updates an email template
type EmailTemplateRequest struct {
	Name       string            `json:"name" validate:"required,max=255"`
	Event      models.EmailEvent `json:"event" validate:"required"`
	Subject    string            `json:"subject" validate:"required,max=255"`
	Header     string            `json:"header"`
	Body       string            `json:"body"`
	Footer     string            `json:"footer"`
	DaysBefore int               `json:"days_before" validate:"min=0,max=365"`
}

// EmailLogListResponse represents a paginated list of send attempts
type EmailLogListResponse struct {
	Logs     []models.EmailLog `json:"logs"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// CreateTemplate creates a template owned by companyID, or a global one when companyID is nil
func (s *EmailService) CreateTemplate(companyID *uuid.UUID, req *EmailTemplateRequest) (*models.EmailTemplate, error) {
	if err := s.validateTemplate(req); err != nil {
		return nil, err
	}
	tpl := &models.EmailTemplate{CompanyID: companyID}
	applyTemplate(tpl, req)
	if err := s.templates.Create(tpl); err != nil {
		return nil, fmt.Errorf("failed to create email template: %w", err)
	}
	return tpl, nil
}

// ListTemplates lists the company's templates followed by the global ones
func (s *EmailService) ListTemplates(companyID uuid.UUID) ([]models.EmailTemplate, error) {
	templates, err := s.templates.ListForCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	return templates, nil
}

// GetTemplate retrieves a template the company owns or may read (globals)
func (s *EmailService) GetTemplate(companyID uuid.UUID, id uuid.UUID) (*models.EmailTemplate, error) {
	tpl, err := s.templates.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrEmailTemplateNotFound, "get email template")
	}
	if tpl.CompanyID != nil && *tpl.CompanyID != companyID {
		return nil, apperrors.ErrEmailTemplateNotFound
	}
	return tpl, nil
}

// UpdateTemplate updates a template owned by companyID, or a global one when companyID is nil
func (s *EmailService) UpdateTemplate(companyID *uuid.UUID, id uuid.UUID, req *EmailTemplateRequest) (*models.EmailTemplate, error) {
	if err := s.validateTemplate(req); err != nil {
		return nil, err
	}
	tpl, err := s.ownedTemplate(companyID, id)
	if err != nil {
		return nil, err
	}
	applyTemplate(tpl, req)
	if err := s.templates.Update(tpl); err != nil {
		return nil, fmt.Errorf("failed to update email template: %w", err)
	}
	return tpl, nil
}

// DeleteTemplate deletes a template owned by companyID, or a global one when companyID is nil
func (s *EmailService) DeleteTemplate(companyID *uuid.UUID, id uuid.UUID) error {
	if _, err := s.ownedTemplate(companyID, id); err != nil {
		return err
	}
	if err := s.templates.Delete(id); err != nil {
		return notFound(err, apperrors.ErrEmailTemplateNotFound, "delete email template")
	}
	return nil
}

// ResolveTemplate returns the company's template for an event, then the global one, then the built-in default
func (s *EmailService) ResolveTemplate(companyID *uuid.UUID, event models.EmailEvent) (*models.EmailTemplate, error) {
	tpl, err := s.templates.FindForEvent(companyID, event)
	if err == nil {
		return tpl, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find email template: %w", err)
	}
	def, ok := mailer.DefaultTemplate(event)
	if !ok {
		return nil, apperrors.ErrEmailTemplateNotFound
	}
	return def, nil
}

// RenderEvent renders the email a company sends for an event
func (s *EmailService) RenderEvent(companyID *uuid.UUID, event models.EmailEvent, data interface{}) (string, string, error) {
	tpl, err := s.ResolveTemplate(companyID, event)
	if err != nil {
		return "", "", err
	}
	subject, html, err := mailer.Render(tpl, data)
	if err != nil {
		return "", "", fmt.Errorf("failed to render %s email: %w", event, err)
	}
	return subject, html, nil
}

// ListEmailLogs lists send attempts, optionally for one recipient
func (s *EmailService) ListEmailLogs(to string, page, pageSize int) (*EmailLogListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	logs, total, err := s.logs.List(strings.ToLower(strings.TrimSpace(to)), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}
	return &EmailLogListResponse{Logs: logs, Total: total, Page: page, PageSize: pageSize}, nil
}

// SendPurchaseExpiryNotices mails the admins of every purchaser whose purchase expires in
// exactly the DaysBefore of the template that applies to them. Returns the number of emails queued.
func (s *EmailService) SendPurchaseExpiryNotices(ctx context.Context, now time.Time) (int, error) {
	days, err := s.templates.DaysBeforeFor(models.EmailEventPurchaseExpiring)
	if err != nil {
		return 0, fmt.Errorf("failed to list notice days: %w", err)
	}
	if def, ok := mailer.DefaultTemplate(models.EmailEventPurchaseExpiring); ok {
		days = append(days, def.DaysBefore)
	}

	sent := 0
	for _, d := range uniqueDays(days) {
		purchases, err := s.purchases.ExpiringOn(dayStart(now).AddDate(0, 0, d))
		if err != nil {
			return sent, fmt.Errorf("failed to list expiring purchases: %w", err)
		}
		for i := range purchases {
			n, err := s.noticePurchase(ctx, &purchases[i], d)
			if err != nil {
				logger.WithContext(ctx).WithError(err).WithField("purchase_id", purchases[i].ID).Warn("purchase expiry notice failed")
				continue
			}
			sent += n
		}
	}
	return sent, nil
}

func (s *EmailService) noticePurchase(ctx context.Context, p *models.Purchase, daysBefore int) (int, error) {
	companyID := p.CompanyID
	tpl, err := s.ResolveTemplate(&companyID, models.EmailEventPurchaseExpiring)
	if err != nil {
		return 0, err
	}
	if tpl.DaysBefore != daysBefore {
		return 0, nil
	}

	company, err := s.companies.GetByID(companyID)
	if err != nil {
		return 0, notFound(err, apperrors.ErrCompanyNotFound, "get company")
	}
	members, err := s.companies.ListUsers(companyID)
	if err != nil {
		return 0, fmt.Errorf("failed to list company users: %w", err)
	}

	data := mailer.PurchaseExpiringData{
		CompanyName:    company.Name,
		ExpirationDate: p.ExpirationDate,
		JobsRemaining:  p.JobsRemaining,
	}
	if p.Product != nil {
		data.ProductName = p.Product.Name
	}
	subject, html, err := mailer.Render(tpl, data)
	if err != nil {
		return 0, fmt.Errorf("failed to render purchase expiry email: %w", err)
	}

	n := 0
	for _, m := range members {
		if m.Role != models.CompanyRoleAdmin || m.User == nil || m.User.Email == "" {
			continue
		}
		payload := tasks.SendEmailPayload{
			To:      m.User.Email,
			Subject: subject,
			HTML:    html,
			Event:   string(models.EmailEventPurchaseExpiring),
		}
		if err := s.queue.Enqueue(ctx, tasks.SendEmail, payload); err != nil {
			return n, fmt.Errorf("failed to enqueue email: %w", err)
		}
		n++
	}
	return n, nil
}

func (s *EmailService) ownedTemplate(companyID *uuid.UUID, id uuid.UUID) (*models.EmailTemplate, error) {
	tpl, err := s.templates.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrEmailTemplateNotFound, "get email template")
	}
	if !sameUUID(tpl.CompanyID, companyID) {
		return nil, apperrors.ErrEmailTemplateNotFound
	}
	return tpl, nil
}

func (s *EmailService) validateTemplate(req *EmailTemplateRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.Event.IsValid() {
		return apperrors.NewValidationError("event", "unknown email event")
	}
	probe := &models.EmailTemplate{Subject: req.Subject, Header: req.Header, Body: req.Body, Footer: req.Footer}
	if _, _, err := mailer.Render(probe, sampleData(req.Event)); err != nil {
		return apperrors.NewValidationError("template", err.Error())
	}
	return nil
}

func applyTemplate(tpl *models.EmailTemplate, req *EmailTemplateRequest) {
	tpl.Name = strings.TrimSpace(req.Name)
	tpl.Event = req.Event
	tpl.Subject = req.Subject
	tpl.Header = req.Header
	tpl.Body = req.Body
	tpl.Footer = req.Footer
	tpl.DaysBefore = req.DaysBefore
}

// sampleData is rendered against new templates to catch bad fields early
func sampleData(event models.EmailEvent) interface{} {
	switch event {
	case models.EmailEventPurchaseExpiring:
		return mailer.PurchaseExpiringData{CompanyName: "Acme", ProductName: "Job pack", ExpirationDate: time.Now(), JobsRemaining: 1}
	case models.EmailEventJobPosted:
		return mailer.JobPostedData{Title: "Welder", GUID: strings.Repeat("A", 32), URL: "https://example.com"}
	default:
		return mailer.DigestData{
			Label:          "Welding jobs",
			SearchURL:      "https://example.com",
			Jobs:           []mailer.DigestJob{{Title: "Welder", Company: "Acme", Location: "Austin, TX", URL: "https://example.com"}},
			UnsubscribeURL: "https://example.com/unsubscribe",
		}
	}
}

func uniqueDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
