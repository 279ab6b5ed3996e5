package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/logger"
	"myjobs/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Object types recorded in the PRM activity log
const (
	objectPartner       = "partner"
	objectContact       = "contact"
	objectContactRecord = "contact record"
)

// PRMService handles partners, contacts, communication records and their activity log
type PRMService struct {
	tags      repository.TagRepositoryInterface
	partners  repository.PartnerRepositoryInterface
	contacts  repository.ContactRepositoryInterface
	records   repository.ContactRecordRepositoryInterface
	log       repository.ContactLogRepositoryInterface
	validator *validator.Validate
}

// NewPRMService creates a new PRM service
func NewPRMService(tags repository.TagRepositoryInterface, partners repository.PartnerRepositoryInterface, contacts repository.ContactRepositoryInterface, records repository.ContactRecordRepositoryInterface, log repository.ContactLogRepositoryInterface, validator *validator.Validate) *PRMService {
	return &PRMService{
		tags:      tags,
		partners:  partners,
		contacts:  contacts,
		records:   records,
		log:       log,
		validator: validator,
	}
}

// PartnerRequest creates or updates a partner
type PartnerRequest struct {
	Name             string          `json:"name" validate:"required,max=255"`
	URI              string          `json:"uri" validate:"omitempty,url,max=255"`
	DataSource       string          `json:"data_source" validate:"max=255"`
	Tags             []string        `json:"tags" validate:"dive,max=255"`
	PrimaryContactID *uuid.UUID      `json:"primary_contact_id,omitempty"`
	PrimaryContact   *ContactRequest `json:"primary_contact,omitempty"`
}

// ContactRequest creates or updates a contact
type ContactRequest struct {
	Name      string     `json:"name" validate:"required,max=255"`
	Email     string     `json:"email" validate:"omitempty,email,max=255"`
	Phone     string     `json:"phone" validate:"max=30"`
	Locations string     `json:"locations"`
	Notes     string     `json:"notes"`
	Tags      []string   `json:"tags" validate:"dive,max=255"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
}

// ContactRecordRequest creates or updates a communication record
type ContactRecordRequest struct {
	ContactID       *uuid.UUID         `json:"contact_id,omitempty"`
	ContactType     models.ContactType `json:"contact_type" validate:"required"`
	ContactEmail    string             `json:"contact_email" validate:"omitempty,email,max=255"`
	Subject         string             `json:"subject" validate:"max=255"`
	Notes           string             `json:"notes"`
	DateTime        *time.Time         `json:"date_time,omitempty"`
	LengthMinutes   int                `json:"length_minutes" validate:"min=0"`
	JobApplications int                `json:"job_applications" validate:"min=0"`
	JobInterviews   int                `json:"job_interviews" validate:"min=0"`
	JobHires        int                `json:"job_hires" validate:"min=0"`
	Tags            []string           `json:"tags" validate:"dive,max=255"`
}

// PartnerQuery narrows a partner listing
type PartnerQuery struct {
	Q        string   `form:"q"`
	Tags     []string `form:"tag"`
	Archived bool     `form:"archived"`
	Sort     string   `form:"sort" validate:"omitempty,oneof=name -created_at"`
	Page     int      `form:"page"`
	PageSize int      `form:"page_size"`
}

// ContactRecordQuery narrows a communication record listing
type ContactRecordQuery struct {
	ContactID   *uuid.UUID `form:"-"`
	ContactType string     `form:"contact_type"`
	From        *time.Time `form:"from" time_format:"2006-01-02"`
	To          *time.Time `form:"to" time_format:"2006-01-02"`
	Archived    bool       `form:"archived"`
	Page        int        `form:"page"`
	PageSize    int        `form:"page_size"`
}

// PartnerListResponse represents a paginated list of partners
type PartnerListResponse struct {
	Partners []models.Partner `json:"partners"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ContactRecordListResponse represents a paginated list of communication records
type ContactRecordListResponse struct {
	Records  []models.ContactRecord `json:"records"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// ContactLogListResponse represents a paginated activity log
type ContactLogListResponse struct {
	Entries  []models.ContactLogEntry `json:"entries"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// ListTags lists the company's tags, optionally by name prefix
func (s *PRMService) ListTags(companyID uuid.UUID, prefix string) ([]models.Tag, error) {
	tags, err := s.tags.List(companyID, strings.TrimSpace(prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// CreatePartner creates a partner, with an optional inline primary contact.
// Partners created by non-admin members wait for approval.
func (s *PRMService) CreatePartner(caller auth.Caller, req *PartnerRequest) (*models.Partner, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.PrimaryContact != nil {
		if err := s.validator.Struct(req.PrimaryContact); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
	}

	status := models.ApprovalApproved
	if !caller.IsAdmin() {
		status = models.ApprovalPending
	}
	partner := &models.Partner{
		CompanyID:      caller.CompanyID,
		Name:           strings.TrimSpace(req.Name),
		URI:            req.URI,
		DataSource:     req.DataSource,
		ApprovalStatus: status,
	}

	var contact *models.Contact
	if req.PrimaryContact != nil {
		contact = &models.Contact{}
		applyContact(contact, req.PrimaryContact)
		if err := s.partners.CreateWithPrimaryContact(partner, contact); err != nil {
			return nil, fmt.Errorf("failed to create partner: %w", err)
		}
		partner.PrimaryContact = contact
	} else if err := s.partners.Create(partner); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}

	if len(req.Tags) > 0 {
		if err := s.setTags(caller.CompanyID, req.Tags, func(tags []models.Tag) error {
			return s.partners.ReplaceTags(partner, tags)
		}); err != nil {
			return nil, err
		}
	}
	s.record(caller, models.LogActionAdd, objectPartner, partner.ID, partner.Name, &partner.ID, "")

	if contact != nil {
		if len(req.PrimaryContact.Tags) > 0 {
			if err := s.setTags(caller.CompanyID, req.PrimaryContact.Tags, func(tags []models.Tag) error {
				return s.contacts.ReplaceTags(contact, tags)
			}); err != nil {
				return nil, err
			}
		}
		s.record(caller, models.LogActionAdd, objectContact, contact.ID, contact.Name, &partner.ID, "")
	}
	return partner, nil
}

// ListPartners lists the company's partners
func (s *PRMService) ListPartners(companyID uuid.UUID, q *PartnerQuery) (*PartnerListResponse, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	page, pageSize, limit, offset := normalizePage(q.Page, q.PageSize)
	partners, total, err := s.partners.List(repository.PartnerFilter{
		CompanyID: companyID,
		Query:     strings.TrimSpace(q.Q),
		Tags:      dedupeStrings(q.Tags),
		Archived:  q.Archived,
		SortBy:    q.Sort,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return &PartnerListResponse{Partners: partners, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetPartner retrieves one of the company's partners
func (s *PRMService) GetPartner(companyID, id uuid.UUID) (*models.Partner, error) {
	partner, err := s.partners.GetByID(companyID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPartnerNotFound, "get partner")
	}
	return partner, nil
}

// UpdatePartner updates a partner. Nil tags leave the tags unchanged.
func (s *PRMService) UpdatePartner(caller auth.Caller, id uuid.UUID, req *PartnerRequest) (*models.Partner, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	partner, err := s.GetPartner(caller.CompanyID, id)
	if err != nil {
		return nil, err
	}

	var changed []string
	if name := strings.TrimSpace(req.Name); name != partner.Name {
		partner.Name = name
		changed = append(changed, "name")
	}
	if req.URI != partner.URI {
		partner.URI = req.URI
		changed = append(changed, "uri")
	}
	if req.DataSource != partner.DataSource {
		partner.DataSource = req.DataSource
		changed = append(changed, "data source")
	}
	if req.PrimaryContactID != nil && !sameUUID(req.PrimaryContactID, partner.PrimaryContactID) {
		contact, err := s.contacts.GetByID(partner.ID, *req.PrimaryContactID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrContactNotInPartner
			}
			return nil, fmt.Errorf("failed to get contact: %w", err)
		}
		if contact.IsArchived() {
			return nil, apperrors.NewValidationError("primary_contact_id", "contact is archived")
		}
		partner.PrimaryContactID = &contact.ID
		partner.PrimaryContact = contact
		changed = append(changed, "primary contact")
	}

	if err := s.partners.Update(partner); err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	if req.Tags != nil {
		if err := s.setTags(caller.CompanyID, req.Tags, func(tags []models.Tag) error {
			return s.partners.ReplaceTags(partner, tags)
		}); err != nil {
			return nil, err
		}
		changed = append(changed, "tags")
	}

	s.record(caller, models.LogActionChange, objectPartner, partner.ID, partner.Name, &partner.ID, changeMessage(changed))
	return partner, nil
}

// SetPartnerApproval approves or denies a pending partner. Company admins only.
func (s *PRMService) SetPartnerApproval(caller auth.Caller, id uuid.UUID, status models.ApprovalStatus) (*models.Partner, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrNotCompanyAdmin
	}
	if status != models.ApprovalApproved && status != models.ApprovalDenied && status != models.ApprovalPending {
		return nil, apperrors.NewValidationError("approval_status", "must be pending, approved or denied")
	}

	partner, err := s.GetPartner(caller.CompanyID, id)
	if err != nil {
		return nil, err
	}
	partner.ApprovalStatus = status
	if err := s.partners.Update(partner); err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	s.record(caller, models.LogActionChange, objectPartner, partner.ID, partner.Name, &partner.ID, "Changed approval status to "+string(status)+".")
	return partner, nil
}

// ArchivePartner hides a partner from the default listings
func (s *PRMService) ArchivePartner(caller auth.Caller, id uuid.UUID) error {
	return s.setPartnerArchived(caller, id, true)
}

// RestorePartner brings an archived partner back
func (s *PRMService) RestorePartner(caller auth.Caller, id uuid.UUID) error {
	return s.setPartnerArchived(caller, id, false)
}

func (s *PRMService) setPartnerArchived(caller auth.Caller, id uuid.UUID, archive bool) error {
	partner, err := s.GetPartner(caller.CompanyID, id)
	if err != nil {
		return err
	}

	var at *time.Time
	action := models.LogActionRestore
	if archive {
		now := time.Now()
		at, action = &now, models.LogActionArchive
	}
	if err := s.partners.SetArchived(caller.CompanyID, id, at); err != nil {
		return notFound(err, apperrors.ErrPartnerNotFound, "archive partner")
	}
	s.record(caller, action, objectPartner, partner.ID, partner.Name, &partner.ID, "")
	return nil
}

// CreateContact adds a contact to one of the company's partners
func (s *PRMService) CreateContact(caller auth.Caller, partnerID uuid.UUID, req *ContactRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.GetPartner(caller.CompanyID, partnerID); err != nil {
		return nil, err
	}

	contact := &models.Contact{PartnerID: partnerID}
	applyContact(contact, req)
	if err := s.contacts.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	if len(req.Tags) > 0 {
		if err := s.setTags(caller.CompanyID, req.Tags, func(tags []models.Tag) error {
			return s.contacts.ReplaceTags(contact, tags)
		}); err != nil {
			return nil, err
		}
	}

	s.record(caller, models.LogActionAdd, objectContact, contact.ID, contact.Name, &partnerID, "")
	return contact, nil
}

// ListContacts lists a partner's live or archived contacts
func (s *PRMService) ListContacts(companyID, partnerID uuid.UUID, archived bool) ([]models.Contact, error) {
	if _, err := s.GetPartner(companyID, partnerID); err != nil {
		return nil, err
	}
	contacts, err := s.contacts.ListByPartner(partnerID, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// GetContact retrieves one of a partner's contacts
func (s *PRMService) GetContact(companyID, partnerID, id uuid.UUID) (*models.Contact, error) {
	if _, err := s.GetPartner(companyID, partnerID); err != nil {
		return nil, err
	}
	contact, err := s.contacts.GetByID(partnerID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrContactNotFound, "get contact")
	}
	return contact, nil
}

// UpdateContact updates a contact. Nil tags leave the tags unchanged.
func (s *PRMService) UpdateContact(caller auth.Caller, partnerID, id uuid.UUID, req *ContactRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	contact, err := s.GetContact(caller.CompanyID, partnerID, id)
	if err != nil {
		return nil, err
	}

	changed := contactChanges(contact, req)
	applyContact(contact, req)
	if err := s.contacts.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	if req.Tags != nil {
		if err := s.setTags(caller.CompanyID, req.Tags, func(tags []models.Tag) error {
			return s.contacts.ReplaceTags(contact, tags)
		}); err != nil {
			return nil, err
		}
		changed = append(changed, "tags")
	}

	s.record(caller, models.LogActionChange, objectContact, contact.ID, contact.Name, &partnerID, changeMessage(changed))
	return contact, nil
}

// ArchiveContact archives a contact. Archiving the partner's primary contact clears it.
func (s *PRMService) ArchiveContact(caller auth.Caller, partnerID, id uuid.UUID) error {
	contact, err := s.GetContact(caller.CompanyID, partnerID, id)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := s.contacts.SetArchived(partnerID, id, &now); err != nil {
		return notFound(err, apperrors.ErrContactNotFound, "archive contact")
	}
	if err := s.partners.ClearPrimaryContact(partnerID, id); err != nil {
		return fmt.Errorf("failed to clear primary contact: %w", err)
	}

	s.record(caller, models.LogActionArchive, objectContact, contact.ID, contact.Name, &partnerID, "")
	return nil
}

// RestoreContact brings an archived contact back
func (s *PRMService) RestoreContact(caller auth.Caller, partnerID, id uuid.UUID) error {
	contact, err := s.GetContact(caller.CompanyID, partnerID, id)
	if err != nil {
		return err
	}
	if err := s.contacts.SetArchived(partnerID, id, nil); err != nil {
		return notFound(err, apperrors.ErrContactNotFound, "restore contact")
	}
	s.record(caller, models.LogActionRestore, objectContact, contact.ID, contact.Name, &partnerID, "")
	return nil
}

// CreateRecord logs a communication with a partner
func (s *PRMService) CreateRecord(caller auth.Caller, partnerID uuid.UUID, req *ContactRecordRequest) (*models.ContactRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.GetPartner(caller.CompanyID, partnerID); err != nil {
		return nil, err
	}

	record := &models.ContactRecord{PartnerID: partnerID, CreatedByID: &caller.UserID}
	if err := s.applyRecord(record, req); err != nil {
		return nil, err
	}
	if err := s.records.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create contact record: %w", err)
	}
	if len(req.Tags) > 0 {
		if err := s.setTags(caller.CompanyID, req.Tags, func(tags []models.Tag) error {
			return s.records.ReplaceTags(record, tags)
		}); err != nil {
			return nil, err
		}
	}

	s.record(caller, models.LogActionAdd, objectContactRecord, record.ID, recordRepr(record), &partnerID, "")
	return record, nil
}

// ListRecords lists a partner's communication records, newest first
func (s *PRMService) ListRecords(companyID, partnerID uuid.UUID, q *ContactRecordQuery) (*ContactRecordListResponse, error) {
	if _, err := s.GetPartner(companyID, partnerID); err != nil {
		return nil, err
	}
	if q.ContactType != "" && !models.ContactType(q.ContactType).IsValid() {
		return nil, apperrors.NewValidationError("contact_type", "unknown contact type")
	}

	page, pageSize, limit, offset := normalizePage(q.Page, q.PageSize)
	filter := repository.ContactRecordFilter{
		PartnerID:   partnerID,
		ContactID:   q.ContactID,
		ContactType: q.ContactType,
		From:        q.From,
		Archived:    q.Archived,
		Limit:       limit,
		Offset:      offset,
	}
	if q.To != nil {
		// inclusive end day
		end := q.To.AddDate(0, 0, 1)
		filter.To = &end
	}

	records, total, err := s.records.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact records: %w", err)
	}
	return &ContactRecordListResponse{Records: records, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetRecord retrieves one of a partner's communication records
func (s *PRMService) GetRecord(companyID, partnerID, id uuid.UUID) (*models.ContactRecord, error) {
	if _, err := s.GetPartner(companyID, partnerID); err != nil {
		return nil, err
	}
	record, err := s.records.GetByID(partnerID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrContactRecordNotFound, "get contact record")
	}
	return record, nil
}

// UpdateRecord updates a communication record. Nil tags leave the tags unchanged.
func (s *PRMService) UpdateRecord(caller auth.Caller, partnerID, id uuid.UUID, req *ContactRecordRequest) (*models.ContactRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	record, err := s.GetRecord(caller.CompanyID, partnerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyRecord(record, req); err != nil {
		return nil, err
	}
	if err := s.records.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update contact record: %w", err)
	}
	if req.Tags != nil {
		if err := s.setTags(caller.CompanyID, req.Tags, func(tags []models.Tag) error {
			return s.records.ReplaceTags(record, tags)
		}); err != nil {
			return nil, err
		}
	}

	s.record(caller, models.LogActionChange, objectContactRecord, record.ID, recordRepr(record), &partnerID, "")
	return record, nil
}

// ArchiveRecord archives a communication record
func (s *PRMService) ArchiveRecord(caller auth.Caller, partnerID, id uuid.UUID) error {
	record, err := s.GetRecord(caller.CompanyID, partnerID, id)
	if err != nil {
		return err
	}
	now := time.Now()
	if err := s.records.SetArchived(partnerID, id, &now); err != nil {
		return notFound(err, apperrors.ErrContactRecordNotFound, "archive contact record")
	}
	s.record(caller, models.LogActionArchive, objectContactRecord, record.ID, recordRepr(record), &partnerID, "")
	return nil
}

// ListLog lists a partner's activity log, newest first
func (s *PRMService) ListLog(companyID, partnerID uuid.UUID, page, pageSize int) (*ContactLogListResponse, error) {
	if _, err := s.GetPartner(companyID, partnerID); err != nil {
		return nil, err
	}
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	entries, total, err := s.log.ListByPartner(companyID, partnerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity log: %w", err)
	}
	return &ContactLogListResponse{Entries: entries, Total: total, Page: page, PageSize: pageSize}, nil
}

// applyRecord checks the record rules and copies the request onto record
func (s *PRMService) applyRecord(record *models.ContactRecord, req *ContactRecordRequest) error {
	if !req.ContactType.IsValid() {
		return apperrors.NewValidationError("contact_type", "unknown contact type")
	}

	var contact *models.Contact
	if req.ContactID != nil {
		c, err := s.contacts.GetByID(record.PartnerID, *req.ContactID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrContactNotInPartner
			}
			return fmt.Errorf("failed to get contact: %w", err)
		}
		contact = c
	}

	email := strings.TrimSpace(req.ContactEmail)
	if email == "" && contact != nil {
		email = contact.Email
	}
	if req.ContactType == models.ContactTypeEmail && email == "" {
		return apperrors.ErrContactEmailRequired
	}

	record.ContactID = req.ContactID
	record.Contact = contact
	record.ContactType = req.ContactType
	record.ContactEmail = email
	record.Subject = req.Subject
	record.Notes = req.Notes
	record.JobApplications = req.JobApplications
	record.JobInterviews = req.JobInterviews
	record.JobHires = req.JobHires
	record.LengthMinutes = 0
	if req.ContactType.HasLength() {
		record.LengthMinutes = req.LengthMinutes
	}
	switch {
	case req.DateTime != nil:
		record.DateTime = *req.DateTime
	case record.DateTime.IsZero():
		record.DateTime = time.Now()
	}
	return nil
}

func (s *PRMService) setTags(companyID uuid.UUID, names []string, replace func([]models.Tag) error) error {
	tags := []models.Tag{}
	if names = dedupeStrings(names); len(names) > 0 {
		var err error
		if tags, err = s.tags.GetOrCreate(companyID, names); err != nil {
			return fmt.Errorf("failed to resolve tags: %w", err)
		}
	}
	if err := replace(tags); err != nil {
		return fmt.Errorf("failed to set tags: %w", err)
	}
	return nil
}

// record writes an activity log entry. Failures are logged, the mutation already happened.
func (s *PRMService) record(caller auth.Caller, action models.LogAction, objectType string, objectID uuid.UUID, repr string, partnerID *uuid.UUID, message string) {
	entry := &models.ContactLogEntry{
		CompanyID:     caller.CompanyID,
		Action:        action,
		ObjectType:    objectType,
		ObjectID:      objectID,
		ObjectRepr:    truncate(repr, 255),
		ChangeMessage: message,
		PartnerID:     partnerID,
	}
	if caller.UserID != uuid.Nil {
		uid := caller.UserID
		entry.UserID = &uid
	}
	if err := s.log.Create(entry); err != nil {
		logger.New().WithError(err).WithFields(map[string]interface{}{
			"object_type": objectType,
			"object_id":   objectID,
			"action":      action,
		}).Error("failed to write PRM activity log")
	}
}

func applyContact(c *models.Contact, req *ContactRequest) {
	c.Name = strings.TrimSpace(req.Name)
	c.Email = strings.ToLower(strings.TrimSpace(req.Email))
	c.Phone = req.Phone
	c.Locations = req.Locations
	c.Notes = req.Notes
	c.UserID = req.UserID
}

func contactChanges(c *models.Contact, req *ContactRequest) []string {
	var changed []string
	if strings.TrimSpace(req.Name) != c.Name {
		changed = append(changed, "name")
	}
	if strings.ToLower(strings.TrimSpace(req.Email)) != c.Email {
		changed = append(changed, "email")
	}
	if req.Phone != c.Phone {
		changed = append(changed, "phone")
	}
	if req.Locations != c.Locations {
		changed = append(changed, "locations")
	}
	if req.Notes != c.Notes {
		changed = append(changed, "notes")
	}
	return changed
}

func changeMessage(fields []string) string {
	if len(fields) == 0 {
		return "No fields changed."
	}
	return "Changed " + strings.Join(fields, ", ") + "."
}

func recordRepr(r *models.ContactRecord) string {
	if r.Subject != "" {
		return r.Subject
	}
	return string(r.ContactType) + " " + r.DateTime.Format("2006-01-02")
}

func sameUUID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
