package repository

import (
	"strings"
	"time"

	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagRepository handles database operations for PRM tags
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

var _ TagRepositoryInterface = (*TagRepository)(nil)

// List lists a company's tags, optionally by case-insensitive name prefix
func (r *TagRepository) List(companyID uuid.UUID, prefix string) ([]models.Tag, error) {
	var tags []models.Tag
	q := r.db.Where("company_id = ?", companyID)
	if prefix != "" {
		q = q.Where("lower(name) LIKE ?", strings.ToLower(prefix)+"%")
	}
	err := q.Order("name").Find(&tags).Error
	return tags, err
}

// GetOrCreate resolves names to tags case-insensitively, creating the missing ones
func (r *TagRepository) GetOrCreate(companyID uuid.UUID, names []string) ([]models.Tag, error) {
	var out []models.Tag
	err := r.db.Transaction(func(tx *gorm.DB) error {
		seen := map[string]bool{}
		for _, name := range names {
			name = strings.TrimSpace(name)
			key := strings.ToLower(name)
			if name == "" || seen[key] {
				continue
			}
			seen[key] = true

			var tag models.Tag
			err := tx.First(&tag, "company_id = ? AND lower(name) = ?", companyID, key).Error
			if err == gorm.ErrRecordNotFound {
				tag = models.Tag{CompanyID: companyID, Name: name}
				err = tx.Create(&tag).Error
			}
			if err != nil {
				return err
			}
			out = append(out, tag)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PartnerRepository handles database operations for partners
type PartnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository creates a new partner repository
func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

var _ PartnerRepositoryInterface = (*PartnerRepository)(nil)

// Create creates a new partner
func (r *PartnerRepository) Create(partner *models.Partner) error {
	return r.db.Omit("Tags", "PrimaryContact").Create(partner).Error
}

// CreateWithPrimaryContact creates the partner and its primary contact in one transaction
func (r *PartnerRepository) CreateWithPrimaryContact(partner *models.Partner, contact *models.Contact) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "PrimaryContact").Create(partner).Error; err != nil {
			return err
		}
		contact.PartnerID = partner.ID
		if err := tx.Omit("Tags").Create(contact).Error; err != nil {
			return err
		}
		partner.PrimaryContactID = &contact.ID
		return tx.Model(partner).Update("primary_contact_id", contact.ID).Error
	})
}

// GetByID retrieves a company's partner with tags and primary contact
func (r *PartnerRepository) GetByID(companyID, id uuid.UUID) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.
		Preload("Tags").
		Preload("PrimaryContact").
		First(&partner, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// List lists partners matching the filter. Tag filtering is all-of.
func (r *PartnerRepository) List(filter PartnerFilter) ([]models.Partner, int64, error) {
	var partners []models.Partner
	var total int64

	query := r.db.Model(&models.Partner{}).Where("prm_partners.company_id = ?", filter.CompanyID)
	if filter.Archived {
		query = query.Where("prm_partners.archived_on IS NOT NULL")
	} else {
		query = query.Where("prm_partners.archived_on IS NULL")
	}
	if filter.Query != "" {
		query = query.Where("prm_partners.name ILIKE ?", "%"+escapeLike(filter.Query)+"%")
	}
	for _, tag := range filter.Tags {
		query = query.Where(`EXISTS (SELECT 1 FROM prm_partner_tags pt JOIN prm_tags t ON t.id = pt.tag_id
			WHERE pt.partner_id = prm_partners.id AND lower(t.name) = ?)`, strings.ToLower(tag))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "prm_partners.name ASC"
	if filter.SortBy == "-created_at" {
		order = "prm_partners.created_at DESC"
	}
	err := query.Preload("Tags").Order(order).Limit(filter.Limit).Offset(filter.Offset).Find(&partners).Error
	if err != nil {
		return nil, 0, err
	}

	return partners, total, nil
}

// Update updates a partner's own columns
func (r *PartnerRepository) Update(partner *models.Partner) error {
	return r.db.Omit("Tags", "PrimaryContact").Save(partner).Error
}

// ReplaceTags replaces the partner's tags
func (r *PartnerRepository) ReplaceTags(partner *models.Partner, tags []models.Tag) error {
	if err := r.db.Model(partner).Association("Tags").Replace(tags); err != nil {
		return err
	}
	partner.Tags = tags
	return nil
}

// SetArchived archives (non-nil at) or restores a partner
func (r *PartnerRepository) SetArchived(companyID, id uuid.UUID, at *time.Time) error {
	res := r.db.Model(&models.Partner{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("archived_on", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearPrimaryContact unsets the primary contact when it is contactID
func (r *PartnerRepository) ClearPrimaryContact(partnerID, contactID uuid.UUID) error {
	return r.db.Model(&models.Partner{}).
		Where("id = ? AND primary_contact_id = ?", partnerID, contactID).
		Update("primary_contact_id", nil).Error
}

// ContactRepository handles database operations for partner contacts
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ ContactRepositoryInterface = (*ContactRepository)(nil)

// Create creates a new contact
func (r *ContactRepository) Create(contact *models.Contact) error {
	return r.db.Omit("Tags").Create(contact).Error
}

// GetByID retrieves a partner's contact
func (r *ContactRepository) GetByID(partnerID, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Preload("Tags").First(&contact, "id = ? AND partner_id = ?", id, partnerID).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListByPartner lists a partner's live or archived contacts
func (r *ContactRepository) ListByPartner(partnerID uuid.UUID, archived bool) ([]models.Contact, error) {
	var contacts []models.Contact
	query := r.db.Preload("Tags").Where("partner_id = ?", partnerID)
	if archived {
		query = query.Where("archived_on IS NOT NULL")
	} else {
		query = query.Where("archived_on IS NULL")
	}
	err := query.Order("name").Find(&contacts).Error
	return contacts, err
}

// Update updates a contact's own columns
func (r *ContactRepository) Update(contact *models.Contact) error {
	return r.db.Omit("Tags").Save(contact).Error
}

// ReplaceTags replaces the contact's tags
func (r *ContactRepository) ReplaceTags(contact *models.Contact, tags []models.Tag) error {
	if err := r.db.Model(contact).Association("Tags").Replace(tags); err != nil {
		return err
	}
	contact.Tags = tags
	return nil
}

// SetArchived archives (non-nil at) or restores a contact
func (r *ContactRepository) SetArchived(partnerID, id uuid.UUID, at *time.Time) error {
	res := r.db.Model(&models.Contact{}).
		Where("id = ? AND partner_id = ?", id, partnerID).
		Update("archived_on", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ContactRecordRepository handles database operations for communication records
type ContactRecordRepository struct {
	db *gorm.DB
}

// NewContactRecordRepository creates a new contact record repository
func NewContactRecordRepository(db *gorm.DB) *ContactRecordRepository {
	return &ContactRecordRepository{db: db}
}

var _ ContactRecordRepositoryInterface = (*ContactRecordRepository)(nil)

// Create creates a new contact record
func (r *ContactRecordRepository) Create(record *models.ContactRecord) error {
	return r.db.Omit("Tags", "Contact").Create(record).Error
}

// GetByID retrieves a partner's contact record
func (r *ContactRecordRepository) GetByID(partnerID, id uuid.UUID) (*models.ContactRecord, error) {
	var record models.ContactRecord
	err := r.db.
		Preload("Tags").
		Preload("Contact").
		First(&record, "id = ? AND partner_id = ?", id, partnerID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List lists a partner's records, newest first
func (r *ContactRecordRepository) List(filter ContactRecordFilter) ([]models.ContactRecord, int64, error) {
	var records []models.ContactRecord
	var total int64

	query := r.db.Model(&models.ContactRecord{}).Where("partner_id = ?", filter.PartnerID)
	if filter.Archived {
		query = query.Where("archived_on IS NOT NULL")
	} else {
		query = query.Where("archived_on IS NULL")
	}
	if filter.ContactID != nil {
		query = query.Where("contact_id = ?", *filter.ContactID)
	}
	if filter.ContactType != "" {
		query = query.Where("contact_type = ?", filter.ContactType)
	}
	if filter.From != nil {
		query = query.Where("date_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date_time < ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Tags").Preload("Contact").
		Order("date_time DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Update updates a record's own columns
func (r *ContactRecordRepository) Update(record *models.ContactRecord) error {
	return r.db.Omit("Tags", "Contact").Save(record).Error
}

// ReplaceTags replaces the record's tags
func (r *ContactRecordRepository) ReplaceTags(record *models.ContactRecord, tags []models.Tag) error {
	if err := r.db.Model(record).Association("Tags").Replace(tags); err != nil {
		return err
	}
	record.Tags = tags
	return nil
}

// SetArchived archives (non-nil at) or restores a record
func (r *ContactRecordRepository) SetArchived(partnerID, id uuid.UUID, at *time.Time) error {
	res := r.db.Model(&models.ContactRecord{}).
		Where("id = ? AND partner_id = ?", id, partnerID).
		Update("archived_on", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ContactLogRepository handles the PRM activity log
type ContactLogRepository struct {
	db *gorm.DB
}

// NewContactLogRepository creates a new contact log repository
func NewContactLogRepository(db *gorm.DB) *ContactLogRepository {
	return &ContactLogRepository{db: db}
}

var _ ContactLogRepositoryInterface = (*ContactLogRepository)(nil)

// Create writes a log entry
func (r *ContactLogRepository) Create(entry *models.ContactLogEntry) error {
	return r.db.Create(entry).Error
}

// ListByPartner lists a partner's log entries, newest first
func (r *ContactLogRepository) ListByPartner(companyID, partnerID uuid.UUID, limit, offset int) ([]models.ContactLogEntry, int64, error) {
	var entries []models.ContactLogEntry
	var total int64

	query := r.db.Model(&models.ContactLogEntry{}).Where("company_id = ? AND partner_id = ?", companyID, partnerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
