package repository

import (
	"time"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListByCompany lists the products a company sells
func (r *ProductRepository) ListByCompany(companyID uuid.UUID, displayedOnly bool) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Where("company_id = ?", companyID)
	if displayedOnly {
		query = query.Where("is_displayed = ?", true)
	}
	err := query.Order("name").Find(&products).Error
	return products, err
}

// Update updates a product
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete deletes a product
func (r *ProductRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurchaseRepository handles database operations for purchases
type PurchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

var _ PurchaseRepositoryInterface = (*PurchaseRepository)(nil)

// Create creates a new purchase
func (r *PurchaseRepository) Create(purchase *models.Purchase) error {
	return r.db.Omit("Product").Create(purchase).Error
}

// GetByID retrieves a purchase with its product
func (r *PurchaseRepository) GetByID(id uuid.UUID) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := r.db.Preload("Product").First(&purchase, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

// ListByCompany lists a purchaser's purchases, newest first
func (r *PurchaseRepository) ListByCompany(companyID uuid.UUID) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Preload("Product").Where("company_id = ?", companyID).Order("purchase_date DESC").Find(&purchases).Error
	return purchases, err
}

// ExpiringOn lists purchases whose expiration falls on the given calendar day
func (r *PurchaseRepository) ExpiringOn(day time.Time) ([]models.Purchase, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var purchases []models.Purchase
	err := r.db.Preload("Product").
		Where("expiration_date >= ? AND expiration_date < ?", start, start.AddDate(0, 0, 1)).
		Find(&purchases).Error
	return purchases, err
}

// PostedJobRepository handles database operations for posted jobs
type PostedJobRepository struct {
	db *gorm.DB
}

// NewPostedJobRepository creates a new posted job repository
func NewPostedJobRepository(db *gorm.DB) *PostedJobRepository {
	return &PostedJobRepository{db: db}
}

var _ PostedJobRepositoryInterface = (*PostedJobRepository)(nil)

// CreateForPurchase locks the purchase, takes one job from its allowance
// unless it is unlimited, and creates the job in the same transaction.
func (r *PostedJobRepository) CreateForPurchase(job *models.PostedJob, purchaseID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var purchase models.Purchase
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&purchase, "id = ?", purchaseID).Error
		if err != nil {
			return err
		}
		if !purchase.Unlimited() {
			if purchase.JobsRemaining <= 0 {
				return apperrors.ErrNoJobsRemaining
			}
			if err := tx.Model(&purchase).Update("jobs_remaining", gorm.Expr("jobs_remaining - 1")).Error; err != nil {
				return err
			}
		}
		job.PurchaseID = &purchase.ID
		return tx.Create(job).Error
	})
}

// GetByID retrieves a posted job by ID
func (r *PostedJobRepository) GetByID(id uuid.UUID) (*models.PostedJob, error) {
	var job models.PostedJob
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByGUID retrieves a posted job by GUID
func (r *PostedJobRepository) GetByGUID(guid string) (*models.PostedJob, error) {
	var job models.PostedJob
	if err := r.db.First(&job, "guid = ?", guid).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// ListByCompany lists a company's posted jobs with pagination
func (r *PostedJobRepository) ListByCompany(companyID uuid.UUID, limit, offset int) ([]models.PostedJob, int64, error) {
	var jobs []models.PostedJob
	var total int64

	query := r.db.Model(&models.PostedJob{}).Where("company_id = ?", companyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// ListPendingApproval lists unapproved live jobs bought from any of the seller companies' products
func (r *PostedJobRepository) ListPendingApproval(sellerIDs []uuid.UUID) ([]models.PostedJob, error) {
	var jobs []models.PostedJob
	err := r.db.
		Joins("JOIN postajob_purchases pu ON pu.id = postajob_jobs.purchase_id").
		Joins("JOIN postajob_products pr ON pr.id = pu.product_id").
		Where("pr.company_id IN ? AND postajob_jobs.is_approved = ? AND postajob_jobs.is_expired = ?", sellerIDs, false, false).
		Order("postajob_jobs.created_at").
		Find(&jobs).Error
	return jobs, err
}

// Update updates a posted job
func (r *PostedJobRepository) Update(job *models.PostedJob) error {
	return r.db.Save(job).Error
}

// Delete deletes a posted job
func (r *PostedJobRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.PostedJob{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListExpirable lists live jobs whose expiration date is before the given time
func (r *PostedJobRepository) ListExpirable(before time.Time) ([]models.PostedJob, error) {
	var jobs []models.PostedJob
	err := r.db.Where("is_expired = ? AND date_expired < ?", false, before).Find(&jobs).Error
	return jobs, err
}

// MarkExpired flags jobs as expired
func (r *PostedJobRepository) MarkExpired(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.PostedJob{}).Where("id IN ?", ids).Update("is_expired", true).Error
}
