package repository

import (
	"context"
	"fmt"

	"myjobs/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository handles database operations for reports and runs their queries
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

var _ ReportRepositoryInterface = (*ReportRepository)(nil)

// Create creates a new report
func (r *ReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a company's report
func (r *ReportRepository) GetByID(companyID, id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, "id = ? AND company_id = ?", id, companyID).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ListByCompany lists a company's reports without their results
func (r *ReportRepository) ListByCompany(companyID uuid.UUID, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := r.db.Model(&models.Report{}).Where("company_id = ?", companyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Omit("results").Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// Update updates a report
func (r *ReportRepository) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

// Delete deletes a company's report
func (r *ReportRepository) Delete(companyID, id uuid.UUID) error {
	res := r.db.Delete(&models.Report{}, "id = ? AND company_id = ?", id, companyID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Execute runs a prepared statement with $n placeholders and returns rows keyed by column name.
// The statement goes straight to the pool so gorm does not rewrite its placeholders.
func (r *ReportRepository) Execute(ctx context.Context, sql string, args []interface{}) ([]map[string]interface{}, error) {
	db := r.db.WithContext(ctx)
	rows, err := db.ConnPool.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("execute report query: %w", err)
	}
	defer rows.Close()

	var out []map[string]interface{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := db.ScanRows(rows, &row); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
