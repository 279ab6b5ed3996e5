package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"myjobs/internal/auth"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/logger"
	"myjobs/internal/reporting"
	"myjobs/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReportService builds, runs and renders dynamic reports over the company's PRM data
type ReportService struct {
	repo      repository.ReportRepositoryInterface
	registry  *reporting.Registry
	validator *validator.Validate
	now       func() time.Time
}

// NewReportService creates a new report service
func NewReportService(repo repository.ReportRepositoryInterface, registry *reporting.Registry, validator *validator.Validate) *ReportService {
	return &ReportService{
		repo:      repo,
		registry:  registry,
		validator: validator,
		now:       time.Now,
	}
}

// ReportRequest defines a report
type ReportRequest struct {
	Name       string          `json:"name" validate:"required,max=255"`
	ReportType string          `json:"report_type" validate:"required"`
	DataType   string          `json:"data_type" validate:"required"`
	Filters    json.RawMessage `json:"filters"`
	Values     []string        `json:"values"`
	OrderBy    string          `json:"order_by" validate:"max=100"`
}

// ReportResponse is a report with its stored rows
type ReportResponse struct {
	models.Report
	Results []reporting.Row `json:"results"`
}

// ReportListResponse represents a paginated list of reports
type ReportListResponse struct {
	Reports  []models.Report `json:"reports"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ListReportTypes lists the known report types
func (s *ReportService) ListReportTypes() []reporting.ReportType {
	return s.registry.ReportTypes
}

// ListDataTypes lists the data types of a report type with their columns
func (s *ReportService) ListDataTypes(reportType string) ([]reporting.DataType, error) {
	return s.registry.DataTypesFor(reportType)
}

// CreateReport stores a report definition and runs it
func (s *ReportService) CreateReport(ctx context.Context, caller auth.Caller, req *ReportRequest) (*ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	dt, err := s.dataType(req.ReportType, req.DataType)
	if err != nil {
		return nil, err
	}
	filters, err := parseFilters(req.Filters)
	if err != nil {
		return nil, err
	}
	// reject bad definitions before anything is stored
	if _, err := reporting.Build(dt, caller.CompanyID, filters, req.Values, req.OrderBy); err != nil {
		return nil, err
	}

	values, err := json.Marshal(nonNilStrings(req.Values))
	if err != nil {
		return nil, fmt.Errorf("failed to encode report values: %w", err)
	}
	report := &models.Report{
		CompanyID:  caller.CompanyID,
		Name:       strings.TrimSpace(req.Name),
		ReportType: req.ReportType,
		DataType:   req.DataType,
		Filters:    normalizedFilters(req.Filters),
		Values:     values,
		OrderBy:    req.OrderBy,
	}
	if caller.UserID != uuid.Nil {
		uid := caller.UserID
		report.CreatedByID = &uid
	}
	if err := s.repo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return s.run(ctx, report)
}

// ListReports lists the company's reports, newest first
func (s *ReportService) ListReports(companyID uuid.UUID, page, pageSize int) (*ReportListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	reports, total, err := s.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return &ReportListResponse{Reports: reports, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetReport retrieves a report with its stored rows
func (s *ReportService) GetReport(companyID, id uuid.UUID) (*ReportResponse, error) {
	report, err := s.repo.GetByID(companyID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrReportNotFound, "get report")
	}
	rows, err := storedRows(report)
	if err != nil {
		return nil, err
	}
	return &ReportResponse{Report: *report, Results: rows}, nil
}

// RerunReport runs a stored report again and replaces its results
func (s *ReportService) RerunReport(ctx context.Context, companyID, id uuid.UUID) (*ReportResponse, error) {
	report, err := s.repo.GetByID(companyID, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrReportNotFound, "get report")
	}
	return s.run(ctx, report)
}

// DeleteReport deletes a report
func (s *ReportService) DeleteReport(companyID, id uuid.UUID) error {
	if err := s.repo.Delete(companyID, id); err != nil {
		return notFound(err, apperrors.ErrReportNotFound, "delete report")
	}
	return nil
}

// Download renders a report's stored rows. values picks and orders the columns and
// orderBy ("field" or "-field") re-sorts the rows; both fall back to the report's own.
func (s *ReportService) Download(companyID, id uuid.UUID, format string, values []string, orderBy string, w io.Writer) (reporting.PresentationType, error) {
	p, err := reporting.ParsePresentation(format)
	if err != nil {
		return "", err
	}
	report, err := s.repo.GetByID(companyID, id)
	if err != nil {
		return "", notFound(err, apperrors.ErrReportNotFound, "get report")
	}
	if report.RunAt == nil {
		return "", apperrors.ErrReportNotRun
	}
	dt, err := s.registry.DataType(report.DataType)
	if err != nil {
		return "", err
	}

	if len(values) == 0 {
		values, err = storedValues(report)
		if err != nil {
			return "", err
		}
	}
	cols, err := dt.ResolveColumns(values)
	if err != nil {
		return "", err
	}
	rows, err := storedRows(report)
	if err != nil {
		return "", err
	}
	if orderBy != "" {
		if err := sortRows(dt, rows, orderBy); err != nil {
			return "", err
		}
	}

	if err := reporting.Render(w, p, cols, rows); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return p, nil
}

// Help suggests up to ten distinct values of a field starting with partial
func (s *ReportService) Help(ctx context.Context, companyID uuid.UUID, dataType, field, partial string) ([]string, error) {
	dt, err := s.registry.DataType(dataType)
	if err != nil {
		return nil, err
	}
	q, err := reporting.BuildHelp(dt, companyID, field, partial)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Execute(ctx, q.SQL, q.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to run help query: %w", err)
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if v, ok := r["value"]; ok && v != nil {
			out = append(out, fmt.Sprint(v))
		}
	}
	return out, nil
}

func (s *ReportService) run(ctx context.Context, report *models.Report) (*ReportResponse, error) {
	dt, err := s.registry.DataType(report.DataType)
	if err != nil {
		return nil, err
	}
	filters, err := parseFilters(report.Filters)
	if err != nil {
		return nil, err
	}
	values, err := storedValues(report)
	if err != nil {
		return nil, err
	}
	q, err := reporting.Build(dt, report.CompanyID, filters, values, report.OrderBy)
	if err != nil {
		return nil, err
	}

	raw, err := s.repo.Execute(ctx, q.SQL, q.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to run report: %w", err)
	}
	rows := make([]reporting.Row, len(raw))
	for i, r := range raw {
		rows[i] = reporting.Row(r)
	}

	results, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report results: %w", err)
	}
	now := s.now()
	report.Results = results
	report.RowCount = len(rows)
	report.RunAt = &now
	if err := s.repo.Update(report); err != nil {
		return nil, fmt.Errorf("failed to save report results: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"report_id": report.ID,
		"data_type": report.DataType,
		"rows":      report.RowCount,
	}).Info("report run")

	// round trip so the response matches what GetReport returns
	stored, err := storedRows(report)
	if err != nil {
		return nil, err
	}
	return &ReportResponse{Report: *report, Results: stored}, nil
}

func (s *ReportService) dataType(reportType, dataType string) (*reporting.DataType, error) {
	rt, err := s.registry.ReportType(reportType)
	if err != nil {
		return nil, err
	}
	for _, name := range rt.DataTypes {
		if name == dataType {
			return s.registry.DataType(name)
		}
	}
	return nil, apperrors.ErrDataTypeNotFound
}

func parseFilters(raw json.RawMessage) (reporting.Filters, error) {
	filters := reporting.Filters{}
	if len(raw) == 0 || string(raw) == "null" {
		return filters, nil
	}
	if err := json.Unmarshal(raw, &filters); err != nil {
		return nil, fmt.Errorf("%w: filters must be a JSON object", apperrors.ErrInvalidFilter)
	}
	return filters, nil
}

func normalizedFilters(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage(`{}`)
	}
	return raw
}

func storedValues(r *models.Report) ([]string, error) {
	var values []string
	if len(r.Values) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(r.Values, &values); err != nil {
		return nil, fmt.Errorf("failed to decode report values: %w", err)
	}
	return values, nil
}

func storedRows(r *models.Report) ([]reporting.Row, error) {
	rows := []reporting.Row{}
	if len(r.Results) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(r.Results, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode report results: %w", err)
	}
	return rows, nil
}

// sortRows orders rows by a field, descending when prefixed with "-"
func sortRows(dt *reporting.DataType, rows []reporting.Row, orderBy string) error {
	desc := strings.HasPrefix(orderBy, "-")
	field := strings.TrimPrefix(orderBy, "-")
	if _, ok := dt.Column(field); !ok {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidColumn, field)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return lessValue(rows[j][field], rows[i][field])
		}
		return lessValue(rows[i][field], rows[j][field])
	})
	return nil
}

// lessValue compares decoded JSON values. Nulls sort first.
func lessValue(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	if fa, ok := a.(float64); ok {
		if fb, ok := b.(float64); ok {
			return fa < fb
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return !ba && bb
		}
	}
	return strings.ToLower(fmt.Sprint(a)) < strings.ToLower(fmt.Sprint(b))
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
