package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/feed"
	"myjobs/internal/logger"
	"myjobs/internal/repository"
	"myjobs/internal/search"
)

// ImportService loads business unit job feeds into redirects and the job index
type ImportService struct {
	units     repository.BusinessUnitRepositoryInterface
	redirects repository.RedirectRepositoryInterface
	records   repository.ImportRecordRepositoryInterface
	index     search.Index
}

// NewImportService creates a new import service. index may be nil when search is not configured.
func NewImportService(units repository.BusinessUnitRepositoryInterface, redirects repository.RedirectRepositoryInterface, records repository.ImportRecordRepositoryInterface, index search.Index) *ImportService {
	return &ImportService{
		units:     units,
		redirects: redirects,
		records:   records,
		index:     index,
	}
}

// ImportSummary is the audit row of one import plus the entries that were skipped
type ImportSummary struct {
	Record      models.ImportRecord `json:"record"`
	EntryErrors []feed.EntryError   `json:"entry_errors"`
}

// ImportFeed parses a feed for one business unit, upserts a redirect and an
// index document per job, and expires the unit's jobs missing from the feed.
// Every run, including a failed parse, is audited in the QC database.
func (s *ImportService) ImportFeed(ctx context.Context, buid int, r io.Reader) (*ImportSummary, error) {
	log := logger.WithContext(ctx).WithField("buid", buid)

	if _, err := s.units.GetByID(buid); err != nil {
		return nil, notFound(err, apperrors.ErrBusinessUnitNotFound, "get business unit")
	}

	record := models.ImportRecord{BUID: buid, StartedAt: time.Now()}
	summary := &ImportSummary{EntryErrors: []feed.EntryError{}}

	parsed, err := feed.Parse(r, buid)
	if err != nil {
		record.Status = models.ImportStatusFailed
		record.Message = err.Error()
		s.audit(ctx, &record)
		return nil, err
	}
	summary.EntryErrors = append(summary.EntryErrors, parsed.Errors...)
	record.Errors = len(parsed.Errors)

	keep := make([]string, 0, len(parsed.Jobs))
	for i := range parsed.Jobs {
		job := &parsed.Jobs[i]
		created, err := s.redirects.Upsert(redirectFromJob(job))
		if err != nil {
			record.Errors++
			summary.EntryErrors = append(summary.EntryErrors, feed.EntryError{Index: i, GUID: job.GUID, Reason: "redirect: " + err.Error()})
			continue
		}
		keep = append(keep, job.GUID)
		if created {
			record.Added++
		} else {
			record.Updated++
		}

		if s.index != nil {
			if err := s.index.Upsert(ctx, documentFromJob(job)); err != nil {
				record.Errors++
				summary.EntryErrors = append(summary.EntryErrors, feed.EntryError{Index: i, GUID: job.GUID, Reason: "index: " + err.Error()})
			}
		}
	}

	expired, err := s.redirects.ExpireMissing(buid, keep, time.Now())
	if err != nil {
		record.Status = models.ImportStatusFailed
		record.Message = fmt.Sprintf("failed to expire missing jobs: %v", err)
		s.audit(ctx, &record)
		return nil, fmt.Errorf("failed to expire missing jobs: %w", err)
	}
	record.Expired = int(expired)

	if s.index != nil {
		removed, err := s.index.DeleteByBUID(ctx, buid, keep)
		if err != nil {
			record.Errors++
			record.Message = fmt.Sprintf("failed to remove expired jobs from index: %v", err)
		} else {
			log.WithField("removed", removed).Debug("removed expired jobs from index")
		}
	}

	record.Status = models.ImportStatusSuccess
	if record.Errors > 0 {
		record.Status = models.ImportStatusPartial
	}
	s.audit(ctx, &record)
	summary.Record = record

	log.WithFields(map[string]interface{}{
		"added":   record.Added,
		"updated": record.Updated,
		"expired": record.Expired,
		"errors":  record.Errors,
	}).Info("feed imported")
	return summary, nil
}

// ListImports lists the latest import audits of a business unit
func (s *ImportService) ListImports(buid, limit int) ([]models.ImportRecord, error) {
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	records, err := s.records.ListByBUID(buid, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	return records, nil
}

func (s *ImportService) audit(ctx context.Context, record *models.ImportRecord) {
	record.FinishedAt = time.Now()
	if err := s.records.Create(record); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("buid", record.BUID).Error("failed to write import record")
	}
}

func redirectFromJob(job *feed.Job) *models.Redirect {
	newDate := job.DateNew
	if newDate.IsZero() {
		newDate = time.Now()
	}
	return &models.Redirect{
		GUID:        job.GUID,
		BUID:        job.BUID,
		URL:         job.URL,
		Title:       job.Title,
		CompanyName: job.CompanyName,
		NewDate:     newDate,
	}
}

func documentFromJob(job *feed.Job) search.JobDocument {
	newDate := job.DateNew
	if newDate.IsZero() {
		newDate = time.Now()
	}
	return search.JobDocument{
		ID:          job.GUID,
		GUID:        job.GUID,
		BUID:        job.BUID,
		Title:       job.Title,
		Company:     job.CompanyName,
		City:        job.City,
		State:       job.State,
		Country:     job.Country,
		Location:    job.Location(),
		Description: job.Description,
		DateNew:     newDate.Unix(),
		URL:         job.URL,
	}
}
