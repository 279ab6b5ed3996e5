package service

import (
	"context"
	"fmt"
	"time"

	"myjobs/internal/analytics"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/logger"
	"myjobs/internal/repository"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
)

const defaultAnalyticsWindow = 30 * 24 * time.Hour

// AnalyticsService records redirect clicks and answers the company dashboards
type AnalyticsService struct {
	store    analytics.Store
	units    repository.BusinessUnitRepositoryInterface
	attempts uint
	delay    time.Duration
	now      func() time.Time
}

// NewAnalyticsService creates a new analytics service. store may be nil when analytics is not configured.
func NewAnalyticsService(store analytics.Store, units repository.BusinessUnitRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{
		store:    store,
		units:    units,
		attempts: 5,
		delay:    100 * time.Millisecond,
		now:      time.Now,
	}
}

// AnalyticsQuery is a dashboard request. Missing bounds default to the last 30 days.
type AnalyticsQuery struct {
	Start    *time.Time `form:"start" time_format:"2006-01-02"`
	End      *time.Time `form:"end" time_format:"2006-01-02"`
	Interval string     `form:"interval"`
	Limit    int        `form:"limit"`
}

// RecordClick stores one click, retrying with exponential backoff
func (s *AnalyticsService) RecordClick(ctx context.Context, click analytics.Click) error {
	if s.store == nil {
		return apperrors.ErrAnalyticsNotConfigured
	}
	return retry.Do(
		func() error { return s.store.Record(ctx, click) },
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.WithContext(ctx).WithError(err).WithField("attempt", n+1).Warn("click write failed, retrying")
		}),
	)
}

// ClicksOverTime buckets the company's clicks by day, week or month
func (s *AnalyticsService) ClicksOverTime(ctx context.Context, companyID uuid.UUID, q *AnalyticsQuery) ([]analytics.TimeBucket, error) {
	interval, err := analytics.ParseInterval(q.Interval)
	if err != nil {
		return nil, apperrors.NewValidationError("interval", err.Error())
	}
	w, ok, err := s.window(companyID, q)
	if err != nil || !ok {
		return []analytics.TimeBucket{}, err
	}
	buckets, err := s.store.ClicksOverTime(ctx, w, interval)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	return buckets, nil
}

// ClicksByViewSource ranks the company's view sources by clicks
func (s *AnalyticsService) ClicksByViewSource(ctx context.Context, companyID uuid.UUID, q *AnalyticsQuery) ([]analytics.ViewSourceCount, error) {
	w, ok, err := s.window(companyID, q)
	if err != nil || !ok {
		return []analytics.ViewSourceCount{}, err
	}
	counts, err := s.store.ClicksByViewSource(ctx, w, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	return counts, nil
}

// TopJobs ranks the company's jobs by clicks
func (s *AnalyticsService) TopJobs(ctx context.Context, companyID uuid.UUID, q *AnalyticsQuery) ([]analytics.JobCount, error) {
	w, ok, err := s.window(companyID, q)
	if err != nil || !ok {
		return []analytics.JobCount{}, err
	}
	jobs, err := s.store.TopJobs(ctx, w, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	return jobs, nil
}

// window scopes a query to the company's business units. ok is false when the company has none.
func (s *AnalyticsService) window(companyID uuid.UUID, q *AnalyticsQuery) (analytics.Window, bool, error) {
	if s.store == nil {
		return analytics.Window{}, false, apperrors.ErrAnalyticsNotConfigured
	}

	end := s.now()
	if q.End != nil {
		// End is inclusive on the day
		end = dayStart(*q.End).AddDate(0, 0, 1)
	}
	start := end.Add(-defaultAnalyticsWindow)
	if q.Start != nil {
		start = dayStart(*q.Start)
	}
	if !start.Before(end) {
		return analytics.Window{}, false, apperrors.NewValidationError("start", "must be before end")
	}

	buids, err := s.units.IDsForCompany(companyID)
	if err != nil {
		return analytics.Window{}, false, fmt.Errorf("failed to list company business units: %w", err)
	}
	if len(buids) == 0 {
		return analytics.Window{}, false, nil
	}
	return analytics.Window{BUIDs: buids, Start: start, End: end}, true, nil
}
