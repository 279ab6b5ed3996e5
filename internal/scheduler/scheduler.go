// Package scheduler runs the periodic maintenance jobs of the worker.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"myjobs/internal/logger"

	"github.com/go-co-op/gocron/v2"
)

const (
	JobSendDigests         = "send_digests"
	JobExpireJobs          = "expire_jobs"
	JobPurchaseExpiryEmail = "purchase_expiry_notices"
)

type DigestSender interface {
	SendDigests(ctx context.Context, now time.Time) (int, error)
}

type JobExpirer interface {
	ExpireJobs(ctx context.Context, now time.Time) (int, error)
}

type PurchaseNotifier interface {
	SendPurchaseExpiryNotices(ctx context.Context, now time.Time) (int, error)
}

type Deps struct {
	Digests   DigestSender
	Jobs      JobExpirer
	Purchases PurchaseNotifier
}

// Scheduler wraps a gocron scheduler with the three recurring jobs
type Scheduler struct {
	cron gocron.Scheduler
	deps Deps
	ctx  context.Context
	now  func() time.Time
}

// New registers digests daily at digestHour, job expiry hourly and purchase
// expiry notices daily at digestHour+1.
func New(ctx context.Context, deps Deps, digestHour int, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	cron, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	s := &Scheduler{cron: cron, deps: deps, ctx: ctx, now: time.Now}

	jobs := []struct {
		name       string
		definition gocron.JobDefinition
		run        func()
	}{
		{JobSendDigests, gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(digestHour), 0, 0))), s.runDigests},
		{JobExpireJobs, gocron.DurationJob(time.Hour), s.runExpireJobs},
		{JobPurchaseExpiryEmail, gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint((digestHour+1)%24), 0, 0))), s.runPurchaseNotices},
	}
	for _, j := range jobs {
		_, err := cron.NewJob(
			j.definition,
			gocron.NewTask(j.run),
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", j.name, err)
		}
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.cron.Shutdown()
}

// Names lists the registered job names
func (s *Scheduler) Names() []string {
	var names []string
	for _, j := range s.cron.Jobs() {
		names = append(names, j.Name())
	}
	return names
}

func (s *Scheduler) runDigests() {
	s.report(JobSendDigests, func(now time.Time) (int, error) { return s.deps.Digests.SendDigests(s.ctx, now) })
}

func (s *Scheduler) runExpireJobs() {
	s.report(JobExpireJobs, func(now time.Time) (int, error) { return s.deps.Jobs.ExpireJobs(s.ctx, now) })
}

func (s *Scheduler) runPurchaseNotices() {
	s.report(JobPurchaseExpiryEmail, func(now time.Time) (int, error) {
		return s.deps.Purchases.SendPurchaseExpiryNotices(s.ctx, now)
	})
}

func (s *Scheduler) report(name string, fn func(time.Time) (int, error)) {
	start := s.now()
	n, err := fn(start)
	entry := logger.New().WithFields(map[string]interface{}{
		"job":      name,
		"count":    n,
		"duration": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Error("scheduled job failed")
		return
	}
	entry.Info("scheduled job finished")
}
