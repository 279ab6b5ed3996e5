package app

import (
	"context"
	"fmt"

	"myjobs/internal/scheduler"
	"myjobs/internal/taskhandlers"
	"myjobs/internal/tasks"
)

// Background is the task worker plus the recurring job scheduler
type Background struct {
	Worker    *tasks.Worker
	Scheduler *scheduler.Scheduler
}

// StartBackground registers every task handler, starts consuming the queue and
// starts the digest, expiry and purchase notice schedule.
func (a *App) StartBackground(ctx context.Context) (*Background, error) {
	worker := tasks.NewWorker(a.Infra.Queue, a.Config.TaskConcurrency, a.Config.TaskMaxDeliver)
	taskhandlers.New(
		a.Infra.Mailer,
		a.Repos.PostedJobs,
		a.Repos.Companies,
		a.Infra.Index,
		a.Services.Import,
		a.Services.Analytics,
	).Register(worker)

	if err := worker.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start worker: %w", err)
	}

	sched, err := scheduler.New(ctx, scheduler.Deps{
		Digests:   a.Services.SavedSearch,
		Jobs:      a.Services.Postajob,
		Purchases: a.Services.Email,
	}, a.Config.DigestHour, nil)
	if err != nil {
		worker.Stop()
		return nil, err
	}
	sched.Start()

	return &Background{Worker: worker, Scheduler: sched}, nil
}

// Stop stops the schedule, then waits for in-flight tasks
func (b *Background) Stop() error {
	err := b.Scheduler.Shutdown()
	b.Worker.Stop()
	return err
}
