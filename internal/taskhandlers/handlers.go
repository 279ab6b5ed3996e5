// Package taskhandlers binds background task names to the services that process them.
package taskhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"myjobs/internal/analytics"
	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/logger"
	"myjobs/internal/mailer"
	"myjobs/internal/repository"
	"myjobs/internal/search"
	"myjobs/internal/service"
	"myjobs/internal/tasks"

	"gorm.io/gorm"
)

// Registrar accepts task handlers
type Registrar interface {
	Register(name string, h tasks.Handler)
}

// Handlers processes the tasks enqueued by the HTTP server and the scheduler
type Handlers struct {
	sender    mailer.Sender
	jobs      repository.PostedJobRepositoryInterface
	companies repository.CompanyRepositoryInterface
	index     search.Index
	imports   service.ImportServiceInterface
	analytics service.AnalyticsServiceInterface
}

// New creates the task handlers. index may be nil when search is not configured.
func New(
	sender mailer.Sender,
	jobs repository.PostedJobRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	index search.Index,
	imports service.ImportServiceInterface,
	analytics service.AnalyticsServiceInterface,
) *Handlers {
	return &Handlers{
		sender:    sender,
		jobs:      jobs,
		companies: companies,
		index:     index,
		imports:   imports,
		analytics: analytics,
	}
}

// Register binds every task this package handles
func (h *Handlers) Register(r Registrar) {
	r.Register(tasks.SendEmail, h.SendEmail)
	r.Register(tasks.IndexJob, h.IndexJob)
	r.Register(tasks.RemoveJob, h.RemoveJob)
	r.Register(tasks.ImportFeed, h.ImportFeed)
	r.Register(tasks.RecordClick, h.RecordClick)
}

// SendEmail delivers a rendered message
func (h *Handlers) SendEmail(ctx context.Context, raw json.RawMessage) error {
	var p tasks.SendEmailPayload
	if err := decode(raw, &p); err != nil {
		return err
	}
	return h.sender.Send(ctx, mailer.Message{
		To:      p.To,
		Subject: p.Subject,
		HTML:    p.HTML,
		Event:   models.EmailEvent(p.Event),
	})
}

// IndexJob pushes an approved, live posted job into the search index.
// Jobs that are gone or no longer eligible are skipped.
func (h *Handlers) IndexJob(ctx context.Context, raw json.RawMessage) error {
	var p tasks.IndexJobPayload
	if err := decode(raw, &p); err != nil {
		return err
	}
	if h.index == nil {
		return apperrors.ErrSearchNotConfigured
	}
	log := logger.WithContext(ctx).WithField("guid", p.GUID)

	job, err := h.jobs.GetByGUID(p.GUID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn("posted job not found, skipping index")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get posted job: %w", err)
	}
	if !job.IsApproved || job.IsExpired {
		log.Info("posted job is not live, skipping index")
		return nil
	}

	doc := postedJobDocument(job)
	if company, err := h.companies.GetByID(job.CompanyID); err == nil {
		doc.Company = company.Name
	}
	if err := h.index.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("failed to index posted job: %w", err)
	}
	return nil
}

// RemoveJob deletes a job from the search index
func (h *Handlers) RemoveJob(ctx context.Context, raw json.RawMessage) error {
	var p tasks.RemoveJobPayload
	if err := decode(raw, &p); err != nil {
		return err
	}
	if h.index == nil {
		return apperrors.ErrSearchNotConfigured
	}
	if err := h.index.Delete(ctx, p.GUID); err != nil {
		return fmt.Errorf("failed to remove job from index: %w", err)
	}
	return nil
}

// ImportFeed imports a feed file for one business unit
func (h *Handlers) ImportFeed(ctx context.Context, raw json.RawMessage) error {
	var p tasks.ImportFeedPayload
	if err := decode(raw, &p); err != nil {
		return err
	}
	f, err := os.Open(p.Path)
	if err != nil {
		return fmt.Errorf("failed to open feed: %w", err)
	}
	defer f.Close()

	summary, err := h.imports.ImportFeed(ctx, p.BUID, f)
	if err != nil {
		return err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"buid":   p.BUID,
		"status": summary.Record.Status,
	}).Info("feed import task finished")
	return nil
}

// RecordClick stores a redirect click in the analytics store
func (h *Handlers) RecordClick(ctx context.Context, raw json.RawMessage) error {
	var p tasks.RecordClickPayload
	if err := decode(raw, &p); err != nil {
		return err
	}
	return h.analytics.RecordClick(ctx, analytics.Click{
		GUID:       p.GUID,
		BUID:       p.BUID,
		ViewSource: p.ViewSource,
		URL:        p.URL,
		Referrer:   p.Referrer,
		UserAgent:  p.UserAgent,
		IP:         p.IP,
		At:         p.At,
	})
}

func postedJobDocument(job *models.PostedJob) search.JobDocument {
	parts := make([]string, 0, 2)
	for _, s := range []string{job.City, job.State} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return search.JobDocument{
		ID:          job.GUID,
		GUID:        job.GUID,
		BUID:        job.BUID,
		Title:       job.Title,
		City:        job.City,
		State:       job.State,
		Country:     job.Country,
		Location:    strings.Join(parts, ", "),
		Description: job.Description,
		DateNew:     job.CreatedAt.Unix(),
		URL:         job.ApplyURL(),
		IsPosted:    true,
	}
}

func decode(raw json.RawMessage, dest interface{}) error {
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("invalid task payload: %w", err)
	}
	return nil
}
