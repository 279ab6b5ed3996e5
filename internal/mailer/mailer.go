// Package mailer renders email templates and delivers them through notify.
package mailer

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer_mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"myjobs/internal/database/models"
	"myjobs/internal/logger"

	"github.com/nikoksr/notify"
	"github.com/nikoksr/notify/service/mail"
	"github.com/nikoksr/notify/service/mailgun"
)

// Message is one rendered email to a single recipient
type Message struct {
	To      string            `json:"to"`
	Subject string            `json:"subject"`
	HTML    string            `json:"html"`
	Event   models.EmailEvent `json:"event"`
}

// Sender delivers a message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogRecorder persists send attempts
type LogRecorder interface {
	Create(entry *models.EmailLog) error
}

type Options struct {
	SenderAddress string
	MailgunDomain string
	MailgunAPIKey string
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
}

type notifier interface {
	Send(ctx context.Context, subject, message string) error
}

// Mailer sends through Mailgun and/or SMTP. With neither configured it only logs.
type Mailer struct {
	opts      Options
	logs      LogRecorder
	now       func() time.Time
	newClient func(to string) notifier
}

var _ Sender = (*Mailer)(nil)

func New(opts Options, logs LogRecorder) *Mailer {
	m := &Mailer{opts: opts, logs: logs, now: time.Now}
	m.newClient = m.client
	return m
}

// Enabled reports whether a real delivery service is configured
func (m *Mailer) Enabled() bool {
	return m.opts.MailgunAPIKey != "" || m.opts.SMTPHost != ""
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		logger.WithContext(ctx).WithField("event", msg.Event).Warn("no recipient for email, skipping")
		return nil
	}

	var sendErr error
	if m.Enabled() {
		sendErr = m.newClient(msg.To).Send(ctx, msg.Subject, msg.HTML)
	} else {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"to":      msg.To,
			"subject": msg.Subject,
			"event":   msg.Event,
		}).Info("email delivery not configured, message logged only")
	}

	entry := &models.EmailLog{
		To:      msg.To,
		Subject: msg.Subject,
		Event:   msg.Event,
		Status:  models.EmailStatusSent,
		SentAt:  m.now(),
	}
	if sendErr != nil {
		entry.Status = models.EmailStatusFailed
		entry.Error = sendErr.Error()
	}
	if m.logs != nil {
		if err := m.logs.Create(entry); err != nil {
			logger.WithContext(ctx).WithError(err).Error("failed to write email log")
		}
	}

	if sendErr != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, sendErr)
	}
	return nil
}

func (m *Mailer) client(to string) notifier {
	ntf := notify.New()

	if m.opts.MailgunAPIKey != "" {
		mg := mailgun.New(m.opts.MailgunDomain, m.opts.MailgunAPIKey, m.opts.SenderAddress)
		mg.AddReceivers(to)
		ntf.UseServices(mg)
	}

	if m.opts.SMTPHost != "" {
		smtp := mail.New(m.opts.SenderAddress, m.opts.SMTPHost+":"+m.opts.SMTPPort)
		if m.opts.SMTPUsername != "" {
			smtp.AuthenticateSMTP("", m.opts.SMTPUsername, m.opts.SMTPPassword, m.opts.SMTPHost)
		}
		smtp.BodyFormat(mail.HTML)
		smtp.AddReceivers(to)
		ntf.UseServices(smtp)
	}
	return ntf
}
