package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"

	"myjobs/internal/database/models"
)

// DigestJob is one job line in a saved search digest
type DigestJob struct {
	Title    string
	Company  string
	Location string
	URL      string
}

// DigestData feeds saved_search_digest templates
type DigestData struct {
	Label          string
	SearchURL      string
	Jobs           []DigestJob
	UnsubscribeURL string
}

// PurchaseExpiringData feeds purchase_expiring templates
type PurchaseExpiringData struct {
	CompanyName    string
	ProductName    string
	ExpirationDate time.Time
	JobsRemaining  int
}

// JobPostedData feeds job_posted templates
type JobPostedData struct {
	Title string
	GUID  string
	URL   string
}

var defaults = map[models.EmailEvent]models.EmailTemplate{
	models.EmailEventSavedSearchDigest: {
		Name:    "Saved search digest",
		Event:   models.EmailEventSavedSearchDigest,
		Subject: "New jobs for {{.Label}}",
		Header:  `<h2>New jobs for <a href="{{.SearchURL}}">{{.Label}}</a></h2>`,
		Body:    `<ul>{{range .Jobs}}<li><a href="{{.URL}}">{{.Title}}</a> {{.Company}} {{.Location}}</li>{{end}}</ul>`,
		Footer:  `<p><a href="{{.UnsubscribeURL}}">Unsubscribe</a></p>`,
	},
	models.EmailEventPurchaseExpiring: {
		Name:       "Purchase expiring",
		Event:      models.EmailEventPurchaseExpiring,
		Subject:    "Your {{.ProductName}} purchase expires on {{.ExpirationDate.Format \"Jan 2, 2006\"}}",
		Header:     `<h2>{{.CompanyName}}</h2>`,
		Body:       `<p>Your purchase of {{.ProductName}} expires on {{.ExpirationDate.Format "Jan 2, 2006"}}. {{.JobsRemaining}} job postings remain.</p>`,
		DaysBefore: 7,
	},
	models.EmailEventJobPosted: {
		Name:    "Job posted",
		Event:   models.EmailEventJobPosted,
		Subject: "Your job {{.Title}} is live",
		Body:    `<p><a href="{{.URL}}">{{.Title}}</a> is now live.</p>`,
	},
}

// DefaultTemplate returns the built-in template for an event
func DefaultTemplate(event models.EmailEvent) (*models.EmailTemplate, bool) {
	t, ok := defaults[event]
	if !ok {
		return nil, false
	}
	return &t, true
}

// Render executes the subject as text and header, body and footer as escaped HTML
func Render(t *models.EmailTemplate, data interface{}) (subject, html string, err error) {
	subj, err := template.New("subject").Parse(t.Subject)
	if err != nil {
		return "", "", fmt.Errorf("parse subject: %w", err)
	}
	var sb bytes.Buffer
	if err := subj.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("execute subject: %w", err)
	}

	body, err := htmltemplate.New("body").Parse(t.Header + t.Body + t.Footer)
	if err != nil {
		return "", "", fmt.Errorf("parse body: %w", err)
	}
	var bb bytes.Buffer
	if err := body.Execute(&bb, data); err != nil {
		return "", "", fmt.Errorf("execute body: %w", err)
	}

	return sb.String(), bb.String(), nil
}
