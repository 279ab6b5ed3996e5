// Package feed parses business-unit XML job feeds.
package feed

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"myjobs/internal/addressparse"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/redirect"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/xmlquery"
)

// Job is one normalized feed entry
type Job struct {
	GUID        string
	BUID        int
	ReqID       string
	Title       string
	CompanyName string
	City        string
	State       string
	Country     string
	URL         string
	Description string
	DateNew     time.Time
}

// Location renders "City, State" with whatever parts are present
func (j *Job) Location() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{j.City, j.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 && j.Country != "" {
		parts = append(parts, j.Country)
	}
	return strings.Join(parts, ", ")
}

// EntryError describes a feed entry that could not be imported
type EntryError struct {
	Index  int    `json:"index"`
	GUID   string `json:"guid,omitempty"`
	Reason string `json:"reason"`
}

// Result is the outcome of parsing one feed
type Result struct {
	Jobs   []Job
	Errors []EntryError
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Parse reads a <jobs><job>...</job></jobs> document for one business unit.
// Entries without a valid guid or url are reported in Result.Errors and skipped.
func Parse(r io.Reader, buid int) (*Result, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidFeed, err)
	}
	root := xmlquery.FindOne(doc, "/jobs")
	if root == nil {
		return nil, fmt.Errorf("%w: missing <jobs> root", apperrors.ErrInvalidFeed)
	}
	feedCompany := strings.TrimSpace(root.SelectAttr("company"))

	res := &Result{}
	seen := map[string]bool{}
	for i, node := range xmlquery.Find(root, "job") {
		job := Job{
			BUID:        buid,
			ReqID:       text(node, "reqid"),
			Title:       text(node, "title"),
			CompanyName: text(node, "company"),
			City:        text(node, "city"),
			State:       text(node, "state"),
			Country:     text(node, "country"),
			URL:         text(node, "url"),
			Description: StripHTML(text(node, "description")),
			DateNew:     parseDate(text(node, "date_new")),
		}
		if job.CompanyName == "" {
			job.CompanyName = feedCompany
		}

		guid, err := redirect.NormalizeGUID(text(node, "guid"))
		if err != nil {
			res.Errors = append(res.Errors, EntryError{Index: i, GUID: text(node, "guid"), Reason: "invalid guid"})
			continue
		}
		job.GUID = guid
		if seen[guid] {
			res.Errors = append(res.Errors, EntryError{Index: i, GUID: guid, Reason: "duplicate guid"})
			continue
		}
		if job.URL == "" {
			res.Errors = append(res.Errors, EntryError{Index: i, GUID: guid, Reason: "missing url"})
			continue
		}
		if job.Title == "" {
			res.Errors = append(res.Errors, EntryError{Index: i, GUID: guid, Reason: "missing title"})
			continue
		}
		seen[guid] = true
		CleanLocation(&job)
		res.Jobs = append(res.Jobs, job)
	}
	return res, nil
}

// CleanLocation replaces a city that holds a full street address with the
// parsed city, filling the state when the feed left it empty.
func CleanLocation(job *Job) {
	if job.City == "" {
		return
	}
	parsed := addressparse.Parse(job.City)
	if parsed.Score < addressparse.Threshold {
		return
	}
	job.City = parsed.Address.City
	if job.State == "" {
		job.State = parsed.Address.State
	}
}

func text(n *xmlquery.Node, name string) string {
	child := n.SelectElement(name)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.InnerText())
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

var whitespace = regexp.MustCompile(`\s+`)

// StripHTML reduces an HTML description to plain text paragraphs
func StripHTML(html string) string {
	if !strings.Contains(html, "<") {
		return collapse(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapse(html)
	}
	doc.Find("script, style, iframe, noscript").Remove()

	var blocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(i int, s *goquery.Selection) {
		if t := collapse(s.Text()); t != "" {
			blocks = append(blocks, t)
		}
	})
	if len(blocks) > 0 {
		return strings.Join(blocks, "\n\n")
	}
	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
