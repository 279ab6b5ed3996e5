// Package search maintains the Typesense job index used by microsite search
// and saved-search digests.
package search

//go:generate mockgen -source=search.go -destination=../mocks/search_mocks.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// JobDocument is one job in the index. ID is the job GUID.
type JobDocument struct {
	ID          string `json:"id"`
	GUID        string `json:"guid"`
	BUID        int    `json:"buid"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Location    string `json:"location"`
	Description string `json:"description"`
	DateNew     int64  `json:"date_new"`
	URL         string `json:"url"`
	IsPosted    bool   `json:"is_posted"`
}

// Query describes a job search
type Query struct {
	Q          string
	Location   string
	BUIDs      []int
	SortByDate bool
	// NewerThan restricts results to jobs indexed after the given time
	NewerThan time.Time
	Page      int
	PerPage   int
}

// Results is one page of matching jobs
type Results struct {
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Hits  []JobDocument `json:"hits"`
}

// Index is the job search index
type Index interface {
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, doc JobDocument) error
	Get(ctx context.Context, guid string) (*JobDocument, error)
	Delete(ctx context.Context, guid string) error
	DeleteByBUID(ctx context.Context, buid int, keepGUIDs []string) (int, error)
	Search(ctx context.Context, q Query) (*Results, error)
}

// FilterBy renders the typesense filter expression for a query
func FilterBy(q Query) string {
	var parts []string
	if len(q.BUIDs) > 0 {
		ids := make([]string, len(q.BUIDs))
		for i, id := range q.BUIDs {
			ids[i] = strconv.Itoa(id)
		}
		parts = append(parts, "buid:["+strings.Join(ids, ",")+"]")
	}
	if loc := strings.TrimSpace(q.Location); loc != "" {
		parts = append(parts, "location:"+quote(loc))
	}
	if !q.NewerThan.IsZero() {
		parts = append(parts, "date_new:>"+strconv.FormatInt(q.NewerThan.Unix(), 10))
	}
	return strings.Join(parts, " && ")
}

// deleteFilter removes a business unit's feed jobs except the ones still in its feed.
// Posted jobs are managed by the posting flow and never match.
func deleteFilter(buid int, keep []string) string {
	f := "buid:=" + strconv.Itoa(buid) + " && is_posted:false"
	if len(keep) > 0 {
		f += " && id:!=[" + strings.Join(keep, ",") + "]"
	}
	return f
}

func quote(s string) string {
	return "`" + strings.ReplaceAll(s, "`", "") + "`"
}

func normalizePaging(q *Query) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 || q.PerPage > 100 {
		q.PerPage = 20
	}
}

// DocumentFromMap decodes a typesense hit
func DocumentFromMap(m map[string]interface{}) JobDocument {
	return JobDocument{
		ID:          str(m, "id"),
		GUID:        str(m, "guid"),
		BUID:        int(num(m, "buid")),
		Title:       str(m, "title"),
		Company:     str(m, "company"),
		City:        str(m, "city"),
		State:       str(m, "state"),
		Country:     str(m, "country"),
		Location:    str(m, "location"),
		Description: str(m, "description"),
		DateNew:     int64(num(m, "date_new")),
		URL:         str(m, "url"),
		IsPosted:    m["is_posted"] == true,
	}
}

func str(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func num(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func errf(op string, err error) error {
	return fmt.Errorf("search %s: %w", op, err)
}
