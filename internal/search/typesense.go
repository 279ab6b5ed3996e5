package search

import (
	"context"
	"errors"
	"net/http"

	apperrors "myjobs/internal/errors"

	"github.com/typesense/typesense-go/v2/typesense"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

// Typesense implements Index on a typesense collection
type Typesense struct {
	client     *typesense.Client
	collection string
}

var _ Index = (*Typesense)(nil)

// NewTypesense creates a client for the given server
func NewTypesense(url, apiKey, collection string) *Typesense {
	client := typesense.NewClient(
		typesense.WithServer(url),
		typesense.WithAPIKey(apiKey),
		typesense.WithNumRetries(3),
	)
	if collection == "" {
		collection = "jobs"
	}
	return &Typesense{client: client, collection: collection}
}

// EnsureCollection creates the jobs collection when it does not exist
func (t *Typesense) EnsureCollection(ctx context.Context) error {
	if _, err := t.client.Collection(t.collection).Retrieve(ctx); err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: t.collection,
		Fields: []api.Field{
			{Name: "guid", Type: "string"},
			{Name: "buid", Type: "int32", Facet: pointer.True()},
			{Name: "title", Type: "string"},
			{Name: "company", Type: "string", Facet: pointer.True()},
			{Name: "city", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "state", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "country", Type: "string", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "location", Type: "string", Optional: pointer.True()},
			{Name: "description", Type: "string", Optional: pointer.True()},
			{Name: "date_new", Type: "int64"},
			{Name: "url", Type: "string", Index: pointer.False(), Optional: pointer.True()},
			{Name: "is_posted", Type: "bool", Facet: pointer.True()},
		},
		DefaultSortingField: pointer.String("date_new"),
	}
	if _, err := t.client.Collections().Create(ctx, schema); err != nil {
		return errf("create collection", err)
	}
	return nil
}

func (t *Typesense) Upsert(ctx context.Context, doc JobDocument) error {
	doc.ID = doc.GUID
	if _, err := t.client.Collection(t.collection).Documents().Upsert(ctx, doc); err != nil {
		return errf("upsert", err)
	}
	return nil
}

func (t *Typesense) Get(ctx context.Context, guid string) (*JobDocument, error) {
	m, err := t.client.Collection(t.collection).Document(guid).Retrieve(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, errf("get", err)
	}
	doc := DocumentFromMap(m)
	return &doc, nil
}

func (t *Typesense) Delete(ctx context.Context, guid string) error {
	if _, err := t.client.Collection(t.collection).Document(guid).Delete(ctx); err != nil && !isNotFound(err) {
		return errf("delete", err)
	}
	return nil
}

func (t *Typesense) DeleteByBUID(ctx context.Context, buid int, keepGUIDs []string) (int, error) {
	n, err := t.client.Collection(t.collection).Documents().Delete(ctx, &api.DeleteDocumentsParams{
		FilterBy: pointer.String(deleteFilter(buid, keepGUIDs)),
	})
	if err != nil {
		return 0, errf("delete by buid", err)
	}
	return n, nil
}

func (t *Typesense) Search(ctx context.Context, q Query) (*Results, error) {
	normalizePaging(&q)

	text := q.Q
	if text == "" {
		text = "*"
	}
	params := &api.SearchCollectionParams{
		Q:       pointer.String(text),
		QueryBy: pointer.String("title,company,description"),
		Page:    pointer.Int(q.Page),
		PerPage: pointer.Int(q.PerPage),
	}
	if f := FilterBy(q); f != "" {
		params.FilterBy = pointer.String(f)
	}
	if q.SortByDate || q.Q == "" {
		params.SortBy = pointer.String("date_new:desc")
	}

	res, err := t.client.Collection(t.collection).Documents().Search(ctx, params)
	if err != nil {
		return nil, errf("query", err)
	}

	out := &Results{Page: q.Page, Hits: []JobDocument{}}
	if res.Found != nil {
		out.Total = *res.Found
	}
	if res.Hits != nil {
		for _, hit := range *res.Hits {
			if hit.Document != nil {
				out.Hits = append(out.Hits, DocumentFromMap(*hit.Document))
			}
		}
	}
	return out, nil
}

func isNotFound(err error) bool {
	var httpErr *typesense.HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}
