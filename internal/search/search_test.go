package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterBy(t *testing.T) {
	assert.Equal(t, "", FilterBy(Query{}))
	assert.Equal(t, "buid:[1,22]", FilterBy(Query{BUIDs: []int{1, 22}}))
	assert.Equal(t, "buid:[5] && location:`Austin, TX`", FilterBy(Query{BUIDs: []int{5}, Location: " Austin, TX "}))

	since := time.Unix(1700000000, 0)
	assert.Equal(t, "date_new:>1700000000", FilterBy(Query{NewerThan: since}))
}

func TestDeleteFilter(t *testing.T) {
	assert.Equal(t, "buid:=7 && is_posted:false", deleteFilter(7, nil))
	assert.Equal(t, "buid:=7 && is_posted:false && id:!=[A,B]", deleteFilter(7, []string{"A", "B"}))
}

func TestNormalizePaging(t *testing.T) {
	q := Query{Page: 0, PerPage: 500}
	normalizePaging(&q)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PerPage)
}

func TestDocumentFromMap(t *testing.T) {
	doc := DocumentFromMap(map[string]interface{}{
		"id":        "ABC",
		"guid":      "ABC",
		"buid":      float64(12),
		"title":     "Welder",
		"date_new":  float64(1700000000),
		"is_posted": true,
	})
	assert.Equal(t, 12, doc.BUID)
	assert.Equal(t, int64(1700000000), doc.DateNew)
	assert.True(t, doc.IsPosted)
	assert.Equal(t, "", doc.City)
}
