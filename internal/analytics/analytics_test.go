package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func stage(t *testing.T, s bson.D) (string, interface{}) {
	require.Len(t, s, 1)
	return s[0].Key, s[0].Value
}

func TestParseInterval(t *testing.T) {
	i, err := ParseInterval("")
	require.NoError(t, err)
	assert.Equal(t, IntervalDay, i)

	i, err = ParseInterval("month")
	require.NoError(t, err)
	assert.Equal(t, IntervalMonth, i)

	_, err = ParseInterval("hour")
	assert.Error(t, err)
}

func TestMatchStage(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	key, value := stage(t, matchStage(Window{BUIDs: []int{1, 2}, Start: start, End: end}))
	assert.Equal(t, "$match", key)

	match := value.(bson.D).Map()
	assert.Equal(t, bson.D{{Key: "$in", Value: []int{1, 2}}}, match["buid"])
	assert.Equal(t, bson.D{{Key: "$gte", Value: start}, {Key: "$lt", Value: end}}, match["at"])

	_, value = stage(t, matchStage(Window{BUIDs: []int{1}}))
	_, hasAt := value.(bson.D).Map()["at"]
	assert.False(t, hasAt)
}

func TestOverTimePipeline(t *testing.T) {
	p := OverTimePipeline(Window{BUIDs: []int{1}}, IntervalWeek)
	require.Len(t, p, 3)

	key, value := stage(t, p[1])
	assert.Equal(t, "$group", key)
	id := value.(bson.D).Map()["_id"].(bson.D)
	trunc := id.Map()["$dateTrunc"].(bson.D).Map()
	assert.Equal(t, "week", trunc["unit"])
	assert.Equal(t, "monday", trunc["startOfWeek"])

	key, _ = stage(t, p[2])
	assert.Equal(t, "$sort", key)

	day := OverTimePipeline(Window{BUIDs: []int{1}}, IntervalDay)
	_, value = stage(t, day[1])
	trunc = value.(bson.D).Map()["_id"].(bson.D).Map()["$dateTrunc"].(bson.D).Map()
	_, hasWeekStart := trunc["startOfWeek"]
	assert.False(t, hasWeekStart)
}

func TestRankingPipelines(t *testing.T) {
	vs := ViewSourcePipeline(Window{BUIDs: []int{1}}, 5)
	require.Len(t, vs, 4)
	key, value := stage(t, vs[1])
	assert.Equal(t, "$group", key)
	assert.Equal(t, "$vs", value.(bson.D).Map()["_id"])
	key, value = stage(t, vs[3])
	assert.Equal(t, "$limit", key)
	assert.Equal(t, 5, value)

	jobs := TopJobsPipeline(Window{BUIDs: []int{1}}, 0)
	_, value = stage(t, jobs[1])
	assert.Equal(t, "$guid", value.(bson.D).Map()["_id"])
	_, value = stage(t, jobs[3])
	assert.Equal(t, 10, value)
}
