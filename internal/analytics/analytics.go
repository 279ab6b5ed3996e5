// Package analytics stores redirect click events in MongoDB and answers the
// dashboard aggregations over them.
package analytics

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const ClicksCollection = "clicks"

// Interval is the bucket width of ClicksOverTime
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
)

// ParseInterval defaults to day
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case "":
		return IntervalDay, nil
	case IntervalDay, IntervalWeek, IntervalMonth:
		return Interval(s), nil
	}
	return "", fmt.Errorf("unsupported interval %q", s)
}

// Click is one redirect served
type Click struct {
	GUID       string    `bson:"guid" json:"guid"`
	BUID       int       `bson:"buid" json:"buid"`
	ViewSource int       `bson:"vs" json:"vs"`
	URL        string    `bson:"url" json:"url"`
	Referrer   string    `bson:"referrer,omitempty" json:"referrer,omitempty"`
	UserAgent  string    `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	IP         string    `bson:"ip,omitempty" json:"ip,omitempty"`
	At         time.Time `bson:"at" json:"at"`
}

// Window restricts a query to a set of business units and a time range [Start, End)
type Window struct {
	BUIDs []int
	Start time.Time
	End   time.Time
}

type TimeBucket struct {
	Start  time.Time `bson:"_id" json:"start"`
	Clicks int64     `bson:"clicks" json:"clicks"`
}

type ViewSourceCount struct {
	ViewSource int   `bson:"_id" json:"view_source"`
	Clicks     int64 `bson:"clicks" json:"clicks"`
}

type JobCount struct {
	GUID   string `bson:"_id" json:"guid"`
	BUID   int    `bson:"buid" json:"buid"`
	Clicks int64  `bson:"clicks" json:"clicks"`
}

// Store is the click-stream backend
type Store interface {
	Record(ctx context.Context, click Click) error
	ClicksOverTime(ctx context.Context, w Window, interval Interval) ([]TimeBucket, error)
	ClicksByViewSource(ctx context.Context, w Window, limit int) ([]ViewSourceCount, error)
	TopJobs(ctx context.Context, w Window, limit int) ([]JobCount, error)
}

func matchStage(w Window) bson.D {
	at := bson.D{}
	if !w.Start.IsZero() {
		at = append(at, bson.E{Key: "$gte", Value: w.Start.UTC()})
	}
	if !w.End.IsZero() {
		at = append(at, bson.E{Key: "$lt", Value: w.End.UTC()})
	}
	match := bson.D{{Key: "buid", Value: bson.D{{Key: "$in", Value: w.BUIDs}}}}
	if len(at) > 0 {
		match = append(match, bson.E{Key: "at", Value: at})
	}
	return bson.D{{Key: "$match", Value: match}}
}

// OverTimePipeline groups clicks by the start of their day, ISO week or month
func OverTimePipeline(w Window, interval Interval) mongo.Pipeline {
	trunc := bson.D{{Key: "date", Value: "$at"}, {Key: "unit", Value: string(interval)}}
	if interval == IntervalWeek {
		trunc = append(trunc, bson.E{Key: "startOfWeek", Value: "monday"})
	}
	return mongo.Pipeline{
		matchStage(w),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateTrunc", Value: trunc}}},
			{Key: "clicks", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// ViewSourcePipeline counts clicks per view source, busiest first
func ViewSourcePipeline(w Window, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		matchStage(w),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$vs"},
			{Key: "clicks", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "clicks", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: normalizeLimit(limit)}},
	}
}

// TopJobsPipeline counts clicks per job guid, busiest first
func TopJobsPipeline(w Window, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		matchStage(w),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$guid"},
			{Key: "buid", Value: bson.D{{Key: "$first", Value: "$buid"}}},
			{Key: "clicks", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "clicks", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: normalizeLimit(limit)}},
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 10
	}
	return limit
}
