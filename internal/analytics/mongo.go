package analytics

import (
	"context"
	"fmt"
	"time"

	"myjobs/internal/logger"

	"github.com/avast/retry-go/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the MongoDB Store. Writes retry with exponential backoff.
type Mongo struct {
	client   *mongo.Client
	clicks   *mongo.Collection
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
}

var _ Store = (*Mongo)(nil)

// Connect dials the server and pings it
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Mongo{
		client:   client,
		clicks:   client.Database(database).Collection(ClicksCollection),
		Attempts: 5,
		Delay:    100 * time.Millisecond,
		MaxDelay: 5 * time.Second,
	}, nil
}

// EnsureIndexes creates the (buid, at) and guid indexes used by the dashboards
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.clicks.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "buid", Value: 1}, {Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "guid", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create click indexes: %w", err)
	}
	return nil
}

func (m *Mongo) Record(ctx context.Context, click Click) error {
	if click.At.IsZero() {
		click.At = time.Now()
	}
	click.At = click.At.UTC()

	err := retry.Do(
		func() error {
			_, err := m.clicks.InsertOne(ctx, click)
			return err
		},
		retry.Attempts(m.Attempts),
		retry.Delay(m.Delay),
		retry.MaxDelay(m.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.WithContext(ctx).WithError(err).
				WithFields(map[string]interface{}{"attempt": n + 1, "guid": click.GUID}).
				Warn("retrying click insert")
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}
	return nil
}

func (m *Mongo) ClicksOverTime(ctx context.Context, w Window, interval Interval) ([]TimeBucket, error) {
	var out []TimeBucket
	if err := m.aggregate(ctx, OverTimePipeline(w, interval), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Mongo) ClicksByViewSource(ctx context.Context, w Window, limit int) ([]ViewSourceCount, error) {
	var out []ViewSourceCount
	if err := m.aggregate(ctx, ViewSourcePipeline(w, limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Mongo) TopJobs(ctx context.Context, w Window, limit int) ([]JobCount, error) {
	var out []JobCount
	if err := m.aggregate(ctx, TopJobsPipeline(w, limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Mongo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cur, err := m.clicks.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode click aggregate: %w", err)
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
