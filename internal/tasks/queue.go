// Package tasks runs background work over NATS JetStream. Producers call
// Enqueue; a Worker consumes one durable subject per task name.
package tasks

//go:generate mockgen -source=queue.go -destination=../mocks/tasks_mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName is the JetStream stream holding every task
	StreamName    = "MYJOBS"
	subjectPrefix = "tasks."
)

// Envelope wraps a task payload on the wire
type Envelope struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// Enqueuer schedules background tasks
type Enqueuer interface {
	Enqueue(ctx context.Context, name string, payload interface{}) error
}

// Queue publishes tasks to the MYJOBS stream
type Queue struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	stream jetstream.Stream
	server *server.Server
}

var _ Enqueuer = (*Queue)(nil)

// NewEmbedded starts an in-process NATS server with JetStream and connects to it
func NewEmbedded(storeDir string) (*Queue, error) {
	opts := &server.Options{
		Host:      "127.0.0.1",
		Port:      server.RANDOM_PORT,
		NoSigs:    true,
		JetStream: true,
		StoreDir:  storeDir,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory nats server: %w", err)
	}
	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		ns.Shutdown()
		return nil, fmt.Errorf("failed to start in-memory nats server")
	}

	q, err := Connect(ns.ClientURL())
	if err != nil {
		ns.Shutdown()
		return nil, err
	}
	q.server = ns
	return q, nil
}

// Connect attaches to an existing NATS server and ensures the stream exists
func Connect(url string) (*Queue, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	stream, err := js.CreateOrUpdateStream(context.Background(), jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{subjectPrefix + ">"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create jetstream stream: %w", err)
	}

	return &Queue{conn: nc, js: js, stream: stream}, nil
}

// Subject returns the subject a task name is published on
func Subject(name string) string {
	return subjectPrefix + name
}

// Enqueue wraps payload in an envelope and publishes it
func (q *Queue) Enqueue(ctx context.Context, name string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", name, err)
	}
	env := Envelope{
		ID:         uuid.NewString(),
		Name:       name,
		Payload:    data,
		EnqueuedAt: time.Now().UTC(),
	}
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	_, err = q.js.Publish(ctx, Subject(name), body,
		jetstream.WithMsgID(env.ID),
		jetstream.WithRetryWait(100*time.Millisecond),
		jetstream.WithRetryAttempts(10),
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s task: %w", name, err)
	}
	return nil
}

// Ping reports whether the connection is usable
func (q *Queue) Ping() error {
	if q.conn == nil || !q.conn.IsConnected() {
		return fmt.Errorf("nats is not connected")
	}
	return nil
}

// Close drains the connection and stops the embedded server, if any
func (q *Queue) Close() {
	if q.conn != nil {
		_ = q.conn.Drain()
	}
	if q.server != nil {
		q.server.Shutdown()
	}
}
