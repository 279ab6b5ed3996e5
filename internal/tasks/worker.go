package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"myjobs/internal/logger"

	"github.com/nats-io/nats.go/jetstream"
)

// Handler processes one task payload
type Handler func(ctx context.Context, payload json.RawMessage) error

// Worker consumes tasks with bounded concurrency
type Worker struct {
	queue       *Queue
	handlers    map[string]Handler
	concurrency int
	maxDeliver  int
	// RetryDelay is multiplied by the delivery count for each redelivery
	RetryDelay time.Duration

	sem      chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  []jetstream.ConsumeContext
	stopping bool
}

// NewWorker creates a worker for q
func NewWorker(q *Queue, concurrency, maxDeliver int) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	if maxDeliver < 1 {
		maxDeliver = 1
	}
	return &Worker{
		queue:       q,
		handlers:    map[string]Handler{},
		concurrency: concurrency,
		maxDeliver:  maxDeliver,
		RetryDelay:  time.Second,
		sem:         make(chan struct{}, concurrency),
	}
}

// Register binds a handler to a task name. Call before Start.
func (w *Worker) Register(name string, h Handler) {
	w.handlers[name] = h
}

// Names lists registered task names
func (w *Worker) Names() []string {
	names := make([]string, 0, len(w.handlers))
	for name := range w.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start creates one durable consumer per registered task and begins consuming
func (w *Worker) Start(ctx context.Context) error {
	for _, name := range w.Names() {
		handler := w.handlers[name]
		consumer, err := w.queue.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
			Durable:       "worker-" + name,
			AckPolicy:     jetstream.AckExplicitPolicy,
			FilterSubject: Subject(name),
			AckWait:       time.Minute,
			MaxDeliver:    w.maxDeliver,
			MaxAckPending: w.concurrency,
		})
		if err != nil {
			return fmt.Errorf("failed to create consumer for %s: %w", name, err)
		}

		taskName := name
		cc, err := consumer.Consume(func(msg jetstream.Msg) {
			w.dispatch(ctx, taskName, handler, msg)
		})
		if err != nil {
			return fmt.Errorf("failed to start consumer for %s: %w", name, err)
		}
		w.mu.Lock()
		w.running = append(w.running, cc)
		w.mu.Unlock()
	}
	logger.New().WithField("tasks", w.Names()).Info("Task worker started")
	return nil
}

func (w *Worker) dispatch(ctx context.Context, name string, handler Handler, msg jetstream.Msg) {
	w.mu.Lock()
	if w.stopping {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()

	w.sem <- struct{}{}
	go func() {
		defer func() {
			<-w.sem
			w.wg.Done()
		}()
		w.process(ctx, name, handler, msg)
	}()
}

func (w *Worker) process(ctx context.Context, name string, handler Handler, msg jetstream.Msg) {
	log := logger.New().WithField("task", name)

	var env Envelope
	if err := json.Unmarshal(msg.Data(), &env); err != nil {
		log.WithError(err).Error("Dropping malformed task envelope")
		_ = msg.Term()
		return
	}
	log = log.WithField("task_id", env.ID)

	var delivered uint64 = 1
	if md, err := msg.Metadata(); err == nil {
		delivered = md.NumDelivered
	}

	err := safeRun(ctx, handler, env.Payload)
	if err == nil {
		if ackErr := msg.Ack(); ackErr != nil {
			log.WithError(ackErr).Warn("Failed to ack task")
		}
		return
	}

	if delivered >= uint64(w.maxDeliver) {
		log.WithError(err).WithField("attempts", delivered).Error("Task failed permanently")
		_ = msg.Term()
		return
	}
	log.WithError(err).WithField("attempt", delivered).Warn("Task failed, retrying")
	_ = msg.NakWithDelay(time.Duration(delivered) * w.RetryDelay)
}

func safeRun(ctx context.Context, handler Handler, payload json.RawMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return handler(ctx, payload)
}

// Stop stops consuming and waits for in-flight tasks
func (w *Worker) Stop() {
	w.mu.Lock()
	w.stopping = true
	running := w.running
	w.running = nil
	w.mu.Unlock()

	for _, cc := range running {
		cc.Stop()
	}
	w.wg.Wait()
}
