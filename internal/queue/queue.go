package queue

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"mallmap/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// ClickQueue is an in-memory queue of click event batches. Single events are
// accumulated with Add and flushed as a batch when the batch is full or the
// flush interval elapses.
type ClickQueue struct {
	items    chan []*models.ClickEvent
	done     chan struct{}
	maxSize  int
	maxBatch int
	maxWait  time.Duration
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func([]*models.ClickEvent) error

	pendingMu sync.Mutex
	pending   []*models.ClickEvent

	wg sync.WaitGroup
}

// NewClickQueue creates a queue holding up to bufferSize batches. maxBatch
// caps the size of an accumulated batch; maxWait of 0 disables timed flushes.
func NewClickQueue(bufferSize, maxBatch int, maxWait time.Duration, logger *logrus.Logger) *ClickQueue {
	if maxBatch <= 0 {
		maxBatch = 1
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &ClickQueue{
		items:    make(chan []*models.ClickEvent, bufferSize),
		done:     make(chan struct{}),
		maxSize:  bufferSize,
		maxBatch: maxBatch,
		maxWait:  maxWait,
		logger:   logger,
		handlers: make([]func([]*models.ClickEvent) error, 0),
	}
}

// Push adds a batch of events to the queue
func (q *ClickQueue) Push(events []*models.ClickEvent) error {
	if q.IsClosed() {
		return ErrQueueClosed
	}
	return q.enqueue(events)
}

func (q *ClickQueue) enqueue(events []*models.ClickEvent) error {
	// Non-blocking send to prevent deadlocks
	select {
	case q.items <- events:
		q.logger.WithField("batch_size", len(events)).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Add accumulates a single event and pushes the batch once it is full. When
// the queue has no room the whole batch is dropped and ErrQueueFull returned.
func (q *ClickQueue) Add(event *models.ClickEvent) error {
	if q.IsClosed() {
		return ErrQueueClosed
	}

	q.pendingMu.Lock()
	q.pending = append(q.pending, event)
	if len(q.pending) < q.maxBatch {
		q.pendingMu.Unlock()
		return nil
	}
	batch := q.pending
	q.pending = nil
	q.pendingMu.Unlock()

	return q.send(batch)
}

// Flush pushes the accumulated events, if any
func (q *ClickQueue) Flush() error {
	if q.IsClosed() {
		return ErrQueueClosed
	}
	return q.flush()
}

func (q *ClickQueue) flush() error {
	q.pendingMu.Lock()
	batch := q.pending
	q.pending = nil
	q.pendingMu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	return q.send(batch)
}

// send enqueues an accumulated batch, dropping it when the queue is full
func (q *ClickQueue) send(batch []*models.ClickEvent) error {
	if err := q.enqueue(batch); err != nil {
		q.logger.WithError(err).WithField("dropped", len(batch)).Warn("Dropping click batch")
		return err
	}
	return nil
}

// Pending returns the number of accumulated events not yet pushed
func (q *ClickQueue) Pending() int {
	q.pendingMu.Lock()
	defer q.pendingMu.Unlock()
	return len(q.pending)
}

// Subscribe adds a handler function that will be called for each batch
func (q *ClickQueue) Subscribe(handler func([]*models.ClickEvent) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start launches the given number of workers and the flush ticker
func (q *ClickQueue) Start(workers int) {
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.process()
	}
	if q.maxWait > 0 {
		q.wg.Add(1)
		go q.flushLoop()
	}
}

// process handles the queue processing loop
func (q *ClickQueue) process() {
	defer q.wg.Done()
	for {
		select {
		case <-q.done:
			q.drain()
			return
		case batch := <-q.items:
			q.processBatch(batch)
		}
	}
}

// drain processes batches still buffered when the queue closes
func (q *ClickQueue) drain() {
	for {
		select {
		case batch := <-q.items:
			q.processBatch(batch)
		default:
			return
		}
	}
}

func (q *ClickQueue) flushLoop() {
	defer q.wg.Done()
	ticker := time.NewTicker(q.maxWait)
	defer ticker.Stop()

	for {
		select {
		case <-q.done:
			return
		case <-ticker.C:
			if err := q.flush(); err != nil {
				q.logger.WithError(err).Warn("Failed to flush click batch")
			}
		}
	}
}

// processBatch sends the batch to all subscribed handlers
func (q *ClickQueue) processBatch(batch []*models.ClickEvent) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close flushes accumulated events, stops the workers after they drain the
// buffer and prevents new items from being added
func (q *ClickQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()

	if err := q.flush(); err != nil {
		q.logger.WithError(err).Error("Failed to flush click events on close")
	}

	close(q.done)
	q.wg.Wait()
	return nil
}

// Len returns the current number of batches in the queue
func (q *ClickQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed
func (q *ClickQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
