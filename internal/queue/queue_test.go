package queue

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mallmap/server/internal/models"
)

func TestNewClickQueue(t *testing.T) {
	logger := logrus.New()
	q := NewClickQueue(10, 5, 0, logger)
	assert.NotNil(t, q)
	assert.Equal(t, 10, q.maxSize)
	assert.Equal(t, 5, q.maxBatch)
	assert.False(t, q.IsClosed())
}

func TestClickQueue_Push(t *testing.T) {
	logger := logrus.New()
	q := NewClickQueue(2, 1, 0, logger)

	// Test successful push
	events := []*models.ClickEvent{{MallID: "1"}}
	err := q.Push(events)
	assert.NoError(t, err)
	assert.Equal(t, 1, q.Len())

	// Test queue full
	_ = q.Push(events)
	err = q.Push(events)
	assert.Equal(t, ErrQueueFull, err)

	// Test closed queue
	q.Close()
	err = q.Push(events)
	assert.Equal(t, ErrQueueClosed, err)
	assert.Equal(t, ErrQueueClosed, q.Add(&models.ClickEvent{MallID: "1"}))
	assert.Equal(t, ErrQueueClosed, q.Flush())
}

func TestClickQueue_AddBatches(t *testing.T) {
	q := NewClickQueue(10, 3, 0, logrus.New())

	assert.NoError(t, q.Add(&models.ClickEvent{MallID: "1"}))
	assert.NoError(t, q.Add(&models.ClickEvent{MallID: "2"}))
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 2, q.Pending())

	assert.NoError(t, q.Add(&models.ClickEvent{MallID: "3"}))
	assert.Equal(t, 1, q.Len(), "full batch is pushed")
	assert.Equal(t, 0, q.Pending())

	assert.NoError(t, q.Add(&models.ClickEvent{MallID: "4"}))
	assert.NoError(t, q.Flush())
	assert.Equal(t, 2, q.Len())
	assert.NoError(t, q.Flush(), "flushing nothing is a no-op")
	assert.Equal(t, 2, q.Len())
}

func TestClickQueue_AddDropsBatchWhenFull(t *testing.T) {
	q := NewClickQueue(1, 1, 0, logrus.New())

	assert.NoError(t, q.Add(&models.ClickEvent{MallID: "1"}))
	for i := 0; i < 100; i++ {
		assert.Equal(t, ErrQueueFull, q.Add(&models.ClickEvent{MallID: "2"}))
	}
	assert.Equal(t, 0, q.Pending(), "rejected events are not kept")
	assert.Equal(t, 1, q.Len())

	// Only the accepted event is ever delivered
	batch := <-q.items
	require.Len(t, batch, 1)
	assert.Equal(t, "1", batch[0].MallID)
	assert.NoError(t, q.Flush())
	assert.Equal(t, 0, q.Len())
}

func TestClickQueue_FlushDropsBatchWhenFull(t *testing.T) {
	q := NewClickQueue(1, 10, 0, logrus.New())

	require.NoError(t, q.Push([]*models.ClickEvent{{MallID: "1"}}))
	require.NoError(t, q.Add(&models.ClickEvent{MallID: "2"}))
	assert.Equal(t, ErrQueueFull, q.Flush())
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, 1, q.Len())
}

func TestClickQueue_Subscribe(t *testing.T) {
	defer goleak.VerifyNone(t)

	logger := logrus.New()
	q := NewClickQueue(10, 10, 0, logger)

	var processed []*models.ClickEvent
	var mu sync.Mutex

	// Add handler
	q.Subscribe(func(events []*models.ClickEvent) error {
		mu.Lock()
		processed = append(processed, events...)
		mu.Unlock()
		return nil
	})

	q.Start(2)

	err := q.Push([]*models.ClickEvent{{MallID: "1"}, {MallID: "2"}})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(processed) == 2
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.Equal(t, "1", processed[0].MallID)
	assert.Equal(t, "2", processed[1].MallID)
	mu.Unlock()

	assert.NoError(t, q.Close())
}

func TestClickQueue_TimedFlush(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := NewClickQueue(10, 100, 20*time.Millisecond, logrus.New())

	done := make(chan int, 1)
	q.Subscribe(func(events []*models.ClickEvent) error {
		done <- len(events)
		return nil
	})
	q.Start(1)

	assert.NoError(t, q.Add(&models.ClickEvent{MallID: "1"}))

	select {
	case n := <-done:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("pending batch was not flushed")
	}

	assert.NoError(t, q.Close())
}

func TestClickQueue_CloseDrainsPending(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := NewClickQueue(10, 10, 0, logrus.New())

	var got int
	var mu sync.Mutex
	q.Subscribe(func(events []*models.ClickEvent) error {
		mu.Lock()
		got += len(events)
		mu.Unlock()
		return nil
	})
	q.Start(1)

	assert.NoError(t, q.Add(&models.ClickEvent{MallID: "1"}))
	assert.NoError(t, q.Add(&models.ClickEvent{MallID: "2"}))
	assert.NoError(t, q.Close())

	mu.Lock()
	assert.Equal(t, 2, got)
	mu.Unlock()
}

func TestClickQueue_Close(t *testing.T) {
	logger := logrus.New()
	q := NewClickQueue(10, 1, 0, logger)

	// Test first close
	err := q.Close()
	assert.NoError(t, err)
	assert.True(t, q.IsClosed())

	// Test second close (should be no-op)
	err = q.Close()
	assert.NoError(t, err)
}

func TestClickQueue_ProcessBatch(t *testing.T) {
	logger := logrus.New()
	q := NewClickQueue(10, 1, 0, logger)

	var wg sync.WaitGroup
	processedBatches := 0
	var mu sync.Mutex

	// Add multiple handlers, one of which fails
	for i := 0; i < 3; i++ {
		wg.Add(1)
		fail := i == 1
		q.Subscribe(func(events []*models.ClickEvent) error {
			mu.Lock()
			processedBatches++
			mu.Unlock()
			wg.Done()
			if fail {
				return errors.New("handler failed")
			}
			return nil
		})
	}

	q.Start(1)

	err := q.Push([]*models.ClickEvent{{MallID: "1"}})
	assert.NoError(t, err)

	// Wait for all handlers
	wg.Wait()

	mu.Lock()
	assert.Equal(t, 3, processedBatches)
	mu.Unlock()

	q.Close()
}
