package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mallmap/server/internal/catalog"
	"mallmap/server/internal/cooldown"
	"mallmap/server/internal/models"
	"mallmap/server/internal/queue"
)

// MockSink is a mock implementation of the Sink interface
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Add(event *models.ClickEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func newHolder(t *testing.T) *catalog.Holder {
	t.Helper()
	count := int64(41)
	store, err := catalog.NewStore([]models.Mall{
		{ID: "1", Name: "강남마켓", Region: "서울특별시", ClickCount: &count},
		{ID: "2", Name: "부산몰", Region: "부산광역시"},
	})
	require.NoError(t, err)
	return catalog.NewHolder(store)
}

func newGuard(t *testing.T) *cooldown.Guard {
	t.Helper()
	store, err := cooldown.NewMemoryStore(1000, nil)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return cooldown.NewGuard(store, 5*time.Second, logrus.New())
}

func TestTracker_Track(t *testing.T) {
	ctx := context.Background()
	q := queue.NewClickQueue(10, 10, 0, logrus.New())
	tracker := NewTracker(newHolder(t), newGuard(t), q, logrus.New())

	out, err := tracker.Track(ctx, "10.0.0.1", "1")
	require.NoError(t, err)
	assert.True(t, out.Recorded)
	assert.Equal(t, 1, q.Pending())

	out, err = tracker.Track(ctx, "10.0.0.1", "1")
	require.NoError(t, err)
	assert.False(t, out.Recorded, "rapid repeat is suppressed")
	assert.Equal(t, 1, q.Pending())

	out, err = tracker.Track(ctx, "10.0.0.2", "1")
	require.NoError(t, err)
	assert.True(t, out.Recorded)
	assert.Equal(t, 2, q.Pending())
}

func TestTracker_EventCarriesBaseCount(t *testing.T) {
	sink := &MockSink{}
	sink.On("Add", mock.MatchedBy(func(e *models.ClickEvent) bool {
		return e.MallID == "1" && e.BaseCount == 41 && e.ID != "" && e.ClientKey == "c"
	})).Return(nil).Once()

	tracker := NewTracker(newHolder(t), newGuard(t), sink, nil)
	_, err := tracker.Track(context.Background(), "c", "1")
	require.NoError(t, err)
	sink.AssertExpectations(t)
}

func TestTracker_UnknownMall(t *testing.T) {
	sink := &MockSink{}
	tracker := NewTracker(newHolder(t), newGuard(t), sink, nil)

	_, err := tracker.Track(context.Background(), "c", "999")
	assert.ErrorIs(t, err, ErrUnknownMall)
	sink.AssertNotCalled(t, "Add", mock.Anything)
}

func TestTracker_NoCatalog(t *testing.T) {
	tracker := NewTracker(catalog.NewHolder(nil), newGuard(t), &MockSink{}, nil)

	_, err := tracker.Track(context.Background(), "c", "1")
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestTracker_SinkFailure(t *testing.T) {
	sink := &MockSink{}
	sink.On("Add", mock.Anything).Return(queue.ErrQueueFull).Once()
	tracker := NewTracker(newHolder(t), newGuard(t), sink, nil)

	out, err := tracker.Track(context.Background(), "c", "2")
	assert.True(t, errors.Is(err, queue.ErrQueueFull))
	assert.False(t, out.Recorded)
}
