package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mallmap/server/internal/catalog"
	"mallmap/server/internal/cooldown"
	"mallmap/server/internal/metrics"
	"mallmap/server/internal/models"
)

var (
	ErrUnknownMall        = errors.New("unknown mall")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// Sink receives accepted click events
type Sink interface {
	Add(event *models.ClickEvent) error
}

// Outcome describes what happened to a click
type Outcome struct {
	MallID   string `json:"mallId"`
	Recorded bool   `json:"recorded"`
}

// Tracker accepts clicks, drops repeats inside the cooldown window and hands
// the rest to the sink for persistence
type Tracker struct {
	holder *catalog.Holder
	guard  *cooldown.Guard
	sink   Sink
	logger *logrus.Logger
	now    func() time.Time
}

func NewTracker(holder *catalog.Holder, guard *cooldown.Guard, sink Sink, logger *logrus.Logger) *Tracker {
	if logger == nil {
		logger = logrus.New()
	}
	return &Tracker{
		holder: holder,
		guard:  guard,
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// Track records a click by clientKey on mallID
func (t *Tracker) Track(ctx context.Context, clientKey, mallID string) (Outcome, error) {
	out := Outcome{MallID: mallID}

	store := t.holder.Current()
	if store == nil {
		return out, ErrCatalogUnavailable
	}
	mall, ok := store.FindByID(mallID)
	if !ok {
		return out, fmt.Errorf("%w: %s", ErrUnknownMall, mallID)
	}

	if !t.guard.Allow(ctx, clientKey, mallID) {
		metrics.ClicksSuppressedTotal.Inc()
		t.logger.WithFields(logrus.Fields{
			"mall_id": mallID,
			"client":  clientKey,
		}).Debug("Click suppressed by cooldown")
		return out, nil
	}

	event := &models.ClickEvent{
		ID:        uuid.NewString(),
		MallID:    mallID,
		ClientKey: clientKey,
		BaseCount: mall.BaseClickCount(),
		ClickedAt: t.now().UTC(),
	}
	if err := t.sink.Add(event); err != nil {
		return out, fmt.Errorf("failed to queue click: %w", err)
	}

	metrics.ClicksRecordedTotal.Inc()
	out.Recorded = true
	return out, nil
}
