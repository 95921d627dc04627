// Package cooldown suppresses repeated click tracking for the same client and
// mall within a fixed window. It is a best-effort guard: two clients, or one
// client that loses its key, can still be counted twice.
package cooldown

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Store is a key/value store whose entries expire
type Store interface {
	// Get returns the value for key and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key until ttl elapses
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// DefaultWindow is the cooldown applied when none is configured
const DefaultWindow = 5 * time.Second

// Guard decides whether a click should be tracked
type Guard struct {
	store  Store
	window time.Duration
	logger *logrus.Logger
	now    func() time.Time
}

func NewGuard(store Store, window time.Duration, logger *logrus.Logger) *Guard {
	if window <= 0 {
		window = DefaultWindow
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Guard{
		store:  store,
		window: window,
		logger: logger,
		now:    time.Now,
	}
}

// Key builds the store key for a client and mall
func Key(clientKey, mallID string) string {
	return "clicked_mall_" + mallID + ":" + clientKey
}

// Allow reports whether a click by clientKey on mallID is outside the
// cooldown window, and if so starts a new window. Get and Set are separate
// calls, so concurrent clicks may both be allowed. Store errors fail open.
func (g *Guard) Allow(ctx context.Context, clientKey, mallID string) bool {
	key := Key(clientKey, mallID)
	now := g.now()

	last, found, err := g.store.Get(ctx, key)
	if err != nil {
		g.logger.WithError(err).WithField("mall_id", mallID).Warn("Cooldown lookup failed, allowing click")
		return true
	}

	if found {
		if ms, err := strconv.ParseInt(last, 10, 64); err == nil {
			if now.Sub(time.UnixMilli(ms)) < g.window {
				return false
			}
		}
	}

	if err := g.store.Set(ctx, key, strconv.FormatInt(now.UnixMilli(), 10), g.window); err != nil {
		g.logger.WithError(err).WithField("mall_id", mallID).Warn("Failed to record cooldown")
	}
	return true
}

// Window returns the configured cooldown window
func (g *Guard) Window() time.Duration {
	return g.window
}
