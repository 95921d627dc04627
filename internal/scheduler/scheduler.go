package scheduler

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"mallmap/server/internal/catalog"
	"mallmap/server/internal/metrics"
)

// Loader produces a fresh catalog snapshot
type Loader func() (*catalog.Store, error)

// Scheduler periodically reloads the catalog and publishes each new snapshot
type Scheduler struct {
	load     Loader
	holder   *catalog.Holder
	interval time.Duration
	logger   *logrus.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex // serializes reloads
	stopOnce sync.Once
}

// NewScheduler creates a new scheduler
func NewScheduler(load Loader, holder *catalog.Holder, interval time.Duration, logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Scheduler{
		load:     load,
		holder:   holder,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins reloading on the configured interval. A zero interval leaves
// the scheduler idle.
func (s *Scheduler) Start() {
	if s.interval <= 0 {
		s.logger.Info("Catalog reloading disabled")
		return
	}
	s.wg.Add(1)
	go s.runScheduler()
}

func (s *Scheduler) runScheduler() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			_ = s.Reload()
		}
	}
}

// Reload loads the catalog once. On failure the current snapshot stays in
// place and the error is returned.
func (s *Scheduler) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	store, err := s.load()
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("failure").Inc()
		s.logger.WithError(err).Error("Catalog reload failed, keeping previous snapshot")
		return err
	}

	previous := s.holder.Swap(store)
	metrics.CatalogReloadsTotal.WithLabelValues("success").Inc()
	metrics.CatalogMalls.Set(float64(store.Len()))

	fields := logrus.Fields{
		"malls":    store.Len(),
		"duration": time.Since(start).String(),
	}
	if previous != nil {
		fields["previous_malls"] = previous.Len()
	}
	s.logger.WithFields(fields).Info("Catalog reloaded")
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
}
