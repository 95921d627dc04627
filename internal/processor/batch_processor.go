package processor

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mallmap/server/config"
	"mallmap/server/internal/database"
	"mallmap/server/internal/metrics"
	"mallmap/server/internal/models"
	"mallmap/server/internal/queue"
)

// Transactor is the part of *gorm.DB the processor needs
type Transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// BatchProcessor persists click event batches taken from the queue
type BatchProcessor struct {
	db     Transactor
	logger *logrus.Logger
	config *config.Config
	queue  *queue.ClickQueue
	write  func(tx *gorm.DB, events []*models.ClickEvent) error
	ctx    context.Context
	cancel context.CancelFunc
}

// NewBatchProcessor creates a new batch processor instance
func NewBatchProcessor(db Transactor, queue *queue.ClickQueue, config *config.Config, logger *logrus.Logger) *BatchProcessor {
	ctx, cancel := context.WithCancel(context.Background())
	return &BatchProcessor{
		db:     db,
		queue:  queue,
		config: config,
		logger: logger,
		write:  database.UpsertClicks,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start subscribes to the queue and launches its workers
func (p *BatchProcessor) Start() {
	p.queue.Subscribe(p.processBatch)
	p.queue.Start(p.config.BatchProcessing.ProcessorCount)
}

// Stop flushes and drains the queue, then aborts any retry still waiting
func (p *BatchProcessor) Stop() {
	p.queue.Close()
	p.cancel()
}

// processBatch handles a single batch of events with transaction and retry logic
func (p *BatchProcessor) processBatch(batch []*models.ClickEvent) error {
	maxRetries := p.config.BatchProcessing.MaxRetries
	delay := time.Duration(p.config.BatchProcessing.RetryDelay) * time.Second

	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying batch processing, attempt %d of %d", attempt, maxRetries)
			select {
			case <-p.ctx.Done():
				return fmt.Errorf("batch processing aborted: %w", p.ctx.Err())
			case <-time.After(delay):
			}
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := p.write(tx, batch); err != nil {
				return fmt.Errorf("failed to upsert click batch: %w", err)
			}
			return nil
		})

		if err == nil {
			p.logger.Infof("Successfully processed batch of %d click events", len(batch))
			metrics.ClicksPersistedTotal.Add(float64(len(batch)))
			return nil
		}

		p.logger.Errorf("Batch processing failed: %v", err)
	}

	metrics.ClickBatchFailuresTotal.Inc()
	return fmt.Errorf("failed to process batch after %d attempts: %w", maxRetries+1, err)
}
