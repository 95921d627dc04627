package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mallmap/server/internal/models"
)

// Database stores tracked click counts. Reads go through database/sql, batch
// writes through gorm on the same connection pool.
type Database struct {
	db   *sql.DB
	gorm *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// Writers are serialized by sqlite anyway; one connection avoids
	// "database is locked" between the gorm and sql paths.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}

	gdb, err := gorm.Open(&sqlite.Dialector{Conn: db}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	return &Database{db: db, gorm: gdb}, nil
}

// Gorm returns the gorm session used for batch writes
func (d *Database) Gorm() *gorm.DB {
	return d.gorm
}

func (d *Database) Close() error {
	return d.db.Close()
}

// GetClickCount returns the tracked total for one mall. The bool is false
// when no click was ever tracked for it.
func (d *Database) GetClickCount(mallID string) (int64, bool, error) {
	var count int64
	err := d.db.QueryRow(`
		SELECT click_count
		FROM mall_clicks
		WHERE mall_id = ?
	`, mallID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get click count: %w", err)
	}
	return count, true, nil
}

// GetClickCounts returns all tracked totals keyed by mall id
func (d *Database) GetClickCounts() (map[string]int64, error) {
	rows, err := d.db.Query(`SELECT mall_id, click_count FROM mall_clicks`)
	if err != nil {
		return nil, fmt.Errorf("failed to query click counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var id string
		var count int64
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

// UpsertClicks records a batch of click events inside tx. Each mall's counter
// starts at the catalog's clickCount and grows by the number of events.
func UpsertClicks(tx *gorm.DB, events []*models.ClickEvent) error {
	if len(events) == 0 {
		return nil
	}

	type tally struct {
		base  int64
		count int64
	}
	perMall := make(map[string]*tally)
	order := make([]string, 0)
	for _, e := range events {
		t, ok := perMall[e.MallID]
		if !ok {
			t = &tally{base: e.BaseCount}
			perMall[e.MallID] = t
			order = append(order, e.MallID)
		}
		t.count++
	}

	if err := tx.Create(&events).Error; err != nil {
		return fmt.Errorf("failed to insert click events: %w", err)
	}

	now := time.Now().UTC()
	for _, id := range order {
		t := perMall[id]
		err := tx.Exec(`
			INSERT INTO mall_clicks (mall_id, click_count, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(mall_id) DO UPDATE SET
				click_count = click_count + ?,
				updated_at = excluded.updated_at
		`, id, t.base+t.count, now, t.count).Error
		if err != nil {
			return fmt.Errorf("failed to update click count for %s: %w", id, err)
		}
	}
	return nil
}
