package database

import "fmt"

func (d *Database) RunMigrations() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS mall_clicks (
			mall_id TEXT PRIMARY KEY,
			click_count INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create mall_clicks table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS click_events (
			id TEXT PRIMARY KEY,
			mall_id TEXT NOT NULL,
			client_key TEXT,
			clicked_at TIMESTAMP NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create click_events table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_click_events_mall
		ON click_events(mall_id, clicked_at);
	`)
	if err != nil {
		return err
	}

	return nil
}
