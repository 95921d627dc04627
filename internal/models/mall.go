package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Mall is one local-government online mall listed in the directory
type Mall struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	Region        string   `json:"region,omitempty"`
	City          *string  `json:"city,omitempty"`
	Tags          []string `json:"tags"`
	Featured      *bool    `json:"featured,omitempty"`
	IsNew         *bool    `json:"isNew,omitempty"`
	StatusPopular *bool    `json:"statusPopular,omitempty"`
	LastVerified  *string  `json:"lastVerified,omitempty"`
	Description   *string  `json:"description,omitempty"`
	ClickCount    *int64   `json:"clickCount,omitempty"`
}

// UnmarshalJSON accepts the id either as a JSON string or as a number.
// Numeric ids keep their literal decimal text.
func (m *Mall) UnmarshalJSON(data []byte) error {
	type alias Mall
	aux := struct {
		ID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.ID)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		m.ID = ""
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &m.ID); err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("invalid id %s: %w", raw, err)
		}
		m.ID = n.String()
	}
	return nil
}

// HasRegion reports whether the mall can be counted on the region map
func (m *Mall) HasRegion() bool {
	return m.Region != ""
}

// WithClickCount returns a copy of the mall carrying the given click count
func (m Mall) WithClickCount(count int64) Mall {
	m.ClickCount = &count
	return m
}

// BaseClickCount is the click count recorded in the catalog file, or 0
func (m *Mall) BaseClickCount() int64 {
	if m.ClickCount == nil || *m.ClickCount < 0 {
		return 0
	}
	return *m.ClickCount
}

// ClickEvent is a single tracked visit to a mall's website
type ClickEvent struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey"`
	MallID    string    `json:"mall_id" gorm:"column:mall_id"`
	ClientKey string    `json:"client_key" gorm:"column:client_key"`
	BaseCount int64     `json:"-" gorm:"-"`
	ClickedAt time.Time `json:"clicked_at" gorm:"column:clicked_at"`
}

// TableName pins the gorm table to the one created by the migrations
func (ClickEvent) TableName() string {
	return "click_events"
}
