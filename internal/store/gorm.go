// Package store provides the persistence surfaces behind the editing
// session: a postgres-backed single-row document table and a JSON file
// store for deployments without a database.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trainerhub-app/internal/domain/sitedoc"

	"gorm.io/gorm"
)

// DocumentRecord holds the whole site document as one jsonb value.
// Single-row table (ID=1).
type DocumentRecord struct {
	ID        uint            `gorm:"primaryKey"`
	Data      json.RawMessage `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

const documentRecordID = 1

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context) (*sitedoc.Document, error) {
	var rec DocumentRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", documentRecordID).Error; err != nil {
		return nil, fmt.Errorf("store: load document: %w", err)
	}
	var doc sitedoc.Document
	if err := json.Unmarshal(rec.Data, &doc); err != nil {
		return nil, fmt.Errorf("store: decode document: %w", err)
	}
	return &doc, nil
}

func (s *GormStore) Replace(ctx context.Context, doc *sitedoc.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&DocumentRecord{ID: documentRecordID, Data: raw}).Error
	})
	if err != nil {
		return fmt.Errorf("store: replace document: %w", err)
	}
	return nil
}
