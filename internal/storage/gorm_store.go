package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipebox/internal/common"
)

// kvEntry is the single relational table the GORM backend keeps: one row per
// collection key.
type kvEntry struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value string `gorm:"type:text"`
}

// TableName overrides GORM's pluralized default.
func (kvEntry) TableName() string {
	return "kv_entries"
}

// GormStore is a KeyValueStore backed by a relational database through GORM.
// It works with both the sqlite and postgres drivers, which makes it the
// backend of choice when the data should live in an existing database.
type GormStore struct {
	db *gorm.DB

	// Serializes Update calls. SQLite has no SELECT ... FOR UPDATE, so
	// in-process read-modify-write cycles are ordered here instead; the
	// surrounding DB transaction still keeps each write atomic.
	mu sync.Mutex
}

// NewGormStore creates the store and migrates its table.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Get returns the value stored under key, if any.
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", common.ErrStoreUnavailable, key, err)
	}
	return entry.Value, true, nil
}

// Set stores value under key, overwriting any prior value.
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&kvEntry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", common.ErrStoreUnavailable, key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *GormStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&kvEntry{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", common.ErrStoreUnavailable, key, err)
	}
	return nil
}

// Update applies fn to the current value of key inside a transaction,
// serialized against other Update calls in this process.
func (s *GormStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fnErr error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current := ""
		found := true
		var entry kvEntry
		err := tx.First(&entry, "key = ?", key).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			found = false
		case err != nil:
			return err
		default:
			current = entry.Value
		}

		next, err := fn(current, found)
		if err != nil {
			fnErr = err
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&kvEntry{Key: key, Value: next}).Error
	})
	if err != nil {
		if fnErr != nil {
			return fnErr
		}
		return fmt.Errorf("%w: update %s: %v", common.ErrStoreUnavailable, key, err)
	}
	return nil
}
