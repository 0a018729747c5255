package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/getitemd/itemd/pkg/item"
)

// GormStore is the relational implementation of ItemStore.
type GormStore struct {
	db *gorm.DB
}

// OpenGorm opens the relational database for cfg and migrates the items
// schema.
func OpenGorm(cfg Config) (*GormStore, error) {
	var dialector gorm.Dialector
	switch cfg.Backend {
	case BackendPostgres:
		dialector = postgres.Open(cfg.DSN)
	case BackendSQLite, "":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = DefaultConfig().DSN
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("backend %q is not relational", cfg.Backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&item.Item{}); err != nil {
		return nil, fmt.Errorf("migrate items schema: %w", err)
	}
	return &GormStore{db: db}, nil
}

// List returns items ordered by id, which matches insertion order because
// ids are assigned monotonically.
func (s *GormStore) List(ctx context.Context, skip int) ([]*item.Item, error) {
	items := make([]*item.Item, 0)
	q := s.db.WithContext(ctx).Order("id")
	if skip > 0 {
		// SQLite only accepts OFFSET when a LIMIT is present.
		q = q.Limit(math.MaxInt32).Offset(skip)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get returns the item with the given id.
func (s *GormStore) Get(ctx context.Context, id int64) (*item.Item, error) {
	var it item.Item
	err := s.db.WithContext(ctx).First(&it, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return &it, nil
}

// Create persists a new item; the database assigns its id at commit time.
func (s *GormStore) Create(ctx context.Context, it *item.Item) error {
	if err := s.db.WithContext(ctx).Create(it).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// Update persists all fields of an existing item. Save is deliberately not
// used here: its upsert fallback would resurrect a row deleted between the
// lookup and the write.
func (s *GormStore) Update(ctx context.Context, it *item.Item) error {
	tx := s.db.WithContext(ctx).
		Model(&item.Item{}).
		Where("id = ?", it.ID).
		Select("Nom", "Prix").
		Updates(item.Item{Nom: it.Nom, Prix: it.Prix})
	if tx.Error != nil {
		return fmt.Errorf("update item %d: %w", it.ID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an item permanently.
func (s *GormStore) Delete(ctx context.Context, id int64) error {
	tx := s.db.WithContext(ctx).Delete(&item.Item{}, id)
	if tx.Error != nil {
		return fmt.Errorf("delete item %d: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database connection.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure GormStore implements ItemStore.
var _ ItemStore = (*GormStore)(nil)
