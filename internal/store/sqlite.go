package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures Open.
type Options struct {
	CacheSize int
	Logger    *zap.Logger
}

// SQLStore implements Store on a SQLite database.
//
// Storage layout:
//
//	path            (SQLite file)
//	  records       (id, name UNIQUE, upload_way, created_at)
type SQLStore struct {
	db     *gorm.DB
	cache  Cache
	logger *zap.Logger
}

var _ Store = (*SQLStore)(nil)

// Open opens or creates the database at path and migrates the schema.
// The caller owns the returned store and must Close it.
func Open(path string, opts Options) (*SQLStore, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Record{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	cache, err := NewLRUCache(opts.CacheSize)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create cache: %w", err)
	}

	return &SQLStore{db: db, cache: cache, logger: logger}, nil
}

// AddRecord inserts name unless it already exists.
func (s *SQLStore) AddRecord(ctx context.Context, name, uploader string) error {
	rec := Record{Name: name, UploadWay: uploader}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("add record %s: %w", name, err)
	}

	s.cache.Add(name)
	return nil
}

// HasRecord checks the cache, then the database.
func (s *SQLStore) HasRecord(ctx context.Context, name string) (bool, error) {
	if s.cache.Has(name) {
		return true, nil
	}

	var n int64
	err := s.db.WithContext(ctx).Model(&Record{}).Where("name = ?", name).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("lookup record %s: %w", name, err)
	}

	if n > 0 {
		s.cache.Add(name)
		return true, nil
	}
	return false, nil
}

func (s *SQLStore) Records(ctx context.Context, uploader string) ([]Record, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if uploader != "" {
		q = q.Where("upload_way = ?", uploader)
	}

	var records []Record
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (s *SQLStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Record{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Close drops the cache and closes the database handle.
func (s *SQLStore) Close() error {
	s.cache.Clear()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
