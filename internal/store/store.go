// Package store implements the local record store.
//
// A record marks a storage filename as already uploaded and remembers which
// uploader produced it. Records are written by upload and by sync, and read
// back to skip uploads of content the remote already holds:
// - AddRecord is idempotent on the name
// - HasRecord is answered from an in-memory cache before hitting the database
// - SQLite through gorm, one file per installation
package store

import (
	"context"
	"time"
)

// Store handles local upload records.
type Store interface {
	// AddRecord stores name, tagged with the uploader that produced it.
	AddRecord(ctx context.Context, name, uploader string) error

	// HasRecord reports whether name was recorded before.
	HasRecord(ctx context.Context, name string) (bool, error)

	// Records lists records, newest first. A non-empty uploader filters by tag.
	Records(ctx context.Context, uploader string) ([]Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// Close releases the underlying database.
	Close() error
}

// Record is one uploaded asset.
type Record struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"`
	UploadWay string    `gorm:"size:32;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}
