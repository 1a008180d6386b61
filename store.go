package ghcas

import (
	"context"

	"github.com/aweris/ghcas/internal/github"
)

// RecordStore persists the names of uploaded assets.
// Implemented by internal/store for the CLI; any implementation works.
type RecordStore interface {
	AddRecord(ctx context.Context, name, uploader string) error
}

// RecordLookup is implemented by stores that can answer whether a name is
// already recorded. Put uses it to skip redundant uploads.
type RecordLookup interface {
	HasRecord(ctx context.Context, name string) (bool, error)
}

// Re-exported from internal/github for convenience.
type (
	TreeEntry       = github.TreeEntry
	TreeResponse    = github.TreeResponse
	ContentResponse = github.ContentResponse
	APIError        = github.APIError
)

var (
	ErrNotFound          = github.ErrNotFound
	ErrRateLimitExceeded = github.ErrRateLimitExceeded
	ErrUnauthorized      = github.ErrUnauthorized
)
