// Package github implements the GitHub REST operations the uploader needs.
//
// Based on the GitHub v3 REST API:
// - Token authentication via the Authorization header
// - Recursive git tree listing for a single branch
// - Contents API writes guarded by the blob sha
package github

import "context"

// Remote handles GitHub repository operations.
type Remote interface {
	// Tree lists every object reachable from a branch in one response.
	Tree(ctx context.Context, branch string) (*TreeResponse, error)

	// PutContents creates or updates the file at path.
	PutContents(ctx context.Context, path string, req *PutContentsRequest) (*ContentResponse, error)
}
