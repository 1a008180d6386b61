package ghcas

import (
	"context"
	"encoding/base64"
	"fmt"

	"go.uber.org/zap"

	"github.com/aweris/ghcas/internal/github"
)

const timestampLayout = "2006-01-02 15:04:05"

// Upload writes data to <storePath>/<filename> on the target branch and
// returns the remote's reply unclassified. The blob hash of data is sent as
// the sha guard. Rejections come back as a response; only transport
// failures are errors, returned as the client produced them.
func (u *Uploader) Upload(ctx context.Context, data []byte, filename, displayName string) (*ContentResponse, error) {
	if u.token == "" {
		return nil, ErrMissingToken
	}

	digest := BlobHash(data)
	path := u.target.contentPath(filename)

	req := &github.PutContentsRequest{
		Message: fmt.Sprintf("upload %s at %s", displayName, u.now().UTC().Format(timestampLayout)),
		Committer: &github.Signature{
			Name:  u.committer.Name,
			Email: u.committer.Email,
		},
		Content: base64.StdEncoding.EncodeToString(data),
		Branch:  u.target.Branch,
		SHA:     digest.String(),
	}

	u.logger.Debug("uploading",
		zap.String("path", path),
		zap.String("sha", digest.String()),
		zap.Int("size", len(data)))

	resp, err := u.remote.PutContents(ctx, path, req)
	if err != nil {
		u.logger.Debug("upload failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	return resp, nil
}

// Put uploads one asset end to end. When store already knows filename the
// upload is skipped and the existing URL returned without persisting.
// Otherwise the reply is classified and, on success, recorded in store.
// A nil store disables both the lookup and the record.
func (u *Uploader) Put(ctx context.Context, store RecordStore, data []byte, filename, displayName string) (Outcome, error) {
	if lookup, ok := store.(RecordLookup); ok {
		known, err := lookup.HasRecord(ctx, filename)
		if err != nil {
			return Outcome{}, fmt.Errorf("lookup %s: %w", filename, err)
		}
		if known {
			u.logger.Debug("already uploaded", zap.String("filename", filename))
			return Outcome{Status: StatusOK, Message: MessageExists, URL: u.URL(filename)}, nil
		}
	}

	resp, err := u.Upload(ctx, data, filename, displayName)
	if err != nil {
		return Outcome{}, err
	}

	outcome := u.Classify(resp, filename)
	if !outcome.Persist || store == nil {
		return outcome, nil
	}

	if err := store.AddRecord(ctx, filename, Name); err != nil {
		return outcome, fmt.Errorf("record %s: %w", filename, err)
	}
	return outcome, nil
}
