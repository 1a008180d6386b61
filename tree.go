package ghcas

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Asset is a previously uploaded file found on the branch.
type Asset struct {
	Name string
}

// FetchTree lists every object on the target branch recursively. Errors are
// returned as the client produced them; a truncated listing is only logged.
func (u *Uploader) FetchTree(ctx context.Context) (*TreeResponse, error) {
	tree, err := u.remote.Tree(ctx, u.target.Branch)
	if err != nil {
		return nil, err
	}
	if tree.Truncated {
		u.logger.Warn("tree listing truncated",
			zap.String("branch", u.target.Branch),
			zap.Int("entries", len(tree.Tree)))
	}
	return tree, nil
}

// FilterTree keeps entries whose final path segment is fingerprint-named.
// Order is preserved; everything else is dropped silently.
func FilterTree(entries []TreeEntry) []Asset {
	var assets []Asset
	for _, e := range entries {
		name := e.Path
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		if IsFingerprintName(name) {
			assets = append(assets, Asset{Name: name})
		}
	}
	return assets
}

// Assets fetches the tree and filters it.
func (u *Uploader) Assets(ctx context.Context) ([]Asset, error) {
	tree, err := u.FetchTree(ctx)
	if err != nil {
		return nil, err
	}
	return FilterTree(tree.Tree), nil
}
