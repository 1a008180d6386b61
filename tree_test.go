package ghcas

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fpA = "3f9a0c1e5b7d2f4a6c8e0b1d3f5a7c9e"
	fpB = "0123456789abcdef0123456789abcdef"
)

func TestFilterTree(t *testing.T) {
	entries := []TreeEntry{
		{Path: "a/b/" + fpA + ".png", Type: "blob"},
		{Path: "a/readme.md", Type: "blob"},
		{Path: fpB + ".jpg", Type: "blob"},
		{Path: "a", Type: "tree"},
	}

	assets := FilterTree(entries)
	assert.Equal(t, []Asset{{Name: fpA + ".png"}, {Name: fpB + ".jpg"}}, assets)
}

func TestFilterTreeEmpty(t *testing.T) {
	assert.Empty(t, FilterTree(nil))
	assert.Empty(t, FilterTree([]TreeEntry{{Path: "x/"}}))
}

func TestFetchTree(t *testing.T) {
	remote := &fakeRemote{tree: &TreeResponse{
		SHA:       "abc",
		Tree:      []TreeEntry{{Path: fpA + ".png"}},
		Truncated: true,
	}}
	up := newTestUploader(t, "tok", remote)

	tree, err := up.FetchTree(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", tree.SHA)
	assert.Equal(t, []string{"images"}, remote.trees)
}

func TestFetchTreeErrorUnmodified(t *testing.T) {
	boom := errors.New("connection reset")
	up := newTestUploader(t, "tok", &fakeRemote{treeErr: boom})

	_, err := up.FetchTree(context.Background())
	assert.Same(t, boom, err)

	_, err = up.Assets(context.Background())
	assert.Same(t, boom, err)
}
