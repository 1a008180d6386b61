package ghcas

import (
	"time"

	"go.uber.org/zap"

	"github.com/aweris/ghcas/internal/github"
)

// Name is the uploader identity written on every record.
const Name = "github"

// Uploader stores assets in a GitHub branch and syncs the record store
// against it. All state is fixed at construction; it is safe for
// concurrent use.
type Uploader struct {
	target    Target
	token     string
	remote    github.Remote
	committer Committer
	now       func() time.Time
	logger    *zap.Logger
}

// New creates an uploader for owner/repo@branch writing under storePath.
// The token may be empty for read-only use (URLs, sync of public repos).
func New(token, owner, repo, branch, storePath string, opts ...Option) (*Uploader, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	mode := ModeCDN
	if !options.CDN {
		mode = ModeDirect
	}

	target := NewTarget(owner, repo, branch, storePath, mode)
	target.CDNHost = options.CDNHost
	target.RawHost = options.RawHost
	if err := target.validate(); err != nil {
		return nil, err
	}

	client, err := github.NewClient(github.Config{
		BaseURL:    options.APIURL,
		Owner:      target.Owner,
		Repo:       target.Repo,
		Auth:       github.TokenAuth(token),
		HTTPClient: options.HTTPClient,
		Logger:     options.Logger,
	})
	if err != nil {
		return nil, err
	}

	return newUploader(target, token, client, options), nil
}

func newUploader(target Target, token string, remote github.Remote, options *Options) *Uploader {
	return &Uploader{
		target:    target,
		token:     token,
		remote:    remote,
		committer: options.Committer,
		now:       options.Now,
		logger:    options.Logger.With(zap.String("uploader", Name)),
	}
}

// Name returns the uploader identity tag.
func (u *Uploader) Name() string { return Name }

// Target returns a copy of the configured target.
func (u *Uploader) Target() Target { return u.target }

// URL returns the public URL of a stored filename.
func (u *Uploader) URL(filename string) string { return u.target.URL(filename) }
