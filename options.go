package ghcas

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/aweris/ghcas/internal/github"
)

// Committer is the identity recorded on upload commits.
type Committer struct {
	Name  string
	Email string
}

// DefaultCommitter signs every upload unless WithCommitter overrides it.
var DefaultCommitter = Committer{Name: "image bot", Email: "image_bot@sooko.club"}

// Options configures an Uploader.
type Options struct {
	CDN        bool
	APIURL     string
	CDNHost    string
	RawHost    string
	Committer  Committer
	HTTPClient *http.Client
	Logger     *zap.Logger
	Now        func() time.Time
}

// Option is a functional option for configuring New.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		CDN:       true,
		APIURL:    github.DefaultBaseURL,
		CDNHost:   DefaultCDNHost,
		RawHost:   DefaultRawHost,
		Committer: DefaultCommitter,
		Logger:    zap.NewNop(),
		Now:       time.Now,
	}
}

// WithCDN toggles CDN delivery. Disabled means direct raw URLs.
func WithCDN(enabled bool) Option {
	return func(o *Options) { o.CDN = enabled }
}

// WithAPIURL points the uploader at another GitHub API endpoint.
func WithAPIURL(url string) Option {
	return func(o *Options) {
		if url != "" {
			o.APIURL = url
		}
	}
}

// WithCDNHost replaces the CDN host used in public URLs.
func WithCDNHost(host string) Option {
	return func(o *Options) {
		if host != "" {
			o.CDNHost = host
		}
	}
}

// WithRawHost replaces the raw content host used in direct URLs.
func WithRawHost(host string) Option {
	return func(o *Options) {
		if host != "" {
			o.RawHost = host
		}
	}
}

// WithCommitter sets the identity attached to upload commits.
func WithCommitter(name, email string) Option {
	return func(o *Options) { o.Committer = Committer{Name: name, Email: email} }
}

// WithHTTPClient sets the client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) { o.HTTPClient = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock overrides the time source used in commit messages.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}
