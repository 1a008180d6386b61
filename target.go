package ghcas

import (
	"fmt"
	"strings"
)

// Mode selects how public URLs are built.
type Mode int

const (
	// ModeCDN serves assets through the jsDelivr GitHub mirror.
	ModeCDN Mode = iota
	// ModeDirect serves assets from raw.githubusercontent.com.
	ModeDirect
)

func (m Mode) String() string {
	switch m {
	case ModeCDN:
		return "cdn"
	case ModeDirect:
		return "direct"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	DefaultCDNHost = "cdn.jsdelivr.net"
	DefaultRawHost = "raw.githubusercontent.com"
)

// Target is the repository location assets are written to.
// It is fixed when the Uploader is created.
type Target struct {
	Owner     string // lowercased
	Repo      string
	Branch    string
	StorePath string
	Mode      Mode

	CDNHost string
	RawHost string

	// rawOwner keeps the owner as configured; direct URLs use it.
	rawOwner string
}

// NewTarget builds a Target with default hosts. The owner is lowercased.
func NewTarget(owner, repo, branch, storePath string, mode Mode) Target {
	return Target{
		Owner:     strings.ToLower(owner),
		Repo:      repo,
		Branch:    branch,
		StorePath: storePath,
		Mode:      mode,
		CDNHost:   DefaultCDNHost,
		RawHost:   DefaultRawHost,
		rawOwner:  owner,
	}
}

func (t Target) validate() error {
	switch {
	case t.Owner == "":
		return fmt.Errorf("%w: owner is required", ErrInvalidTarget)
	case t.Repo == "":
		return fmt.Errorf("%w: repo is required", ErrInvalidTarget)
	case t.Branch == "":
		return fmt.Errorf("%w: branch is required", ErrInvalidTarget)
	}
	return nil
}

// URL returns the public URL of filename. It never touches the network.
//
//	direct: https://<rawHost>/<owner>/<repo>/<branch>/<storePath>/<filename>
//	cdn:    https://<cdnHost>/gh/<owner>/<repo>@<branch>/<storePath>/<filename>
//
// Repeated slashes left by empty segments are collapsed after substitution.
func (t Target) URL(filename string) string {
	var u string
	switch t.Mode {
	case ModeDirect:
		u = fmt.Sprintf("https://%s/%s/%s/%s/%s/%s",
			orDefault(t.RawHost, DefaultRawHost), t.directOwner(), t.Repo, t.Branch, t.StorePath, filename)
	default:
		u = fmt.Sprintf("https://%s/gh/%s/%s@%s/%s/%s",
			orDefault(t.CDNHost, DefaultCDNHost), t.Owner, t.Repo, t.Branch, t.StorePath, filename)
	}
	return collapseSlashes(u)
}

// contentPath is the repository path filename is written to.
func (t Target) contentPath(filename string) string {
	return strings.TrimPrefix(collapseSlashes(t.StorePath+"/"+filename), "/")
}

func (t Target) directOwner() string {
	if t.rawOwner != "" {
		return t.rawOwner
	}
	return t.Owner
}

// collapseSlashes reduces every run of "/" after the scheme to one.
func collapseSlashes(s string) string {
	prefix := ""
	if scheme, rest, ok := strings.Cut(s, "://"); ok {
		prefix, s = scheme+"://", rest
	}

	var b strings.Builder
	b.Grow(len(prefix) + len(s))
	b.WriteString(prefix)

	prev := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '/' {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
