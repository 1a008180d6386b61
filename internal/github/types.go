package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound          = errors.New("github: not found")
	ErrRateLimitExceeded = errors.New("github: rate limit exceeded")
	ErrUnauthorized      = errors.New("github: bad credentials")
)

// TreeEntry is one object of a recursive tree listing.
type TreeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode,omitempty"`
	Type string `json:"type,omitempty"`
	SHA  string `json:"sha,omitempty"`
	Size *int64 `json:"size,omitempty"`
	URL  string `json:"url,omitempty"`
}

// TreeResponse is the body of GET /repos/{owner}/{repo}/git/trees/{ref}.
type TreeResponse struct {
	SHA       string      `json:"sha,omitempty"`
	URL       string      `json:"url,omitempty"`
	Tree      []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// Signature identifies an author or committer.
type Signature struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date,omitempty"`
}

// PutContentsRequest is the body of PUT /repos/{owner}/{repo}/contents/{path}.
type PutContentsRequest struct {
	Message   string     `json:"message"`
	Committer *Signature `json:"committer,omitempty"`
	Content   string     `json:"content"`
	Branch    string     `json:"branch,omitempty"`
	SHA       string     `json:"sha,omitempty"`
}

// ContentFile describes the file written by a contents call.
type ContentFile struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int64  `json:"size"`
	Type        string `json:"type,omitempty"`
	URL         string `json:"url,omitempty"`
	HTMLURL     string `json:"html_url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
}

// Commit is the commit created by a contents call.
type Commit struct {
	SHA       string     `json:"sha"`
	Message   string     `json:"message,omitempty"`
	HTMLURL   string     `json:"html_url,omitempty"`
	Author    *Signature `json:"author,omitempty"`
	Committer *Signature `json:"committer,omitempty"`
}

// ContentResponse is the decoded reply of a contents write.
//
// Successful writes carry Content and Commit. Rejections (422 sha mismatch,
// 409 conflicts, 404 unknown branch) carry only Message and
// DocumentationURL. Raw keeps the body exactly as received.
type ContentResponse struct {
	Content          *ContentFile `json:"content,omitempty"`
	Commit           *Commit      `json:"commit,omitempty"`
	Message          string       `json:"message,omitempty"`
	DocumentationURL string       `json:"documentation_url,omitempty"`

	StatusCode int             `json:"-"`
	Raw        json.RawMessage `json:"-"`
}

// Committed reports whether the response describes a created commit.
func (r *ContentResponse) Committed() bool {
	return r != nil && r.Commit != nil && r.Commit.Committer != nil
}

// String returns the response as JSON text, preferring the raw body.
func (r *ContentResponse) String() string {
	if r == nil {
		return "null"
	}
	if len(r.Raw) > 0 {
		return string(r.Raw)
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf("%+v", *r)
	}
	return string(data)
}

// APIError is returned for non-2xx replies that are not data for the caller.
type APIError struct {
	Method      string
	URL         string
	StatusCode  int
	Message     string
	Body        []byte
	RateLimited bool
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("github: %s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("github: %s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is maps status codes onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrRateLimitExceeded:
		return e.RateLimited
	}
	return false
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	limited := resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests
	e := &APIError{
		Method:      resp.Request.Method,
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		Body:        body,
		RateLimited: limited && resp.Header.Get("X-RateLimit-Remaining") == "0",
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Message = payload.Message
	}
	return e
}
