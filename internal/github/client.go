package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.github.com"
	MediaType      = "application/vnd.github.v3+json"
)

// Config configures a Client.
type Config struct {
	BaseURL    string
	Owner      string
	Repo       string
	Auth       Authenticator
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to one repository through the REST API.
type Client struct {
	baseURL    string
	owner      string
	repo       string
	auth       Authenticator
	httpClient *http.Client
	logger     *zap.Logger
}

var _ Remote = (*Client)(nil)

// NewClient creates a client for cfg.Owner/cfg.Repo.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if cfg.Owner == "" || cfg.Repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		owner:      cfg.Owner,
		repo:       cfg.Repo,
		auth:       cfg.Auth,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if c.auth == nil {
		c.auth = TokenAuth("")
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, nil
}

func (c *Client) String() string { return c.owner + "/" + c.repo }

// Tree fetches the recursive tree of branch. Any non-2xx reply is an error.
func (c *Client) Tree(ctx context.Context, branch string) (*TreeResponse, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/git/trees/%s?recursive=1", c.owner, c.repo, escapePath(branch))

	resp, body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp, body)
	}

	var tree TreeResponse
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}

	c.logger.Debug("fetched tree",
		zap.String("repo", c.String()),
		zap.String("branch", branch),
		zap.Int("entries", len(tree.Tree)),
		zap.Bool("truncated", tree.Truncated))
	return &tree, nil
}

// PutContents writes req to path. Replies with a JSON body are returned as
// data regardless of status so the caller can classify them; only replies
// that cannot be decoded become errors.
func (c *Client) PutContents(ctx context.Context, path string, req *PutContentsRequest) (*ContentResponse, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/contents/%s", c.owner, c.repo, escapePath(path))

	resp, body, err := c.do(ctx, http.MethodPut, endpoint, req)
	if err != nil {
		return nil, err
	}

	var out ContentResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, newAPIError(resp, body)
		}
		return nil, fmt.Errorf("decode contents response: %w", err)
	}
	out.StatusCode = resp.StatusCode
	out.Raw = json.RawMessage(body)

	c.logger.Debug("put contents",
		zap.String("repo", c.String()),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, in any) (*http.Response, []byte, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", MediaType)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.auth.Authenticate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}
	return resp, data, nil
}

// escapePath escapes each segment of a slash-separated repository path.
func escapePath(p string) string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
