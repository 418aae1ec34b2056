package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

// Client fetches package documents from an npm-compatible registry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithBaseURL points the client at a registry other than npmjs.org.
func WithBaseURL(url string) Option {
	return func(cl *Client) {
		cl.baseURL = strings.TrimRight(url, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// WithLogger sets the logger used for request tracing and skipped versions.
func WithLogger(l *log.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// NewClient creates a Client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		userAgent:  "mcaddon",
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the registry base URL this client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchVersions returns every version string published for pkg, sorted
// ascending. It performs exactly one request and never retries.
func (c *Client) FetchVersions(ctx context.Context, pkg string) ([]string, error) {
	pkg = strings.TrimSpace(pkg)
	url := c.baseURL + "/" + pkg

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("fetching package document", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", ErrNetwork, pkg, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("%w: npm package %s", err, pkg)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrNetwork, err)
	}

	var doc packageDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrMalformedResponse, pkg, err)
	}
	if doc.Versions == nil {
		return nil, fmt.Errorf("%w: %s has no versions object", ErrMalformedResponse, pkg)
	}

	versions := make([]string, 0, len(doc.Versions))
	for v := range doc.Versions {
		versions = append(versions, v)
	}
	slices.Sort(versions)

	c.logger.Debug("fetched package document", "package", pkg, "versions", len(versions))
	return versions, nil
}

// ClassifyVersions fetches pkg's versions and buckets them into channels.
// A failed fetch yields no table at all.
func (c *Client) ClassifyVersions(ctx context.Context, pkg string) (VersionTable, error) {
	versions, err := c.FetchVersions(ctx, pkg)
	if err != nil {
		return nil, err
	}
	return Classify(versions, c.logger), nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNetwork, ErrNotFound)
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
