package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// APIBase is the Crossref REST API base URL.
	APIBase = "https://api.crossref.org"

	// ResolverBase is the DOI resolver used for content negotiation.
	ResolverBase = "https://doi.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit caps outgoing requests per second, per Crossref's
	// politeness guidance.
	RateLimit = 10.0

	userAgent = "bibtidy/1.0"
)

// Client is a rate-limited HTTP client for Crossref metadata lookups.
type Client struct {
	httpClient   *http.Client
	limiter      *rate.Limiter
	apiBase      string
	resolverBase string
	mailto       string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAPIBase sets a custom REST API base URL (for testing).
func WithAPIBase(base string) ClientOption {
	return func(c *Client) {
		c.apiBase = strings.TrimSuffix(base, "/")
	}
}

// WithResolverBase sets a custom resolver base URL (for testing).
func WithResolverBase(base string) ClientOption {
	return func(c *Client) {
		c.resolverBase = strings.TrimSuffix(base, "/")
	}
}

// WithMailto adds a contact address to the User-Agent so requests land in
// Crossref's polite pool.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// NewClient creates a new Crossref client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		limiter:      rate.NewLimiter(rate.Limit(RateLimit), 1),
		apiBase:      APIBase,
		resolverBase: ResolverBase,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Work fetches the structured metadata record for a DOI.
func (c *Client) Work(ctx context.Context, doi string) (*Work, error) {
	body, err := c.get(ctx, c.apiBase+"/works/"+url.PathEscape(doi), "application/json", doi)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Status  string `json:"status"`
		Message Work   `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: parsing work record: %v", ErrInvalidResponse, err)
	}
	if envelope.Status != "ok" {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidResponse, envelope.Status)
	}

	return &envelope.Message, nil
}

// BibTeX fetches raw BibTeX text for a DOI via resolver content
// negotiation. The result is meant to be fed through the ordinary entry
// parser.
func (c *Client) BibTeX(ctx context.Context, doi string) (string, error) {
	body, err := c.get(ctx, c.resolverBase+"/"+doi, "application/x-bibtex", doi)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, rawURL, accept, doi string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp, doi); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetworkError, err)
	}
	return body, nil
}

func (c *Client) userAgent() string {
	if c.mailto != "" {
		return fmt.Sprintf("%s (mailto:%s)", userAgent, c.mailto)
	}
	return userAgent
}

// checkHTTPErrors returns an error if the response indicates a problem.
func checkHTTPErrors(resp *http.Response, doi string) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, doi)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode >= 400:
		return &APIError{
			StatusCode: resp.StatusCode,
			DOI:        doi,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}
	return nil
}
