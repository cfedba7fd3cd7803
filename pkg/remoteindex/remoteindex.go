// Package remoteindex fetches the published collection index over HTTP.
// The index is advisory: a fetch failure degrades to an absent index so the
// caller can fall back to a local collection.
package remoteindex

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/collection"
	"github.com/Dlaby23/claude-agents-ultimate-collection/pkg/logger"
)

// DefaultIndexURL is the published agents-index.json location.
const DefaultIndexURL = "https://raw.githubusercontent.com/Dlaby23/claude-agents-ultimate-collection/main/agents-index.json"

const fetchTimeout = 10 * time.Second

// maxIndexSize caps the response body read, the real index is well under this.
const maxIndexSize = 32 << 20

// Client fetches the remote index.
type Client struct {
	httpClient *http.Client
	url        string
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the index location.
func WithURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.url = url
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client with a fixed request timeout.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
		url:        DefaultIndexURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves and decodes the remote index. Exactly one attempt is made;
// the caller decides whether an absent index matters.
func (c *Client) Fetch(ctx context.Context) (*collection.Index, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build index request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch index")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d fetching index", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxIndexSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read index response")
	}

	var index collection.Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, errors.Wrap(err, "failed to decode index")
	}
	return &index, nil
}

// Load fetches the remote index, degrading to nil with a warning on any
// failure. Never returns an error.
func (c *Client) Load(ctx context.Context) *collection.Index {
	index, err := c.Fetch(ctx)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("Could not load remote index, continuing without it")
		return nil
	}
	logger.G(ctx).WithField("agents", index.TotalAgents).Debug("Loaded remote index")
	return index
}
