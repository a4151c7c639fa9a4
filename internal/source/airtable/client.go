// Package airtable reads records from the Airtable REST API and decodes
// them into the typed external agent and property records.
package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL  = "https://api.airtable.com/v0"
	maxPageSize     = 100
	maxErrorBodyLen = 4096
)

// ErrMissingCredentials is returned when the API key or base ID is not configured.
var ErrMissingCredentials = errors.New("airtable: AIRTABLE_API_KEY and AIRTABLE_BASE_ID must be set")

// Config holds Airtable client configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	BaseID         string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// ListOptions narrows a list call. Zero values are left out of the query.
type ListOptions struct {
	View          string
	FilterFormula string
	MaxRecords    int
}

// Client lists records of an Airtable base.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	baseID         string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// NewClient validates cfg and creates a client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" || cfg.BaseID == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        baseURL,
		apiKey:         cfg.APIKey,
		baseID:         cfg.BaseID,
		pageSize:       pageSize,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "airtable"),
	}, nil
}

// ListRecords returns every record of table, following pagination offsets
// until Airtable stops returning one.
func (c *Client) ListRecords(ctx context.Context, table string, opts ListOptions) ([]Record, error) {
	if c == nil || c.apiKey == "" || c.baseID == "" {
		return nil, ErrMissingCredentials
	}

	var all []Record
	offset := ""

	for page := 0; ; page++ {
		resp, err := c.fetchPage(ctx, table, opts, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch %s page %d: %w", table, page, err)
		}

		all = append(all, resp.Records...)

		c.logger.Debug("fetched page",
			"table", table,
			"page", page,
			"records", len(resp.Records),
			"total", len(all),
		)

		if resp.Offset == "" {
			break
		}
		offset = resp.Offset
	}

	return all, nil
}

func (c *Client) pageURL(table string, opts ListOptions, offset string) string {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	if opts.View != "" {
		q.Set("view", opts.View)
	}
	if opts.FilterFormula != "" {
		q.Set("filterByFormula", opts.FilterFormula)
	}
	if opts.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}
	if offset != "" {
		q.Set("offset", offset)
	}

	return fmt.Sprintf("%s/%s/%s?%s", c.baseURL, url.PathEscape(c.baseID), url.PathEscape(table), q.Encode())
}

func (c *Client) fetchPage(ctx context.Context, table string, opts ListOptions, offset string) (*listResponse, error) {
	u := c.pageURL(table, opts, offset)

	var resp *listResponse
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doRequest(ctx, u)
		if err == nil {
			return resp, nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Retryable() {
			return nil, err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"table", table,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	if c.maxAttempts == 1 {
		return nil, err
	}
	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

// StatusError is a non-2xx answer from Airtable.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether the request may succeed when sent again.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func (c *Client) doRequest(ctx context.Context, u string) (*listResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "ListingSync/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		var apiErr errorResponse
		msg := ""
		if json.Unmarshal(body, &apiErr) == nil {
			msg = apiErr.message()
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: msg}
	}

	var page listResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &page, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if c.maxBackoff > 0 && backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
