package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"listing_sync/internal/domain"
)

// StageClient runs the sync stages through their HTTP endpoints.
type StageClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewStageClient(baseURL, token string, httpClient *http.Client) *StageClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &StageClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *StageClient) SyncAgents(ctx context.Context) (*domain.StageReport, error) {
	return c.post(ctx, "/sync/agents")
}

func (c *StageClient) SyncProperties(ctx context.Context) (*domain.StageReport, error) {
	return c.post(ctx, "/sync/properties")
}

// post decodes the stage envelope whatever the status code; success=false
// bodies come back with 401 and 500.
func (c *StageClient) post(ctx context.Context, path string) (*domain.StageReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	var report domain.StageReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", path, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK && report.Success {
		report.Success = false
		if report.Error == "" {
			report.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
	}

	return &report, nil
}
