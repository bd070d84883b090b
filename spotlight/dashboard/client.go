package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/types"
	httputils "spotlight/spotlight/utils/http"
	"spotlight/spotlight/utils/logging"

	"go.uber.org/zap"
)

const apiKeyHeader = "X-API-Key"

// ErrNotLoggedIn is returned before any request is made without a key.
var ErrNotLoggedIn = fmt.Errorf("not logged in: %w", types.ErrUnauthorized)

// Client calls the admin read API. A 401 answer logs the client out.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.RWMutex
	apiKey string
}

// NewClient targets baseURL, which includes the /api prefix.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

func (c *Client) Login(apiKey string) {
	c.mu.Lock()
	c.apiKey = apiKey
	c.mu.Unlock()
}

func (c *Client) Logout() {
	c.mu.Lock()
	c.apiKey = ""
	c.mu.Unlock()
}

func (c *Client) LoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey != ""
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	c.mu.RLock()
	key := c.apiKey
	c.mu.RUnlock()
	if key == "" {
		return ErrNotLoggedIn
	}

	target := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	err := httputils.GetJSON(ctx, c.httpClient, target, map[string]string{apiKeyHeader: key}, out)
	if err == nil {
		return nil
	}
	if errors.Is(err, types.ErrUnauthorized) {
		c.Logout()
	}
	logging.ErrorLogger.Error("API error", zap.String("endpoint", endpoint), zap.Error(err))
	return err
}

func (c *Client) Stats(ctx context.Context) (*types.Stats, error) {
	var resp types.StatsResponse
	if err := c.get(ctx, "stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}

func (c *Client) Sessions(ctx context.Context, filter types.SessionFilter) (*types.SessionsResponse, error) {
	q := url.Values{}
	if filter.WorkshopID != "" {
		q.Set("workshopId", filter.WorkshopID)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	var resp types.SessionsResponse
	if err := c.get(ctx, "sessions", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Assessments(ctx context.Context, filter types.AssessmentFilter) (*types.AssessmentsResponse, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	var resp types.AssessmentsResponse
	if err := c.get(ctx, "assessments", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Conversation(ctx context.Context, sessionID string) (*types.ConversationResponse, error) {
	var resp types.ConversationResponse
	if err := c.get(ctx, "conversation", url.Values{"sessionId": {sessionID}}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Assessment(ctx context.Context, id string) (*models.Assessment, error) {
	var resp types.AssessmentResponse
	if err := c.get(ctx, "assessment", url.Values{"id": {id}}, &resp); err != nil {
		return nil, err
	}
	return &resp.Assessment, nil
}
