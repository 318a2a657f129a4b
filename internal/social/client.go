package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/unmai/unmai/internal/model"
	"github.com/unmai/unmai/internal/worker"
)

// Searcher retrieves recent public posts matching a query.
type Searcher interface {
	SearchRecent(ctx context.Context, query string) (*SearchResult, error)
}

// Client talks to the X API v2 recent search endpoint
type Client struct {
	bearerToken string
	baseURL     string
	searchLimit int
	httpClient  *http.Client
	limiter     *worker.Limiter
}

// X API v2 structures
type tweetURL struct {
	URL         string `json:"url"`
	ExpandedURL string `json:"expanded_url"`
	UnwoundURL  string `json:"unwound_url,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type tweetEntities struct {
	URLs []tweetURL `json:"urls,omitempty"`
}

// Tweet is one post returned by the recent search endpoint
type Tweet struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	AuthorID  string        `json:"author_id"`
	CreatedAt string        `json:"created_at"`
	Entities  tweetEntities `json:"entities,omitempty"`
}

// User is an expanded author record
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Verified    bool   `json:"verified,omitempty"`
}

type searchResponse struct {
	Data     []Tweet `json:"data"`
	Includes struct {
		Users []User `json:"users"`
	} `json:"includes"`
	Meta struct {
		ResultCount int `json:"result_count"`
	} `json:"meta"`
}

type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
}

type errorResponse struct {
	Errors []apiError `json:"errors"`
	Title  string     `json:"title"`
	Detail string     `json:"detail"`
}

// SearchResult pairs retrieved posts with their expanded author records
type SearchResult struct {
	Tweets []Tweet
	Users  map[string]User // keyed by author ID
}

// NewClient creates a recent-search client. Returns nil when no bearer
// token is configured, which callers treat as the unconfigured state.
func NewClient(cfg model.SocialConfig, limiter *worker.Limiter) *Client {
	if cfg.BearerToken == "" {
		return nil
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.twitter.com/2"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	searchLimit := cfg.SearchLimit
	if searchLimit <= 0 {
		searchLimit = 30
	}
	// API maximum per request
	if searchLimit > 100 {
		searchLimit = 100
	}

	return &Client{
		bearerToken: cfg.BearerToken,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		searchLimit: searchLimit,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
	}
}

// SearchRecent queries the recent search endpoint for posts matching query
func (c *Client) SearchRecent(ctx context.Context, query string) (*SearchResult, error) {
	endpoint := c.baseURL + "/tweets/search/recent"

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, endpoint); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(c.searchLimit))
	params.Set("tweet.fields", "entities,created_at,author_id")
	params.Set("expansions", "author_id")
	params.Set("user.fields", "username,description,verified")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.bearerToken)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil {
			detail := apiErr.Detail
			if detail == "" && len(apiErr.Errors) > 0 {
				detail = apiErr.Errors[0].Detail
			}
			if detail != "" {
				return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, detail)
			}
		}
		return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp searchResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	users := make(map[string]User, len(resp.Includes.Users))
	for _, u := range resp.Includes.Users {
		users[u.ID] = u
	}

	return &SearchResult{Tweets: resp.Data, Users: users}, nil
}
