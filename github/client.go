package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/issuescout/core"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second

	// maxPerRequest is the GitHub API page size ceiling.
	maxPerRequest = 100

	// tokenlessRepoLimit caps repository scans for unauthenticated
	// clients, which get a much lower rate limit.
	tokenlessRepoLimit = 30

	userAgent = "issuescout/1.0"
)

// Client retrieves issues from the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Retriever = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithToken sets the API token explicitly instead of reading GITHUB_TOKEN.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a GitHub API client.
// The token defaults to the GITHUB_TOKEN environment variable; without a
// token the client still works at reduced rate limits.
//
// Returns Retriever to keep callers on the interface.
func NewClient(opts ...ClientOption) Retriever {
	return newClient(opts...)
}

func newClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		token:      os.Getenv("GITHUB_TOKEN"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default().With("component", "github-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// repoItem is the subset of the repository search response we consume.
type repoItem struct {
	FullName string `json:"full_name"`
	Stars    int    `json:"stargazers_count"`
}

type searchResponse struct {
	Items []repoItem `json:"items"`
}

// issueItem is the subset of the issue listing response we consume.
// PullRequest is present exactly when the item is a pull request.
type issueItem struct {
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	HTMLURL     string          `json:"html_url"`
	PullRequest json.RawMessage `json:"pull_request"`
	Labels      []struct {
		Name string `json:"name"`
	} `json:"labels"`
}

// FetchIssues gathers open issues from the most starred repositories
// matching the query. Repositories are scanned in star order until
// PerPage issues are collected or the repository list is exhausted.
func (c *Client) FetchIssues(ctx context.Context, query Query) ([]core.Issue, error) {
	topN := query.TopN
	if c.token == "" && topN > tokenlessRepoLimit {
		c.logger.Warn("no GITHUB_TOKEN set, limiting repository scan",
			"requested", topN, "limit", tokenlessRepoLimit)
		topN = tokenlessRepoLimit
	}

	repos, err := c.searchTopRepositories(ctx, query.Language, topN)
	if err != nil {
		return nil, err
	}

	wanted := labelSet(query.Labels)

	perPage := query.PerPage
	if perPage < 1 {
		perPage = 1
	}

	var collected []core.Issue
	remaining := perPage

	for _, repo := range repos {
		limit := remaining
		if limit > maxPerRequest {
			limit = maxPerRequest
		}

		batch, err := c.listRepoIssues(ctx, repo.FullName, limit, wanted)
		if err != nil {
			return nil, err
		}

		collected = append(collected, batch...)
		remaining = perPage - len(collected)
		if remaining <= 0 {
			break
		}
	}

	if len(collected) > perPage {
		collected = collected[:perPage]
	}
	return collected, nil
}

// searchTopRepositories returns up to topN repositories ordered by stars.
func (c *Client) searchTopRepositories(ctx context.Context, language string, topN int) ([]repoItem, error) {
	q := "stars:>0"
	if language != "" && language != core.LanguageAll {
		q += " language:" + language
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("per_page", strconv.Itoa(clampPageSize(topN)))
	params.Set("sort", "stars")
	params.Set("order", "desc")

	var response searchResponse
	if err := c.getJSON(ctx, "/search/repositories", params, &response); err != nil {
		return nil, err
	}

	repos := make([]repoItem, 0, len(response.Items))
	for _, item := range response.Items {
		if !strings.Contains(item.FullName, "/") {
			continue
		}
		repos = append(repos, item)
	}
	return repos, nil
}

// listRepoIssues returns up to limit open issues from a repository,
// newest activity first. Pull requests are skipped. When wanted is
// non-nil, only issues carrying at least one wanted label are kept.
func (c *Client) listRepoIssues(ctx context.Context, fullName string, limit int, wanted map[string]struct{}) ([]core.Issue, error) {
	params := url.Values{}
	params.Set("state", "open")
	params.Set("sort", "updated")
	params.Set("direction", "desc")
	params.Set("per_page", strconv.Itoa(clampPageSize(limit)))

	var items []issueItem
	if err := c.getJSON(ctx, "/repos/"+fullName+"/issues", params, &items); err != nil {
		return nil, err
	}

	var issues []core.Issue
	for _, item := range items {
		if item.PullRequest != nil {
			continue
		}

		if wanted != nil && !hasWantedLabel(item, wanted) {
			continue
		}

		issues = append(issues, core.Issue{
			Title: item.Title,
			Body:  item.Body,
			URL:   item.HTMLURL,
			Repo:  fullName,
		})

		if len(issues) >= limit {
			break
		}
	}
	return issues, nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("github api: GET %s returned %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// labelSet lowercases a label list into a lookup set.
// Returns nil for an empty list, which disables filtering.
func labelSet(labels []string) map[string]struct{} {
	if len(labels) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		set[strings.ToLower(label)] = struct{}{}
	}
	return set
}

func hasWantedLabel(item issueItem, wanted map[string]struct{}) bool {
	for _, label := range item.Labels {
		name := strings.ToLower(strings.TrimSpace(label.Name))
		if _, ok := wanted[name]; ok {
			return true
		}
	}
	return false
}

func clampPageSize(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxPerRequest {
		return maxPerRequest
	}
	return n
}
