package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"

	"github.com/chynybekuuludastan/copywriting_agent/internal/models"
	"github.com/chynybekuuludastan/copywriting_agent/internal/service/llm"
)

// Constants for API configuration
const (
	DefaultBaseURL   = "https://api.search.brave.com/res/v1/web/search"
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 3
	DefaultCacheTTL  = 24 * time.Hour
	DefaultRateLimit = 1 // Requests per second
)

// ErrMissingAPIKey is returned when the client has no subscription token
var ErrMissingAPIKey = errors.New("Brave Search API key is not configured")

var hashtagPattern = regexp.MustCompile(`#\w+`)

// Client represents a Brave Search API client
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	redisClient *redis.Client
	limiter     *rate.Limiter
	retries     int
	cacheTTL    time.Duration
	logger      llm.Logger
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client for the search client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRedisClient sets the Redis client for caching
func WithRedisClient(redisClient *redis.Client) ClientOption {
	return func(c *Client) {
		c.redisClient = redisClient
	}
}

// WithRetries sets the number of retries for failed requests
func WithRetries(retries int) ClientOption {
	return func(c *Client) {
		c.retries = retries
	}
}

// WithCacheTTL sets the TTL for cached results
func WithCacheTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

// WithLogger sets the logger for the search client
func WithLogger(logger llm.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit for API requests
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Brave Search client
func NewClient(baseURL, apiKey string, options ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		retries:    DefaultRetries,
		cacheTTL:   DefaultCacheTTL,
		logger:     &llm.DefaultLogger{},
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// braveResponse mirrors the subset of the Brave web search payload we use
type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
			Profile     struct {
				Name string `json:"name"`
			} `json:"profile"`
			MetaURL struct {
				Hostname string `json:"hostname"`
			} `json:"meta_url"`
		} `json:"results"`
	} `json:"web"`
}

// Search performs a web search and maps the results into ResearchResults
func (c *Client) Search(ctx context.Context, query string, count int) ([]models.ResearchResult, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if count <= 0 {
		count = 5
	}

	cacheKey := fmt.Sprintf("search:%s:%d", query, count)
	if cached, err := c.getFromCache(ctx, cacheKey); err == nil {
		return cached, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	body, err := c.doRequest(ctx, query, count)
	if err != nil {
		return nil, err
	}

	var parsed braveResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	results := make([]models.ResearchResult, 0, len(parsed.Web.Results))
	for _, r := range parsed.Web.Results {
		source := r.Profile.Name
		if source == "" {
			source = r.MetaURL.Hostname
		}
		results = append(results, models.ResearchResult{
			Source:  source,
			Title:   r.Title,
			Snippet: r.Description,
			URL:     r.URL,
		})
	}

	// Cache failures never fail the search
	if err := c.saveToCache(ctx, cacheKey, results); err != nil {
		c.logger.Error("Failed to cache search results", "error", err)
	}

	return results, nil
}

// TrendingHashtags searches for hashtags currently used with a topic on a
// platform and merges them with hashtags derived from the topic itself
func (c *Client) TrendingHashtags(ctx context.Context, topic, platform string) ([]string, error) {
	seen := make(map[string]bool)
	hashtags := []string{}

	add := func(tag string) {
		tag = strings.ToLower(tag)
		if len(tag) <= 2 || seen[tag] {
			return
		}
		seen[tag] = true
		hashtags = append(hashtags, tag)
	}

	// Topic-derived hashtags are always available, even without results
	for _, word := range strings.Fields(strings.ToLower(strings.ReplaceAll(topic, "-", " "))) {
		if len(word) > 3 {
			add("#" + word)
		}
	}

	query := fmt.Sprintf("trending hashtags %s %s", topic, platform)
	results, err := c.Search(ctx, query, 5)
	if err != nil {
		return hashtags, err
	}

	found := []string{}
	for _, result := range results {
		found = append(found, hashtagPattern.FindAllString(result.Title, -1)...)
		found = append(found, hashtagPattern.FindAllString(result.Snippet, -1)...)
	}
	sort.Strings(found)
	for _, tag := range found {
		add(tag)
	}

	return hashtags, nil
}

// doRequest performs the HTTP request with retries and backoff
func (c *Client) doRequest(ctx context.Context, query string, count int) ([]byte, error) {
	requestURL, err := c.buildRequestURL(query, count)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create request: %w", reqErr)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Subscription-Token", c.apiKey)

		resp, err = c.httpClient.Do(req)
		if err == nil && resp.StatusCode < 500 {
			break
		}
		if resp != nil && attempt < c.retries {
			resp.Body.Close()
		}
	}

	if err != nil {
		return nil, fmt.Errorf("search request failed after %d retries: %w", c.retries, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned non-200 status: %d, body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// buildRequestURL builds the request URL for the search API
func (c *Client) buildRequestURL(query string, count int) (string, error) {
	apiURL, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	q := apiURL.Query()
	q.Set("q", query)
	q.Set("count", fmt.Sprintf("%d", count))
	apiURL.RawQuery = q.Encode()

	return apiURL.String(), nil
}

// getFromCache tries to get search results from cache
func (c *Client) getFromCache(ctx context.Context, cacheKey string) ([]models.ResearchResult, error) {
	if c.redisClient == nil {
		return nil, redis.Nil
	}

	data, err := c.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil, err
	}

	var results []models.ResearchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached results: %w", err)
	}

	return results, nil
}

// saveToCache saves search results to cache
func (c *Client) saveToCache(ctx context.Context, cacheKey string, results []models.ResearchResult) error {
	if c.redisClient == nil {
		return nil
	}

	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	return c.redisClient.Set(ctx, cacheKey, data, c.cacheTTL).Err()
}
