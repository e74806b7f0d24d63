// Package espn fetches the public ESPN MMA scoreboard and decodes it into
// schedule snapshots.
//
// The scoreboard is queried one calendar year at a time. Requests are rate
// limited with a token bucket and identified with a configurable User-Agent.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"fightnight/internal/domain/entities"
	"fightnight/internal/ports/output"
)

const (
	DefaultScoreboardURL = "https://site.api.espn.com/apis/site/v2/sports/mma/ufc/scoreboard"
	DefaultUserAgent     = "fight-night-bot/1.0"
)

var _ output.ScheduleFeed = (*Client)(nil)

// Client is the scoreboard HTTP client of one organization.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a scoreboard client allowing requestsPerMinute requests.
func NewClient(baseURL, userAgent string, requestsPerMinute int) *Client {
	if baseURL == "" {
		baseURL = DefaultScoreboardURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(rate.Limit(rps), 3),
	}
}

// FetchYear returns the decoded scoreboard of year. Any non-2xx answer is
// an error.
func (c *Client) FetchYear(ctx context.Context, year int) (*entities.ScheduleSnapshot, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?dates="+strconv.Itoa(year), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scoreboard %d: %w", year, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("ESPN responded with %d for year %d: %s", resp.StatusCode, year, truncate(body, 200))
	}

	var root scoreboardRoot
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("decode scoreboard %d: %w", year, err)
	}
	return decodeSnapshot(year, root), nil
}

// truncate returns at most maxLen bytes of b for error messages, cut on a
// rune boundary.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	n := maxLen
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return string(b[:n]) + "..."
}
