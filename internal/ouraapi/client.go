// Package ouraapi implements the Oura v2 usercollection REST client that
// backs every command, plus a cache-aware decorator around it.
package ouraapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
)

// DefaultBaseURL is the public Oura API collection root.
const DefaultBaseURL = "https://api.ouraring.com/v2/usercollection"

// recentSleepWindowDays is how far back RecentSleep looks for nights.
const recentSleepWindowDays = 5

// envelope is the JSON wrapper around every collection response.
type envelope struct {
	Data []schema.Record `json:"data"`
}

// Client talks to the Oura API with a personal access token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	now        func() time.Time
}

// Compile-time check that Client satisfies the provider interface.
var _ contract.HealthAPI = (*Client)(nil)

// NewClient builds a client. An empty baseURL means the public API.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

// fetch performs one authenticated GET against a collection endpoint.
// Empty dates are omitted from the query, which the API reads as "no bound".
func (c *Client) fetch(ctx context.Context, endpoint, startDate, endDate string) ([]schema.Record, error) {
	u, err := url.Parse(c.baseURL + "/" + endpoint)
	if err != nil {
		return nil, fmt.Errorf("build %s URL: %w", endpoint, err)
	}
	q := u.Query()
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch %s: unexpected status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return env.Data, nil
}

// Sleep returns detailed sleep period records.
func (c *Client) Sleep(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.fetch(ctx, "sleep", startDate, endDate)
}

// DailySleep returns daily sleep score records.
func (c *Client) DailySleep(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.fetch(ctx, "daily_sleep", startDate, endDate)
}

// DailyReadiness returns daily readiness records with contributors.
func (c *Client) DailyReadiness(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.fetch(ctx, "daily_readiness", startDate, endDate)
}

// DailyActivity returns daily activity records.
func (c *Client) DailyActivity(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.fetch(ctx, "daily_activity", startDate, endDate)
}

// DailyStress returns daily stress records, on devices that report them.
func (c *Client) DailyStress(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.fetch(ctx, "daily_stress", startDate, endDate)
}

// Heartrate returns raw heart rate samples.
func (c *Client) Heartrate(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.fetch(ctx, "heartrate", startDate, endDate)
}

// RecentSleep returns the last count nights of detailed sleep records with
// daily sleep scores merged in by day. Detailed records carry the raw signals
// while scores only live on the daily endpoint, so both are fetched.
func (c *Client) RecentSleep(ctx context.Context, count int) ([]schema.Record, error) {
	end := c.now().Format(contract.DateFormat)
	start := c.now().AddDate(0, 0, -recentSleepWindowDays).Format(contract.DateFormat)

	detailed, err := c.Sleep(ctx, start, end)
	if err != nil {
		return nil, err
	}
	daily, err := c.DailySleep(ctx, start, end)
	if err != nil {
		return nil, err
	}

	scoreByDay := make(map[string]any, len(daily))
	for _, rec := range daily {
		if day := rec.Day(); day != "" {
			if score, ok := rec["score"]; ok {
				scoreByDay[day] = score
			}
		}
	}
	for _, rec := range detailed {
		if score, ok := scoreByDay[rec.Day()]; ok {
			rec["score"] = score
		}
	}

	if count > 0 && len(detailed) > count {
		detailed = detailed[len(detailed)-count:]
	}
	return detailed, nil
}
