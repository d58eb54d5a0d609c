package ouraapi

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
)

// cacheVersion guards against layout changes in cached payloads.
// Bump it whenever the stored shape changes to invalidate stale entries.
const cacheVersion = 1

// CachedClient wraps a HealthAPI with a response cache. Raw responses are
// stored keyed on endpoint and date range, with a TTL, so repeated commands
// in the same hour do not burn API quota.
type CachedClient struct {
	api   contract.HealthAPI
	store contract.CacheStore
	ttl   time.Duration
	now   func() time.Time
}

// Compile-time check that CachedClient satisfies the provider interface.
var _ contract.HealthAPI = (*CachedClient)(nil)

// NewCachedClient wraps api with the given response store.
func NewCachedClient(api contract.HealthAPI, store contract.CacheStore, ttl time.Duration) *CachedClient {
	return &CachedClient{api: api, store: store, ttl: ttl, now: time.Now}
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// cached resolves the key from the store when fresh, and otherwise fetches
// and stores the live response. Store failures degrade to live fetches.
func (c *CachedClient) cached(ctx context.Context, key string, fetch func(context.Context) ([]schema.Record, error)) ([]schema.Record, error) {
	if payload, version, ts, err := c.store.Get(key); err == nil && version == cacheVersion {
		if c.now().Unix()-ts < int64(c.ttl.Seconds()) {
			var records []schema.Record
			if err := json.Unmarshal(payload, &records); err == nil {
				return records, nil
			}
			// Corrupt entries fall through to a live fetch.
		}
	}

	records, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(records); err == nil {
		if err := c.store.Set(key, payload, cacheVersion, c.now().Unix()); err != nil {
			contract.LogWarn("caching response", err)
		}
	}
	return records, nil
}

// Sleep returns detailed sleep period records, cached by range.
func (c *CachedClient) Sleep(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.cached(ctx, cacheKey("sleep", startDate, endDate), func(ctx context.Context) ([]schema.Record, error) {
		return c.api.Sleep(ctx, startDate, endDate)
	})
}

// DailySleep returns daily sleep score records, cached by range.
func (c *CachedClient) DailySleep(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.cached(ctx, cacheKey("daily_sleep", startDate, endDate), func(ctx context.Context) ([]schema.Record, error) {
		return c.api.DailySleep(ctx, startDate, endDate)
	})
}

// DailyReadiness returns daily readiness records, cached by range.
func (c *CachedClient) DailyReadiness(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.cached(ctx, cacheKey("daily_readiness", startDate, endDate), func(ctx context.Context) ([]schema.Record, error) {
		return c.api.DailyReadiness(ctx, startDate, endDate)
	})
}

// DailyActivity returns daily activity records, cached by range.
func (c *CachedClient) DailyActivity(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.cached(ctx, cacheKey("daily_activity", startDate, endDate), func(ctx context.Context) ([]schema.Record, error) {
		return c.api.DailyActivity(ctx, startDate, endDate)
	})
}

// DailyStress returns daily stress records, cached by range.
func (c *CachedClient) DailyStress(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.cached(ctx, cacheKey("daily_stress", startDate, endDate), func(ctx context.Context) ([]schema.Record, error) {
		return c.api.DailyStress(ctx, startDate, endDate)
	})
}

// Heartrate returns raw heart rate samples, cached by range.
func (c *CachedClient) Heartrate(ctx context.Context, startDate, endDate string) ([]schema.Record, error) {
	return c.cached(ctx, cacheKey("heartrate", startDate, endDate), func(ctx context.Context) ([]schema.Record, error) {
		return c.api.Heartrate(ctx, startDate, endDate)
	})
}

// RecentSleep caches the merged composite keyed on count and today's date,
// since the underlying window moves with the calendar.
func (c *CachedClient) RecentSleep(ctx context.Context, count int) ([]schema.Record, error) {
	today := c.now().Format(contract.DateFormat)
	return c.cached(ctx, cacheKey("recent_sleep", strconv.Itoa(count), today), func(ctx context.Context) ([]schema.Record, error) {
		return c.api.RecentSleep(ctx, count)
	})
}
