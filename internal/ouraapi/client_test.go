package ouraapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sleep", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2026-01-10", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-01-17", r.URL.Query().Get("end_date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"day": "2026-01-15", "efficiency": 88}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	records, err := client.Sleep(context.Background(), "2026-01-10", "2026-01-17")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "2026-01-15", records[0].Day())
	eff, ok := records[0].Float("efficiency")
	assert.True(t, ok)
	assert.InDelta(t, 88.0, eff, 1e-9)
}

func TestClientFetchOmitsEmptyDates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("start_date"))
		assert.False(t, r.URL.Query().Has("end_date"))
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	records, err := client.DailyReadiness(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClientFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token")
	_, err := client.Sleep(context.Background(), "2026-01-10", "2026-01-17")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClientFetchBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": `))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	_, err := client.DailyStress(context.Background(), "", "")
	assert.Error(t, err)
}

func TestRecentSleepMergesDailyScores(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sleep":
			_, _ = w.Write([]byte(`{"data": [
				{"day": "2026-01-14", "efficiency": 80},
				{"day": "2026-01-15", "efficiency": 88},
				{"day": "2026-01-16", "efficiency": 92}
			]}`))
		case "/daily_sleep":
			_, _ = w.Write([]byte(`{"data": [
				{"day": "2026-01-15", "score": 81},
				{"day": "2026-01-16", "score": 90}
			]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	client.now = func() time.Time {
		return time.Date(2026, 1, 16, 8, 0, 0, 0, time.UTC)
	}

	records, err := client.RecentSleep(context.Background(), 2)
	require.NoError(t, err)

	// Last two nights, with daily scores merged in by day.
	require.Len(t, records, 2)
	assert.Equal(t, "2026-01-15", records[0].Day())
	score, ok := records[0].Float("score")
	assert.True(t, ok)
	assert.InDelta(t, 81.0, score, 1e-9)

	assert.Equal(t, "2026-01-16", records[1].Day())
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	client := NewClient("", "test-token")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
