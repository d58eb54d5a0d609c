package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "TOKEN", "42")
	err := client.SendMessage(context.Background(), "*hello*")
	require.NoError(t, err)

	assert.Equal(t, "/botTOKEN/sendMessage", gotPath)
	assert.Equal(t, "42", gotPayload["chat_id"])
	assert.Equal(t, "*hello*", gotPayload["text"])
	assert.Equal(t, "Markdown", gotPayload["parse_mode"])
}

func TestSendMessageToOverridesChat(t *testing.T) {
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "TOKEN", "42")
	err := client.SendMessageTo(context.Background(), "99", "hi")
	require.NoError(t, err)

	assert.Equal(t, "99", gotPayload["chat_id"])
}

func TestSendMessageAPIRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "TOKEN", "42")
	err := client.SendMessage(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSendMessageHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "TOKEN", "42")
	err := client.SendMessage(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestGetUpdates(t *testing.T) {
	var gotPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/getUpdates", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{
			"ok": true,
			"result": [
				{"update_id": 7, "message": {"message_id": 1, "chat": {"id": 42}, "text": "/sleep"}},
				{"update_id": 8, "message": {"message_id": 2, "chat": {"id": 42}, "text": "/help"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "TOKEN", "42")
	updates, err := client.GetUpdates(context.Background(), 7, 30)
	require.NoError(t, err)

	assert.InDelta(t, 7, gotPayload["offset"], 1e-9)
	assert.InDelta(t, 30, gotPayload["timeout"], 1e-9)

	require.Len(t, updates, 2)
	assert.Equal(t, int64(7), updates[0].UpdateID)
	require.NotNil(t, updates[0].Message)
	assert.Equal(t, "/sleep", updates[0].Message.Text)
	assert.Equal(t, int64(42), updates[0].Message.Chat.ID)
}

func TestGetUpdatesBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"result":{"not":"a list"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "TOKEN", "42")
	_, err := client.GetUpdates(context.Background(), 0, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode updates")
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	client := NewClient("", "TOKEN", "42")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
