package assistant

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssistant(endpoint string, client *http.Client) *httpAssistant {
	return &httpAssistant{
		endpoint:   endpoint,
		httpClient: client,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestHTTPAssistant_Reply_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req assistantRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "How do I launch my shop?", req.Message)
		require.Len(t, req.History, 2)
		assert.Equal(t, "user", req.History[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"Open the merchant wizard and complete the three steps."}`))
	}))
	defer server.Close()

	client := newTestAssistant(server.URL, server.Client())

	reply, err := client.Reply(context.Background(), "How do I launch my shop?", []service.AssistantMessage{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello! How can I help?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Open the merchant wizard and complete the three steps.", reply)
}

func TestHTTPAssistant_Reply_EmptyReply(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"reply":""}`))
	}))
	defer server.Close()

	client := newTestAssistant(server.URL, server.Client())

	_, err := client.Reply(context.Background(), "hello", nil)
	assert.ErrorContains(t, err, "empty reply")
}

func TestHTTPAssistant_Reply_EndpointError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestAssistant(server.URL, server.Client())

	_, err := client.Reply(context.Background(), "hello", nil)
	assert.ErrorContains(t, err, "status 503")
}

func TestHTTPAssistant_Reply_NotConfigured(t *testing.T) {
	t.Parallel()

	client := newTestAssistant("", http.DefaultClient)

	_, err := client.Reply(context.Background(), "hello", nil)
	assert.ErrorContains(t, err, "not configured")
}
