package submission

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookDispatcher_Dispatch(t *testing.T) {
	var (
		calls       int
		method      string
		contentType string
		received    Payload
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	payload := Payload{
		Timestamp:  "2026-03-14T15:26:53.589Z",
		FullName:   "Ana Gómez",
		UserType:   "buyer",
		Country:    "México",
		Categories: "Textiles & Apparel",
	}

	err := NewWebhookDispatcher(server.URL, server.Client()).Dispatch(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, payload, received)
}

func TestWebhookDispatcher_IgnoresResponseStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	err := NewWebhookDispatcher(server.URL, nil).Dispatch(context.Background(), Payload{})

	assert.NoError(t, err)
}

func TestWebhookDispatcher_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewWebhookDispatcher(url, nil).Dispatch(context.Background(), Payload{})

	assert.Error(t, err)
}

func TestWebhookDispatcher_InvalidURL(t *testing.T) {
	err := NewWebhookDispatcher("://bad", nil).Dispatch(context.Background(), Payload{})

	assert.Error(t, err)
}
