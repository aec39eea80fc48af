package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"
)

// TelegramCall is one Bot API request received by TelegramAPI
type TelegramCall struct {
	Method string
	Params map[string]any
}

// TelegramAPI is a fake Bot API endpoint that accepts every request
type TelegramAPI struct {
	URL string

	mu    sync.Mutex
	calls []TelegramCall
}

// NewTelegramAPI starts a fake Bot API server, closed when t finishes
func NewTelegramAPI(t *testing.T) *TelegramAPI {
	api := &TelegramAPI{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&params)

		api.mu.Lock()
		api.calls = append(api.calls, TelegramCall{Method: path.Base(r.URL.Path), Params: params})
		api.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}}`))
	}))
	t.Cleanup(srv.Close)
	api.URL = srv.URL
	return api
}

// Calls returns every request received so far
func (a *TelegramAPI) Calls() []TelegramCall {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]TelegramCall{}, a.calls...)
}

// Last returns the latest request with the given method
func (a *TelegramAPI) Last(method string) (TelegramCall, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := len(a.calls) - 1; i >= 0; i-- {
		if a.calls[i].Method == method {
			return a.calls[i], true
		}
	}
	return TelegramCall{}, false
}

// Texts returns the text of every sendMessage and editMessageText request
func (a *TelegramAPI) Texts() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var texts []string
	for _, c := range a.calls {
		if c.Method != "sendMessage" && c.Method != "editMessageText" {
			continue
		}
		if text, ok := c.Params["text"].(string); ok {
			texts = append(texts, text)
		}
	}
	return texts
}
