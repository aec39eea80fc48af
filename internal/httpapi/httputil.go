package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 64 << 10

// writeJSON marshals v as JSON and writes it with the given status code.
func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

// writeError writes a structured JSON error response.
func (a *API) writeError(w http.ResponseWriter, status int, code, message string) {
	a.writeJSON(w, status, map[string]string{
		"error": message,
		"code":  code,
	})
}

// decodeJSON decodes the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
