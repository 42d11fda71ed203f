package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/kampus/internal/campus"
	"github.com/erazemk/kampus/internal/catalog"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// sessionError maps campus errors to responses.
func sessionError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, campus.ErrNotFound):
		jsonError(w, http.StatusNotFound, what+" not found")
	case errors.Is(err, campus.ErrUnavailable):
		jsonError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("session operation failed", "what", what, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// filterParams reads the category and free-text query selectors.
func filterParams(r *http.Request) (category, query string) {
	category = r.URL.Query().Get("category")
	if category == "" {
		category = catalog.All
	}
	return category, r.URL.Query().Get("q")
}
