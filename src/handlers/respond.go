package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"fintrack-server/src/report"

	"github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("failed to encode response: %v", err)
	}
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, report.Fail(message))
}

func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, report.Fail(message))
}

func serverError(w http.ResponseWriter, message string, err error) {
	writeJSON(w, http.StatusInternalServerError, report.FailWithError(message, err))
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return io.EOF
	}
	return json.NewDecoder(r.Body).Decode(v)
}

// queryInt parses a positive integer query parameter, falling back to the
// default when absent, malformed or non-positive.
func queryInt(r *http.Request, name string, fallback int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func queryString(r *http.Request, name, fallback string) string {
	if value := r.URL.Query().Get(name); value != "" {
		return value
	}
	return fallback
}
