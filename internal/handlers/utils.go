package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dateParamLayout is the format of from/to query parameters and the
// optional exercise date field.
const dateParamLayout = "2006-01-02"

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// userIDParam parses the {userID} path segment. The identifier is opaque
// to callers, so a string that is not a valid ObjectID is reported the
// same way as a missing user.
func userIDParam(r *http.Request) (primitive.ObjectID, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "userID"))
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// parseDateParam parses a YYYY-MM-DD query parameter at UTC midnight.
// An empty value yields the zero time (unbounded).
func parseDateParam(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := time.ParseInLocation(dateParamLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return date, nil
}

// formValues decodes a request body into a flat string map, accepting
// either JSON or url-encoded form input.
func formValues(r *http.Request, fields ...string) (map[string]string, error) {
	values := make(map[string]string, len(fields))

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return nil, errors.New("invalid request body")
		}
		for _, field := range fields {
			values[field] = stringify(payload[field])
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, errors.New("invalid request body")
	}
	for _, field := range fields {
		values[field] = r.PostFormValue(field)
	}
	return values, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
