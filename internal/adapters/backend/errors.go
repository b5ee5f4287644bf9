package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hotel_console/internal/domain"
)

// APIError is a non-2xx answer from the backend. Reason carries the
// server-provided message when the body had one.
type APIError struct {
	Status int
	Reason string
	kind   error
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("remote %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.kind }

func newAPIError(resp *http.Response) *APIError {
	// read a small error body for diagnostics
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	e := &APIError{Status: resp.StatusCode, Reason: reasonFrom(b)}
	switch resp.StatusCode {
	case http.StatusNotFound:
		e.kind = domain.ErrNotFound
	case http.StatusUnauthorized:
		e.kind = domain.ErrUnauthorized
	case http.StatusForbidden:
		e.kind = domain.ErrForbidden
	}
	return e
}

// reasonFrom picks a human message out of an error body: JSON "message",
// "error" or "detail" (string or list of strings), else the raw text.
func reasonFrom(b []byte) string {
	raw := strings.TrimSpace(string(b))
	if raw == "" {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return raw
	}
	for _, k := range []string{"message", "error", "detail", "title"} {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, it := range v {
				if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
					parts = append(parts, strings.TrimSpace(s))
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		}
	}
	return ""
}
