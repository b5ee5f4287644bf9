package fakebackend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid body: " + err.Error()})
		return false
	}
	return true
}

func notFound(w http.ResponseWriter, kind string, id int64) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"statusCode": 404,
		"message":    fmt.Sprintf("%s %d does not exist", kind, id),
	})
}

func readCloser(b []byte) io.ReadCloser { return io.NopCloser(bytes.NewReader(b)) }
