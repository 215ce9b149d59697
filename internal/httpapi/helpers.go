package httpapi

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any, msg string) {
	writeJSON(w, status, map[string]any{
		"success": true,
		"data":    data,
		"message": msg,
	})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": status < http.StatusBadRequest,
		"message": msg,
	})
}

// writeNullData reports a failure with an explicit "data": null.
func writeNullData(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"data":    nil,
		"message": msg,
	})
}

func writeInternal(w http.ResponseWriter) {
	writeNullData(w, http.StatusInternalServerError, msgInternal)
}
