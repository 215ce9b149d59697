package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"task-api/internal/task"
)

const defaultMaxBodyBytes = 1 << 20 // 1 MiB

var (
	errReadBody     = errors.New("failed to read body")
	errBodyTooLarge = errors.New("payload too large")
	errNotObject    = errors.New("body must be a JSON object")
)

func readBody(r *http.Request, limit int64) ([]byte, error) {
	defer r.Body.Close()
	lr := io.LimitReader(r.Body, limit+1)

	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, errReadBody
	}
	if int64(len(b)) > limit {
		return nil, errBodyTooLarge
	}
	return b, nil
}

// decodeTaskInput reads a JSON object and keeps only the fields that carry
// the expected JSON type. Unknown fields are ignored.
func decodeTaskInput(r *http.Request, limit int64) (task.Input, error) {
	b, err := readBody(r, limit)
	if err != nil {
		return task.Input{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return task.Input{}, errNotObject
	}

	var in task.Input
	if raw, ok := fields["title"]; ok && !isNull(raw) {
		var title string
		if json.Unmarshal(raw, &title) == nil {
			in.Title = &title
		}
	}
	if raw, ok := fields["completed"]; ok && !isNull(raw) {
		var completed bool
		if json.Unmarshal(raw, &completed) == nil {
			in.Completed = &completed
		}
	}
	return in, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
