package jsonlog

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"
)

type Logger struct {
	base *log.Logger
}

func New(w io.Writer) *Logger {
	return &Logger{base: log.New(w, "", 0)} // no prefix; we emit JSON ourselves
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.emit("INFO", msg, fields)
}

func (l *Logger) Error(msg string, fields map[string]any) {
	l.emit("ERROR", msg, fields)
}

// Printf lets the logger stand in where a printf-style sink is expected.
func (l *Logger) Printf(format string, args ...any) {
	l.emit("INFO", fmt.Sprintf(format, args...), nil)
}

func (l *Logger) emit(level, msg string, fields map[string]any) {
	m := make(map[string]any, 3+len(fields))
	for k, v := range fields {
		m[k] = v
	}
	m["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["level"] = level
	m["msg"] = msg
	b, err := json.Marshal(m)
	if err != nil {
		b, _ = json.Marshal(map[string]any{"ts": m["ts"], "level": level, "msg": msg, "log_error": err.Error()})
	}
	l.base.Print(string(b))
}
