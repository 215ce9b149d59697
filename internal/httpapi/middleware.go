package httpapi

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"task-api/internal/ids"
	"task-api/internal/observability/jsonlog"
)

type ctxKey string

const (
	requestIDKey    ctxKey = "request_id"
	RequestIDHeader        = "X-Request-Id"
)

// Printfer is satisfied by *log.Logger and *jsonlog.Logger.
type Printfer interface {
	Printf(format string, args ...any)
}

// ErrorLogger is satisfied by *jsonlog.Logger.
type ErrorLogger interface {
	Error(msg string, fields map[string]any)
}

// RequestIDFromContext returns request id if present.
func RequestIDFromContext(ctx context.Context) string {
	v := ctx.Value(requestIDKey)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = ids.NewID()
		}

		ctx := context.WithValue(r.Context(), requestIDKey, rid)
		r = r.WithContext(ctx)
		w.Header().Set(RequestIDHeader, rid)

		next.ServeHTTP(w, r)
	})
}

func Logging(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = log.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logger.Printf(
				"rid=%s method=%s path=%s status=%d dur=%s ua=%q",
				RequestIDFromContext(r.Context()),
				r.Method,
				r.URL.Path,
				sw.status,
				time.Since(start),
				r.UserAgent(),
			)
		})
	}
}

func LoggingJSON(logger *jsonlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logger.Info("http_request", map[string]any{
				"rid":    RequestIDFromContext(r.Context()),
				"method": r.Method,
				"path":   r.URL.Path,
				"status": sw.status,
				"dur_ms": time.Since(start).Milliseconds(),
				"ua":     r.UserAgent(),
			})
		})
	}
}

func timeout(next http.Handler, d time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// recoverer turns a handler panic into the 500 envelope. Nothing is written
// if the handler already sent its header.
func recoverer(next http.Handler, logger Printfer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logPanic(logger, r, rec, debug.Stack())
			if sw.status == 0 {
				writeInternal(sw)
			}
		}()
		next.ServeHTTP(sw, r)
	})
}

// logPanic writes at ERROR level: structured when logger is an ErrorLogger,
// a level=ERROR text line otherwise.
func logPanic(logger Printfer, r *http.Request, rec any, stack []byte) {
	rid := RequestIDFromContext(r.Context())
	if el, ok := logger.(ErrorLogger); ok {
		el.Error("panic_recovered", map[string]any{
			"rid":    rid,
			"method": r.Method,
			"path":   r.URL.Path,
			"panic":  fmt.Sprint(rec),
			"stack":  string(stack),
		})
		return
	}
	logger.Printf("level=ERROR msg=panic_recovered rid=%s method=%s path=%s panic=%q\n%s",
		rid, r.Method, r.URL.Path, fmt.Sprint(rec), stack)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}
