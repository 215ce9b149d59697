package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"task-api/internal/config"
	"task-api/internal/httpapi"
	"task-api/internal/observability/jsonlog"
	"task-api/internal/store"
	"task-api/internal/task"
)

func main() {
	configPath := flag.String("config", os.Getenv("TASKS_CONFIG"), "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg, os.Stdout)

	repo := store.NewTaskStore()
	service := task.NewService(repo)
	handler := newHandler(cfg, service, logger, os.Stdout)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Printf("listening on %s (mode=%s)", srv.Addr, cfg.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-rootCtx.Done()
	logger.Printf("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("http shutdown error: %v", err)
	}
	logger.Printf("bye")
}

// newLogger picks JSON lines in production and plain log lines otherwise.
func newLogger(cfg config.Config, w io.Writer) httpapi.Printfer {
	if cfg.Production() {
		return jsonlog.New(w)
	}
	return log.New(w, "", log.LstdFlags)
}

func newHandler(cfg config.Config, service httpapi.TaskService, logger httpapi.Printfer, w io.Writer) http.Handler {
	api := httpapi.NewServer(service, httpapi.Options{
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		ErrorLog:       logger,
	})

	var logging func(http.Handler) http.Handler
	switch l := logger.(type) {
	case *jsonlog.Logger:
		logging = httpapi.LoggingJSON(l)
	case *log.Logger:
		logging = httpapi.Logging(l)
	default:
		logging = httpapi.Logging(log.New(w, "", log.LstdFlags))
	}

	return httpapi.WithRequestID(logging(api))
}
