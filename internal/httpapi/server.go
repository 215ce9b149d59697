package httpapi

import (
	"log"
	"net/http"
	"time"

	"task-api/internal/model"
	"task-api/internal/task"
)

type TaskService interface {
	Create(in task.Input) (model.Task, error)
	List(titleFilter string) []model.Task
	Get(id string) (model.Task, error)
	Update(id string, in task.Input) (model.Task, error)
	Delete(id string) error
	Stats() model.Stats
}

const defaultRequestTimeout = 3 * time.Second

type Options struct {
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	// ErrorLog receives recovered panics, as structured entries when it is
	// also an ErrorLogger. Defaults to log.Default().
	ErrorLog Printfer
}

type Server struct {
	service TaskService
	mux     *http.ServeMux
	handler http.Handler
	maxBody int64
}

func NewServer(service TaskService, opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.ErrorLog == nil {
		opts.ErrorLog = log.Default()
	}

	srv := &Server{
		service: service,
		mux:     http.NewServeMux(),
		maxBody: opts.MaxBodyBytes,
	}

	srv.mux.HandleFunc("GET /{$}", srv.handleIndex)
	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)

	srv.mux.HandleFunc("POST /api/tasks", srv.handleCreateTask)
	srv.mux.HandleFunc("GET /api/tasks", srv.handleListTasks)
	srv.mux.HandleFunc("GET /api/tasks/{id}", srv.handleGetTask)
	srv.mux.HandleFunc("PUT /api/tasks/{id}", srv.handleUpdateTask)
	srv.mux.HandleFunc("DELETE /api/tasks/{id}", srv.handleDeleteTask)

	srv.mux.HandleFunc("GET /api/stats", srv.handleStats)

	srv.handler = recoverer(timeout(srv.mux, opts.RequestTimeout), opts.ErrorLog)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
