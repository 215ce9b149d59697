package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"task-api/internal/model"
	"task-api/internal/task"
)

const (
	msgCreated       = "Task created successfully"
	msgListed        = "Tasks fetched successfully"
	msgFetched       = "Task fetched successfully"
	msgUpdated       = "Task updated successfully"
	msgDeleted       = "Task deleted successfully"
	msgStats         = "Stats fetched successfully"
	msgNotFound      = "Task not found"
	msgInvalidCreate = "Invalid input. 'title' must be a string and 'completed' be a boolean."
	msgInvalidUpdate = "Invalid Input"
	msgTooLarge      = "Payload too large"
	msgInternal      = "Internal server error"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello World!"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	in, err := decodeTaskInput(r, s.maxBody)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			writeMessage(w, http.StatusBadRequest, msgTooLarge)
			return
		}
		writeMessage(w, http.StatusBadRequest, msgInvalidCreate)
		return
	}

	created, err := s.service.Create(in)
	if err != nil {
		if errors.Is(err, task.ErrInvalidInput) {
			writeMessage(w, http.StatusBadRequest, msgInvalidCreate)
			return
		}
		writeInternal(w)
		return
	}

	writeData(w, http.StatusCreated, created, msgCreated)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks := s.service.List(r.URL.Query().Get("title"))

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(tasks),
		"data":    tasks,
		"message": msgListed,
	})
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	found, err := s.service.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeNullData(w, http.StatusNotFound, msgNotFound)
			return
		}
		writeInternal(w)
		return
	}
	writeData(w, http.StatusOK, found, msgFetched)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	in, decodeErr := decodeTaskInput(r, s.maxBody)

	// A body that cannot be decoded is reported only once the id resolves.
	if decodeErr != nil {
		if _, err := s.service.Get(id); err != nil {
			writeUpdateError(w, err)
			return
		}
		writeUpdateError(w, fmt.Errorf("%w: %w", task.ErrInvalidInput, decodeErr))
		return
	}

	if _, err := s.service.Update(id, in); err != nil {
		writeUpdateError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, msgUpdated)
}

func writeUpdateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		writeMessage(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, errBodyTooLarge):
		writeMessage(w, http.StatusBadRequest, msgTooLarge)
	case errors.Is(err, task.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, msgInvalidUpdate)
	default:
		writeInternal(w)
	}
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Delete(r.PathValue("id")); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, msgNotFound)
			return
		}
		writeInternal(w)
		return
	}
	writeMessage(w, http.StatusOK, msgDeleted)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, s.service.Stats(), msgStats)
}
