package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// VideoStatus passes a per-artifact status lookup through to the upstream.
func (a *App) VideoStatus(w http.ResponseWriter, r *http.Request) {
	if !a.requireKey(w) {
		return
	}
	videoID := chi.URLParam(r, "videoID")
	if videoID == "" {
		a.error(w, http.StatusBadRequest, "Invalid request", "video id is required", nil)
		return
	}
	a.forward(r.Context(), w, http.MethodGet, "/videos/"+videoID, nil, authBearer)
}

// TaskCreations passes a task state/result lookup through to the upstream.
// Note the Token auth scheme, which this upstream endpoint requires.
func (a *App) TaskCreations(w http.ResponseWriter, r *http.Request) {
	if !a.requireKey(w) {
		return
	}
	taskID := chi.URLParam(r, "taskID")
	if taskID == "" {
		a.error(w, http.StatusBadRequest, "Invalid request", "task id is required", nil)
		return
	}
	a.forward(r.Context(), w, http.MethodGet, "/tasks/"+taskID+"/creations", nil, authToken)
}
