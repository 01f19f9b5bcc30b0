package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/payam49er/vidu/internal/vidu"
)

// Text2Video validates a text-to-video request, fills in defaults and
// forwards it upstream.
func (a *App) Text2Video(w http.ResponseWriter, r *http.Request) {
	if !a.requireKey(w) {
		return
	}
	var req vidu.TextToVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request", "request body is not valid JSON", nil)
		return
	}
	norm, err := req.Normalize()
	if err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request", err.Error(), nil)
		return
	}
	a.forward(r.Context(), w, http.MethodPost, "/text2video", norm, authBearer)
}
