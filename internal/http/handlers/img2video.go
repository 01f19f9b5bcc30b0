package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/payam49er/vidu/internal/vidu"
)

// Img2Video validates an image-to-video request, applies the model and
// duration dependent defaulting rules server-side, and forwards upstream.
func (a *App) Img2Video(w http.ResponseWriter, r *http.Request) {
	if !a.requireKey(w) {
		return
	}
	var req vidu.ImageToVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request", "request body is not valid JSON", nil)
		return
	}
	norm, err := req.Normalize()
	if err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request", err.Error(), nil)
		return
	}
	a.forward(r.Context(), w, http.MethodPost, "/img2video", norm, authBearer)
}
