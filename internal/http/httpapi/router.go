package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/payam49er/vidu/internal/http/handlers"
	"github.com/payam49er/vidu/internal/infra"
	"github.com/payam49er/vidu/internal/middleware"
)

// NewRouter assembles the proxy's HTTP surface.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP, chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
	}

	r.Get("/health", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/text2video", app.Text2Video)
		r.Post("/img2video", app.Img2Video)
		r.Get("/videos/{videoID}", app.VideoStatus)
		r.Get("/tasks/{taskID}/creations", app.TaskCreations)
	})

	return r
}
