package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/payam49er/vidu/internal/infra"
)

// App holds the proxy's dependencies: the upstream location, the injected
// credentials, and a shared HTTP client. Handlers hang off it.
type App struct {
	Upstream   string
	APIKey     string
	HTTPClient *http.Client
	Logger     infra.Logger
}

// NewApp builds the handler container from config.
func NewApp(cfg *infra.Config, logger infra.Logger) *App {
	timeout := cfg.UpstreamTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &App{
		Upstream:   cfg.ViduBaseURL,
		APIKey:     cfg.ViduAPIKey,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// errorEnvelope is the uniform failure shape every proxied endpoint returns.
type errorEnvelope struct {
	Err     string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errTag, message string, details any) {
	a.json(w, code, errorEnvelope{Err: errTag, Message: message, Details: details})
}

// requireKey enforces the fail-fast rule for a missing credential: the
// upstream is never dialed without one.
func (a *App) requireKey(w http.ResponseWriter) bool {
	if a.APIKey != "" {
		return true
	}
	a.error(w, http.StatusInternalServerError, "API key not configured",
		"VIDU_API_KEY environment variable is not set", nil)
	return false
}

// Auth header schemes used by the upstream. Creation and video-status calls
// take a Bearer token; the creations endpoint takes the Token scheme. The
// split is an upstream quirk, preserved as-is.
const (
	authBearer = "Bearer "
	authToken  = "Token "
)

// forward performs one upstream round trip and mirrors the outcome to the
// caller: 200 bodies pass through untouched, upstream failures become the
// error envelope with the upstream's status code.
func (a *App) forward(ctx context.Context, w http.ResponseWriter, method, path string, body any, scheme string) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			a.error(w, http.StatusInternalServerError, "Server Error", "failed to encode upstream request", nil)
			return
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.Upstream+path, reader)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "Server Error", "failed to build upstream request", nil)
		return
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", scheme+a.APIKey)

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		a.Logger.Error().Err(err).Str("path", path).Msg("proxy: upstream request failed")
		a.error(w, http.StatusInternalServerError, "Network Error", "failed to connect to Vidu API: "+err.Error(), nil)
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "Network Error", "failed to read Vidu API response", nil)
		return
	}
	if resp.StatusCode != http.StatusOK {
		var detail map[string]any
		message := "HTTP " + resp.Status
		if err := json.Unmarshal(raw, &detail); err == nil {
			if m, ok := detail["message"].(string); ok && m != "" {
				message = m
			}
		}
		a.Logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("proxy: upstream error")
		a.error(w, resp.StatusCode, "Vidu API Error", message, detail)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
