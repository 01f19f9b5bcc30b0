package vidu

import "strings"

// Models accepted by the generation endpoints.
const (
	ModelViduQ1 = "viduq1"
	ModelVidu20 = "vidu2.0"
	ModelVidu15 = "vidu1.5"
)

// Remote task states reported by the creations endpoint.
const (
	StateCreated    = "created"
	StateQueueing   = "queueing"
	StateProcessing = "processing"
	StateSuccess    = "success"
	StateFailed     = "failed"
	StateError      = "error"
)

// TerminalState reports whether a remote state ends polling.
func TerminalState(state string) bool {
	switch state {
	case StateSuccess, StateFailed, StateError:
		return true
	}
	return false
}

// TextToVideoRequest mirrors the wire body of POST /api/text2video.
type TextToVideoRequest struct {
	Prompt            string `json:"prompt"`
	Model             string `json:"model,omitempty"`
	Duration          int    `json:"duration,omitempty"`
	AspectRatio       string `json:"aspect_ratio,omitempty"`
	Style             string `json:"style,omitempty"`
	Seed              int    `json:"seed,omitempty"`
	Resolution        string `json:"resolution,omitempty"`
	MovementAmplitude string `json:"movement_amplitude,omitempty"`
}

// ImageToVideoRequest mirrors the wire body of POST /api/img2video.
type ImageToVideoRequest struct {
	Images            []string `json:"images"`
	Prompt            string   `json:"prompt,omitempty"`
	Model             string   `json:"model,omitempty"`
	Duration          int      `json:"duration,omitempty"`
	Seed              int      `json:"seed,omitempty"`
	Resolution        string   `json:"resolution,omitempty"`
	MovementAmplitude string   `json:"movement_amplitude,omitempty"`
	BGM               bool     `json:"bgm,omitempty"`
	Payload           string   `json:"payload,omitempty"`
	CallbackURL       string   `json:"callback_url,omitempty"`
}

// DefaultDuration returns the duration used when a request omits one.
func DefaultDuration(model string) int {
	if model == ModelViduQ1 {
		return 5
	}
	return 4
}

// ValidDuration reports whether the duration is accepted for the model.
// viduq1 clips are fixed at 5 seconds; the older models render 4 or 8.
func ValidDuration(model string, duration int) bool {
	if model == ModelViduQ1 {
		return duration == 5
	}
	return duration == 4 || duration == 8
}

// DefaultResolution returns the model- and duration-dependent resolution
// used when a request omits one.
func DefaultResolution(model string, duration int) string {
	if model == ModelViduQ1 {
		return "1080p"
	}
	if duration == 8 {
		return "720p"
	}
	return "360p"
}

func knownModel(model string) bool {
	switch model {
	case ModelViduQ1, ModelVidu20, ModelVidu15:
		return true
	}
	return false
}

// Normalize validates the request and fills in defaults. The returned copy
// is what goes over the wire; the receiver is left untouched.
func (r TextToVideoRequest) Normalize() (TextToVideoRequest, error) {
	r.Prompt = strings.TrimSpace(r.Prompt)
	if r.Prompt == "" {
		return r, Errorf(KindValidation, "prompt is required")
	}
	if r.Model == "" {
		r.Model = ModelViduQ1
	}
	if r.Duration == 0 {
		r.Duration = DefaultDuration(r.Model)
	}
	if r.AspectRatio == "" {
		r.AspectRatio = "16:9"
	}
	if r.Resolution == "" {
		r.Resolution = DefaultResolution(r.Model, r.Duration)
	}
	if r.MovementAmplitude == "" {
		r.MovementAmplitude = "auto"
	}
	return r, nil
}

// Normalize validates the request and applies the model/duration/resolution
// defaulting rules. Exactly one reference image is required, either a URL or
// a data URL produced from a local file.
func (r ImageToVideoRequest) Normalize() (ImageToVideoRequest, error) {
	if len(r.Images) != 1 {
		return r, Errorf(KindValidation, "exactly one image is required, got %d", len(r.Images))
	}
	if strings.TrimSpace(r.Images[0]) == "" {
		return r, Errorf(KindValidation, "image reference is empty")
	}
	if r.Model == "" {
		return r, Errorf(KindValidation, "model is required")
	}
	if !knownModel(r.Model) {
		return r, Errorf(KindValidation, "unknown model %q", r.Model)
	}
	if r.Duration == 0 {
		r.Duration = DefaultDuration(r.Model)
	}
	if !ValidDuration(r.Model, r.Duration) {
		return r, Errorf(KindValidation, "model %s does not support a %d second duration", r.Model, r.Duration)
	}
	if r.Resolution == "" {
		r.Resolution = DefaultResolution(r.Model, r.Duration)
	}
	if r.MovementAmplitude == "" {
		r.MovementAmplitude = "auto"
	}
	return r, nil
}
