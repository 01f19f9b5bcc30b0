package vidu

import "testing"

func TestTextToVideoNormalizeDefaults(t *testing.T) {
	got, err := TextToVideoRequest{Prompt: "  a cat surfing  "}.Normalize()
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got.Prompt != "a cat surfing" {
		t.Fatalf("prompt not trimmed: %q", got.Prompt)
	}
	if got.Model != ModelViduQ1 {
		t.Fatalf("unexpected model: %s", got.Model)
	}
	if got.Duration != 5 {
		t.Fatalf("unexpected duration: %d", got.Duration)
	}
	if got.AspectRatio != "16:9" {
		t.Fatalf("unexpected aspect ratio: %s", got.AspectRatio)
	}
	if got.Resolution != "1080p" {
		t.Fatalf("unexpected resolution: %s", got.Resolution)
	}
	if got.MovementAmplitude != "auto" {
		t.Fatalf("unexpected movement amplitude: %s", got.MovementAmplitude)
	}
}

func TestTextToVideoNormalizeEmptyPrompt(t *testing.T) {
	_, err := TextToVideoRequest{Prompt: "   "}.Normalize()
	if !IsKind(err, KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestImageToVideoNormalizeDurations(t *testing.T) {
	tests := []struct {
		name         string
		model        string
		duration     int
		wantDuration int
		wantErr      bool
	}{
		{name: "viduq1 defaults to 5", model: ModelViduQ1, wantDuration: 5},
		{name: "vidu2.0 defaults to 4", model: ModelVidu20, wantDuration: 4},
		{name: "vidu1.5 defaults to 4", model: ModelVidu15, wantDuration: 4},
		{name: "vidu2.0 accepts 8", model: ModelVidu20, duration: 8, wantDuration: 8},
		{name: "viduq1 rejects 4", model: ModelViduQ1, duration: 4, wantErr: true},
		{name: "vidu1.5 rejects 5", model: ModelVidu15, duration: 5, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := ImageToVideoRequest{
				Images:   []string{"https://example.com/ref.png"},
				Model:    tc.model,
				Duration: tc.duration,
			}
			got, err := req.Normalize()
			if tc.wantErr {
				if !IsKind(err, KindValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize error: %v", err)
			}
			if got.Duration != tc.wantDuration {
				t.Fatalf("duration = %d, want %d", got.Duration, tc.wantDuration)
			}
		})
	}
}

func TestImageToVideoNormalizeResolutions(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		duration int
		want     string
	}{
		{name: "viduq1 always 1080p", model: ModelViduQ1, duration: 5, want: "1080p"},
		{name: "vidu2.0 short clip 360p", model: ModelVidu20, duration: 4, want: "360p"},
		{name: "vidu2.0 long clip 720p", model: ModelVidu20, duration: 8, want: "720p"},
		{name: "vidu1.5 short clip 360p", model: ModelVidu15, duration: 4, want: "360p"},
		{name: "vidu1.5 long clip 720p", model: ModelVidu15, duration: 8, want: "720p"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := ImageToVideoRequest{
				Images:   []string{"https://example.com/ref.png"},
				Model:    tc.model,
				Duration: tc.duration,
			}
			got, err := req.Normalize()
			if err != nil {
				t.Fatalf("Normalize error: %v", err)
			}
			if got.Resolution != tc.want {
				t.Fatalf("resolution = %s, want %s", got.Resolution, tc.want)
			}
		})
	}
}

func TestImageToVideoNormalizeValidation(t *testing.T) {
	tests := []struct {
		name string
		req  ImageToVideoRequest
	}{
		{name: "no images", req: ImageToVideoRequest{Model: ModelViduQ1}},
		{name: "two images", req: ImageToVideoRequest{Images: []string{"a", "b"}, Model: ModelViduQ1}},
		{name: "blank image", req: ImageToVideoRequest{Images: []string{"  "}, Model: ModelViduQ1}},
		{name: "missing model", req: ImageToVideoRequest{Images: []string{"https://example.com/a.png"}}},
		{name: "unknown model", req: ImageToVideoRequest{Images: []string{"https://example.com/a.png"}, Model: "vidu-9"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.req.Normalize(); !IsKind(err, KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestImageToVideoNormalizeKeepsExplicitResolution(t *testing.T) {
	req := ImageToVideoRequest{
		Images:     []string{"https://example.com/ref.png"},
		Model:      ModelVidu20,
		Duration:   8,
		Resolution: "1080p",
	}
	got, err := req.Normalize()
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if got.Resolution != "1080p" {
		t.Fatalf("explicit resolution overridden: %s", got.Resolution)
	}
}
