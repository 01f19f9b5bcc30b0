package vidu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/payam49er/vidu/internal/infra"
)

// Options configures the client. BaseURL points at the proxy, which injects
// the remote credentials; the browser-equivalent caller never holds the key.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *infra.Logger
}

// Client performs HTTP calls against the proxy surface and normalizes every
// failure into an *Error with a tagged kind.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *infra.Logger
}

// CreateResult is the job-creation payload. The remote API reports the
// assigned identifier as task_id; older responses used id.
type CreateResult struct {
	TaskID    string `json:"task_id"`
	ID        string `json:"id"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
}

// Task returns the task identifier regardless of which field carried it.
func (r CreateResult) Task() string {
	if r.TaskID != "" {
		return r.TaskID
	}
	return r.ID
}

// Creation is one produced artifact.
type Creation struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	CoverURL string `json:"cover_url"`
}

// CreationsResult is the state/result payload for one task.
type CreationsResult struct {
	State     string          `json:"state"`
	ErrCode   string          `json:"err_code"`
	Credits   int             `json:"credits"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Creations []Creation      `json:"creations"`
}

// VideoStatus is the per-artifact status payload.
type VideoStatus struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	ErrorMessage string `json:"error_message"`
}

type errorEnvelope struct {
	Err     string          `json:"error"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

// NewClient constructs a client with sane defaults.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "http://localhost:8080"
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		discard := infra.Logger(zerolog.New(io.Discard))
		logger = &discard
	}
	return &Client{httpClient: httpClient, baseURL: base, logger: logger}
}

// CreateTextVideo submits a text-to-video job and returns the assigned task.
func (c *Client) CreateTextVideo(ctx context.Context, req TextToVideoRequest) (*CreateResult, error) {
	norm, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	var out CreateResult
	if err := c.do(ctx, http.MethodPost, "/api/text2video", norm, &out); err != nil {
		return nil, err
	}
	if out.Task() == "" {
		return nil, Errorf(KindRemote, "creation response carried no task id")
	}
	c.logger.Debug().Str("task_id", out.Task()).Msg("vidu: text2video job created")
	return &out, nil
}

// CreateImageVideo submits an image-to-video job and returns the assigned task.
func (c *Client) CreateImageVideo(ctx context.Context, req ImageToVideoRequest) (*CreateResult, error) {
	norm, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	var out CreateResult
	if err := c.do(ctx, http.MethodPost, "/api/img2video", norm, &out); err != nil {
		return nil, err
	}
	if out.Task() == "" {
		return nil, Errorf(KindRemote, "creation response carried no task id")
	}
	c.logger.Debug().Str("task_id", out.Task()).Msg("vidu: img2video job created")
	return &out, nil
}

// FetchCreations returns the current state and produced artifacts of a task.
func (c *Client) FetchCreations(ctx context.Context, taskID string) (*CreationsResult, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, Errorf(KindValidation, "task id is required")
	}
	var out CreationsResult
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+taskID+"/creations", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchVideoStatus returns the status of a single artifact by its id.
func (c *Client) FetchVideoStatus(ctx context.Context, videoID string) (*VideoStatus, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, Errorf(KindValidation, "video id is required")
	}
	var out VideoStatus
	if err := c.do(ctx, http.MethodGet, "/api/videos/"+videoID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Errorf(KindValidation, "encode request: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return Errorf(KindValidation, "build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Errorf(KindTimeout, "request deadline exceeded")
		}
		return Errorf(KindRemote, "request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Errorf(KindRemote, "read response: %v", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return errorFromStatus(resp.StatusCode, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return Errorf(KindRemote, "decode response: %v", err)
		}
	}
	return nil
}

// errorFromStatus maps a non-2xx proxy response into a tagged Error. The
// message comes from the error envelope when the body carries one.
func errorFromStatus(status int, body []byte) *Error {
	message := fmt.Sprintf("HTTP %d", status)
	code := ""
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Message != "" {
			message = env.Message
		}
		code = env.Err
	}
	kind := KindRemote
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusRequestTimeout:
		kind = KindTimeout
	}
	return &Error{Kind: kind, Code: code, Message: message}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
