package tracker

import (
	"time"

	"github.com/payam49er/vidu/internal/vidu"
)

// JobKind records which submission path created a job.
type JobKind string

const (
	JobKindTextToVideo  JobKind = "text2video"
	JobKindImageToVideo JobKind = "img2video"
	JobKindLookup       JobKind = "lookup"
)

// Status is the local lifecycle view of a job, distinct from the remote
// task state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusPolling    Status = "polling"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusTimedOut   Status = "timed_out"
)

// Terminal reports whether the status ends a job's lifecycle.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusTimedOut:
		return true
	}
	return false
}

// Active reports whether the status occupies the single in-flight slot.
func (s Status) Active() bool {
	return s == StatusSubmitting || s == StatusPolling
}

// Request is the immutable snapshot of the parameters a job was submitted
// with, kept for display and history.
type Request struct {
	Prompt     string
	Model      string
	Duration   int
	Resolution string
	Image      string
}

// Result is the produced artifact of a completed job.
type Result struct {
	ID       string
	URL      string
	CoverURL string
}

// Job is one generation or lookup request and its tracked lifecycle.
type Job struct {
	TaskID      string
	Kind        JobKind
	Request     Request
	Status      Status
	RemoteState string
	ErrCode     string
	Credits     int
	Message     string
	Result      *Result
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func requestFromText(r vidu.TextToVideoRequest) Request {
	return Request{
		Prompt:     r.Prompt,
		Model:      r.Model,
		Duration:   r.Duration,
		Resolution: r.Resolution,
	}
}

func requestFromImage(r vidu.ImageToVideoRequest) Request {
	req := Request{
		Prompt:     r.Prompt,
		Model:      r.Model,
		Duration:   r.Duration,
		Resolution: r.Resolution,
	}
	if len(r.Images) > 0 {
		req.Image = r.Images[0]
	}
	return req
}

// clone returns a detached copy safe to hand to callers.
func (j *Job) clone() Job {
	c := *j
	if j.Result != nil {
		res := *j.Result
		c.Result = &res
	}
	return c
}
