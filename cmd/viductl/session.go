package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/payam49er/vidu/internal/infra"
	"github.com/payam49er/vidu/internal/storage"
	"github.com/payam49er/vidu/internal/tracker"
	"github.com/payam49er/vidu/internal/vidu"
)

// session wires a client and a tracker together for one CLI invocation and
// projects lifecycle transitions onto the terminal.
type session struct {
	opts        *globalOptions
	logger      infra.Logger
	tracker     *tracker.Tracker
	transitions chan tracker.Job
}

func newSession(opts *globalOptions) *session {
	appEnv := "production"
	if opts.verbose {
		appEnv = "development"
	}
	logger := infra.NewLogger(appEnv)

	s := &session{
		opts:        opts,
		logger:      logger,
		transitions: make(chan tracker.Job, 16),
	}
	client := vidu.NewClient(vidu.Options{
		BaseURL: opts.server,
		Logger:  &logger,
	})
	s.tracker = tracker.New(tracker.Options{
		Client:       client,
		PollInterval: opts.pollInterval,
		PollCeiling:  opts.pollCeiling,
		Logger:       &logger,
		OnTransition: func(j tracker.Job) { s.transitions <- j },
	})
	return s
}

// follow drains transitions until the job reaches a terminal status, then
// renders the outcome and the session history.
func (s *session) follow(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case j := <-s.transitions:
			s.report(j)
			if j.Status.Terminal() {
				s.renderHistory()
				return s.finish(ctx, j)
			}
		}
	}
}

func (s *session) report(j tracker.Job) {
	evt := s.logger.Info().Str("status", string(j.Status))
	if j.TaskID != "" {
		evt = evt.Str("task_id", j.TaskID)
	}
	if j.RemoteState != "" {
		evt = evt.Str("remote_state", j.RemoteState)
	}
	evt.Msg("job")
}

func (s *session) finish(ctx context.Context, j tracker.Job) error {
	switch j.Status {
	case tracker.StatusCompleted:
		fmt.Printf("video ready: %s\n", j.Result.URL)
		if j.Result.CoverURL != "" {
			fmt.Printf("cover:       %s\n", j.Result.CoverURL)
		}
		if j.Credits > 0 {
			fmt.Printf("credits:     %d\n", j.Credits)
		}
		if s.opts.output != "" {
			return s.download(ctx, j)
		}
		return nil
	case tracker.StatusTimedOut:
		return fmt.Errorf("job %s timed out: %s", j.TaskID, j.Message)
	default:
		return fmt.Errorf("job failed: %s", j.Message)
	}
}

// download fetches the finished clip into the output directory.
func (s *session) download(ctx context.Context, j tracker.Job) error {
	store, err := storage.NewFileStore(s.opts.output)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.Result.URL, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("download video: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download video: HTTP %d", resp.StatusCode)
	}
	key := downloadKey(j)
	saved, err := store.WriteStream(ctx, key, resp.Body)
	if err != nil {
		return err
	}
	fmt.Printf("saved:       %s%c%s\n", store.BasePath(), os.PathSeparator, saved)
	return nil
}

func downloadKey(j tracker.Job) string {
	name := path.Base(j.Result.URL)
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "." || name == "/" || !strings.Contains(name, ".") {
		name = j.Result.ID + ".mp4"
	}
	return j.TaskID + "/" + name
}
