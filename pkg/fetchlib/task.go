package fetchlib

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
)

// TaskStatus is the state of one download request's lifecycle.
type TaskStatus int

const (
	StatusPending TaskStatus = iota
	StatusInFlight
	StatusRetrying
	StatusSucceeded
	StatusFailed
)

func (s TaskStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInFlight:
		return "in-flight"
	case StatusRetrying:
		return "retrying"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DownloadRequest pairs a source URL with the file it should be saved
// to. Requests are immutable once created.
type DownloadRequest struct {
	URL  string
	Path string
}

// Task drives one DownloadRequest through its retry/redirect state
// machine: Pending -> InFlight -> {Succeeded | Retrying | Failed},
// Retrying -> InFlight. A Task is owned by the scheduler slot running
// it and must not be shared between goroutines.
type Task struct {
	req    DownloadRequest
	client *Client
	writer *Writer
	policy RetryPolicy

	maxRedirects int
	threshold    float64
	byteStep     int64
	onProgress   ProgressFunc

	status  TaskStatus
	attempt int
}

// TaskOpts configures a Task beyond its request.
type TaskOpts struct {
	// Retry policy; zero value means DefaultRetryPolicy.
	Retry RetryPolicy
	// MaxRedirects caps redirect hops per attempt. Zero means
	// DefaultMaxRedirects; negative disables the cap (legacy behavior,
	// see DefaultMaxRedirects for the hazard).
	MaxRedirects int
	// ProgressThreshold is the minimum percent advance between events.
	ProgressThreshold float64
	// ProgressByteStep is the minimum byte advance between events for
	// unknown-size resources.
	ProgressByteStep int64
	// OnProgress observes streaming progress. May be nil.
	OnProgress ProgressFunc
}

// NewTask creates a task for one request. client and writer are shared,
// stateless collaborators; the task owns all mutable state.
func NewTask(req DownloadRequest, client *Client, writer *Writer, opts *TaskOpts) *Task {
	if opts == nil {
		opts = &TaskOpts{}
	}
	policy := opts.Retry
	if policy.MaxRetries == 0 {
		policy = DefaultRetryPolicy()
	}
	maxRedirects := opts.MaxRedirects
	if maxRedirects == 0 {
		maxRedirects = DefaultMaxRedirects
	}
	return &Task{
		req:          req,
		client:       client,
		writer:       writer,
		policy:       policy,
		maxRedirects: maxRedirects,
		threshold:    opts.ProgressThreshold,
		byteStep:     opts.ProgressByteStep,
		onProgress:   opts.OnProgress,
	}
}

// Status returns the task's current lifecycle state.
func (t *Task) Status() TaskStatus { return t.status }

// Attempt returns the 1-based attempt counter, 0 before the first run.
func (t *Task) Attempt() int { return t.attempt }

// Run executes the state machine until a terminal outcome and returns
// the bytes written on success. Retriable failures (connection errors,
// timeouts) are contained inside Run until the retry budget is
// exhausted; only terminal errors surface. A cancelled context is
// terminal.
func (t *Task) Run(ctx context.Context) (int64, error) {
	t.attempt = 1
	for {
		t.status = StatusInFlight
		written, err := t.attemptOnce(ctx)
		if err == nil {
			t.status = StatusSucceeded
			return written, nil
		}
		if ctx.Err() != nil {
			t.status = StatusFailed
			return 0, ctx.Err()
		}
		if !Retriable(err) || t.attempt >= t.policy.MaxRetries {
			t.status = StatusFailed
			return 0, err
		}
		t.status = StatusRetrying
		if werr := t.policy.Wait(ctx, t.attempt); werr != nil {
			t.status = StatusFailed
			return 0, werr
		}
		t.attempt++
	}
}

// attemptOnce performs one full attempt: fetch, follow redirects, and
// stream a 200 body to the destination. Redirect hops do not consume
// the retry budget.
func (t *Task) attemptOnce(ctx context.Context) (int64, error) {
	u := t.req.URL
	var hops int
	for {
		resp, err := t.client.Fetch(ctx, u)
		if err != nil {
			return 0, err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return t.stream(resp)

		case IsRedirect(resp.StatusCode):
			next, rerr := ResolveRedirect(u, resp.Header)
			resp.Close()
			if rerr != nil {
				return 0, rerr
			}
			hops++
			if t.maxRedirects > 0 && hops > t.maxRedirects {
				return 0, fmt.Errorf("%w: exceeded %d hops (last URL: %s)",
					ErrTooManyRedirects, t.maxRedirects, u)
			}
			u = next

		default:
			resp.Close()
			return 0, &StatusError{URL: u, Code: resp.StatusCode, Status: resp.Status}
		}
	}
}

func (t *Task) stream(resp *Response) (int64, error) {
	defer resp.Close()

	if !resp.ContentLength.IsUnknown() {
		if err := CheckDiskSpace(filepath.Dir(t.req.Path), int64(resp.ContentLength)); err != nil {
			return 0, &WriteError{Path: t.req.Path, Err: err}
		}
	}

	tracker := newProgressTracker(t.req.URL, resp.ContentLength, t.threshold, t.byteStep, t.onProgress)
	body := NewCallbackProxyReader(resp.Body, tracker.add)

	written, err := t.writer.WriteStream(body, t.req.Path)
	if err != nil {
		var writeErr *WriteError
		if errors.As(err, &writeErr) {
			return written, err
		}
		// Anything the writer passed through untouched came from the
		// body stream: the connection dropped mid-transfer.
		return written, &ConnError{URL: t.req.URL, Err: err}
	}
	tracker.finish()
	return written, nil
}
