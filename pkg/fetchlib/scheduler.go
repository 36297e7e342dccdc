package fetchlib

import (
	"context"
	"sync"

	"github.com/spf13/afero"
)

// DEF_CONCURRENCY is the default number of simultaneously active
// downloads.
const DEF_CONCURRENCY = 3

// SchedulerOpts configures a Scheduler. The zero value of every field
// is replaced by its DEF_* default.
type SchedulerOpts struct {
	// Concurrency bounds the active set: at most this many tasks run
	// at any moment.
	Concurrency int
	// Client issues fetch attempts. Nil means NewClient(nil).
	Client *Client
	// Fs is the destination filesystem. Nil means the OS filesystem.
	Fs afero.Fs
	// Retry, MaxRedirects, ProgressThreshold, and ProgressByteStep are
	// handed to every task; see TaskOpts.
	Retry             RetryPolicy
	MaxRedirects      int
	ProgressThreshold float64
	ProgressByteStep  int64
	// OnProgress observes streaming progress across all tasks. Events
	// for different URLs arrive interleaved from worker goroutines.
	OnProgress ProgressFunc
	// OnStart fires when a request is admitted into the active set.
	OnStart func(req DownloadRequest)
	// OnComplete fires once per request with its terminal outcome,
	// before the freed slot admits the next pending request.
	OnComplete func(req DownloadRequest, bytes int64, err error)
}

// Scheduler runs download requests through a bounded worker pool:
// requests wait in FIFO input order, at most Concurrency tasks are
// active, and every completion — success or failure — frees a slot for
// the next pending request. One request's failure never aborts its
// siblings.
type Scheduler struct {
	client *Client
	writer *Writer
	opts   SchedulerOpts
}

// NewScheduler creates a Scheduler. opts may be nil.
func NewScheduler(opts *SchedulerOpts) *Scheduler {
	if opts == nil {
		opts = &SchedulerOpts{}
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = DEF_CONCURRENCY
	}
	client := opts.Client
	if client == nil {
		client = NewClient(nil)
	}
	return &Scheduler{
		client: client,
		writer: NewWriter(opts.Fs),
		opts:   *opts,
	}
}

// Run executes all requests and returns once every request has reached
// a terminal outcome. Cancelling ctx stops admissions and aborts
// in-flight tasks; requests cut short that way are recorded as failed
// with the context error, so the result always accounts for every
// request exactly once.
func (s *Scheduler) Run(ctx context.Context, requests []DownloadRequest) *AggregateResult {
	agg := NewAggregator(len(requests))
	if len(requests) == 0 {
		return agg.Result()
	}

	workers := s.opts.Concurrency
	if workers > len(requests) {
		workers = len(requests)
	}

	pending := make(chan DownloadRequest)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go s.worker(ctx, pending, agg, &wg)
	}

	go func() {
		defer close(pending)
		for i, req := range requests {
			select {
			case pending <- req:
			case <-ctx.Done():
				// Never admitted; still owed a terminal outcome.
				for _, rest := range requests[i:] {
					agg.RecordFailure(rest.URL, ctx.Err())
				}
				return
			}
		}
	}()

	wg.Wait()
	return agg.Result()
}

func (s *Scheduler) worker(ctx context.Context, pending <-chan DownloadRequest, agg *Aggregator, wg *sync.WaitGroup) {
	defer wg.Done()
	for req := range pending {
		if s.opts.OnStart != nil {
			s.opts.OnStart(req)
		}
		task := NewTask(req, s.client, s.writer, &TaskOpts{
			Retry:             s.opts.Retry,
			MaxRedirects:      s.opts.MaxRedirects,
			ProgressThreshold: s.opts.ProgressThreshold,
			ProgressByteStep:  s.opts.ProgressByteStep,
			OnProgress:        s.opts.OnProgress,
		})
		written, err := task.Run(ctx)
		if err != nil {
			agg.RecordFailure(req.URL, err)
		} else {
			agg.RecordSuccess(req.URL, req.Path, written)
		}
		if s.opts.OnComplete != nil {
			s.opts.OnComplete(req, written, err)
		}
	}
}

// Fetch exposes the scheduler's client for single-attempt probes such
// as status checks.
func (s *Scheduler) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	return s.client.Fetch(ctx, rawURL)
}
