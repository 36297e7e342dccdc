package fetchlib

import "sync"

// Download records one successful transfer.
type Download struct {
	URL   string `json:"url"`
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

// Failure records one terminally failed transfer.
type Failure struct {
	URL string `json:"url"`
	Err error  `json:"-"`
}

// Reason returns the human-readable terminal reason.
func (f Failure) Reason() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

// AggregateResult is the caller-owned outcome of a run. Entries appear
// in completion order, which under concurrency is not input order.
type AggregateResult struct {
	Successful []Download
	Failed     []Failure
}

// Total returns the number of terminal outcomes recorded.
func (r *AggregateResult) Total() int {
	return len(r.Successful) + len(r.Failed)
}

// AllSucceeded reports whether no transfer failed.
func (r *AggregateResult) AllSucceeded() bool {
	return len(r.Failed) == 0
}

// Aggregator collects terminal outcomes from concurrently completing
// tasks. Every admitted request must be recorded exactly once; the
// scheduler's one-worker-per-request structure guarantees that.
type Aggregator struct {
	mu  sync.Mutex
	res AggregateResult
}

// NewAggregator creates an Aggregator sized for n requests.
func NewAggregator(n int) *Aggregator {
	return &Aggregator{
		res: AggregateResult{
			Successful: make([]Download, 0, n),
			Failed:     make([]Failure, 0, n),
		},
	}
}

// RecordSuccess appends a successful outcome.
func (a *Aggregator) RecordSuccess(url, path string, bytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.res.Successful = append(a.res.Successful, Download{URL: url, Path: path, Bytes: bytes})
}

// RecordFailure appends a failed outcome.
func (a *Aggregator) RecordFailure(url string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.res.Failed = append(a.res.Failed, Failure{URL: url, Err: err})
}

// Result returns the accumulated outcomes. Call only after the
// scheduler has fully drained; the caller owns the returned value.
func (a *Aggregator) Result() *AggregateResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	res := a.res
	return &res
}
