package fetchlib

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestScheduler_Run(t *testing.T) {
	t.Run("completes every request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("data for " + r.URL.Path))
		}))
		defer server.Close()

		fs := afero.NewMemMapFs()
		sched := NewScheduler(&SchedulerOpts{
			Concurrency: 3,
			Fs:          fs,
			Retry:       fastRetry,
		})

		var requests []DownloadRequest
		for i := 0; i < 10; i++ {
			requests = append(requests, DownloadRequest{
				URL:  fmt.Sprintf("%s/file%d", server.URL, i),
				Path: fmt.Sprintf("out/file%d.txt", i),
			})
		}
		res := sched.Run(context.Background(), requests)
		if res.Total() != 10 {
			t.Fatalf("Total = %d, want 10", res.Total())
		}
		if !res.AllSucceeded() {
			t.Fatalf("failures: %+v", res.Failed)
		}
		for i := 0; i < 10; i++ {
			path := fmt.Sprintf("out/file%d.txt", i)
			if exists, _ := afero.Exists(fs, path); !exists {
				t.Errorf("missing output file %s", path)
			}
		}
	})

	t.Run("never exceeds the concurrency bound", func(t *testing.T) {
		const limit = 3
		var active, peak atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			active.Add(-1)
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		sched := NewScheduler(&SchedulerOpts{
			Concurrency: limit,
			Fs:          afero.NewMemMapFs(),
			Retry:       fastRetry,
		})
		var requests []DownloadRequest
		for i := 0; i < 12; i++ {
			requests = append(requests, DownloadRequest{
				URL:  fmt.Sprintf("%s/f%d", server.URL, i),
				Path: fmt.Sprintf("f%d", i),
			})
		}
		res := sched.Run(context.Background(), requests)
		if !res.AllSucceeded() {
			t.Fatalf("failures: %+v", res.Failed)
		}
		if got := peak.Load(); got > limit {
			t.Errorf("peak concurrency = %d, want <= %d", got, limit)
		}
	})

	t.Run("one failure does not abort siblings", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/missing" {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		sched := NewScheduler(&SchedulerOpts{
			Concurrency: 2,
			Fs:          afero.NewMemMapFs(),
			Retry:       fastRetry,
		})
		res := sched.Run(context.Background(), []DownloadRequest{
			{URL: server.URL + "/a", Path: "a"},
			{URL: server.URL + "/missing", Path: "b"},
			{URL: server.URL + "/c", Path: "c"},
		})
		if res.Total() != 3 {
			t.Fatalf("Total = %d, want 3", res.Total())
		}
		if len(res.Successful) != 2 {
			t.Errorf("Successful = %d, want 2", len(res.Successful))
		}
		if len(res.Failed) != 1 {
			t.Fatalf("Failed = %d, want 1", len(res.Failed))
		}
		if res.Failed[0].URL != server.URL+"/missing" {
			t.Errorf("failed URL = %q", res.Failed[0].URL)
		}
	})

	t.Run("cancellation records unadmitted requests as failed", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		var once sync.Once
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			once.Do(func() { close(started) })
			<-release
			w.Write([]byte("ok"))
		}))
		defer server.Close()
		defer close(release)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			<-started
			cancel()
		}()

		sched := NewScheduler(&SchedulerOpts{
			Concurrency: 1,
			Fs:          afero.NewMemMapFs(),
			Retry:       fastRetry,
		})
		var requests []DownloadRequest
		for i := 0; i < 5; i++ {
			requests = append(requests, DownloadRequest{
				URL:  fmt.Sprintf("%s/f%d", server.URL, i),
				Path: fmt.Sprintf("f%d", i),
			})
		}
		res := sched.Run(ctx, requests)
		if res.Total() != 5 {
			t.Fatalf("Total = %d, want 5: every request is owed exactly one outcome", res.Total())
		}
	})

	t.Run("empty request list", func(t *testing.T) {
		sched := NewScheduler(nil)
		res := sched.Run(context.Background(), nil)
		if res.Total() != 0 {
			t.Errorf("Total = %d, want 0", res.Total())
		}
		if !res.AllSucceeded() {
			t.Error("empty run reported failures")
		}
	})

	t.Run("lifecycle callbacks fire once per request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		var mu sync.Mutex
		starts := make(map[string]int)
		completes := make(map[string]int)
		sched := NewScheduler(&SchedulerOpts{
			Concurrency: 2,
			Fs:          afero.NewMemMapFs(),
			Retry:       fastRetry,
			OnStart: func(req DownloadRequest) {
				mu.Lock()
				starts[req.URL]++
				mu.Unlock()
			},
			OnComplete: func(req DownloadRequest, bytes int64, err error) {
				mu.Lock()
				completes[req.URL]++
				mu.Unlock()
			},
		})
		var requests []DownloadRequest
		for i := 0; i < 6; i++ {
			requests = append(requests, DownloadRequest{
				URL:  fmt.Sprintf("%s/f%d", server.URL, i),
				Path: fmt.Sprintf("f%d", i),
			})
		}
		sched.Run(context.Background(), requests)
		for _, req := range requests {
			if starts[req.URL] != 1 {
				t.Errorf("OnStart for %s fired %d times", req.URL, starts[req.URL])
			}
			if completes[req.URL] != 1 {
				t.Errorf("OnComplete for %s fired %d times", req.URL, completes[req.URL])
			}
		}
	})
}

func TestNewScheduler_Defaults(t *testing.T) {
	sched := NewScheduler(nil)
	if sched.opts.Concurrency != DEF_CONCURRENCY {
		t.Errorf("Concurrency = %d, want %d", sched.opts.Concurrency, DEF_CONCURRENCY)
	}
	if sched.client == nil {
		t.Error("nil client")
	}
}
