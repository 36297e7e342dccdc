package cmd

import (
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/bulkget/bulkget/pkg/fetchlib"
)

// progressSink renders one mpb bar per active download, fed by the
// scheduler's observational callbacks. All methods are safe for
// concurrent use by worker goroutines; in quiet mode every call is a
// no-op.
type progressSink struct {
	p    *mpb.Progress
	mu   sync.Mutex
	bars map[string]*mpb.Bar
}

func newProgressSink(quiet bool) *progressSink {
	if quiet {
		return &progressSink{}
	}
	return &progressSink{
		p:    mpb.New(mpb.WithWidth(64)),
		bars: make(map[string]*mpb.Bar),
	}
}

// start registers a bar for a newly admitted download.
func (s *progressSink) start(req fetchlib.DownloadRequest) {
	if s.p == nil {
		return
	}
	name := truncateName(fetchlib.FilenameFromURL(req.URL), 24)
	bar := s.p.New(0,
		mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟"),
		mpb.BarRemoveOnComplete(),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
		mpb.AppendDecorators(
			decor.AverageSpeed(decor.SizeB1024(0), "% .2f"),
		),
	)
	s.mu.Lock()
	s.bars[req.URL] = bar
	s.mu.Unlock()
}

// observe advances the bar for one progress event.
func (s *progressSink) observe(ev fetchlib.ProgressEvent) {
	if s.p == nil {
		return
	}
	s.mu.Lock()
	bar := s.bars[ev.URL]
	s.mu.Unlock()
	if bar == nil {
		return
	}
	if !ev.TotalBytes.IsUnknown() {
		bar.SetTotal(int64(ev.TotalBytes), false)
	}
	bar.SetCurrent(ev.BytesWritten)
}

// complete finishes or abandons the bar for a terminal outcome.
func (s *progressSink) complete(req fetchlib.DownloadRequest, err error) {
	if s.p == nil {
		return
	}
	s.mu.Lock()
	bar := s.bars[req.URL]
	delete(s.bars, req.URL)
	s.mu.Unlock()
	if bar == nil {
		return
	}
	if err != nil {
		bar.Abort(true)
		return
	}
	bar.SetTotal(-1, true)
}

// wait blocks until all bars have rendered their final state.
func (s *progressSink) wait() {
	if s.p == nil {
		return
	}
	s.p.Wait()
}

func truncateName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max-1] + "…"
}
