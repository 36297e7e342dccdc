package fetchlib

// Default progress emission bounds.
const (
	// DEF_PROGRESS_THRESHOLD is the minimum advance, in percentage
	// points, between two progress events for a resource of known size.
	DEF_PROGRESS_THRESHOLD = 5.0
	// DEF_PROGRESS_BYTE_STEP is the minimum byte advance between two
	// progress events when the total size is unknown.
	DEF_PROGRESS_BYTE_STEP = 256 * KB
)

// ProgressEvent is an ephemeral snapshot of one transfer's progress.
// TotalBytes is -1 and Percent is negative when the server announced no
// size.
type ProgressEvent struct {
	URL          string
	BytesWritten int64
	TotalBytes   ContentLength
	Percent      float64
}

// ProgressFunc observes progress events. It is purely observational and
// must not block for long; emission frequency is bounded by the
// configured thresholds regardless of chunk granularity.
type ProgressFunc func(ev ProgressEvent)

// progressTracker rate-limits progress emission for one transfer. It is
// owned by the task's goroutine and needs no locking.
type progressTracker struct {
	url       string
	total     ContentLength
	threshold float64
	byteStep  int64
	emit      ProgressFunc

	written     int64
	lastPercent float64
	lastBytes   int64
}

func newProgressTracker(url string, total ContentLength, threshold float64, byteStep int64, emit ProgressFunc) *progressTracker {
	if threshold <= 0 {
		threshold = DEF_PROGRESS_THRESHOLD
	}
	if byteStep <= 0 {
		byteStep = DEF_PROGRESS_BYTE_STEP
	}
	return &progressTracker{
		url:       url,
		total:     total,
		threshold: threshold,
		byteStep:  byteStep,
		emit:      emit,
	}
}

// add records n more bytes written and emits an event once cumulative
// progress has advanced past the configured threshold.
func (t *progressTracker) add(n int) {
	t.written += int64(n)
	if t.emit == nil {
		return
	}
	if t.total.IsUnknown() {
		if t.written-t.lastBytes < t.byteStep {
			return
		}
		t.lastBytes = t.written
		t.emit(ProgressEvent{
			URL:          t.url,
			BytesWritten: t.written,
			TotalBytes:   ContentLengthUnknown,
			Percent:      -1,
		})
		return
	}
	percent := t.percent()
	if percent-t.lastPercent < t.threshold {
		return
	}
	t.lastPercent = percent
	t.emit(ProgressEvent{
		URL:          t.url,
		BytesWritten: t.written,
		TotalBytes:   t.total,
		Percent:      percent,
	})
}

// finish emits the terminal event: 100% for known sizes, final byte
// count for unknown ones.
func (t *progressTracker) finish() {
	if t.emit == nil {
		return
	}
	ev := ProgressEvent{
		URL:          t.url,
		BytesWritten: t.written,
		TotalBytes:   t.total,
		Percent:      100,
	}
	if t.total.IsUnknown() {
		ev.TotalBytes = ContentLength(t.written)
	}
	t.emit(ev)
}

func (t *progressTracker) percent() float64 {
	if t.total <= 0 {
		return 0
	}
	return float64(t.written) / float64(t.total.v()) * 100
}
