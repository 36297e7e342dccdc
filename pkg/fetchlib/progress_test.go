package fetchlib

import "testing"

func TestProgressTracker_KnownSize(t *testing.T) {
	var events []ProgressEvent
	tracker := newProgressTracker("http://x", ContentLength(1000), 5.0, 0, func(ev ProgressEvent) {
		events = append(events, ev)
	})

	// 4% advance: below the threshold, no event.
	tracker.add(40)
	if len(events) != 0 {
		t.Fatalf("event emitted below threshold: %+v", events)
	}

	// Cumulative 6%: crosses the threshold.
	tracker.add(20)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Percent != 6 {
		t.Errorf("Percent = %v, want 6", events[0].Percent)
	}
	if events[0].BytesWritten != 60 {
		t.Errorf("BytesWritten = %d, want 60", events[0].BytesWritten)
	}

	// Another 4% from the last emission: suppressed.
	tracker.add(40)
	if len(events) != 1 {
		t.Fatalf("event emitted below threshold after emission")
	}

	// Jump to 50%: emitted.
	tracker.add(400)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[1].Percent != 50 {
		t.Errorf("Percent = %v, want 50", events[1].Percent)
	}

	tracker.add(500)
	tracker.finish()
	last := events[len(events)-1]
	if last.Percent != 100 || last.BytesWritten != 1000 {
		t.Errorf("final event = %+v", last)
	}
}

func TestProgressTracker_UnknownSize(t *testing.T) {
	var events []ProgressEvent
	tracker := newProgressTracker("http://x", ContentLengthUnknown, 0, 100, func(ev ProgressEvent) {
		events = append(events, ev)
	})

	tracker.add(50)
	if len(events) != 0 {
		t.Fatal("event emitted below byte step")
	}
	tracker.add(60)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if !events[0].TotalBytes.IsUnknown() {
		t.Error("TotalBytes should be unknown mid-stream")
	}
	if events[0].Percent >= 0 {
		t.Errorf("Percent = %v, want negative for unknown size", events[0].Percent)
	}

	tracker.add(10)
	tracker.finish()
	last := events[len(events)-1]
	if last.TotalBytes != ContentLength(120) {
		t.Errorf("final TotalBytes = %d, want 120", last.TotalBytes)
	}
	if last.BytesWritten != 120 {
		t.Errorf("final BytesWritten = %d, want 120", last.BytesWritten)
	}
}

func TestProgressTracker_NilCallback(t *testing.T) {
	tracker := newProgressTracker("http://x", ContentLength(10), 5, 0, nil)
	tracker.add(10)
	tracker.finish()
}

func TestProgressTracker_DefaultBounds(t *testing.T) {
	tracker := newProgressTracker("http://x", ContentLength(100), 0, 0, nil)
	if tracker.threshold != DEF_PROGRESS_THRESHOLD {
		t.Errorf("threshold = %v, want default", tracker.threshold)
	}
	if tracker.byteStep != DEF_PROGRESS_BYTE_STEP {
		t.Errorf("byteStep = %v, want default", tracker.byteStep)
	}
}
