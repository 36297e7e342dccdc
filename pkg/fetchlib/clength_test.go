package fetchlib

import "testing"

func TestContentLength_String(t *testing.T) {
	tests := []struct {
		name string
		c    ContentLength
		want string
	}{
		{"zero bytes", 0, "0B"},
		{"bytes only", ContentLength(512), "512B"},
		{"exact kilobytes", ContentLength(2 * KB), "2KB"},
		{"mixed megabytes", ContentLength(5*MB + 256*KB), "5MB 256KB"},
		{"gigabytes and megabytes", ContentLength(GB + 204*MB), "1GB 204MB"},
		{"sub-kilobyte remainder dropped above KB", ContentLength(KB + 100), "1KB"},
		{"unknown", ContentLengthUnknown, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("ContentLength(%d).String() = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestContentLength_IsUnknown(t *testing.T) {
	if !ContentLengthUnknown.IsUnknown() {
		t.Error("ContentLengthUnknown.IsUnknown() = false")
	}
	if ContentLength(0).IsUnknown() {
		t.Error("zero length reported unknown")
	}
	if ContentLength(100).IsUnknown() {
		t.Error("positive length reported unknown")
	}
}
