package fetchlib

import (
	"io"
	"strings"
	"testing"
)

func TestCallbackProxyReader(t *testing.T) {
	var total int
	var calls int
	r := NewCallbackProxyReader(strings.NewReader("hello world"), func(n int) {
		total += n
		calls++
	})

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("data = %q", data)
	}
	if total != len("hello world") {
		t.Errorf("callback total = %d, want %d", total, len("hello world"))
	}
	if calls == 0 {
		t.Error("callback never invoked")
	}
}

func TestCallbackProxyReader_NoCallbackOnEmptyRead(t *testing.T) {
	var calls int
	r := NewCallbackProxyReader(strings.NewReader(""), func(int) { calls++ })

	buf := make([]byte, 8)
	if _, err := r.Read(buf); err != io.EOF {
		t.Fatalf("err = %v, want EOF", err)
	}
	if calls != 0 {
		t.Errorf("callback fired on zero-byte read %d times", calls)
	}
}
