package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/bulkget/bulkget/pkg/fetchlib"
)

func TestBatchSummary(t *testing.T) {
	t.Run("all succeeded", func(t *testing.T) {
		res := &fetchlib.AggregateResult{
			Successful: []fetchlib.Download{
				{URL: "http://a", Path: "/tmp/a", Bytes: 1024},
				{URL: "http://b", Path: "/tmp/b", Bytes: 2048},
			},
		}
		out := batchSummary(res, nil)
		for _, want := range []string{
			"=== Download Summary ===",
			"Total URLs: 2",
			"Succeeded:  2",
			"Failed:     0",
			"Downloaded: 3KB",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("summary missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Failed downloads:") {
			t.Error("failure section rendered with no failures")
		}
	})

	t.Run("failures listed with reasons", func(t *testing.T) {
		res := &fetchlib.AggregateResult{
			Successful: []fetchlib.Download{{URL: "http://a", Path: "/tmp/a", Bytes: 10}},
			Failed: []fetchlib.Failure{
				{URL: "http://b", Err: errors.New("server returned 404 Not Found")},
			},
		}
		out := batchSummary(res, nil)
		for _, want := range []string{
			"Total URLs: 2",
			"Failed:     1",
			"Failed downloads:",
			"http://b: server returned 404 Not Found",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("summary missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("skipped input lines included", func(t *testing.T) {
		res := &fetchlib.AggregateResult{}
		skipped := []SkippedLine{
			{LineNumber: 3, Content: "ftp://x", Reason: `unsupported scheme "ftp"`},
		}
		out := batchSummary(res, skipped)
		if !strings.Contains(out, "Skipped:    1") {
			t.Errorf("summary missing skip count:\n%s", out)
		}
		if !strings.Contains(out, "Line 3: ftp://x") {
			t.Errorf("summary missing skipped line detail:\n%s", out)
		}
	})
}
