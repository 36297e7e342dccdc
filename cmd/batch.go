package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/bulkget/bulkget/cmd/common"
	"github.com/bulkget/bulkget/pkg/fetchlib"
	"github.com/bulkget/bulkget/pkg/logger"
)

// batchSummary renders the aggregate outcome of a run: totals first,
// then skipped input lines, then every failed url with its reason.
func batchSummary(res *fetchlib.AggregateResult, skipped []SkippedLine) string {
	var sb strings.Builder

	sb.WriteString("=== Download Summary ===\n")
	sb.WriteString(fmt.Sprintf("Total URLs: %d\n", res.Total()))
	sb.WriteString(fmt.Sprintf("Succeeded:  %d\n", len(res.Successful)))
	sb.WriteString(fmt.Sprintf("Failed:     %d\n", len(res.Failed)))

	if len(skipped) > 0 {
		sb.WriteString(fmt.Sprintf("Skipped:    %d (invalid input lines)\n", len(skipped)))
		sb.WriteString("\nWarning - skipped input lines:\n")
		for _, s := range skipped {
			sb.WriteString(fmt.Sprintf("  Line %d: %s (%s)\n", s.LineNumber, s.Content, s.Reason))
		}
	}

	var total int64
	for _, d := range res.Successful {
		total += d.Bytes
	}
	if total > 0 {
		sb.WriteString(fmt.Sprintf("Downloaded: %s\n", fetchlib.ContentLength(total)))
	}

	if len(res.Failed) > 0 {
		sb.WriteString("\nFailed downloads:\n")
		for _, f := range res.Failed {
			sb.WriteString(fmt.Sprintf("  - %s: %s\n", f.URL, f.Reason()))
		}
	}

	return sb.String()
}

// newRunLogger builds the logger for one run from the --quiet and
// --log-file flags.
func newRunLogger() (logger.Logger, error) {
	var backends []logger.Logger
	if !quiet {
		backends = append(backends, logger.New(os.Stderr))
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		backends = append(backends, logger.NewFileLogger(f))
	}
	switch len(backends) {
	case 0:
		return logger.NewNopLogger(), nil
	case 1:
		return backends[0], nil
	default:
		return logger.NewMultiLogger(backends...), nil
	}
}

// runBatch drives one batch of download requests through the scheduler
// and prints the aggregate summary. It returns a non-nil cli exit error
// when any download failed.
func runBatch(ctx *cli.Context, requests []fetchlib.DownloadRequest, skipped []SkippedLine) error {
	log, err := newRunLogger()
	if err != nil {
		common.PrintRuntimeErr(ctx, "get", "log_file", err)
		return cli.NewExitError("", 1)
	}
	defer log.Close()

	transport, err := fetchlib.NewTransport(proxyURL)
	if err != nil {
		common.PrintRuntimeErr(ctx, "get", "proxy", err)
		return cli.NewExitError("", 1)
	}

	var headers fetchlib.Headers
	if userAgent != "" {
		headers = fetchlib.Headers{{Key: fetchlib.USER_AGENT_KEY, Value: userAgent}}
	}

	client := fetchlib.NewClient(&fetchlib.ClientOpts{
		Timeout:   time.Duration(timeoutMs) * time.Millisecond,
		Headers:   headers,
		Transport: transport,
	})

	sink := newProgressSink(quiet)

	sched := fetchlib.NewScheduler(&fetchlib.SchedulerOpts{
		Concurrency: concurrency,
		Client:      client,
		Retry: fetchlib.RetryPolicy{
			MaxRetries: maxRetries,
			BaseDelay:  time.Duration(retryDelayMs) * time.Millisecond,
		},
		MaxRedirects: maxRedirects,
		// Smooth bars want finer-grained events than the library
		// default of one event per 5 percentage points.
		ProgressThreshold: 1,
		ProgressByteStep:  64 * fetchlib.KB,
		OnProgress:        sink.observe,
		OnStart:           sink.start,
		OnComplete: func(req fetchlib.DownloadRequest, bytes int64, err error) {
			sink.complete(req, err)
			if err != nil {
				log.Error("%s: %s", req.URL, err.Error())
				return
			}
			log.Info("%s: saved %s (%s)", req.URL, req.Path, fetchlib.ContentLength(bytes))
		},
	})

	log.Info("downloading %d urls with concurrency %d", len(requests), concurrency)
	res := sched.Run(context.Background(), requests)
	sink.wait()

	if !noHistory {
		if err := recordHistory(res); err != nil {
			log.Warning("history not recorded: %s", err.Error())
		}
	}

	fmt.Println(batchSummary(res, skipped))

	if !res.AllSucceeded() {
		return cli.NewExitError(
			fmt.Sprintf("bulkget: %d of %d downloads failed", len(res.Failed), res.Total()), 1)
	}
	return nil
}
