package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/urfave/cli"

	"github.com/bulkget/bulkget/cmd/common"
	"github.com/bulkget/bulkget/pkg/fetchlib"
)

// urlStatus is the outcome of probing one url.
type urlStatus struct {
	URL     string
	Code    int
	Status  string
	Elapsed time.Duration
	Err     error
}

func (s urlStatus) bucket() string {
	switch {
	case s.Err != nil:
		return "error"
	case s.Code >= 200 && s.Code < 300:
		return "2xx"
	case s.Code >= 300 && s.Code < 400:
		return "3xx"
	case s.Code >= 400 && s.Code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// status probes every url concurrently with a single GET each and
// prints per-url status lines plus a category summary.
func status(ctx *cli.Context) error {
	urls := make([]string, 0, len(ctx.Args()))
	for _, arg := range ctx.Args() {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		// Bare hostnames are common in status lists; default them to
		// http like the probe's ancestors did.
		if !strings.Contains(arg, "://") {
			arg = "http://" + arg
		}
		urls = append(urls, arg)
	}
	if inputFile != "" {
		parsed, err := ParseInputFile(inputFile)
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		urls = append(urls, parsed.URLs...)
	}
	if len(urls) == 0 {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no url provided"))
	}

	transport, err := fetchlib.NewTransport(proxyURL)
	if err != nil {
		common.PrintRuntimeErr(ctx, "status", "proxy", err)
		return cli.NewExitError("", 1)
	}
	client := fetchlib.NewClient(&fetchlib.ClientOpts{
		Timeout:   time.Duration(timeoutMs) * time.Millisecond,
		Transport: transport,
	})

	fmt.Printf("Checking %d urls...\n", len(urls))
	start := time.Now()
	results := probeAll(context.Background(), client, urls, concurrency)

	counts := make(map[string]int)
	for _, r := range results {
		counts[r.bucket()]++
		if r.Err != nil {
			fmt.Printf("ERR  %s - %s\n", r.URL, r.Err.Error())
			continue
		}
		fmt.Printf("%-4d %s (%.2fs)\n", r.Code, r.URL, r.Elapsed.Seconds())
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total URLs checked: %d\n", len(results))
	fmt.Printf("Successful (2xx):   %d\n", counts["2xx"])
	fmt.Printf("Redirects (3xx):    %d\n", counts["3xx"])
	fmt.Printf("Client Errors (4xx): %d\n", counts["4xx"])
	fmt.Printf("Server Errors (5xx): %d\n", counts["5xx"])
	fmt.Printf("Connection Errors:   %d\n", counts["error"])
	fmt.Printf("Total time: %.2f seconds\n", time.Since(start).Seconds())

	if counts["error"]+counts["4xx"]+counts["5xx"] > 0 {
		return cli.NewExitError("", 1)
	}
	return nil
}

// probeAll fans the urls over a bounded pool of probe workers. Results
// come back in completion order.
func probeAll(ctx context.Context, client *fetchlib.Client, urls []string, workers int) []urlStatus {
	if workers < 1 {
		workers = fetchlib.DEF_CONCURRENCY
	}
	if workers > len(urls) {
		workers = len(urls)
	}

	pending := make(chan string)
	results := make(chan urlStatus)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for u := range pending {
				results <- probe(ctx, client, u)
			}
		}()
	}
	go func() {
		for _, u := range urls {
			pending <- u
		}
		close(pending)
		wg.Wait()
		close(results)
	}()

	out := make([]urlStatus, 0, len(urls))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func probe(ctx context.Context, client *fetchlib.Client, u string) urlStatus {
	start := time.Now()
	resp, err := client.Fetch(ctx, u)
	if err != nil {
		return urlStatus{URL: u, Err: err, Elapsed: time.Since(start)}
	}
	resp.Close()
	return urlStatus{
		URL:     u,
		Code:    resp.StatusCode,
		Status:  resp.Status,
		Elapsed: time.Since(start),
	}
}
