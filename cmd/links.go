package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/urfave/cli"

	"github.com/bulkget/bulkget/cmd/common"
	"github.com/bulkget/bulkget/internal/scrape"
	"github.com/bulkget/bulkget/pkg/fetchlib"
)

// links fetches an html page and prints every harvested http(s) link.
// With --download the links are fed straight into the batch downloader.
func links(ctx *cli.Context) error {
	pageURL := ctx.Args().First()
	if pageURL == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no url provided"))
	}
	if reason := validateURL(pageURL); reason != "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("%s: %s", pageURL, reason))
	}

	transport, err := fetchlib.NewTransport(proxyURL)
	if err != nil {
		common.PrintRuntimeErr(ctx, "links", "proxy", err)
		return cli.NewExitError("", 1)
	}
	client := fetchlib.NewClient(&fetchlib.ClientOpts{
		Timeout:   time.Duration(timeoutMs) * time.Millisecond,
		Transport: transport,
	})

	harvested, err := harvest(context.Background(), client, pageURL)
	if err != nil {
		common.PrintRuntimeErr(ctx, "links", "fetch", err)
		return cli.NewExitError("", 1)
	}
	if len(harvested) == 0 {
		fmt.Println("no links found")
		return nil
	}

	if !download {
		for _, l := range harvested {
			fmt.Println(l.URL)
		}
		return nil
	}

	urls := make([]string, 0, len(harvested))
	for _, l := range harvested {
		urls = append(urls, l.URL)
	}
	if err := fetchlib.ValidateDownloadDirectory(outputDir); err != nil {
		common.PrintRuntimeErr(ctx, "links", "output_dir", err)
		return cli.NewExitError("", 1)
	}
	return runBatch(ctx, buildRequests(urls, outputDir), nil)
}

// harvest fetches the page, following redirects like a download attempt
// does, and extracts its links.
func harvest(ctx context.Context, client *fetchlib.Client, pageURL string) ([]scrape.Link, error) {
	current := pageURL
	for hops := 0; ; hops++ {
		resp, err := client.Fetch(ctx, current)
		if err != nil {
			return nil, err
		}
		if fetchlib.IsRedirect(resp.StatusCode) {
			next, rerr := fetchlib.ResolveRedirect(current, resp.Header)
			resp.Close()
			if rerr != nil {
				return nil, rerr
			}
			if hops >= fetchlib.DefaultMaxRedirects {
				return nil, fetchlib.ErrTooManyRedirects
			}
			current = next
			continue
		}
		if resp.StatusCode != 200 {
			resp.Close()
			return nil, &fetchlib.StatusError{URL: current, Code: resp.StatusCode, Status: resp.Status}
		}
		base, perr := url.Parse(current)
		if perr != nil {
			resp.Close()
			return nil, perr
		}
		links, lerr := scrape.ExtractLinks(resp.Body, base)
		resp.Close()
		return links, lerr
	}
}
