package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/bulkget/bulkget/cmd/common"
	"github.com/bulkget/bulkget/pkg/fetchlib"
)

// get is the default command: download every url argument plus the
// urls from --input-file into the output directory.
func get(ctx *cli.Context) error {
	urls := make([]string, 0, len(ctx.Args()))
	var skipped []SkippedLine
	for _, arg := range ctx.Args() {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		if arg == "help" {
			return cli.ShowCommandHelp(ctx, ctx.Command.Name)
		}
		if reason := validateURL(arg); reason != "" {
			skipped = append(skipped, SkippedLine{Content: arg, Reason: reason})
			continue
		}
		urls = append(urls, arg)
	}

	if inputFile != "" {
		parsed, err := ParseInputFile(inputFile)
		if err != nil {
			return common.PrintErrWithCmdHelp(ctx, err)
		}
		urls = append(urls, parsed.URLs...)
		skipped = append(skipped, parsed.Skipped...)
	}

	if len(urls) == 0 {
		if len(skipped) > 0 {
			return common.PrintErrWithCmdHelp(ctx, errors.New("no downloadable urls provided"))
		}
		if ctx.Command.Name == "" {
			return common.Help(ctx)
		}
		return common.PrintErrWithCmdHelp(ctx, errors.New("no url provided"))
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		common.PrintRuntimeErr(ctx, "get", "output_dir", err)
		return cli.NewExitError("", 1)
	}
	if err := fetchlib.ValidateDownloadDirectory(outputDir); err != nil {
		common.PrintRuntimeErr(ctx, "get", "output_dir", err)
		return cli.NewExitError("", 1)
	}

	return runBatch(ctx, buildRequests(urls, outputDir), skipped)
}

// buildRequests derives one destination file per url, keeping names
// unique within the batch and against files already on disk.
func buildRequests(urls []string, dir string) []fetchlib.DownloadRequest {
	used := make(map[string]bool)
	requests := make([]fetchlib.DownloadRequest, 0, len(urls))
	for _, u := range urls {
		name := uniqueFileName(dir, fetchlib.FilenameFromURL(u), used)
		used[name] = true
		requests = append(requests, fetchlib.DownloadRequest{
			URL:  u,
			Path: filepath.Join(dir, name),
		})
	}
	return requests
}

// uniqueFileName appends a counter until the name collides with neither
// a batch sibling nor an existing file: "file.txt" -> "file (1).txt".
func uniqueFileName(dir, name string, used map[string]bool) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := name
	for counter := 1; used[candidate] || fileExists(filepath.Join(dir, candidate)); counter++ {
		candidate = fmt.Sprintf("%s (%d)%s", stem, counter, ext)
	}
	return candidate
}

// fileExists checks whether a regular file exists at the given path.
func fileExists(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !stat.IsDir()
}
