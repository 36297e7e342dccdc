package cmd

import (
	"github.com/urfave/cli"

	"github.com/bulkget/bulkget/pkg/fetchlib"
)

var (
	concurrency  int
	timeoutMs    int
	maxRetries   int
	retryDelayMs int
	maxRedirects int
	outputDir    string
	inputFile    string
	proxyURL     string
	userAgent    string
	logFile      string
	quiet        bool
	noHistory    bool
	download     bool
	historyLimit int
)

var getFlags = []cli.Flag{
	cli.IntFlag{
		Name:        "concurrency, x",
		Usage:       "maximum number of simultaneous downloads",
		EnvVar:      "BULKGET_CONCURRENCY",
		Destination: &concurrency,
		Value:       fetchlib.DEF_CONCURRENCY,
	},
	cli.IntFlag{
		Name:        "timeout, t",
		Usage:       "per-attempt timeout in milliseconds",
		EnvVar:      "BULKGET_TIMEOUT",
		Destination: &timeoutMs,
		Value:       30000,
	},
	cli.IntFlag{
		Name:        "max-retries, r",
		Usage:       "maximum attempts per url for transient failures",
		EnvVar:      "BULKGET_MAX_RETRIES",
		Destination: &maxRetries,
		Value:       fetchlib.DEF_MAX_RETRIES,
	},
	cli.IntFlag{
		Name:        "retry-delay",
		Usage:       "base retry delay in milliseconds (linear backoff)",
		EnvVar:      "BULKGET_RETRY_DELAY",
		Destination: &retryDelayMs,
		Value:       500,
	},
	cli.IntFlag{
		Name:        "max-redirects",
		Usage:       "redirect hops followed per attempt (-1 for unlimited)",
		Destination: &maxRedirects,
		Value:       fetchlib.DefaultMaxRedirects,
	},
	cli.StringFlag{
		Name:        "output-dir, l",
		Usage:       "directory where downloaded files are saved",
		EnvVar:      "BULKGET_OUTPUT_DIR",
		Destination: &outputDir,
		Value:       ".",
	},
	cli.StringFlag{
		Name:        "input-file, i",
		Usage:       "file with one url per line (# starts a comment)",
		Destination: &inputFile,
	},
	cli.StringFlag{
		Name:        "proxy",
		Usage:       "proxy url (http, https or socks5)",
		EnvVar:      "BULKGET_PROXY",
		Destination: &proxyURL,
	},
	cli.StringFlag{
		Name:        "user-agent, U",
		Usage:       "override the User-Agent header",
		EnvVar:      "BULKGET_USER_AGENT",
		Destination: &userAgent,
	},
	cli.StringFlag{
		Name:        "log-file",
		Usage:       "append run logs to this file as well as the console",
		Destination: &logFile,
	},
	cli.BoolFlag{
		Name:        "quiet, q",
		Usage:       "suppress progress bars and per-url logging",
		Destination: &quiet,
	},
	cli.BoolFlag{
		Name:        "no-history",
		Usage:       "skip recording outcomes in the transfer history",
		Destination: &noHistory,
	},
}

var statusFlags = []cli.Flag{
	cli.IntFlag{
		Name:        "concurrency, x",
		Usage:       "maximum number of simultaneous probes",
		EnvVar:      "BULKGET_CONCURRENCY",
		Destination: &concurrency,
		Value:       fetchlib.DEF_CONCURRENCY,
	},
	cli.IntFlag{
		Name:        "timeout, t",
		Usage:       "per-probe timeout in milliseconds",
		EnvVar:      "BULKGET_TIMEOUT",
		Destination: &timeoutMs,
		Value:       10000,
	},
	cli.StringFlag{
		Name:        "input-file, i",
		Usage:       "file with one url per line (# starts a comment)",
		Destination: &inputFile,
	},
	cli.StringFlag{
		Name:        "proxy",
		Usage:       "proxy url (http, https or socks5)",
		EnvVar:      "BULKGET_PROXY",
		Destination: &proxyURL,
	},
}

var linksFlags = append([]cli.Flag{
	cli.BoolFlag{
		Name:        "download, d",
		Usage:       "download every harvested link",
		Destination: &download,
	},
}, getFlags...)

var historyFlags = []cli.Flag{
	cli.IntFlag{
		Name:        "limit, n",
		Usage:       "show at most this many entries (0 shows all)",
		Destination: &historyLimit,
		Value:       25,
	},
}
