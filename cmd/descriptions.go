package cmd

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`

const DESCRIPTION = `
Bulkget fetches lists of urls to local storage with a bounded number
of parallel transfers, retrying transient network failures and
reporting per-url success or failure plus an aggregate summary.
`

const GetDescription = `The get command downloads every url given as an argument, plus any
urls read from an input file (-i), into the output directory. At most
--concurrency transfers run at once; connection errors and timeouts
are retried with linear backoff, while http errors fail immediately.
The process exits non-zero when any download failed.`

const StatusDescription = `The status command probes every url concurrently with a single GET
and reports its http status code, grouped into 2xx/3xx/4xx/5xx and
connection-error buckets.`

const LinksDescription = `The links command fetches an html page, extracts the http(s) targets
of a[href] and img/script/source[src] attributes resolved against the
page url, and prints them one per line. With --download the harvested
links are fed straight into the batch downloader.`

const HistoryDescription = `The history command lists finished transfers recorded by previous
runs, most recent first.`

const FlushDescription = `The flush command deletes all recorded transfer history.`
