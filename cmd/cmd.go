// Package cmd wires the bulkget command-line interface: batch
// downloads, URL status checks, link harvesting, and transfer history.
package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/bulkget/bulkget/cmd/common"
)

// BuildArgs carries build-time metadata injected through -ldflags.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

// Execute runs the CLI with the given process arguments.
func Execute(args []string, bArgs BuildArgs) error {
	if bArgs.Version == "" {
		bArgs.Version = "dev"
	}
	if bArgs.BuildType == "" {
		bArgs.BuildType = "unclassified"
	}
	common.VersionCmdStr = fmt.Sprintf(
		"bulkget %s-%s (%s/%s)\nbuilt %s commit %s",
		bArgs.Version, bArgs.BuildType,
		runtime.GOOS, runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)

	app := cli.App{
		Name:                  "bulkget",
		HelpName:              "bulkget",
		Usage:                 "A concurrent bulk URL downloader.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "bulkget <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "get",
				Aliases:                []string{"g"},
				Usage:                  "download one or more urls concurrently",
				Action:                 get,
				Flags:                  getFlags,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            GetDescription,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "status",
				Aliases:                []string{"s"},
				Usage:                  "check the http status of urls",
				Action:                 status,
				Flags:                  statusFlags,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            StatusDescription,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "links",
				Aliases:                []string{"k"},
				Usage:                  "harvest links from an html page",
				Action:                 links,
				Flags:                  linksFlags,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            LinksDescription,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "history",
				Aliases:                []string{"l"},
				Usage:                  "display transfer history",
				Action:                 historyList,
				Flags:                  historyFlags,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            HistoryDescription,
				UseShortOptionHandling: true,
			},
			{
				Name:               "flush",
				Aliases:            []string{"c"},
				Usage:              "clear the transfer history",
				Action:             historyFlush,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        FlushDescription,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints the installed version of bulkget",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 get,
		Flags:                  getFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	return app.Run(args)
}
