package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/bulkget/bulkget/cmd/common"
	"github.com/bulkget/bulkget/internal/history"
	"github.com/bulkget/bulkget/pkg/fetchlib"
)

// ConfigDirEnv overrides the directory holding the history database.
const ConfigDirEnv = "BULKGET_CONFIG_DIR"

// configDir resolves the bulkget configuration directory, creating it
// when missing.
func configDir() (string, error) {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "bulkget")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func openHistory() (*history.Store, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return history.Open(filepath.Join(dir, "history.db"))
}

// recordHistory persists every outcome of a finished run.
func recordHistory(res *fetchlib.AggregateResult) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()
	return store.RecordResult(res)
}

// historyList prints recorded transfers, most recent first.
func historyList(ctx *cli.Context) error {
	store, err := openHistory()
	if err != nil {
		common.PrintRuntimeErr(ctx, "history", "open", err)
		return cli.NewExitError("", 1)
	}
	defer store.Close()

	entries, err := store.List(historyLimit)
	if err != nil {
		common.PrintRuntimeErr(ctx, "history", "list", err)
		return cli.NewExitError("", 1)
	}
	if len(entries) == 0 {
		fmt.Println("no transfers recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tSTATUS\tSIZE\tURL\tDETAIL")
	for _, e := range entries {
		detail := e.Path
		if e.Status == history.StatusFailed {
			detail = e.Reason
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Status,
			fetchlib.ContentLength(e.Bytes),
			e.URL,
			detail,
		)
	}
	return w.Flush()
}

// historyFlush clears the transfer history.
func historyFlush(ctx *cli.Context) error {
	store, err := openHistory()
	if err != nil {
		common.PrintRuntimeErr(ctx, "flush", "open", err)
		return cli.NewExitError("", 1)
	}
	defer store.Close()

	n, err := store.Flush()
	if err != nil {
		common.PrintRuntimeErr(ctx, "flush", "delete", err)
		return cli.NewExitError("", 1)
	}
	fmt.Printf("flushed %d transfers\n", n)
	return nil
}
