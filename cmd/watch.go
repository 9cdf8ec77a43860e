package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
	"github.com/fsnotify/fsnotify"
	"github.com/google/subcommands"
)

type watchCmd struct {
	debounce time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "show the balance each time the ledger file changes" }
func (*watchCmd) Usage() string {
	return `fin watch [-debounce <duration>]

  Shows the balance, then shows it again each time the ledger file is
  written, for instance by another fin process. Stops on Ctrl+C.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.debounce, "debounce", 250*time.Millisecond, "Quiet time after a change before the ledger is read again")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := watchLedger(ctx, *ledgerFile, *currency, c.debounce, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// watchLedger prints the balance of the ledger at path to w, and prints it
// again after each change of the file, until ctx is done.
//
// The directory is watched rather than the file, so that the file can be
// created or replaced.
func watchLedger(ctx context.Context, path, currency string, debounce time.Duration, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("could not watch %q: %w", dir, err)
	}
	log.Debug("watching ledger", "path", path)

	show := func() {
		ledger, err := finance.OpenLedger(path, currency)
		if err != nil {
			log.Warn("ledger could not be fully loaded", "err", err)
		}
		fmt.Fprint(w, renderer.Balance(ledger.BalanceMoney()))
	}
	show()

	name := filepath.Clean(path)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			show()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		}
	}
}
