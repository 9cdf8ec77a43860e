// Command fin keeps a personal ledger of income and expenses.
//
// Without a subcommand it runs the interactive menu. An unknown subcommand
// <name> runs the fin-<name> executable found in PATH, if any.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/finance/cmd"
	"github.com/etnz/finance/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Exits if the shell is asking for completions.
	completion(commander).Complete("fin")

	flag.Parse()
	if err := cmd.Configure(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	if flag.NArg() == 0 {
		// Flags already parsed keep their value.
		flag.CommandLine.Parse([]string{"menu"})
	}

	if name := flag.Arg(0); !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	ledgerFiles := predict.Files("*.txt")
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"ledger-file": ledgerFiles,
			"currency":    predict.Set{"UAH", "USD", "EUR", "GBP"},
			"config":      predict.Files("*.yaml"),
			"v":           predict.Nothing,
		},
	}

	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predict.Something
		})
		root.Sub[c.Name()] = sub
	})

	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	return root
}
