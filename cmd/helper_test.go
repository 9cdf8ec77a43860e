package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// useLedger points the global flags to a temporary ledger file holding
// content, and returns its path. An empty content means no file.
func useLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write ledger: %v", err)
		}
	}

	oldLedgerFile, oldCurrency := ledgerFile, currency
	cur := "USD"
	ledgerFile, currency = &path, &cur
	t.Cleanup(func() { ledgerFile, currency = oldLedgerFile, oldCurrency })
	return path
}

// run executes c with args and returns its exit status and standard output.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse %v: %v", args, err)
	}

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	done := make(chan string)
	go func() {
		var b bytes.Buffer
		io.Copy(&b, r)
		done <- b.String()
	}()

	status := c.Execute(context.Background(), f)
	w.Close()
	return status, <-done
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}
