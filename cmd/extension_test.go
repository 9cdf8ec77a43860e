package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// fin-hello prints the environment it receives.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvLedgerFile, EnvLedgerFile, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "fin-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write fin-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("Failed to compile fin-hello: %v\n%s", err, out)
	}

	finBinaryPath := filepath.Join(tempDir, "fin")
	build = exec.Command("go", "build", "-o", finBinaryPath, "../fin")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("Failed to compile fin binary: %v\n%s", err, out)
	}

	expectedLedgerFile := filepath.Join(tempDir, "random_ledger.txt")
	args := []string{
		"-ledger-file", expectedLedgerFile,
		"-currency", "xyz",
		"-v",
		"hello", "world",
	}

	finCmd := exec.Command(finBinaryPath, args...)
	finCmd.Dir = tempDir
	finCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	finCmd.Stdout = &stdout
	finCmd.Stderr = &stderr

	if err := finCmd.Run(); err != nil {
		t.Fatalf("fin command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvLedgerFile + "=" + expectedLedgerFile,
		EnvCurrency + "=XYZ",
		EnvVerbose + "=true",
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}
