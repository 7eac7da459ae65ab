package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const digitsConfig = `current-charset: digits
charsets:
  - name: digits
    char1: "1"
    char2: "2"
    char3: "3"
    separator: "|"
  - name: dolls
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags clears persistent flag state between invocations; flag
// values are globals and would otherwise leak across test cases.
func resetFlags() {
	cfgFile = ""
	charsetOverride = ""
	char1Flag = ""
	char2Flag = ""
	char3Flag = ""
	separatorFlag = ""
	outputFlag = "default"
	templateFlag = false
}

func runCmd(t *testing.T, in io.Reader, args ...string) string {
	t.Helper()
	resetFlags()

	b := bytes.NewBufferString("")

	rootCmd.SetArgs(args)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetIn(in)

	err := rootCmd.Execute()
	if err != nil {
		// Get the output to see what went wrong
		bs, _ := io.ReadAll(b)
		t.Logf("Command failed: %v\nArgs: %v\nOutput: %s", err, args, string(bs))
		t.FailNow()
	}

	bs, err := io.ReadAll(b)
	require.NoError(t, err)

	return string(bs)
}

// runCmdWithConfig runs a dollcode command against the given config file
func runCmdWithConfig(t *testing.T, cfgPath string, in io.Reader, args ...string) string {
	args = append([]string{"--config", cfgPath}, args...)
	return runCmd(t, in, args...)
}
