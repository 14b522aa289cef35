package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &outBuf, &errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCLI(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "html5kit version")
}

func TestMissingInput(t *testing.T) {
	_, _, err := runCLI(t, "")
	require.Error(t, err)
}

func TestParseFile(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := filepath.Join(tmpDir, "test.html")
	htmlContent := `<!DOCTYPE html><html><head><title>Test</title></head><body><p>Hello</p></body></html>`
	require.NoError(t, os.WriteFile(htmlFile, []byte(htmlContent), 0o600))

	out, _, err := runCLI(t, "", htmlFile)
	require.NoError(t, err)
	assert.Contains(t, out, "<html>")
	assert.Contains(t, out, "<title>")
}

func TestSelectorAndTextFormat(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := filepath.Join(tmpDir, "test.html")
	htmlContent := `<html><body><h1>Title</h1><p>One</p><p>Two</p></body></html>`
	require.NoError(t, os.WriteFile(htmlFile, []byte(htmlContent), 0o600))

	out, _, err := runCLI(t, "", "-s", "p", "-f", "text", htmlFile)
	require.NoError(t, err)
	assert.Contains(t, out, "One")
	assert.Contains(t, out, "Two")
}

func TestStdinInput(t *testing.T) {
	out, _, err := runCLI(t, "<p>piped</p>", "-s", "p", "-f", "text", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "piped")
}

func TestInvalidFormat(t *testing.T) {
	tmpDir := t.TempDir()
	htmlFile := filepath.Join(tmpDir, "test.html")
	require.NoError(t, os.WriteFile(htmlFile, []byte("<p>x</p>"), 0o600))

	_, _, err := runCLI(t, "", "-f", "yaml", htmlFile)
	require.Error(t, err)
}
