package main

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with the given args against a project directory.
func runCommand(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append(args, "--dir", dir))
	err := cmd.Execute()
	return buf.String(), err
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}
