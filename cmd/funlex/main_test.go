// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeModule(t *testing.T, dir, name, src string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := writeModule(t, dir, "Good.fun", "main =\n  1\n")
	bad := writeModule(t, dir, "Bad.fun", "main =\t1\n")
	open := writeModule(t, dir, "Open.fun", "s = \"abc")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "usage", args: nil, wantCode: 2, wantStderr: "Usage: funlex"},
		{name: "dump", args: []string{"-dump", "-verify", good}, wantStdout: "NumericLiteral(\"1\")"},
		{name: "summary", args: []string{"-summary", good}, wantStdout: "Good.fun: 3 lines, 6 lexemes"},
		{name: "failure", args: []string{bad, good}, wantCode: 1, wantStderr: "unexpected tab; expecting end of input"},
		{name: "recovery", args: []string{open}, wantStderr: "warning: unterminated literal"},
		{name: "duplicate module", args: []string{good, good}, wantCode: 1, wantStderr: "duplicate module name"},
		{name: "missing file", args: []string{filepath.Join(dir, "Nope.fun")}, wantCode: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)
			require.Equal(t, tt.wantCode, code, stderr.String())
			require.Contains(t, stdout.String(), tt.wantStdout)
			require.Contains(t, stderr.String(), tt.wantStderr)
		})
	}
}
