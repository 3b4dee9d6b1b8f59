package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, fn func() error) (stdout, stderr string, err error) {
	t.Helper()
	oldOut, oldErr := os.Stdout, os.Stderr
	defer func() {
		os.Stdout, os.Stderr = oldOut, oldErr
	}()

	outR, outW, _ := os.Pipe()
	errR, errW, _ := os.Pipe()
	os.Stdout, os.Stderr = outW, errW

	doneOut := make(chan struct{})
	var bufOut bytes.Buffer
	go func() { io.Copy(&bufOut, outR); close(doneOut) }()

	doneErr := make(chan struct{})
	var bufErr bytes.Buffer
	go func() { io.Copy(&bufErr, errR); close(doneErr) }()

	err = fn()
	outW.Close()
	errW.Close()
	<-doneOut
	<-doneErr
	stdout, stderr = bufOut.String(), bufErr.String()
	return
}

const testSchema = `{
  "objects": {
    "Query": {
      "name": "Query",
      "fields": [
        {"name": "users", "kind": "object", "type": "User", "isList": true, "args": [
          {"name": "limit", "types": [{"kind": "scalar", "scalar": "Int"}]}
        ]}
      ]
    },
    "User": {
      "name": "User",
      "fields": [
        {"name": "id", "kind": "scalar", "type": "Int"},
        {"name": "name", "kind": "scalar", "type": "String"}
      ]
    }
  },
  "inputs": {}
}`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestHelp(t *testing.T) {
	out, _, err := captureOutput(t, func() error {
		return run([]string{"help"})
	})
	require.NoError(t, err)
	require.Contains(t, out, "compile FLAGS")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := captureOutput(t, func() error {
		return run([]string{"bogus"})
	})
	require.Error(t, err)
}

func TestCompileCommand(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	selectionPath := writeFile(t, dir, "selection.json",
		`{"limit": 10, "select": {"id": true, "name": true}}`)

	out, _, err := captureOutput(t, func() error {
		return run([]string{"compile",
			"-schema", schemaPath,
			"-selection", selectionPath,
			"-root", "users",
			"-model", "User",
		})
	})
	require.NoError(t, err)
	require.Contains(t, out, "users(")
	require.Contains(t, out, "limit:")
	require.Contains(t, out, "id")
	require.Contains(t, out, "name")
}

func TestCompileCommandInvalidSelection(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	selectionPath := writeFile(t, dir, "selection.json",
		`{"limit": "ten", "select": {"id": true}}`)

	out, errOut, err := captureOutput(t, func() error {
		return run([]string{"compile",
			"-schema", schemaPath,
			"-selection", selectionPath,
			"-root", "users",
			"-model", "User",
		})
	})
	// Validation failure surfaces as an error so main can choose the exit
	// status; the process must stay alive through the diagnostics.
	require.ErrorIs(t, err, errInvalidSelection)
	require.Empty(t, out)
	require.Contains(t, errOut, "limit")
}

func TestCompileMissingFlags(t *testing.T) {
	_, _, err := captureOutput(t, func() error {
		return run([]string{"compile"})
	})
	require.Error(t, err)
}
