package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, fn func() error) (stdout string, err error) {
	t.Helper()
	oldOut := os.Stdout
	defer func() { os.Stdout = oldOut }()

	outR, outW, _ := os.Pipe()
	os.Stdout = outW

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() { io.Copy(&buf, outR); close(done) }()

	err = fn()
	outW.Close()
	<-done
	return buf.String(), err
}

func writeSchemaFile(t *testing.T, sdl string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.graphql")
	require.NoError(t, os.WriteFile(path, []byte(sdl), 0644))
	return path
}

const testSDL = `directive @role(name: String = "guest") on OBJECT | FIELD_DEFINITION

type Query @role(name: "admin") {
  me: Person @role
}

type Person {
  name: String
}
`

func TestHelp(t *testing.T) {
	out, err := captureOutput(t, func() error {
		return run([]string{"help", "fmt"})
	})
	require.NoError(t, err)
	require.Contains(t, out, "fmt FLAGS")
}

func TestUnknownCommand(t *testing.T) {
	err := run([]string{"frobnicate"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command")
}

func TestFmt(t *testing.T) {
	path := writeSchemaFile(t, testSDL)
	out, err := captureOutput(t, func() error {
		return run([]string{"fmt", "-schema", path})
	})
	require.NoError(t, err)
	require.Contains(t, out, "type Query @role(name: \"admin\") {")
	require.Contains(t, out, "directive @role(name: String = \"guest\") on OBJECT | FIELD_DEFINITION")
}

func TestFmtOutFile(t *testing.T) {
	path := writeSchemaFile(t, testSDL)
	outFile := filepath.Join(t.TempDir(), "out.graphql")
	_, err := captureOutput(t, func() error {
		return run([]string{"fmt", "-schema", path, "-out", outFile})
	})
	require.NoError(t, err)
	rendered, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(rendered), "type Person {")
}

func TestDirectives(t *testing.T) {
	path := writeSchemaFile(t, testSDL)
	out, err := captureOutput(t, func() error {
		return run([]string{"directives", "-schema", path})
	})
	require.NoError(t, err)
	require.Contains(t, out, "OBJECT")
	require.Contains(t, out, "@role")
	require.Contains(t, out, "Query.me")
	// Defaults merge into bare uses.
	require.Contains(t, out, `{name: "guest"}`)
}
