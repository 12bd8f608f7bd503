package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_LinkedPair(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	_, err := runCommand(t, dir, "add", "hero-1")
	require.NoError(t, err)

	out, err := runCommand(t, dir, "export", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "index.html")
	assert.Contains(t, out, "style.css")

	html, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	css, err := os.ReadFile(filepath.Join(outDir, "style.css"))
	require.NoError(t, err)

	assert.Contains(t, string(html), `<link rel="stylesheet" href="style.css">`)
	assert.NotContains(t, string(html), "{{")
	assert.Contains(t, string(css), "--primary-color")
}

func TestExportCommand_Standalone(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	_, err := runCommand(t, dir, "add", "hero-1")
	require.NoError(t, err)

	_, err = runCommand(t, dir, "export", "--standalone", "--out", outDir)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(outDir, "page.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<style>")
	assert.NotContains(t, string(page), `<link rel="stylesheet"`)

	_, err = os.Stat(filepath.Join(outDir, "style.css"))
	assert.True(t, os.IsNotExist(err))
}

func TestExportJSONAndImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(t.TempDir(), "page.json")

	_, err := runCommand(t, dir, "add", "hero-1")
	require.NoError(t, err)
	_, err = runCommand(t, dir, "add", "footer-1")
	require.NoError(t, err)

	out, err := runCommand(t, dir, "export-json", "--out", file)
	require.NoError(t, err)
	assert.Contains(t, out, file)

	target := t.TempDir()
	out, err = runCommand(t, target, "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "2 sections")

	ws, err := openWorkspace(&rootFlags{dir: target})
	require.NoError(t, err)
	assert.Len(t, ws.session.Project().Sections, 2)
}

func TestImportCommand_RejectsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"name":"no id"}`), 0o644))

	_, err := runCommand(t, dir, "import", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Pagentum export")
}

func TestVersionCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, dir, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Pagentum "))
	assert.Contains(t, out, "commit:")
}
