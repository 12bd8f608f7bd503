package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_Empty(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no sections yet")
}

func TestListCommand_Table(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, dir, "add", "hero-1")
	require.NoError(t, err)
	_, err = runCommand(t, dir, "add", "footer-1")
	require.NoError(t, err)

	out, err := runCommand(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "POS")
	assert.Contains(t, out, "hero-1")
	assert.Contains(t, out, "Footer")
	assert.Contains(t, out, "Untitled Page")
}

func TestListCommand_JSON(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, dir, "add", "hero-1")
	require.NoError(t, err)

	out, err := runCommand(t, dir, "list", "--json")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, "hero-1", entries[0].TemplateID)
	assert.NotEmpty(t, entries[0].ID)
}

func TestTemplatesCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, dir, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "hero-1")
	assert.Contains(t, out, "product-carousel")
	assert.Contains(t, out, "CATEGORY")
}

func TestTemplatesCommand_CategoryFilter(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, dir, "templates", "--category", "hero")
	require.NoError(t, err)
	assert.Contains(t, out, "hero-1")
	assert.Contains(t, out, "hero-2")
	assert.NotContains(t, out, "footer-1")
}

func TestTemplatesCommand_UnknownCategory(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, dir, "templates", "--category", "widgets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widgets")
}

func TestThemeCommand_ListAndSet(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, dir, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Clean")
	assert.Contains(t, out, "(current)")

	out, err = runCommand(t, dir, "theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied theme Dark")

	ws, err := openWorkspace(&rootFlags{dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "Dark", ws.session.Project().Theme.Name)
}

func TestThemeCommand_Unknown(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, dir, "theme", "neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neon")
}
