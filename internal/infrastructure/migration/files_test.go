package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePair(t *testing.T) {
	dir := t.TempDir()

	p, err := CreatePair(dir, "Create Tickets Table")
	require.NoError(t, err)

	assert.Len(t, p.Version, 14)
	assert.True(t, strings.HasSuffix(p.UpPath, "_create_tickets_table.up.sql"))
	assert.True(t, strings.HasSuffix(p.DownPath, "_create_tickets_table.down.sql"))

	up, err := os.ReadFile(p.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "Create Tickets Table")

	_, err = os.Stat(p.DownPath)
	require.NoError(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()

	names, err := List(dir)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, f := range []string{
		"001_create_tickets.up.sql",
		"001_create_tickets.down.sql",
		"002_create_printers.up.sql",
		"002_create_printers.down.sql",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("--"), 0o644))
	}

	names, err = List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_tickets", "002_create_printers"}, names)
}

func TestListMissingDir(t *testing.T) {
	names, err := List(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "add_printed_flag", slug("Add  Printed-Flag "))
	assert.Equal(t, "v2_schema", slug("V2 Schema"))
}
