package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeFixture(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadJournal_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "main.journal", "2024-01-01 A\n    assets:bank  1 GBP\n    expenses:x  -1 GBP\n")

	ldr := New()
	j, err := ldr.LoadJournal(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, 1, j.Len())
}

func TestLoadJournal_MissingFileIsError(t *testing.T) {
	ldr := New()
	_, err := ldr.LoadJournal(context.Background(), "/does/not/exist.journal")
	assert.Error(t, err)
}

func TestLoadSources_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.journal", "2024-01-01 A\n    assets:bank  1 GBP\n    expenses:x  -1 GBP\n")
	b := writeFixture(t, dir, "b.journal", "2024-02-01 B\n    assets:bank  2 GBP\n    expenses:y  -2 GBP\n")

	ldr := New()
	journals, err := ldr.LoadSources(context.Background(), []string{a, b})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(journals))
	assert.Equal(t, "A", journals[0].Transactions[0].Description)
	assert.Equal(t, "B", journals[1].Transactions[0].Description)
}

func TestLoadSources_OneFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	a := writeFixture(t, dir, "a.journal", "2024-01-01 A\n    assets:bank  1 GBP\n    expenses:x  -1 GBP\n")

	ldr := New()
	_, err := ldr.LoadSources(context.Background(), []string{a, "/does/not/exist.journal"})
	assert.Error(t, err)
}

func TestWriteJournal_AtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.journal")
	assert.NoError(t, os.WriteFile(path, []byte("old contents"), 0644))

	assert.NoError(t, WriteJournal(path, []byte("new contents\n")))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "new contents\n", string(data))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(entries))
}
