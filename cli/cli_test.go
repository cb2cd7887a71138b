package cli

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseStdin_ParsesJournal(t *testing.T) {
	j, err := parseStdin([]byte("2024-01-01 A\n    assets:bank  1 GBP\n    expenses:x  -1 GBP\n"))
	assert.NoError(t, err)
	assert.Equal(t, 1, j.Len())
}

func TestFileOrStdin_GetAbsoluteFilename_Stdin(t *testing.T) {
	f := &FileOrStdin{Filename: "<stdin>"}
	assert.Equal(t, "<stdin>", f.GetAbsoluteFilename())
}
