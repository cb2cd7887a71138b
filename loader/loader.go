// Package loader reads journal files from disk and writes them back. It
// knows nothing about merge/rules semantics — it is the thin I/O layer the
// CLI commands share, following the teacher's loader/parser split.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledgerkit/ledgerkit/ast"
	"github.com/ledgerkit/ledgerkit/parser"
	"github.com/ledgerkit/ledgerkit/telemetry"
	"golang.org/x/sync/errgroup"
)

// Loader reads journal files, instrumenting each read with telemetry when a
// collector is present in the context.
type Loader struct{}

// New creates a Loader.
func New() *Loader {
	return &Loader{}
}

// LoadJournal reads and parses a single journal file.
func (l *Loader) LoadJournal(ctx context.Context, filename string) (*ast.Journal, error) {
	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("loader.parse %s", filepath.Base(filename)))
	defer timer.End()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	j, err := parser.Parse(data, filename)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// LoadSources reads multiple source journals concurrently (§5: the merge
// command's only I/O parallelism), preserving input order in the returned
// slice regardless of completion order.
func (l *Loader) LoadSources(ctx context.Context, filenames []string) ([]*ast.Journal, error) {
	timer := telemetry.FromContext(ctx).Start("loader.load sources")
	defer timer.End()

	journals := make([]*ast.Journal, len(filenames))

	g, gctx := errgroup.WithContext(ctx)
	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			j, err := l.LoadJournal(gctx, filename)
			if err != nil {
				return err
			}
			journals[i] = j
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return journals, nil
}

// WriteJournal writes an already rendered journal to filename, via a temp file in the
// same directory followed by an atomic rename (§5: the only write path, no
// concurrent multi-writer support — a half-written journal file is worse
// than a failed write, so the rename either fully replaces the destination
// or the original is left untouched).
func WriteJournal(filename string, rendered []byte) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, ".ledgerkit-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(rendered); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to rename %s to %s: %w", tmpName, filename, err)
	}
	return nil
}
