package domain

import (
	"context"
	"fmt"
	"log/slog"

	"tp53.dev/pkg/mutcount/internal/adapter"
	m "tp53.dev/pkg/mutcount/internal/model"
)

// Walker enumerates mutation files through four levels of pattern-gated descent:
// timepoint, sample, oligo and classification directories.
type Walker interface {
	MutationFiles(ctx context.Context, root m.Path) ([]m.Path, error)
	Timepoints(ctx context.Context, root m.Path) ([]m.Path, error)
	Samples(ctx context.Context, timepoints []m.Path) ([]m.Path, error)
	Oligos(ctx context.Context, samples []m.Path) ([]m.Path, error)
	ClassDirs(ctx context.Context, oligos []m.Path) ([]m.Path, error)
	Files(ctx context.Context, classDirs []m.Path) ([]m.Path, error)
}

type walker struct {
	adapter.SourceFSAdapter
}

// NewWalker creates a Walker listing directories through fsAdapter.
func NewWalker(fsAdapter adapter.SourceFSAdapter) Walker {
	return &walker{SourceFSAdapter: fsAdapter}
}

// MutationFiles returns every mutation file reachable from root.
func (w *walker) MutationFiles(ctx context.Context, root m.Path) ([]m.Path, error) {
	timepoints, err := w.Timepoints(ctx, root)
	if err != nil {
		return nil, err
	}

	samples, err := w.Samples(ctx, timepoints)
	if err != nil {
		return nil, err
	}

	oligos, err := w.Oligos(ctx, samples)
	if err != nil {
		return nil, err
	}

	classDirs, err := w.ClassDirs(ctx, oligos)
	if err != nil {
		return nil, err
	}

	files, err := w.Files(ctx, classDirs)
	if err != nil {
		return nil, err
	}

	slog.Debug("Walk finished",
		"root", root,
		"timepoints", len(timepoints),
		"samples", len(samples),
		"oligos", len(oligos),
		"class_dirs", len(classDirs),
		"files", len(files),
	)

	return files, nil
}

func (w *walker) Timepoints(ctx context.Context, root m.Path) ([]m.Path, error) {
	return w.descend(ctx, m.LevelTimepoint, []m.Path{root})
}

func (w *walker) Samples(ctx context.Context, timepoints []m.Path) ([]m.Path, error) {
	return w.descend(ctx, m.LevelSample, timepoints)
}

func (w *walker) Oligos(ctx context.Context, samples []m.Path) ([]m.Path, error) {
	return w.descend(ctx, m.LevelOligo, samples)
}

// ClassDirs keeps the DELETERIOUS and NON-DELETERIOUS children that exist.
func (w *walker) ClassDirs(ctx context.Context, oligos []m.Path) ([]m.Path, error) {
	var classDirs []m.Path

	for _, oligo := range oligos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, class := range m.MutationClasses() {
			candidate := w.JoinPath(string(oligo), string(class))

			exists, err := w.Exists(candidate)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", candidate, err)
			}

			if exists {
				classDirs = append(classDirs, candidate)
			}
		}
	}

	return classDirs, nil
}

func (w *walker) Files(ctx context.Context, classDirs []m.Path) ([]m.Path, error) {
	return w.descend(ctx, m.LevelMutationFile, classDirs)
}

// descend lists each parent and keeps the children accepted at level. Parents
// are handled independently; an unreadable parent aborts the walk.
func (w *walker) descend(ctx context.Context, level m.Level, parents []m.Path) ([]m.Path, error) {
	var children []m.Path

	for _, parent := range parents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		names, err := w.ReadDir(parent)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", parent, err)
		}

		accepted := FilterNames(level, names)
		if skipped := len(names) - len(accepted); skipped > 0 {
			slog.Debug("Skipped entries not matching grammar", "level", level.String(), "parent", parent, "skipped", skipped)
		}

		for _, name := range accepted {
			children = append(children, w.JoinPath(string(parent), name))
		}
	}

	return children, nil
}
