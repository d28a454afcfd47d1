package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"tp53.dev/pkg/mutcount/internal/adapter"
	"tp53.dev/pkg/mutcount/internal/controller"
	m "tp53.dev/pkg/mutcount/internal/model"
)

// CountArgs contains the arguments for building a count report.
type CountArgs struct {
	Root    m.Path
	Output  m.Path
	GroupBy []m.GroupField
	Threads int
	// Summary, when set, is where the YAML run summary is saved.
	Summary m.Path
}

// ListArgs contains the arguments for listing mutation files.
type ListArgs struct {
	Root m.Path
}

// ViewArgs names previously written outputs to show. Either may be empty.
type ViewArgs struct {
	Output  m.Path
	Summary m.Path
}

// Workflow defines the commands the CLI drives.
type Workflow interface {
	Count(ctx context.Context, args CountArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	Walker
	RecordParser
	adapter.TableStore
	adapter.SummaryStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	walker Walker,
	parser RecordParser,
	tableStore adapter.TableStore,
	summaryStore adapter.SummaryStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		Walker:       walker,
		RecordParser: parser,
		TableStore:   tableStore,
		SummaryStore: summaryStore,
		UI:           ui,
	}
}

// Count walks args.Root, parses every mutation file, aggregates the records and
// writes the table to args.Output. Nothing is written unless every file parses.
func (w *workflow) Count(ctx context.Context, args CountArgs) error {
	files, err := w.MutationFiles(ctx, args.Root)
	if err != nil {
		slog.Error("Failed to walk directory", "root", args.Root, "error", err)
		return fmt.Errorf("walk %s: %w", args.Root, err)
	}

	slog.Info("Discovered mutation files", "root", args.Root, "count", len(files))

	parsed, err := w.parseAll(ctx, files, args.Threads)
	if err != nil {
		slog.Error("Failed to parse mutation files", "error", err)
		return err
	}

	sets := make([][]m.MutationRecord, 0, len(parsed))
	for _, result := range parsed {
		sets = append(sets, result.Records)
	}

	table, err := Aggregate(sets, args.GroupBy)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", args.Root, err)
	}

	if err := w.WriteTable(ctx, args.Output, table); err != nil {
		slog.Error("Failed to write table", "output", args.Output, "error", err)
		return fmt.Errorf("write table: %w", err)
	}

	summary := summarize(args, parsed, table)
	slog.Info("Wrote count table", "output", args.Output, "rows", summary.Rows, "total", summary.Total)

	if args.Summary != "" {
		if err := w.SaveSummary(args.Summary, summary); err != nil {
			return fmt.Errorf("save summary: %w", err)
		}
	}

	if err := w.DisplaySummary(ctx, summary); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// List shows the mutation files under args.Root with their path metadata.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	paths, err := w.MutationFiles(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("walk %s: %w", args.Root, err)
	}

	files := make([]m.MutationFile, 0, len(paths))

	for _, path := range paths {
		meta, err := ExtractMetadata(path)
		if err != nil {
			return err
		}

		files = append(files, m.MutationFile{Path: path, Metadata: meta})
	}

	if err := w.DisplayFiles(ctx, files); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View displays a count table and/or a run summary written by earlier runs.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if args.Output != "" {
		header, rows, err := w.ReadTable(ctx, args.Output)
		if err != nil {
			return fmt.Errorf("read table: %w", err)
		}

		slog.Debug("Loaded count table", "output", args.Output, "rows", len(rows))

		if err := w.DisplayTable(ctx, header, rows); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	if args.Summary != "" {
		summary, err := w.LoadSummary(args.Summary)
		if err != nil {
			return fmt.Errorf("load summary: %w", err)
		}

		if err := w.DisplaySummary(ctx, summary); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	return nil
}

// parseAll parses files with at most threads workers. Results keep the order of
// files, so aggregation input is the same whatever the worker count.
func (w *workflow) parseAll(ctx context.Context, files []m.Path, threads int) ([]FileRecords, error) {
	if threads <= 0 {
		threads = 1
	}

	results := make([]FileRecords, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, path := range files {
		index, currentPath := i, path

		group.Go(func() error {
			result, err := w.ParseFile(groupCtx, currentPath)
			if err != nil {
				return err
			}

			slog.Debug("Parsed mutation file", "path", currentPath, "records", len(result.Records), "dropped", result.Stats.Dropped)
			results[index] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func summarize(args CountArgs, parsed []FileRecords, table m.Table) m.Summary {
	summary := m.Summary{
		Root:    args.Root,
		Output:  args.Output,
		GroupBy: table.Fields,
		Files:   len(parsed),
		Rows:    len(table.Rows),
		Total:   table.Total(),
	}

	for _, result := range parsed {
		summary.Records += len(result.Records)
		summary.Dropped += result.Stats.Dropped
		summary.Mismatched += result.Stats.Mismatched
	}

	return summary
}
