package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	m "tp53.dev/pkg/mutcount/internal/model"
)

// TableStore persists aggregated tables.
type TableStore interface {
	// WriteTable writes table as tab-separated text with a header row.
	WriteTable(ctx context.Context, path m.Path, table m.Table) error
	// ReadTable reads a table written by WriteTable back as raw fields.
	ReadTable(ctx context.Context, path m.Path) (header []string, rows [][]string, err error)
}

type tsvTableStore struct {
	encode func(w io.Writer, table m.Table) error
}

// NewTableStore returns a TableStore writing through grailbio's file package,
// which creates local files atomically on Close.
func NewTableStore() TableStore {
	return &tsvTableStore{encode: EncodeTable}
}

// WriteTable publishes path only once the whole table is encoded. On failure
// the file is discarded and path is left untouched.
func (s *tsvTableStore) WriteTable(ctx context.Context, path m.Path, table m.Table) error {
	out, err := file.Create(ctx, string(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := s.encode(out.Writer(ctx), table); err != nil {
		out.Discard(ctx)
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := out.Close(ctx); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func (s *tsvTableStore) ReadTable(ctx context.Context, path m.Path) ([]string, [][]string, error) {
	in, err := file.Open(ctx, string(path))
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() { _ = in.Close(ctx) }()

	header, rows, err := DecodeTable(in.Reader(ctx))
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	return header, rows, nil
}

// EncodeTable writes the header and rows of table to w.
func EncodeTable(w io.Writer, table m.Table) error {
	out := tsv.NewWriter(w)

	for _, column := range table.Header() {
		out.WriteString(column)
	}

	if err := out.EndLine(); err != nil {
		return err
	}

	for _, row := range table.Rows {
		out.WriteString(row.Key.Chromosome)
		out.WriteInt64(int64(row.Key.Position))
		out.WriteString(row.Key.Ref)
		out.WriteString(row.Key.Alt)

		for _, field := range table.Fields {
			out.WriteString(row.Key.Value(field))
		}

		out.WriteInt64(int64(row.Count))

		if err := out.EndLine(); err != nil {
			return err
		}
	}

	return out.Flush()
}

// DecodeTable reads a header row and data rows from r. The column set varies
// with the grouping, so rows are returned as raw fields.
func DecodeTable(r io.Reader) ([]string, [][]string, error) {
	reader := tsv.NewReader(r)
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("missing header row")
	}

	return records[0], records[1:], nil
}
