package domain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/grailbio/base/tsv"
	"tp53.dev/pkg/mutcount/internal/adapter"
	m "tp53.dev/pkg/mutcount/internal/model"
)

// ErrMalformedRecord reports a mutation file row whose content cannot be parsed.
var ErrMalformedRecord = errors.New("malformed mutation record")

// BarcodeTerm marks control rows that are not mutation calls.
const BarcodeTerm = "BARCODE"

// Columns every mutation file must carry.
const (
	variantColumn = "Variant"
	termColumn    = "Erica_term"
)

// Genomic positions are 1-based and written without sign or padding.
var positionExpr = regexp.MustCompile(`^[1-9][0-9]*$`)

// mutationRow is the subset of mutation file columns the pipeline reads.
type mutationRow struct {
	Variant string `tsv:"Variant"`
	Term    string `tsv:"Erica_term"`
}

// ParseStats counts what happened to the rows of one file.
type ParseStats struct {
	Rows       int
	Dropped    int
	Mismatched int
}

// FileRecords is the parsed content of one mutation file.
type FileRecords struct {
	File    m.MutationFile
	Records []m.MutationRecord
	Stats   ParseStats
}

// RecordParser turns a mutation file into normalized records.
type RecordParser interface {
	ParseFile(ctx context.Context, path m.Path) (FileRecords, error)
}

type recordParser struct {
	adapter.SourceFSAdapter
}

// NewRecordParser creates a RecordParser reading files through fsAdapter.
func NewRecordParser(fsAdapter adapter.SourceFSAdapter) RecordParser {
	return &recordParser{SourceFSAdapter: fsAdapter}
}

// ParseFile extracts the path metadata of path and parses its rows.
func (p *recordParser) ParseFile(ctx context.Context, path m.Path) (FileRecords, error) {
	var result FileRecords

	if err := ctx.Err(); err != nil {
		return result, err
	}

	meta, err := ExtractMetadata(path)
	if err != nil {
		return result, err
	}

	in, err := p.Open(path)
	if err != nil {
		return result, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		if closeErr := in.Close(); closeErr != nil {
			slog.Warn("Failed to close mutation file", "path", path, "error", closeErr)
		}
	}()

	records, stats, err := ParseRecords(in, meta)
	if err != nil {
		return result, fmt.Errorf("parse %s: %w", path, err)
	}

	if stats.Mismatched > 0 {
		slog.Debug("File classification differs from directory", "path", path, "class", meta.Class, "rows", stats.Mismatched)
	}

	return FileRecords{
		File:    m.MutationFile{Path: path, Metadata: meta},
		Records: records,
		Stats:   stats,
	}, nil
}

// ParseRecords reads tab-separated rows with a header from r. Rows whose
// Erica_term is BARCODE are dropped; every other row becomes one record
// carrying meta. The directory class in meta wins over the row's own term.
func ParseRecords(r io.Reader, meta m.Metadata) ([]m.MutationRecord, ParseStats, error) {
	var stats ParseStats

	in := bufio.NewReader(r)

	header, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, stats, fmt.Errorf("%w: line 1: %v", ErrMalformedRecord, err)
	}

	if err := requireColumns(header, variantColumn, termColumn); err != nil {
		return nil, stats, fmt.Errorf("%w: line 1: %v", ErrMalformedRecord, err)
	}

	reader := tsv.NewReader(io.MultiReader(strings.NewReader(header), in))
	reader.HasHeaderRow = true
	reader.UseHeaderNames = true

	var records []m.MutationRecord

	// Line 1 is the header.
	for line := 2; ; line++ {
		var row mutationRow
		if err := reader.Read(&row); err != nil {
			if err == io.EOF {
				break
			}

			return nil, stats, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}

		stats.Rows++

		if row.Term == BarcodeTerm {
			stats.Dropped++
			continue
		}

		chromosome, position, ref, alt, err := splitVariant(row.Variant)
		if err != nil {
			return nil, stats, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}

		if row.Term != string(meta.Class) {
			stats.Mismatched++
		}

		records = append(records, m.MutationRecord{
			Chromosome: chromosome,
			Position:   position,
			Ref:        ref,
			Alt:        alt,
			Sample:     meta.Sample,
			Oligo:      meta.Oligo,
			Class:      meta.Class,
			Count:      meta.Count,
			Term:       row.Term,
		})
	}

	return records, stats, nil
}

// requireColumns checks the header line before any row is read, so a file with
// a wrong header fails even when it has no data rows.
func requireColumns(header string, names ...string) error {
	present := make(map[string]bool)
	for _, column := range strings.Split(strings.TrimRight(header, "\r\n"), "\t") {
		present[column] = true
	}

	for _, name := range names {
		if !present[name] {
			return fmt.Errorf("missing column %q", name)
		}
	}

	return nil
}

// splitVariant splits <chr>_<pos>_<ref>/<alt>.
func splitVariant(variant string) (string, int, string, string, error) {
	parts := strings.Split(variant, "_")
	if len(parts) != 3 {
		return "", 0, "", "", fmt.Errorf("variant %q: want <chr>_<pos>_<ref>/<alt>", variant)
	}

	alleles := strings.Split(parts[2], "/")
	if len(alleles) != 2 {
		return "", 0, "", "", fmt.Errorf("variant %q: base change %q: want <ref>/<alt>", variant, parts[2])
	}

	if !positionExpr.MatchString(parts[1]) {
		return "", 0, "", "", fmt.Errorf("variant %q: position %q is not a positive integer", variant, parts[1])
	}

	position, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, "", "", fmt.Errorf("variant %q: position %q is not an integer", variant, parts[1])
	}

	return parts[0], position, alleles[0], alleles[1], nil
}
