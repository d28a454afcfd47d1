package domain

import (
	"errors"
	"sort"

	m "tp53.dev/pkg/mutcount/internal/model"
)

// ErrNoRecords reports an aggregation over no mutation files at all.
var ErrNoRecords = errors.New("no mutation files to aggregate")

// NormalizeGroupFields returns the default grouping for an empty selection and
// otherwise drops repeated fields, keeping the first occurrence.
func NormalizeGroupFields(fields []m.GroupField) []m.GroupField {
	if len(fields) == 0 {
		return m.DefaultGroupFields()
	}

	seen := make(map[m.GroupField]bool, len(fields))
	normalized := make([]m.GroupField, 0, len(fields))

	for _, field := range fields {
		if seen[field] {
			continue
		}

		seen[field] = true

		normalized = append(normalized, field)
	}

	return normalized
}

// Aggregate concatenates the per-file record sets and sums Count per group of
// chromosome, position, ref, alt and the selected fields. Fields outside the
// grouping do not survive. Rows come out sorted by key, so the result does not
// depend on the order of sets.
func Aggregate(sets [][]m.MutationRecord, fields []m.GroupField) (m.Table, error) {
	if len(sets) == 0 {
		return m.Table{}, ErrNoRecords
	}

	fields = NormalizeGroupFields(fields)
	counts := make(map[m.GroupKey]int)

	for _, records := range sets {
		for _, record := range records {
			counts[m.KeyOf(record, fields)] += record.Count
		}
	}

	rows := make([]m.Row, 0, len(counts))
	for key, count := range counts {
		rows = append(rows, m.Row{Key: key, Count: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		return lessKey(rows[i].Key, rows[j].Key, fields)
	})

	return m.Table{Fields: fields, Rows: rows}, nil
}

func lessKey(a, b m.GroupKey, fields []m.GroupField) bool {
	if a.Chromosome != b.Chromosome {
		return a.Chromosome < b.Chromosome
	}

	if a.Position != b.Position {
		return a.Position < b.Position
	}

	if a.Ref != b.Ref {
		return a.Ref < b.Ref
	}

	if a.Alt != b.Alt {
		return a.Alt < b.Alt
	}

	for _, field := range fields {
		if av, bv := a.Value(field), b.Value(field); av != bv {
			return av < bv
		}
	}

	return false
}
