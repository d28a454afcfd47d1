package model

import (
	"fmt"
	"strings"
)

// GroupField is a metadata dimension that can be part of the grouping key.
type GroupField string

const (
	// GroupSample groups by timepoint and replicate letter.
	GroupSample GroupField = "sample"
	// GroupOligo groups by oligo variant.
	GroupOligo GroupField = "oligo"
	// GroupMutation groups by mutation class.
	GroupMutation GroupField = "mutation"
)

// DefaultGroupFields returns the grouping used when none is requested.
func DefaultGroupFields() []GroupField {
	return []GroupField{GroupSample, GroupOligo, GroupMutation}
}

// ParseGroupField validates a grouping selector from the command line.
func ParseGroupField(value string) (GroupField, error) {
	field := GroupField(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range DefaultGroupFields() {
		if field == known {
			return field, nil
		}
	}

	return "", fmt.Errorf("unknown group field %q (want one of oligo, sample, mutation)", value)
}

// Positional columns always lead the output table.
const (
	ColumnChromosome = "chr"
	ColumnPosition   = "pos"
	ColumnRef        = "ref"
	ColumnAlt        = "alt"
	ColumnCount      = "count"
)

// GroupKey is the composite key records are reduced by. Fields that are not
// part of the active grouping stay at their zero value.
type GroupKey struct {
	Chromosome string
	Position   int
	Ref        string
	Alt        string
	Sample     string
	Oligo      string
	Class      MutationClass
}

// KeyOf builds the grouping key of record for the given fields.
func KeyOf(record MutationRecord, fields []GroupField) GroupKey {
	key := GroupKey{
		Chromosome: record.Chromosome,
		Position:   record.Position,
		Ref:        record.Ref,
		Alt:        record.Alt,
	}

	for _, field := range fields {
		switch field {
		case GroupSample:
			key.Sample = record.Sample
		case GroupOligo:
			key.Oligo = record.Oligo
		case GroupMutation:
			key.Class = record.Class
		}
	}

	return key
}

// Value returns the key's value for a grouping field.
func (k GroupKey) Value(field GroupField) string {
	switch field {
	case GroupSample:
		return k.Sample
	case GroupOligo:
		return k.Oligo
	case GroupMutation:
		return string(k.Class)
	}

	return ""
}

// Row is one aggregated line of the report.
type Row struct {
	Key   GroupKey
	Count int
}

// Table is the aggregated report: rows keyed by the positional fields plus Fields.
type Table struct {
	Fields []GroupField
	Rows   []Row
}

// Header returns the column names in output order.
func (t Table) Header() []string {
	header := []string{ColumnChromosome, ColumnPosition, ColumnRef, ColumnAlt}
	for _, field := range t.Fields {
		header = append(header, string(field))
	}

	return append(header, ColumnCount)
}

// Total sums the count column.
func (t Table) Total() int {
	total := 0
	for _, row := range t.Rows {
		total += row.Count
	}

	return total
}
