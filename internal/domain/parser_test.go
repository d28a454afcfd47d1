package domain

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tp53.dev/pkg/mutcount/internal/adapter"
	m "tp53.dev/pkg/mutcount/internal/model"
)

var scenarioMeta = m.Metadata{Sample: "48hr_C", Oligo: "1A", Class: m.Deleterious, Count: 3}

func TestParseRecords(t *testing.T) {
	records, stats, err := ParseRecords(strings.NewReader(mutationFileContent("DELETERIOUS", variantA)), scenarioMeta)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, m.MutationRecord{
		Chromosome: "17",
		Position:   7578424,
		Ref:        "A",
		Alt:        "C",
		Sample:     "48hr_C",
		Oligo:      "1A",
		Class:      m.Deleterious,
		Count:      3,
		Term:       "DELETERIOUS",
	}, records[0])
	assert.Equal(t, ParseStats{Rows: 2, Dropped: 1}, stats)
}

func TestParseRecords_DirectoryClassWins(t *testing.T) {
	records, stats, err := ParseRecords(strings.NewReader(mutationFileContent("NON-DELETERIOUS", variantA, variantB)), scenarioMeta)
	require.NoError(t, err)

	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, m.Deleterious, record.Class)
		assert.Equal(t, "NON-DELETERIOUS", record.Term)
	}
	assert.Equal(t, 2, stats.Mismatched)
}

func TestParseRecords_OnlyBarcodeRows(t *testing.T) {
	records, stats, err := ParseRecords(strings.NewReader(mutationFileContent("DELETERIOUS")), scenarioMeta)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 1, stats.Dropped)
}

func TestParseRecords_ColumnOrderDoesNotMatter(t *testing.T) {
	content := "Gene\tErica_term\tVariant\nTP53\tDELETERIOUS\t" + variantB + "\n"

	records, _, err := ParseRecords(strings.NewReader(content), scenarioMeta)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "17", records[0].Chromosome)
	assert.Equal(t, 7578439, records[0].Position)
	assert.Equal(t, "T", records[0].Ref)
	assert.Equal(t, "G", records[0].Alt)
}

func TestParseRecords_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		variant string
	}{
		{"missing base change", "17_7578424"},
		{"extra underscore", "17_7578424_A/C_x"},
		{"no slash", "17_7578424_AC"},
		{"two slashes", "17_7578424_A/C/G"},
		{"non numeric position", "17_pos_A/C"},
		{"signed position", "17_+7578424_A/C"},
		{"negative position", "17_-7578424_A/C"},
		{"zero padded position", "17_07578424_A/C"},
		{"zero position", "17_0_A/C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseRecords(strings.NewReader(mutationFileContent("DELETERIOUS", variantA, tt.variant)), scenarioMeta)
			require.ErrorIs(t, err, ErrMalformedRecord)
			assert.Contains(t, err.Error(), "line 4")
		})
	}
}

func TestParseRecords_MissingVariantColumn(t *testing.T) {
	content := "Mutation\tErica_term\n17_7578424_A/C\tDELETERIOUS\n"

	_, _, err := ParseRecords(strings.NewReader(content), scenarioMeta)
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestParseRecords_HeaderCheckedWithoutRows(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing string
	}{
		{"unrelated header", "Foo\tBar\n", "Variant"},
		{"no term column", "Variant\tGene\n", "Erica_term"},
		{"header without newline", "Variant", "Erica_term"},
		{"empty file", "", "Variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, _, err := ParseRecords(strings.NewReader(tt.content), scenarioMeta)
			require.ErrorIs(t, err, ErrMalformedRecord)
			assert.Contains(t, err.Error(), "line 1")
			assert.Contains(t, err.Error(), tt.missing)
			assert.Empty(t, records)
		})
	}
}

func TestParseRecords_HeaderOnly(t *testing.T) {
	records, stats, err := ParseRecords(strings.NewReader("Variant\tErica_term\tGene\r\n"), scenarioMeta)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, ParseStats{}, stats)
}

func TestSplitVariant_DistinctPositionsStayDistinct(t *testing.T) {
	_, position, _, _, err := splitVariant("17_7578424_A/C")
	require.NoError(t, err)
	assert.Equal(t, 7578424, position)

	for _, variant := range []string{"17_+7578424_A/C", "17_07578424_A/C"} {
		_, _, _, _, err := splitVariant(variant)
		assert.Error(t, err, variant)
	}
}

func TestRecordParser_ParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/data", "48hr_final/vcfs_48hr_C/vcfs_48hr_C_oligo1A/DELETERIOUS/mut_id8_3.txt")
	mustWriteFile(t, fs, path, mutationFileContent("DELETERIOUS", variantA))

	parser := NewRecordParser(adapter.NewSourceFSAdapter(fs))

	result, err := parser.ParseFile(context.Background(), m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, m.Path(path), result.File.Path)
	assert.Equal(t, scenarioMeta, result.File.Metadata)
	require.Len(t, result.Records, 1)
	assert.Equal(t, 7578424, result.Records[0].Position)
	assert.Equal(t, 3, result.Records[0].Count)
}

func TestRecordParser_ParseFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	parser := NewRecordParser(adapter.NewSourceFSAdapter(fs))

	t.Run("malformed path", func(t *testing.T) {
		_, err := parser.ParseFile(context.Background(), "/data/mut_id8_3.txt")
		require.ErrorIs(t, err, ErrMalformedPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.ParseFile(context.Background(), "/data/vcfs_48hr_C_oligo1A/DELETERIOUS/mut_id8_3.txt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mut_id8_3.txt")
	})

	t.Run("malformed content names the file", func(t *testing.T) {
		path := "/data/vcfs_48hr_C_oligo1A/DELETERIOUS/mut_id9_1.txt"
		mustWriteFile(t, fs, path, mutationFileContent("DELETERIOUS", "17_bad"))

		_, err := parser.ParseFile(context.Background(), m.Path(path))
		require.ErrorIs(t, err, ErrMalformedRecord)
		assert.Contains(t, err.Error(), path)
	})
}
