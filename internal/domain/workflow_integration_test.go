package domain

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tp53.dev/pkg/mutcount/internal/adapter"
	"tp53.dev/pkg/mutcount/internal/controller"
	m "tp53.dev/pkg/mutcount/internal/model"
)

var sampleExperiment = filepath.Join("..", "..", "examples", "experiment")

func newLocalWorkflow(t *testing.T) (Workflow, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	wf := NewWorkflow(
		NewWalker(fsAdapter),
		NewRecordParser(fsAdapter),
		adapter.NewTableStore(),
		adapter.NewSummaryStore(),
		controller.NewUI(cmd),
	)

	return wf, out
}

func TestCountIntegration(t *testing.T) {
	t.Run("default grouping writes one row per sample, oligo and class", func(t *testing.T) {
		wf, out := newLocalWorkflow(t)
		dir := t.TempDir()
		output := filepath.Join(dir, "counts.tsv")
		summaryPath := filepath.Join(dir, "summary.yaml")

		err := wf.Count(context.Background(), CountArgs{
			Root:    m.Path(sampleExperiment),
			Output:  m.Path(output),
			Threads: 2,
			Summary: m.Path(summaryPath),
		})
		require.NoError(t, err)

		contents, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t,
			"chr\tpos\tref\talt\tsample\toligo\tmutation\tcount\n"+
				"17\t7578400\tG\tA\t48hr_C\t3only\tNON-DELETERIOUS\t2\n"+
				"17\t7578424\tA\tC\t12d_B\t1T\tDELETERIOUS\t4\n"+
				"17\t7578424\tA\tC\t12d_C\t1T\tDELETERIOUS\t4\n"+
				"17\t7578424\tA\tC\t48hr_C\t3only\tDELETERIOUS\t4\n"+
				"17\t7578439\tT\tG\t12d_C\t1T\tDELETERIOUS\t1\n"+
				"17\t7578439\tT\tG\t48hr_C\t3only\tDELETERIOUS\t1\n",
			string(contents))

		summary, err := adapter.NewSummaryStore().LoadSummary(m.Path(summaryPath))
		require.NoError(t, err)
		assert.Equal(t, 6, summary.Files)
		assert.Equal(t, 6, summary.Records)
		assert.Equal(t, 6, summary.Dropped)
		assert.Equal(t, 0, summary.Mismatched)
		assert.Equal(t, 6, summary.Rows)
		assert.Equal(t, 16, summary.Total)

		assert.Contains(t, out.String(), "16")
	})

	t.Run("grouping on oligo sums across samples", func(t *testing.T) {
		wf, _ := newLocalWorkflow(t)
		output := filepath.Join(t.TempDir(), "by_oligo.tsv")

		err := wf.Count(context.Background(), CountArgs{
			Root:    m.Path(sampleExperiment),
			Output:  m.Path(output),
			GroupBy: []m.GroupField{m.GroupOligo},
		})
		require.NoError(t, err)

		header, rows, err := adapter.NewTableStore().ReadTable(context.Background(), m.Path(output))
		require.NoError(t, err)
		assert.Equal(t, []string{"chr", "pos", "ref", "alt", "oligo", "count"}, header)
		assert.Equal(t, [][]string{
			{"17", "7578400", "G", "A", "3only", "2"},
			{"17", "7578424", "A", "C", "1T", "8"},
			{"17", "7578424", "A", "C", "3only", "4"},
			{"17", "7578439", "T", "G", "1T", "1"},
			{"17", "7578439", "T", "G", "3only", "1"},
		}, rows)
	})
}

func TestListIntegration(t *testing.T) {
	wf, out := newLocalWorkflow(t)

	require.NoError(t, wf.List(context.Background(), ListArgs{Root: m.Path(sampleExperiment)}))

	listing := out.String()
	assert.Contains(t, listing, "mut_id3_2.txt")
	assert.Contains(t, listing, "NON-DELETERIOUS")
	assert.NotContains(t, listing, "vcfs_hr_C")
	assert.NotContains(t, listing, "notes.txt")
}

func TestViewIntegration(t *testing.T) {
	dir := t.TempDir()
	output := m.Path(filepath.Join(dir, "counts.tsv"))
	summaryPath := m.Path(filepath.Join(dir, "summary.yaml"))

	counter, _ := newLocalWorkflow(t)
	require.NoError(t, counter.Count(context.Background(), CountArgs{
		Root:    m.Path(sampleExperiment),
		Output:  output,
		GroupBy: []m.GroupField{m.GroupOligo},
		Summary: summaryPath,
	}))

	viewer, out := newLocalWorkflow(t)
	require.NoError(t, viewer.View(context.Background(), ViewArgs{Output: output, Summary: summaryPath}))

	text := out.String()
	assert.Contains(t, text, "OLIGO")
	assert.Contains(t, text, "3only")
	assert.Contains(t, text, "ROWS 5")
	assert.Contains(t, text, "TOTAL COUNT")
	assert.Contains(t, text, "16")
}
