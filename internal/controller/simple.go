package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "tp53.dev/pkg/mutcount/internal/model"
)

// SimpleUI renders plain tables to a cobra command's stdout.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayFiles lists discovered mutation files with the metadata their paths encode.
func (s *SimpleUI) DisplayFiles(ctx context.Context, files []m.MutationFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderFilesTable(files))

	return nil
}

func renderFilesTable(files []m.MutationFile) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Sample", "Oligo", "Mutation", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	total := 0

	for _, file := range files {
		table.Append([]string{
			string(file.Path),
			file.Metadata.Sample,
			file.Metadata.Oligo,
			string(file.Metadata.Class),
			fmt.Sprintf("%d", file.Metadata.Count),
		})

		total += file.Metadata.Count
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files)), "", "", "", fmt.Sprintf("%d", total)})
	table.Render()

	return tableBuffer.String()
}

// DisplaySummary prints the run statistics.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	return nil
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	groupBy := make([]string, 0, len(summary.GroupBy))
	for _, field := range summary.GroupBy {
		groupBy = append(groupBy, string(field))
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk([][]string{
		{"Root", string(summary.Root)},
		{"Output", string(summary.Output)},
		{"Group by", strings.Join(groupBy, ",")},
		{"Mutation files", fmt.Sprintf("%d", summary.Files)},
		{"Records", fmt.Sprintf("%d", summary.Records)},
		{"Dropped BARCODE rows", fmt.Sprintf("%d", summary.Dropped)},
		{"Term/class mismatches", fmt.Sprintf("%d", summary.Mismatched)},
		{"Rows written", fmt.Sprintf("%d", summary.Rows)},
	})
	table.SetFooter([]string{"Total count", fmt.Sprintf("%d", summary.Total)})
	table.Render()

	return tableBuffer.String()
}

// DisplayTable prints a count table read back from disk. When the last column
// holds counts, the footer carries their total.
func (s *SimpleUI) DisplayTable(ctx context.Context, header []string, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered, err := renderCountTable(header, rows)
	if err != nil {
		return err
	}

	s.printf("\n%s", rendered)

	return nil
}

func renderCountTable(header []string, rows [][]string) (string, error) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	last := len(header) - 1
	countColumn := last > 0 && header[last] == m.ColumnCount
	total := 0

	for i, row := range rows {
		if len(row) != len(header) {
			return "", fmt.Errorf("row %d: %d fields, header has %d", i+1, len(row), len(header))
		}

		if countColumn {
			count, err := strconv.Atoi(row[last])
			if err != nil {
				return "", fmt.Errorf("row %d: count %q is not an integer", i+1, row[last])
			}

			total += count
		}

		table.Append(row)
	}

	if countColumn {
		footer := make([]string, len(header))
		footer[0] = fmt.Sprintf("Rows %d", len(rows))
		footer[last] = fmt.Sprintf("%d", total)
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String(), nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
