// Package controller provides output adapters for displaying pipeline results.
package controller

import (
	"context"

	"github.com/spf13/cobra"
	m "tp53.dev/pkg/mutcount/internal/model"
)

// UI defines how discovery listings, run summaries and saved tables are shown
// to the user.
type UI interface {
	DisplayFiles(ctx context.Context, files []m.MutationFile) error
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayTable(ctx context.Context, header []string, rows [][]string) error
}

// NewUI returns the UI bound to cmd's output streams.
func NewUI(cmd *cobra.Command) UI {
	return NewSimpleUI(cmd)
}
