package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tp53.dev/pkg/mutcount/internal/domain"
	m "tp53.dev/pkg/mutcount/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mutation files and the metadata in their paths",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := m.Path(viper.GetString(directoryConfigKey))
			if root == "" {
				return errMissingDirectory
			}

			return workflow.List(cmd.Context(), domain.ListArgs{Root: root})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
