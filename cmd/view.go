package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tp53.dev/pkg/mutcount/internal/domain"
	m "tp53.dev/pkg/mutcount/internal/model"
)

var errNothingToView = errors.New("nothing to view (use --output and/or --summary, or set them in " + configFileName + ")")

var viewOutputFlag string
var viewSummaryFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously written count table and run summary",
		Long: `Print a count table written by "mutcount count" and, when given, the YAML
run summary saved next to it. Paths default to the output and summary
configured in ` + configFileName + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := domain.ViewArgs{
				Output:  m.Path(flagOrConfig(viewOutputFlag, outputConfigKey)),
				Summary: m.Path(flagOrConfig(viewSummaryFlag, summaryConfigKey)),
			}

			if args.Output == "" && args.Summary == "" {
				return errNothingToView
			}

			return workflow.View(cmd.Context(), args)
		},
	}

	// The output and summary keys are bound to the count flags, so these
	// flags only fall back to viper instead of binding to it.
	cmd.Flags().StringVarP(&viewOutputFlag, outputFlagName, "o", "", "count table to print")
	cmd.Flags().StringVar(&viewSummaryFlag, summaryFlagName, "", "YAML run summary to print")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func flagOrConfig(value, key string) string {
	if value != "" {
		return value
	}

	return viper.GetString(key)
}
