package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tp53.dev/pkg/mutcount/internal/domain"
	m "tp53.dev/pkg/mutcount/internal/model"
)

var (
	errMissingDirectory = errors.New("no experiment directory given (use --directory or set directory in " + configFileName + ")")
	errMissingOutput    = errors.New("no output file given (use --output or set output in " + configFileName + ")")
)

var outputFlag string
var groupByFlag []string
var summaryFlag string
var runParallelFlag int

// countCmd represents the count command.
var countCmd = newCountCmd()

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Aggregate mutation counts into a table",
		Long:  countLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := m.Path(viper.GetString(directoryConfigKey))
			if root == "" {
				return errMissingDirectory
			}

			output := m.Path(viper.GetString(outputConfigKey))
			if output == "" {
				return errMissingOutput
			}

			fields, err := parseGroupFields(viper.GetStringSlice(groupByConfigKey))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Count(ctx, domain.CountArgs{
				Root:    root,
				Output:  output,
				GroupBy: fields,
				Threads: viper.GetInt(runParallelConfigKey),
				Summary: m.Path(viper.GetString(summaryConfigKey)),
			})
		},
	}

	configureCountFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func configureCountFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "path of the tab-separated output table")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().StringArrayVar(&groupByFlag, groupByFlagName, viper.GetStringSlice(groupByConfigKey), "group counts by sample, oligo or mutation (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(groupByFlagName), groupByConfigKey)

	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of mutation files parsed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVar(&summaryFlag, summaryFlagName, viper.GetString(summaryConfigKey), "also write a YAML run summary to this path")
	bindFlagToConfig(cmd.Flags().Lookup(summaryFlagName), summaryConfigKey)
}

// parseGroupFields validates the --groupby values. An empty list selects the
// default grouping.
func parseGroupFields(values []string) ([]m.GroupField, error) {
	fields := make([]m.GroupField, 0, len(values))

	for _, value := range values {
		field, err := m.ParseGroupField(value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", groupByFlagName, err)
		}

		fields = append(fields, field)
	}

	return fields, nil
}
