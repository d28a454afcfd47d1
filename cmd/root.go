// Package cmd provides the root command and CLI setup for mutcount.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"tp53.dev/pkg/mutcount/internal/adapter"
	"tp53.dev/pkg/mutcount/internal/controller"
	"tp53.dev/pkg/mutcount/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var tableStore adapter.TableStore
var summaryStore adapter.SummaryStore
var walker domain.Walker
var parser domain.RecordParser
var workflow domain.Workflow
var ui controller.UI

// directoryFlag is a root-level flag shared by commands that walk an experiment tree.
var directoryFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	tableStore = adapter.NewTableStore()
	summaryStore = adapter.NewSummaryStore()
	walker = domain.NewWalker(fsAdapter)
	parser = domain.NewRecordParser(fsAdapter)
	workflow = domain.NewWorkflow(
		walker,
		parser,
		tableStore,
		summaryStore,
		ui,
	)
}

const layoutHelp = `Expected layout:
  <directory>/<tp>_final[2]/vcfs_<tp>_<L>/vcfs_<tp>_<L>_oligo<v>/<CLASS>/mut_id<id>_<count>.txt

  tp     timepoint such as 48hr or 12d
  L      library letter A, B or C
  v      oligo variant 1A, 1C, 1G, 1T, 2 or 3only
  CLASS  DELETERIOUS or NON-DELETERIOUS`

const rootLongDescription = `Mutcount collects per-mutation counts from a nested TP53 experiment
directory and aggregates them into a single tab-separated table.

` + layoutHelp

const countLongDescription = `Walk the experiment directory, parse every mutation file and write the
summed counts grouped by the selected fields.

` + layoutHelp

const listLongDescription = `List the mutation files found under the experiment directory together
with the sample, oligo, class and count encoded in their paths.

` + layoutHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutcount",
		Short: "TP53 mutation count aggregator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&directoryFlag, directoryFlagName, "d",
			viper.GetString(directoryConfigKey),
			"root directory of the experiment tree",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(directoryFlagName), directoryConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
