package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the mutcount version",
		Long:  "Print the mutcount module version and the Go toolchain it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersions(debug.ReadBuildInfo())

			cmd.Printf("mutcount %s\n", version)
			cmd.Printf("built with %s\n", goVersion)
		},
	}
}

// buildVersions picks the module and Go versions out of the embedded build
// info, falling back to "unknown" for binaries built without it.
func buildVersions(info *debug.BuildInfo, ok bool) (string, string) {
	if !ok || info == nil {
		return unknownVersion, unknownVersion
	}

	version := info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	goVersion := info.GoVersion
	if goVersion == "" {
		goVersion = unknownVersion
	}

	return version, goVersion
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
