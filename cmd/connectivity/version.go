package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.hash=...".
var (
	version = "0.0.0"
	hash    = "unknown"
)

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the connectivity version and build hash",
		Long:  "Prints the release version and the commit hash this binary was built from.",
		Run:   runVersionCmd,
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersionCmd(cmd *cobra.Command, args []string) {
	fmt.Fprintln(cmd.OutOrStdout(), componentName, "v"+version+"-"+hash)
}
