package main

import (
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const (
	componentName = "connectivity"
)

var (
	rootCmd = &cobra.Command{
		Use:           componentName,
		Short:         "Answer dynamic connectivity queries with union-find",
		Long:          "",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootOpts struct {
		envFile string
	}
)

func init() {
	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentFlags().StringVar(&rootOpts.envFile, "env-file", ".env", "optional env file with CONNECTIVITY_* settings")
}

func main() {
	defer klog.Flush()

	if err := rootCmd.Execute(); err != nil {
		klog.Exitf("Error executing %s: %v", componentName, err)
	}
}
