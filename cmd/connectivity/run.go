package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/FrenchMajesty/connectivity/pkg/connectivity"
	"github.com/FrenchMajesty/connectivity/pkg/unionfind"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var (
	runCmd = &cobra.Command{
		Use:   "run [file]",
		Short: "Join every pair of a connection stream and report the component count",
		Long: `Reads N followed by whitespace-separated pairs p q from the file argument,
--input, CONNECTIVITY_INPUT, or stdin. Every pair that joins two components
is logged, followed by the number of components left.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRunCmd,
	}

	runOpts struct {
		variant   string
		input     string
		reportDir string
	}
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runOpts.variant, "variant", "", "union-find variant: quick-find, quick-union or weighted (default weighted)")
	runCmd.Flags().StringVar(&runOpts.input, "input", "", "connection stream to read (default stdin)")
	runCmd.Flags().StringVar(&runOpts.reportDir, "report-dir", "", "write the run result as JSON into this directory")
}

func runRunCmd(cmd *cobra.Command, args []string) error {
	cfg, err := connectivity.LoadConfig(rootOpts.envFile)
	if err != nil {
		return err
	}

	// Flags and arguments override the environment.
	if runOpts.variant != "" {
		v, err := unionfind.ParseVariant(runOpts.variant)
		if err != nil {
			return err
		}
		cfg.Variant = v
	}
	if runOpts.input != "" {
		cfg.Input = runOpts.input
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if runOpts.reportDir != "" {
		cfg.ReportDir = runOpts.reportDir
	}
	cfg.Logger = klog.Infof

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var res *connectivity.Result
	if cfg.Input == "" {
		res, err = connectivity.Run(ctx, cfg, cmd.InOrStdin(), nil)
	} else {
		res, err = connectivity.RunFile(ctx, cfg, nil)
	}
	if err != nil {
		return err
	}

	klog.V(2).Infof("Run %s: %s over %d sites, %d pairs, %d joined in %v",
		res.RunID, res.Variant, res.Sites, res.Pairs, res.Joined, res.Elapsed)

	if cfg.ReportDir != "" {
		path, err := connectivity.SaveResult(cfg.ReportDir, res)
		if err != nil {
			return err
		}
		klog.Infof("Result written to %s", path)
	}
	return nil
}
