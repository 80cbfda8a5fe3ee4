package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/FrenchMajesty/connectivity/pkg/connectivity"
	"github.com/FrenchMajesty/connectivity/pkg/unionfind"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var (
	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Time every union-find variant on the same random workload",
		Long:  "",
		Args:  cobra.NoArgs,
		RunE:  runBenchCmd,
	}

	benchOpts struct {
		sites    int
		pairs    int
		seed     uint64
		variants []string
	}
)

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchOpts.sites, "sites", 10000, "number of sites N")
	benchCmd.Flags().IntVar(&benchOpts.pairs, "pairs", 20000, "number of random pairs")
	benchCmd.Flags().Uint64Var(&benchOpts.seed, "seed", 1, "random seed")
	benchCmd.Flags().StringSliceVar(&benchOpts.variants, "variant", nil, "variants to run (default all)")
}

func runBenchCmd(cmd *cobra.Command, args []string) error {
	vs := unionfind.Variants()
	if len(benchOpts.variants) > 0 {
		vs = vs[:0]
		for _, name := range benchOpts.variants {
			v, err := unionfind.ParseVariant(name)
			if err != nil {
				return err
			}
			vs = append(vs, v)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	klog.V(2).Infof("Benchmarking %v over %d sites, %d pairs, seed %d", vs, benchOpts.sites, benchOpts.pairs, benchOpts.seed)
	results, err := connectivity.Bench(ctx, vs, benchOpts.sites, benchOpts.pairs, benchOpts.seed)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tCOMPONENTS\tELAPSED")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%v\n", r.Variant, r.Components, r.Elapsed)
	}
	if flushErr := w.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}
	return err
}
