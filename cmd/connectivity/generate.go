package main

import (
	"fmt"

	"github.com/FrenchMajesty/connectivity/pkg/connectivity"
	"github.com/FrenchMajesty/connectivity/pkg/pairs"
	"github.com/FrenchMajesty/connectivity/pkg/unionfind"
	"github.com/spf13/cobra"
)

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Write a connection stream workload to stdout",
		Long:  "",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}

	generateOpts struct {
		sites int
		pairs int
		seed  uint64
		chain bool
	}
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&generateOpts.sites, "sites", 10, "number of sites N")
	generateCmd.Flags().IntVar(&generateOpts.pairs, "pairs", 20, "number of random pairs")
	generateCmd.Flags().Uint64Var(&generateOpts.seed, "seed", 1, "random seed")
	generateCmd.Flags().BoolVar(&generateOpts.chain, "chain", false, "emit the chain 0-1, 1-2, ... instead of random pairs")
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	if generateOpts.sites <= 0 || generateOpts.sites > unionfind.MaxSites {
		return fmt.Errorf("--sites must be in [1, %d], got %d", unionfind.MaxSites, generateOpts.sites)
	}

	var work []pairs.Pair
	if generateOpts.chain {
		work = pairs.Chain(generateOpts.sites)
	} else {
		if generateOpts.pairs < 0 || generateOpts.pairs > connectivity.MaxBenchPairs {
			return fmt.Errorf("--pairs must be in [0, %d], got %d", connectivity.MaxBenchPairs, generateOpts.pairs)
		}
		work = pairs.Random(generateOpts.sites, generateOpts.pairs, generateOpts.seed)
	}
	return pairs.NewWriter(cmd.OutOrStdout()).WriteAll(generateOpts.sites, work)
}
