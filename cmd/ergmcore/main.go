// Command ergmcore is the reference CLI for the ERGM estimation and
// simulation engine: a cobra root command with two subcommands,
// `estimate` and `simulate`, wired straight through config -> ioadapter
// -> digraph -> estimator/simulate -> ioadapter. Progress and error
// reporting at this layer use stdlib log rather than a structured-logging
// package, since this is the one place in the module that talks directly
// to a human operator instead of to another package. Subcommands return
// errors rather than exiting directly, so main is the single place a
// subcommand error becomes an exit status; the one other exit path is
// startMetricsServer's log.Fatalf on a metrics registration failure.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ergmcore/digraph"
)

var (
	flagConfigPath  string
	flagMetricsAddr string
	flagSeed        uint64
	flagRank        uint64
)

var rootCmd = &cobra.Command{
	Use:   "ergmcore",
	Short: "Exponential random graph model estimation and simulation engine",
	Long: "ergmcore estimates ERGM parameters for a directed network via\n" +
		"Equilibrium Expectation (Algorithm S + Algorithm EE), or simulates a\n" +
		"graph trajectory at a fixed parameter vector, per the configuration\n" +
		"file passed with --config.",
}

// Exit codes: 0 success, 1 configuration/I/O error (or any other
// uncaught run error), 2 invariant violation — only ever reachable in a
// -tags ergmdebug build, where digraph.debugCheck panics with
// digraph.ErrInvariantViolation the instant a mutation leaves the graph
// inconsistent.
func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to the key=value configuration file (required)")
	rootCmd.PersistentFlags().StringVar(&flagMetricsAddr, "metrics-addr", "", "address to serve Prometheus /metrics on, e.g. :9090 (disabled if empty)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 1, "RNG seed for the sampler stream")
	rootCmd.PersistentFlags().Uint64Var(&flagRank, "rank", 0, "chain rank, distinguishes independent RNG streams in a multi-chain run")

	rootCmd.AddCommand(estimateCmd, simulateCmd)

	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.Is(err, digraph.ErrInvariantViolation) {
				log.Printf("ergmcore: %v", err)
				os.Exit(2)
			}
			panic(r)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		log.Printf("ergmcore: %v", err)
		os.Exit(1)
	}
}
