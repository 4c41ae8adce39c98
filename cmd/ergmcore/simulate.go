package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ergmcore/config"
	"github.com/katalvlaran/ergmcore/ioadapter"
	"github.com/katalvlaran/ergmcore/sampler"
	"github.com/katalvlaran/ergmcore/simulate"
	"github.com/katalvlaran/ergmcore/xrand"
)

var (
	flagReportPath string
	flagTheta      string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a graph trajectory at a fixed theta (burn-in/interval/sample loop)",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagReportPath, "report", "", "summary report YAML (from a prior estimate run) to read theta from")
	simulateCmd.Flags().StringVar(&flagTheta, "theta", "", "comma-separated theta vector, used when --report is not given")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagConfigPath == "" {
		return fmt.Errorf("ergmcore: --config is required")
	}
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return fmt.Errorf("ergmcore: %w", err)
	}

	g, err := loadGraph(cfg)
	if err != nil {
		return fmt.Errorf("ergmcore: %w", err)
	}

	sel, err := cfg.BuildSelection(cfg.Lambda)
	if err != nil {
		return fmt.Errorf("ergmcore: %w", err)
	}

	theta, err := resolveTheta(sel.P())
	if err != nil {
		return fmt.Errorf("ergmcore: %w", err)
	}

	kernel := sampler.Basic
	switch {
	case cfg.UseTNTSampler:
		kernel = sampler.TNT
	case cfg.UseIFDSampler:
		kernel = sampler.IFD
	}
	opt := simulate.Options{
		Burnin:     cfg.Burnin,
		Interval:   cfg.Interval,
		SampleSize: cfg.SampleSize,
		Kernel:     kernel,
		IFDK:       cfg.IfdK,
		Flags: sampler.Flags{
			PerformMove:              true,
			UseConditionalEstimation: cfg.ConditionalEstimation(),
			ForbidReciprocity:        cfg.ForbidReciprocity,
		},
	}

	rng := xrand.NewStream(flagSeed, flagRank)
	runID, snapshots, err := simulate.Run(g, theta, sel, opt, rng, cfg.OutputSimulatedNetworks)
	if err != nil {
		return fmt.Errorf("ergmcore: simulation run: %w", err)
	}
	log.Printf("ergmcore: simulate run %s emitted %d samples", runID, len(snapshots))

	return writeSimulateOutputs(cfg, snapshots)
}

// resolveTheta prefers --report (the natural output of `estimate`) over
// --theta, and fails loudly if the resulting vector's length does not
// match the statistic selection.
func resolveTheta(p int) ([]float64, error) {
	var theta []float64
	switch {
	case flagReportPath != "":
		f, err := os.Open(flagReportPath)
		if err != nil {
			return nil, fmt.Errorf("opening --report: %w", err)
		}
		defer f.Close()
		rep, err := ioadapter.ReadReport(f)
		if err != nil {
			return nil, fmt.Errorf("reading --report: %w", err)
		}
		theta = rep.FinalTheta
	case flagTheta != "":
		parts := strings.Split(flagTheta, ",")
		theta = make([]float64, len(parts))
		for i, s := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("parsing --theta: %w", err)
			}
			theta[i] = v
		}
	default:
		return nil, fmt.Errorf("one of --report or --theta is required")
	}
	if len(theta) != p {
		return nil, fmt.Errorf("%w: theta has %d components, selection has %d", ioadapter.ErrThetaSizeMismatch, len(theta), p)
	}
	return theta, nil
}

func writeSimulateOutputs(cfg *config.Config, snapshots []simulate.Snapshot) error {
	if cfg.StatsFile != "" {
		rows := make([][]float64, len(snapshots))
		for i, s := range snapshots {
			rows[i] = s.Statistics
		}
		f, err := os.Create(cfg.StatsFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := ioadapter.WriteStatsRows(f, rows); err != nil {
			return err
		}
	}

	if cfg.OutputSimulatedNetworks && cfg.SimNetFilePrefix != "" {
		for _, s := range snapshots {
			if s.Graph == nil {
				continue
			}
			path := fmt.Sprintf("%s_%d.net", cfg.SimNetFilePrefix, s.Index)
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			err = ioadapter.WritePajek(f, s.Graph)
			f.Close()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
