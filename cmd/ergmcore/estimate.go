package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ergmcore/config"
	"github.com/katalvlaran/ergmcore/estimator"
	"github.com/katalvlaran/ergmcore/ioadapter"
	"github.com/katalvlaran/ergmcore/sampler"
	"github.com/katalvlaran/ergmcore/xrand"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate ERGM parameters for a directed network (Algorithm S + Algorithm EE)",
	RunE:  runEstimate,
}

func runEstimate(cmd *cobra.Command, args []string) error {
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

	hp := hyperparametersFromConfig(cfg)
	rng := xrand.NewStream(flagSeed, flagRank)
	rec := startMetricsServer(flagMetricsAddr)

	log.Printf("ergmcore: running Algorithm S (%d outer steps before density adjustment)", hp.Ssteps)
	theta0, d, err := estimator.RunAlgorithmS(g, sel, hp, rng, rec)
	if err != nil {
		return fmt.Errorf("ergmcore: Algorithm S: %w", err)
	}

	log.Printf("ergmcore: running Algorithm EE (%d outer steps)", hp.EEsteps)
	traj, err := estimator.RunAlgorithmEE(g, sel, hp, theta0, d, rng, rec)
	if err != nil {
		return fmt.Errorf("ergmcore: Algorithm EE: %w", err)
	}

	runID := uuid.New()
	if err := writeEstimateOutputs(cfg, runID, traj, d); err != nil {
		return fmt.Errorf("ergmcore: writing outputs: %w", err)
	}
	log.Printf("ergmcore: estimate run %s complete", runID)
	return nil
}

func hyperparametersFromConfig(cfg *config.Config) estimator.Hyperparameters {
	kernel := sampler.Basic
	switch {
	case cfg.UseTNTSampler:
		kernel = sampler.TNT
	case cfg.UseIFDSampler:
		kernel = sampler.IFD
	}
	return estimator.Hyperparameters{
		ACAS:         cfg.ACAS,
		ACAEE:        cfg.ACAEE,
		CompC:        cfg.CompC,
		SamplerSteps: cfg.SamplerSteps,
		Ssteps:       cfg.Ssteps,
		EEsteps:      cfg.EEsteps,
		EEinnerSteps: cfg.EEinnerSteps,
		Kernel:       kernel,
		IFDK:         cfg.IfdK,
		Flags: sampler.Flags{
			PerformMove:              true,
			UseConditionalEstimation: cfg.ConditionalEstimation(),
			ForbidReciprocity:        cfg.ForbidReciprocity,
		},
	}
}

func writeEstimateOutputs(cfg *config.Config, runID uuid.UUID, traj estimator.Trajectory, d []float64) error {
	if cfg.ThetaFilePrefix != "" {
		if err := writeOnePrefixedFile(cfg.ThetaFilePrefix, flagRank, func(f *os.File) error {
			return ioadapter.WriteThetaTrajectory(f, traj)
		}); err != nil {
			return err
		}
	}
	if cfg.DzAFilePrefix != "" {
		if err := writeOnePrefixedFile(cfg.DzAFilePrefix, flagRank, func(f *os.File) error {
			return ioadapter.WriteDzATrajectory(f, traj)
		}); err != nil {
			return err
		}
	}

	if len(traj) == 0 {
		return nil
	}
	last := traj[len(traj)-1]
	rep := ioadapter.Report{
		RunID:          runID.String(),
		FinalTheta:     last.Theta,
		ScaleD:         d,
		Ssteps:         cfg.Ssteps,
		EEsteps:        cfg.EEsteps,
		EEinnerSteps:   cfg.EEinnerSteps,
		FinalDzANorm:   floats.Norm(last.DzA, 2),
		AcceptanceRate: last.AcceptanceRate,
		Seed:           flagSeed,
	}
	prefix := cfg.ThetaFilePrefix
	if prefix == "" {
		prefix = cfg.DzAFilePrefix
	}
	if prefix == "" {
		return nil
	}
	f, err := os.Create(fmt.Sprintf("%s_summary.yaml", prefix))
	if err != nil {
		return err
	}
	defer f.Close()
	return ioadapter.WriteReport(f, rep)
}

func writeOnePrefixedFile(prefix string, rank uint64, write func(f *os.File) error) error {
	f, err := os.Create(fmt.Sprintf("%s_%d.txt", prefix, rank))
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
