// Package estimator implements the Equilibrium Expectation estimation
// loop: Algorithm S (scale-finding) followed by Algorithm EE
// (Borisenko-controlled parameter refinement), both driving the sampler
// package's MCMC kernels.
package estimator

import (
	"errors"

	"github.com/katalvlaran/ergmcore/sampler"
)

// Sentinel errors for estimator preconditions.
var (
	ErrStepCountsMustBePositive = errors.New("estimator: Ssteps, EEsteps, EEinnerSteps and SamplerSteps must all be positive")
	ErrACAMustBePositive        = errors.New("estimator: ACA_S and ACA_EE must be positive")
	// ErrNonFiniteThetaProduced: non-finite theta components are fatal.
	ErrNonFiniteThetaProduced = errors.New("estimator: update produced a non-finite theta component")
)

// Hyperparameters bundles the {ACA_S, ACA_EE, compC, samplerSteps,
// Ssteps, EEsteps, EEinnerSteps, ifd_K, sampler choice, flags} tuple the
// EE estimator takes as input.
type Hyperparameters struct {
	ACAS  float64 // Algorithm S step magnitude
	ACAEE float64 // Algorithm EE step magnitude
	CompC float64 // Borisenko variance-control threshold

	SamplerSteps int // proposals per Algorithm S outer iteration
	Ssteps       int // Algorithm S outer iterations (pre density adjustment)
	EEsteps      int // Algorithm EE outer iterations
	EEinnerSteps int // Algorithm EE inner (accumulation) iterations

	Kernel sampler.Kernel
	IFDK   float64 // only consulted when Kernel == sampler.IFD
	Flags  sampler.Flags
}

// Validate checks the preconditions the estimator must assert before
// running.
func (h Hyperparameters) Validate() error {
	if h.SamplerSteps <= 0 || h.Ssteps <= 0 || h.EEsteps <= 0 || h.EEinnerSteps <= 0 {
		return ErrStepCountsMustBePositive
	}
	if h.ACAS <= 0 || h.ACAEE <= 0 {
		return ErrACAMustBePositive
	}
	return nil
}

// TrajectoryPoint is one recorded outer iteration of Algorithm EE: the
// theta vector after the update, and the dzA vector that drove it.
type TrajectoryPoint struct {
	Theta          []float64
	DzA            []float64
	AcceptanceRate float64
}

// Trajectory is the full sequence of theta vectors and per-step dzA
// vectors the I/O collaborator persists.
type Trajectory []TrajectoryPoint

// Recorder receives live progress observations during estimation. It is
// the estimator package's seam for the metrics package's Prometheus
// gauges (ergmcore_theta, ergmcore_dza_norm, ergmcore_acceptance_rate,
// ergmcore_outer_step) without estimator importing metrics directly.
// Passing nil disables observation entirely.
type Recorder interface {
	ObserveTheta(theta []float64)
	ObserveDzANorm(norm float64)
	ObserveAcceptanceRate(rate float64)
	ObserveOuterStep(step int)
}
