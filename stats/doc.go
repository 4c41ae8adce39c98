// Package stats is the engine's change-statistic library: a catalog of
// functions s_k that, given a candidate arc toggle (i,j), each return
// the exact change their statistic would undergo if the arc were
// inserted — the aggregator (CalcChangeStats) applies the single sign
// flip a delete move needs, so individual statistics never branch on
// isDelete themselves (see DESIGN.md, Open Question: delete-sign site).
//
// Every statistic is modeled as a tagged Kind plus a uniform dispatch
// function, avoiding a dynamic subtype hierarchy, selected at runtime
// from a Selection built by ParseSelection out of the config package's
// parsed statistic-name lists.
package stats

import "errors"

// Sentinel errors for statistic selection and evaluation.
var (
	// ErrUnknownStatistic indicates a configuration referenced a
	// statistic name not in the catalog.
	ErrUnknownStatistic = errors.New("stats: unknown statistic name")

	// ErrMissingAttribute indicates a statistic referenced an attribute
	// name absent from the loaded NodeAttributes.
	ErrMissingAttribute = errors.New("stats: missing attribute")

	// ErrMissingCovariate indicates a DyadicCovariate statistic
	// referenced a covariate matrix that was never registered.
	ErrMissingCovariate = errors.New("stats: missing dyadic covariate")

	// ErrThetaSizeMismatch indicates theta's length does not equal the
	// selection's P.
	ErrThetaSizeMismatch = errors.New("stats: theta length does not match selection size")

	// ErrTwoPathIndexType indicates a graph's attached digraph.TwoPathIndex
	// does not also implement twopath.Index (Query), so CalcChangeStats has
	// no way to read two-path counts back out of it.
	ErrTwoPathIndexType = errors.New("stats: attached two-path accelerator does not support queries")
)
