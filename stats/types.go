package stats

import "github.com/katalvlaran/ergmcore/digraph/twopath"

// Kind tags which statistic formula a Statistic dispatches to. Modeled
// as an enumerated tagged variant rather than an interface-per-statistic
// hierarchy, to avoid dynamic subtype dispatch for what is ultimately a
// closed, small set of formulas.
type Kind uint8

const (
	// Arc is the density/edge-count term.
	Arc Kind = iota
	// Reciprocity counts mutual dyads.
	Reciprocity
	// AltKStarsOut is the alternating out-k-star statistic.
	AltKStarsOut
	// AltKStarsIn is the alternating in-k-star statistic.
	AltKStarsIn
	// AltKTriangleTransitive closes triangles via a shared in-neighbor
	// of (i,j) — see DESIGN.md for why this orientation carries the name
	// "transitive" in this engine.
	AltKTriangleTransitive
	// AltKTriangleCyclic closes triangles via i->k->j (Out(i,j)).
	AltKTriangleCyclic
	// AltKTriangleTransitiveTies closes triangles via j->k->i (Out(j,i)).
	AltKTriangleTransitiveTies
	// AltKTriangleCyclicTies closes triangles via a shared out-neighbor
	// of (i,j) (Mixed(i,j)).
	AltKTriangleCyclicTies
	// AltTwoPathOut is the alternating two-path statistic over the Out
	// relation.
	AltTwoPathOut
	// AltTwoPathIn is the alternating two-path statistic over the In
	// relation.
	AltTwoPathIn
	// AltTwoPathMixed is the alternating two-path statistic over the
	// Mixed relation.
	AltTwoPathMixed
	// Sender is a binary main-effect term on the tail node; it reads only
	// the binary attribute table, so a categorical-only attribute
	// contributes 0.
	Sender
	// Receiver is a binary main-effect term on the head node; it reads only
	// the binary attribute table, so a categorical-only attribute
	// contributes 0.
	Receiver
	// Matching rewards dyads whose attribute values agree.
	Matching
	// MatchingReciprocity rewards matching dyads that are also mutual.
	MatchingReciprocity
	// ContinuousDiff penalizes dyads by the absolute difference of a
	// continuous covariate.
	ContinuousDiff
	// DyadicCovariate reads an externally supplied dyad-level real matrix.
	DyadicCovariate
	// AttrInteraction is the product of two attribute contributions.
	AttrInteraction
)

// Statistic is one entry in a Selection: a Kind plus whichever
// qualifiers that Kind needs (attribute name(s), covariate name). Unused
// fields for a given Kind are simply left zero.
type Statistic struct {
	Kind Kind
	Name string // human-readable label for trajectory file headers

	Attr  string // primary attribute name (Sender/Receiver/Matching/MatchingReciprocity/ContinuousDiff)
	Attr2 string // second attribute name (AttrInteraction)

	Covariate string // dyadic covariate matrix name (DyadicCovariate)
}

// Selection is the ordered list of P statistics that together define
// theta's components, plus the shared hyperparameters every alternating
// statistic needs.
type Selection struct {
	Items  []Statistic
	Lambda float64 // decay parameter for all alternating statistics, conventionally 2.0

	covariates map[string][][]float64 // dyadic covariate matrices, keyed by name
}

// NewSelection builds a Selection with the given statistics and lambda.
func NewSelection(items []Statistic, lambda float64) *Selection {
	return &Selection{Items: items, Lambda: lambda, covariates: make(map[string][][]float64)}
}

// P returns the number of statistics (theta's dimensionality).
func (s *Selection) P() int { return len(s.Items) }

// AddCovariate registers a dyadic covariate matrix under name for later
// lookup by DyadicCovariate statistics.
func (s *Selection) AddCovariate(name string, matrix [][]float64) {
	if s.covariates == nil {
		s.covariates = make(map[string][][]float64)
	}
	s.covariates[name] = matrix
}

func (s *Selection) covariate(name string) ([][]float64, bool) {
	m, ok := s.covariates[name]
	return m, ok
}

// relations used internally; re-exported here to avoid every caller
// importing twopath just for the three constants.
const (
	relOut   = twopath.Out
	relIn    = twopath.In
	relMixed = twopath.Mixed
)
