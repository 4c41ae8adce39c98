//go:build ergmdebug

package digraph

// debugCheck panics with ErrInvariantViolation the instant a mutation
// leaves g inconsistent, turning a silent future corruption into an
// immediate, attributable failure. Only compiled into -tags ergmdebug
// builds; a release build never pays this O(N+M) cost per toggle.
func debugCheck(g *Graph) {
	if err := CheckInvariants(g); err != nil {
		panic(err)
	}
}
