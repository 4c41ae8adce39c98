package stats

import (
	"fmt"
	"strings"
)

// catalog maps the config-file statistic name to its Kind and how many
// qualifier arguments (attribute/covariate names) it expects.
var catalog = map[string]struct {
	kind Kind
	args int
}{
	"arc":                           {Arc, 0},
	"reciprocity":                   {Reciprocity, 0},
	"alt_kstars_out":                {AltKStarsOut, 0},
	"alt_kstars_in":                 {AltKStarsIn, 0},
	"alt_ktriangle_transitive":      {AltKTriangleTransitive, 0},
	"alt_ktriangle_cyclic":          {AltKTriangleCyclic, 0},
	"alt_ktriangle_transitive_ties": {AltKTriangleTransitiveTies, 0},
	"alt_ktriangle_cyclic_ties":     {AltKTriangleCyclicTies, 0},
	"alt_twopath_out":               {AltTwoPathOut, 0},
	"alt_twopath_in":                {AltTwoPathIn, 0},
	"alt_twopath_mixed":             {AltTwoPathMixed, 0},
	"sender":                        {Sender, 1},
	"receiver":                      {Receiver, 1},
	"matching":                      {Matching, 1},
	"matching_reciprocity":          {MatchingReciprocity, 1},
	"continuous_diff":               {ContinuousDiff, 1},
	"dyadic_covariate":              {DyadicCovariate, 1},
	"attr_interaction":              {AttrInteraction, 2},
}

// ParseSelection builds a Selection from the config package's parsed
// statistic-name list. Each entry is either a bare name ("arc",
// "reciprocity", ...) or name:arg[,arg2] for statistics that need an
// attribute or covariate qualifier ("sender:sex", "attr_interaction:sex,age").
func ParseSelection(names []string, lambda float64) (*Selection, error) {
	items := make([]Statistic, 0, len(names))
	for _, raw := range names {
		name, args, err := splitStatName(raw)
		if err != nil {
			return nil, err
		}
		entry, ok := catalog[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStatistic, name)
		}
		if len(args) != entry.args {
			return nil, fmt.Errorf("%w: %q expects %d argument(s), got %d", ErrUnknownStatistic, name, entry.args, len(args))
		}
		stat := Statistic{Kind: entry.kind, Name: raw}
		switch entry.args {
		case 1:
			if entry.kind == DyadicCovariate {
				stat.Covariate = args[0]
			} else {
				stat.Attr = args[0]
			}
		case 2:
			stat.Attr, stat.Attr2 = args[0], args[1]
		}
		items = append(items, stat)
	}
	return NewSelection(items, lambda), nil
}

func splitStatName(raw string) (name string, args []string, err error) {
	parts := strings.SplitN(raw, ":", 2)
	name = strings.ToLower(strings.TrimSpace(parts[0]))
	if len(parts) == 1 {
		return name, nil, nil
	}
	for _, a := range strings.Split(parts[1], ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			return "", nil, fmt.Errorf("%w: empty argument in %q", ErrUnknownStatistic, raw)
		}
		args = append(args, a)
	}
	return name, args, nil
}
