package config

import (
	"strings"

	"github.com/katalvlaran/ergmcore/stats"
)

// BuildSelection assembles structParams, attrParams, dyadicParams and
// attrInteractionParams — lists of statistic names with optional
// (attribute) qualifiers — into one stats.Selection. The config file's
// `name(attr)` / `name(attr1,attr2)` qualifier syntax is
// translated to stats.ParseSelection's `name:attr` syntax before
// dispatch; the two packages are kept independent so stats never has to
// know about the config file's own notation.
func (c Config) BuildSelection(lambda float64) (*stats.Selection, error) {
	all := make([]string, 0, len(c.StructParams)+len(c.AttrParams)+len(c.DyadicParams)+len(c.AttrInteractionParams))
	all = append(all, c.StructParams...)
	all = append(all, c.AttrParams...)
	all = append(all, c.DyadicParams...)
	all = append(all, c.AttrInteractionParams...)

	translated := make([]string, len(all))
	for i, name := range all {
		translated[i] = translateQualifier(name)
	}
	return stats.ParseSelection(translated, lambda)
}

// translateQualifier rewrites "name(a)" / "name(a,b)" to "name:a" /
// "name:a,b"; a bare name passes through unchanged.
func translateQualifier(name string) string {
	open := strings.IndexByte(name, '(')
	if open == -1 {
		return name
	}
	shut := strings.LastIndexByte(name, ')')
	if shut == -1 || shut < open {
		return name
	}
	return name[:open] + ":" + name[open+1:shut]
}
