package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/ergmcore/config"
	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/digraph/twopath"
	"github.com/katalvlaran/ergmcore/ioadapter"
)

// denseTwoPathLimit is the node count below which loadGraph attaches the
// O(1)-query Dense two-path backend; above it, Sparse trades query speed
// for memory the Dense backend cannot afford at that scale (see
// digraph/twopath/dense.go's own doc comment on the same tradeoff).
const denseTwoPathLimit = 20000

// loadGraph assembles a *digraph.Graph from a Config: the arc list is
// mandatory, the four attribute tables and the zone file are all
// optional collaborators attached only when the corresponding config
// key is non-empty.
func loadGraph(cfg *config.Config) (*digraph.Graph, error) {
	arcFile, err := os.Open(cfg.ArclistFile)
	if err != nil {
		return nil, fmt.Errorf("ergmcore: opening arclistFile: %w", err)
	}
	defer arcFile.Close()

	g, err := ioadapter.ReadPajek(arcFile)
	if err != nil {
		return nil, fmt.Errorf("ergmcore: reading arclistFile: %w", err)
	}

	// ReadPajek has already inserted every arc, so the index is attached
	// after the fact and must be rebuilt from scratch once (digraph's
	// WithTwoPathIndex only guarantees consistency for arcs inserted
	// afterward; see its doc comment).
	if g.N() <= denseTwoPathLimit {
		idx := twopath.NewDense(g.N())
		idx.Rebuild(g)
		g = g.WithTwoPathIndex(idx)
	} else {
		idx := twopath.NewSparse()
		idx.Rebuild(g)
		g = g.WithTwoPathIndex(idx)
	}

	if attrs, err := loadAttributes(cfg, g.N()); err != nil {
		return nil, err
	} else if attrs != nil {
		g = g.WithAttributes(attrs)
	}

	if cfg.ZoneFile != "" {
		zf, err := os.Open(cfg.ZoneFile)
		if err != nil {
			return nil, fmt.Errorf("ergmcore: opening zoneFile: %w", err)
		}
		defer zf.Close()

		zone, err := ioadapter.ReadZoneFile(zf, g.N())
		if err != nil {
			return nil, fmt.Errorf("ergmcore: reading zoneFile: %w", err)
		}
		snow, err := digraph.NewSnowballMeta(g, zone)
		if err != nil {
			return nil, fmt.Errorf("ergmcore: building snowball metadata: %w", err)
		}
		g = g.WithSnowball(snow)
	}

	return g, nil
}

func loadAttributes(cfg *config.Config, n int32) (*digraph.NodeAttributes, error) {
	if cfg.BinattrFile == "" && cfg.CatattrFile == "" && cfg.ContattrFile == "" && cfg.SetattrFile == "" {
		return nil, nil
	}
	attrs := digraph.NewNodeAttributes(n)

	loaders := []struct {
		path string
		load func(r io.Reader, a *digraph.NodeAttributes, n int32) error
	}{
		{cfg.BinattrFile, ioadapter.LoadBinaryAttributes},
		{cfg.CatattrFile, ioadapter.LoadCategoricalAttributes},
		{cfg.ContattrFile, ioadapter.LoadContinuousAttributes},
		{cfg.SetattrFile, ioadapter.LoadSetAttributes},
	}
	for _, l := range loaders {
		if l.path == "" {
			continue
		}
		f, err := os.Open(l.path)
		if err != nil {
			return nil, fmt.Errorf("ergmcore: opening %q: %w", l.path, err)
		}
		err = l.load(f, attrs, n)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("ergmcore: loading %q: %w", l.path, err)
		}
	}
	return attrs, nil
}
