package ioadapter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergmcore/digraph"
)

// ReadPajek parses a Pajek arc-list file: a `*vertices N` header,
// optional vertex-label lines, an `*arcs` marker, then `tail head` lines
// using Pajek's 1-based node numbering. Node IDs are renumbered to
// 0..N-1 on load rather than preserving the file's own numbering.
func ReadPajek(r io.Reader) (*digraph.Graph, error) {
	scanner := bufio.NewScanner(r)
	var n int32 = -1
	var g *digraph.Graph
	inArcs := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "*vertices"):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: malformed *vertices header %q", ErrMalformedPajek, line)
			}
			count, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedPajek, err)
			}
			n = int32(count)
			g = digraph.NewGraph(n)
			inArcs = false
			continue
		case strings.HasPrefix(lower, "*arcs"):
			inArcs = true
			continue
		case strings.HasPrefix(lower, "*"):
			// *edges or other sections this engine does not model;
			// skip lines until the next recognized marker.
			inArcs = false
			continue
		}

		if g == nil {
			return nil, fmt.Errorf("%w: data line before *vertices header", ErrMalformedPajek)
		}
		if !inArcs {
			// vertex label line, e.g. `1 "Alice"`; ids are implicit from
			// position and this engine has no vertex-label storage.
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: malformed arc line %q", ErrMalformedPajek, line)
		}
		tail, err := parsePajekID(fields[0], n)
		if err != nil {
			return nil, err
		}
		head, err := parsePajekID(fields[1], n)
		if err != nil {
			return nil, err
		}
		if err := g.InsertArc(tail, head); err != nil {
			return nil, fmt.Errorf("%w: arc %d->%d: %v", ErrMalformedPajek, tail, head, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: missing *vertices header", ErrMalformedPajek)
	}
	return g, nil
}

func parsePajekID(field string, n int32) (int32, error) {
	oneBased, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedPajek, err)
	}
	id := int32(oneBased - 1)
	if id < 0 || id >= n {
		return 0, fmt.Errorf("%w: %d", ErrNodeIDOutOfRange, oneBased)
	}
	return id, nil
}

// WritePajek writes g as a Pajek arc-list file, the inverse of
// ReadPajek: 0-based internal IDs are shifted back to Pajek's 1-based
// numbering.
func WritePajek(w io.Writer, g *digraph.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "*vertices %d\n", g.N()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, "*arcs"); err != nil {
		return err
	}
	for _, arc := range g.Arcs() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", arc.Tail+1, arc.Head+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}
