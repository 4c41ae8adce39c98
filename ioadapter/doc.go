// Package ioadapter holds the engine's file formats: it translates
// between in-memory types (digraph.Graph, estimator.Trajectory, plain
// statistics rows) and the plain-text formats the engine speaks on disk
// — Pajek arc lists, whitespace attribute tables, zone files,
// trajectory/stats columns, and a YAML summary report. It works on
// io.Reader/io.Writer; opening files is done by config (the config file)
// and cmd/ergmcore (everything else). The sampler's inner loop never
// touches a file.
package ioadapter

import "errors"

// Sentinel errors for malformed or inconsistent input: malformed
// Pajek, attribute rows not matching N, out-of-range node ID.
var (
	ErrMalformedPajek          = errors.New("ioadapter: malformed Pajek file")
	ErrNodeIDOutOfRange        = errors.New("ioadapter: node id out of range")
	ErrAttrRowCountMismatch    = errors.New("ioadapter: attribute table row count does not match N")
	ErrAttrColumnCountMismatch = errors.New("ioadapter: attribute table row has the wrong column count")
	ErrMalformedZoneFile       = errors.New("ioadapter: malformed zone file")
	ErrThetaSizeMismatch       = errors.New("ioadapter: theta vector length does not match the selection size")
)
