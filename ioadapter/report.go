package ioadapter

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Report is the end-of-run summary written alongside the raw trajectory
// columns: final theta, its per-component scale from Algorithm S, step
// counts, and the RNG seed that produced the run — enough for a human
// to sanity-check a run without re-parsing the trajectory file.
type Report struct {
	RunID          string    `yaml:"run_id"`
	FinalTheta     []float64 `yaml:"final_theta"`
	ScaleD         []float64 `yaml:"scale_d"`
	Ssteps         int       `yaml:"s_steps"`
	EEsteps        int       `yaml:"ee_steps"`
	EEinnerSteps   int       `yaml:"ee_inner_steps"`
	FinalDzANorm   float64   `yaml:"final_dza_norm"`
	AcceptanceRate float64   `yaml:"final_acceptance_rate"`
	Seed           uint64    `yaml:"seed"`
}

// WriteReport marshals r as YAML to w.
func WriteReport(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// ReadReport is the inverse of WriteReport, useful for tooling that
// compares two runs' summaries.
func ReadReport(r io.Reader) (Report, error) {
	var rep Report
	dec := yaml.NewDecoder(r)
	err := dec.Decode(&rep)
	return rep, err
}
