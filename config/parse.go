package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errUnknownKeyLocal = errors.New("config: no such key")

// Parse reads a `key = value` configuration file from r into a Config
// seeded with Default(), then runs Validate against the result.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w at line %d: %q", ErrMalformedLine, lineNo, line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if seen[key] {
			return nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateKey, key, lineNo)
		}
		seen[key] = true

		if err := assign(&cfg, key, value); err != nil {
			if errors.Is(err, errUnknownKeyLocal) {
				return nil, fmt.Errorf("%w: %q at line %d", ErrUnknownKey, key, lineNo)
			}
			return nil, fmt.Errorf("config: invalid value %q for %q at line %d: %v", value, key, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func assign(cfg *Config, key, value string) error {
	switch key {
	case "useifdsampler":
		return assignBool(&cfg.UseIFDSampler, value)
	case "usetntsampler":
		return assignBool(&cfg.UseTNTSampler, value)
	case "ifd_k":
		return assignFloat(&cfg.IfdK, value)
	case "aca_s":
		return assignFloat(&cfg.ACAS, value)
	case "aca_ee":
		return assignFloat(&cfg.ACAEE, value)
	case "compc":
		return assignFloat(&cfg.CompC, value)
	case "lambda":
		return assignFloat(&cfg.Lambda, value)
	case "samplersteps":
		return assignInt(&cfg.SamplerSteps, value)
	case "ssteps":
		return assignInt(&cfg.Ssteps, value)
	case "eesteps":
		return assignInt(&cfg.EEsteps, value)
	case "eeinnersteps":
		return assignInt(&cfg.EEinnerSteps, value)
	case "arclistfile":
		cfg.ArclistFile = value
	case "binattrfile":
		cfg.BinattrFile = value
	case "catattrfile":
		cfg.CatattrFile = value
	case "contattrfile":
		cfg.ContattrFile = value
	case "setattrfile":
		cfg.SetattrFile = value
	case "zonefile":
		cfg.ZoneFile = value
	case "useconditionalestimation":
		return assignBool(&cfg.UseConditionalEstimation, value)
	case "forbidreciprocity":
		return assignBool(&cfg.ForbidReciprocity, value)
	case "allowloops":
		return assignBool(&cfg.AllowLoops, value)
	case "structparams":
		cfg.StructParams = splitList(value)
	case "attrparams":
		cfg.AttrParams = splitList(value)
	case "dyadicparams":
		cfg.DyadicParams = splitList(value)
	case "attrinteractionparams":
		cfg.AttrInteractionParams = splitList(value)
	case "thetafileprefix":
		cfg.ThetaFilePrefix = value
	case "dzafileprefix":
		cfg.DzAFilePrefix = value
	case "statsfile":
		cfg.StatsFile = value
	case "simnetfileprefix":
		cfg.SimNetFilePrefix = value
	case "numnodes":
		return assignInt(&cfg.NumNodes, value)
	case "samplesize":
		return assignInt(&cfg.SampleSize, value)
	case "interval":
		return assignInt(&cfg.Interval, value)
	case "burnin":
		return assignInt(&cfg.Burnin, value)
	case "outputsimulatednetworks":
		return assignBool(&cfg.OutputSimulatedNetworks, value)
	default:
		return errUnknownKeyLocal
	}
	return nil
}

func assignBool(dst *bool, value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func assignFloat(dst *float64, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func assignInt(dst *int, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// splitList splits a comma-separated parameter list, trimming
// whitespace around each entry. A comma inside an open parenthesis stays
// part of its entry, so "name(attr1,attr2)" is one entry.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	pending := ""
	for _, p := range parts {
		if pending != "" {
			p = pending + "," + p
		}
		if strings.Count(p, "(") > strings.Count(p, ")") {
			pending = p
			continue
		}
		pending = ""
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if pending != "" {
		out = append(out, strings.TrimSpace(pending))
	}
	return out
}
