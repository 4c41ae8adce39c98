package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/ergmcore/config"
)

const sampleConfig = `
# sample run
arclistFile = network.net
binattrFile = attrs.txt
ACA_S = 0.2
ACA_EE = 0.02
compC = 0.25
samplerSteps = 500
Ssteps = 50
EEsteps = 200
EEinnerSteps = 50
useTNTsampler = true
structParams = arc, reciprocity
attrParams = sender(sex), matching(group)
numNodes = 20
sampleSize = 100
`

func TestParse_ReadsKnownKeysCaseInsensitively(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.ArclistFile != "network.net" {
		t.Fatalf("expected arclistFile=network.net, got %q", cfg.ArclistFile)
	}
	if !cfg.UseTNTSampler {
		t.Fatalf("expected useTNTsampler=true")
	}
	if cfg.NumNodes != 20 {
		t.Fatalf("expected numNodes=20, got %d", cfg.NumNodes)
	}
	if len(cfg.StructParams) != 2 || cfg.StructParams[1] != "reciprocity" {
		t.Fatalf("expected structParams [arc reciprocity], got %v", cfg.StructParams)
	}
}

func TestParse_UnknownKeyFails(t *testing.T) {
	_, err := config.Parse(strings.NewReader("arclistFile = a.net\nbogusKey = 1\n"))
	if !errors.Is(err, config.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestParse_ContradictorySamplerFlagsFails(t *testing.T) {
	body := "arclistFile = a.net\nuseIFDsampler = true\nuseTNTsampler = true\n"
	_, err := config.Parse(strings.NewReader(body))
	if !errors.Is(err, config.ErrContradictorySamplerFlags) {
		t.Fatalf("expected ErrContradictorySamplerFlags, got %v", err)
	}
}

func TestParse_ConditionalEstimationWithForbidReciprocityFails(t *testing.T) {
	body := "arclistFile = a.net\nzoneFile = zones.txt\nforbidReciprocity = true\n"
	_, err := config.Parse(strings.NewReader(body))
	if !errors.Is(err, config.ErrConditionalForbidReciprocity) {
		t.Fatalf("expected ErrConditionalForbidReciprocity, got %v", err)
	}
}

func TestParse_MissingArclistFileFails(t *testing.T) {
	_, err := config.Parse(strings.NewReader("numNodes = 10\n"))
	if !errors.Is(err, config.ErrMissingArclistFile) {
		t.Fatalf("expected ErrMissingArclistFile, got %v", err)
	}
}

func TestParse_LambdaOverridesDefault(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("arclistFile = a.net\nlambda = 3.5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Lambda != 3.5 {
		t.Fatalf("expected lambda=3.5, got %v", cfg.Lambda)
	}
}

func TestDefault_LambdaIsTwo(t *testing.T) {
	if config.Default().Lambda != 2.0 {
		t.Fatalf("expected default lambda=2.0, got %v", config.Default().Lambda)
	}
}

func TestLoad_ReadsFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.cfg")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ArclistFile != "network.net" {
		t.Fatalf("expected arclistFile=network.net, got %q", cfg.ArclistFile)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := config.Load("/nonexistent/path/run.cfg"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestBuildSelection_TranslatesQualifierSyntax(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel, err := cfg.BuildSelection(2.0)
	if err != nil {
		t.Fatalf("BuildSelection: %v", err)
	}
	if sel.P() != 4 {
		t.Fatalf("expected 4 statistics (2 struct + 2 attr), got %d", sel.P())
	}
}
