package config

// Config holds every recognized configuration key, typed and defaulted
// the way the parser fills them in.
type Config struct {
	UseIFDSampler bool
	UseTNTSampler bool
	IfdK          float64 `validate:"gte=0"`

	ACAS         float64 `validate:"gt=0"`
	ACAEE        float64 `validate:"gt=0"`
	CompC        float64 `validate:"gt=0"`
	Lambda       float64 `validate:"gt=0"`
	SamplerSteps int     `validate:"gt=0"`
	Ssteps       int     `validate:"gt=0"`
	EEsteps      int     `validate:"gt=0"`
	EEinnerSteps int     `validate:"gt=0"`

	ArclistFile  string `validate:"required"`
	BinattrFile  string
	CatattrFile  string
	ContattrFile string
	SetattrFile  string
	ZoneFile     string

	UseConditionalEstimation bool
	ForbidReciprocity        bool
	AllowLoops               bool

	StructParams          []string
	AttrParams            []string
	DyadicParams          []string
	AttrInteractionParams []string

	ThetaFilePrefix string
	DzAFilePrefix   string
	StatsFile       string
	SimNetFilePrefix string

	NumNodes                int `validate:"gte=0"`
	SampleSize              int `validate:"gte=0"`
	Interval                int `validate:"gte=0"`
	Burnin                  int `validate:"gte=0"`
	OutputSimulatedNetworks bool
}

// Default returns a Config with the conventional defaults for every key
// the input file may omit.
func Default() Config {
	return Config{
		ACAS: 0.1, ACAEE: 0.01, CompC: 0.3, Lambda: 2.0,
		SamplerSteps: 1000, Ssteps: 100, EEsteps: 500, EEinnerSteps: 100,
		IfdK: 0.1,
	}
}

// ConditionalEstimation reports whether a snowball zone file was supplied
// (its presence alone triggers conditional estimation) or the flag was
// set explicitly.
func (c Config) ConditionalEstimation() bool {
	return c.UseConditionalEstimation || c.ZoneFile != ""
}
