package expconfig

// Config is the declarative experiment description. Orderings map an
// ordering name to the graph sets enabled under it; configurations describe
// the algorithm instances to collect results for.
type Config struct {
	Server      string `yaml:"server,omitempty"`
	ResultsRoot string `yaml:"results_root,omitempty"`

	Orderings map[string]map[string]bool `yaml:"orderings"`

	// Sets overrides the partition counts per graph set. Sets without an
	// entry use the default k list.
	Sets map[string]SetConfig `yaml:"sets,omitempty"`

	// Graphs maps a base graph name to its total edge count. Reordered
	// variants of a graph share the base graph's count.
	Graphs map[string]uint64 `yaml:"graphs"`

	Configurations []Configuration `yaml:"configurations"`
}

type SetConfig struct {
	K []int `yaml:"k"`
}

// Configuration describes one algorithm binary and the parameter rows to
// collect. Each entry of ToRun holds whitespace-separated values matching
// Hyperparams in order.
type Configuration struct {
	Algo        string       `yaml:"algo"`
	MaxCores    int          `yaml:"max_cores,omitempty"`
	Hyperparams []Hyperparam `yaml:"hyperparams,omitempty"`
	Params      []FixedParam `yaml:"params,omitempty"`
	ToRun       []string     `yaml:"to_run"`
}

// Hyperparam names a tunable parameter and the short prefix used for it in
// derived algorithm instance names.
type Hyperparam struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
}

// FixedParam is a parameter passed unchanged to every run of a
// configuration. An empty value means a bare flag.
type FixedParam struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}
