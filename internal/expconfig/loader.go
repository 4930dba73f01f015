package expconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var defaultKValues = []int{4, 8, 16, 32, 64, 128, 256}

const defaultMaxCores = 4

var validOrderings = map[string]bool{
	"natural": true,
	"random":  true,
	"random2": true,
	"random3": true,
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read experiment config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse experiment config YAML: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(c *Config) error {
	if len(c.Orderings) == 0 {
		return fmt.Errorf("config enables no orderings")
	}
	for name := range c.Orderings {
		if !validOrderings[name] {
			return fmt.Errorf("unknown ordering %q", name)
		}
	}
	if len(c.Configurations) == 0 {
		return fmt.Errorf("config has no configurations")
	}
	for i := range c.Configurations {
		conf := &c.Configurations[i]
		if conf.Algo == "" {
			return fmt.Errorf("configuration at index %d has no algo", i)
		}
		if len(conf.ToRun) == 0 {
			return fmt.Errorf("configuration %q has no to_run rows", conf.Algo)
		}
		if conf.MaxCores <= 0 {
			conf.MaxCores = defaultMaxCores
		}
		for _, hp := range conf.Hyperparams {
			if hp.Name == "" {
				return fmt.Errorf("configuration %q has a hyperparam without a name", conf.Algo)
			}
		}
	}
	for set, sc := range c.Sets {
		for _, k := range sc.K {
			if k < 1 {
				return fmt.Errorf("set %q has invalid k %d", set, k)
			}
		}
	}
	return nil
}

// SetFor returns the set configuration for name, falling back to the default
// k list when the set is not configured explicitly.
func (c *Config) SetFor(name string) SetConfig {
	if sc, ok := c.Sets[name]; ok && len(sc.K) > 0 {
		return sc
	}
	return SetConfig{K: defaultKValues}
}

// DefaultServer derives a server label from the hostname, keeping the last
// three characters the way the experiment machines are numbered.
func DefaultServer() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "local"
	}
	if len(host) > 3 {
		return host[len(host)-3:]
	}
	return host
}
