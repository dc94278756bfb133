// Package config loads the optional YAML project manifest that the CLI
// consults for an entry file and default arguments. The decoder-based Load
// function follows the same gopkg.in/yaml.v3 idiom as the teacher
// interpreter's package.lock reader (its pkg/driver/lockfile.go: yaml.NewDecoder over an
// *os.File); the flexible scalar-or-sequence fields below are this
// manifest's own addition on top of that idiom.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the shape of a "minipy.yml" project manifest.
type Config struct {
	Name  string      `yaml:"name"`
	Entry string      `yaml:"entry"`
	Args  stringList  `yaml:"args"`
	Trace traceOption `yaml:"trace"`
}

// DefaultArgs returns the manifest's configured arguments as a plain slice.
func (c *Config) DefaultArgs() []string { return []string(c.Args) }

// stringList accepts either a single scalar string or a YAML sequence of
// strings.
type stringList []string

func (s *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var one string
		if err := value.Decode(&one); err != nil {
			return err
		}
		*s = stringList{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = stringList(many)
		return nil
	default:
		return fmt.Errorf("config: args must be a string or a list of strings")
	}
}

// traceOption accepts a bare boolean ("trace: true") for the common case.
type traceOption bool

func (t *traceOption) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err != nil {
		return err
	}
	*t = traceOption(b)
	return nil
}

// Load reads and parses a minipy.yml manifest from path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}
