package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/report"
	"github.com/pseudomuto/snowdiff/pkg/schema"
	"gopkg.in/yaml.v3"
)

type (
	// Comparison names a pair of DDL inputs compared in batch mode. Paths may point at a single
	// file or a directory of .sql files and are resolved relative to the config file.
	Comparison struct {
		Name   string `yaml:"name"`
		Source string `yaml:"source"`
		Target string `yaml:"target"`
	}

	// Config represents the contents of snowdiff.yaml.
	Config struct {
		// Format is the default report format used when --format is not given
		Format report.Format `yaml:"format,omitempty"`

		// Aliases maps the first component of object names to a canonical name, for example
		// environment specific database names to a shared one
		Aliases map[string]string `yaml:"aliases,omitempty"`

		// Comparisons are run by the diff command when no source and target are given
		Comparisons []Comparison `yaml:"comparisons,omitempty"`

		dir string
	}
)

// LoadConfig parses a configuration from the provided io.Reader.
//
// An empty format defaults to text. Unknown formats and comparisons missing a name, source or
// target are rejected.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	aliases:
//	  analytics_prod: analytics
//	comparisons:
//	  - name: core
//	    source: ddl/dev
//	    target: ddl/prod
//	`))
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snowdiff config")
	}

	format, err := report.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, err
	}
	cfg.Format = format

	seen := make(map[string]bool, len(cfg.Comparisons))
	for i, c := range cfg.Comparisons {
		switch {
		case c.Name == "":
			return nil, errors.Errorf("comparison %d: name is required", i)
		case c.Source == "":
			return nil, errors.Errorf("comparison %s: source is required", c.Name)
		case c.Target == "":
			return nil, errors.Errorf("comparison %s: target is required", c.Name)
		case seen[c.Name]:
			return nil, errors.Errorf("comparison %s: defined more than once", c.Name)
		}
		seen[c.Name] = true
	}

	return &cfg, nil
}

// LoadConfigFile reads the configuration at path. Relative comparison paths are resolved against
// the directory containing the file.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}

	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Resolve returns path relative to the directory of the loaded config file. Absolute paths and
// configs not read from a file return path unchanged.
func (c *Config) Resolve(path string) string {
	if c == nil || c.dir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(c.dir, path)
}

// Normalizer returns the schema.Normalizer built from the configured aliases. It is safe to call on
// a nil Config.
func (c *Config) Normalizer() schema.Normalizer {
	if c == nil {
		return schema.NewNormalizer(nil)
	}

	return schema.NewNormalizer(c.Aliases)
}
