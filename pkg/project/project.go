package project

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/pseudomuto/snowdiff/pkg/config"
	"github.com/pseudomuto/snowdiff/pkg/consts"
	"github.com/pseudomuto/snowdiff/pkg/report"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed embed/main.sql
	defaultMainSQL []byte

	//go:embed embed/snowdiff.yaml
	defaultConfig []byte

	image = fstest.MapFS{
		"ddl":                    {Mode: os.ModeDir | consts.ModeDir},
		"ddl/source":             {Mode: os.ModeDir | consts.ModeDir},
		"ddl/source/main.sql":    {Data: defaultMainSQL},
		"ddl/target":             {Mode: os.ModeDir | consts.ModeDir},
		"ddl/target/main.sql":    {Data: defaultMainSQL},
		consts.DefaultConfigFile: {Data: defaultConfig},
	}
)

type (
	// InitOptions contains options for project initialization
	InitOptions struct {
		// Format overrides the default report format written to snowdiff.yaml
		Format string
	}

	Project struct {
		root   string
		config *config.Config
	}
)

// New creates a Project rooted at path, which must be an existing directory.
//
// Example:
//
//	p := project.New("/path/to/ddl-repo")
//	if err := p.Initialize(project.InitOptions{}); err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(p.Config().Comparisons[0].Source) // ddl/source
func New(path string) *Project {
	return &Project{root: path}
}

// Initialize creates the missing parts of the standard layout and loads the resulting
// snowdiff.yaml. It is idempotent: existing files and directories are never modified, except
// that a non-empty Format is written to the config.
func (p *Project) Initialize(options InitOptions) error {
	if err := p.ensureDirectory(); err != nil {
		return err
	}

	for path, entry := range image {
		fullPath := filepath.Join(p.root, path)

		if _, err := os.Stat(fullPath); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to stat %s", fullPath)
		}

		if entry.Mode.IsDir() {
			if err := os.MkdirAll(fullPath, entry.Mode.Perm()); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", fullPath)
			}

			continue
		}

		parentDir := filepath.Dir(fullPath)
		if err := os.MkdirAll(parentDir, consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create parent directory %s", parentDir)
		}

		if err := os.WriteFile(fullPath, entry.Data, consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write file %s", fullPath)
		}
	}

	configPath := p.ConfigPath()
	cfg, err := config.LoadConfigFile(configPath)
	if err != nil {
		return errors.Wrapf(err, "failed to load %s", consts.DefaultConfigFile)
	}

	if options.Format != "" {
		format, err := report.ParseFormat(options.Format)
		if err != nil {
			return err
		}

		cfg.Format = format
		if err := writeConfig(configPath, cfg); err != nil {
			return err
		}
	}

	p.config = cfg
	return nil
}

// Config returns the configuration loaded by Initialize, or nil before it has run.
func (p *Project) Config() *config.Config {
	return p.config
}

// ConfigPath returns the location of the project's snowdiff.yaml.
func (p *Project) ConfigPath() string {
	return filepath.Join(p.root, consts.DefaultConfigFile)
}

func (p *Project) ensureDirectory() error {
	dir, err := os.Stat(p.root)
	if err != nil {
		return errors.Wrapf(err, "failed to stat dir: %s", p.root)
	}

	if !dir.IsDir() {
		return errors.Errorf("%s is not a directory", p.root)
	}

	return nil
}

func writeConfig(path string, cfg *config.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open config file for writing: %s", path)
	}
	defer func() { _ = f.Close() }()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to write updated config")
	}

	return errors.Wrap(encoder.Close(), "failed to close yaml encoder")
}
