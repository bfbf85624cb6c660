package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/snowdiff/pkg/config"
	"github.com/pseudomuto/snowdiff/pkg/consts"
	"github.com/stretchr/testify/require"
)

// Fixture is an isolated directory holding DDL files and, optionally, a snowdiff.yaml.
type Fixture struct {
	Dir    string
	Config *config.Config
	t      *testing.T
}

// TestProject creates an empty fixture in a temp directory.
func TestProject(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{Dir: t.TempDir(), t: t}
}

// WithFile writes content to name, relative to the fixture directory. Parent directories are
// created as needed.
func (f *Fixture) WithFile(name, content string) *Fixture {
	f.t.Helper()

	path := f.Path(name)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), consts.ModeDir), "Failed to create directory for %s", name)
	require.NoError(f.t, os.WriteFile(path, []byte(content), consts.ModeFile), "Failed to write file: %s", name)

	return f
}

// WithFiles writes every name/content pair.
func (f *Fixture) WithFiles(files map[string]string) *Fixture {
	f.t.Helper()

	for name, content := range files {
		f.WithFile(name, content)
	}

	return f
}

// WithConfig writes content to snowdiff.yaml and loads it into Config.
func (f *Fixture) WithConfig(content string) *Fixture {
	f.t.Helper()

	f.WithFile(consts.DefaultConfigFile, content)

	cfg, err := config.LoadConfigFile(f.ConfigPath())
	require.NoError(f.t, err, "Failed to load config file")
	f.Config = cfg

	return f
}

// Path returns name joined to the fixture directory.
func (f *Fixture) Path(name string) string {
	return filepath.Join(f.Dir, name)
}

// ConfigPath returns the path of the fixture's snowdiff.yaml.
func (f *Fixture) ConfigPath() string {
	return f.Path(consts.DefaultConfigFile)
}

// ReadFile returns the content of name, relative to the fixture directory.
func (f *Fixture) ReadFile(name string) string {
	f.t.Helper()

	content, err := os.ReadFile(f.Path(name))
	require.NoError(f.t, err, "Failed to read file: %s", name)

	return string(content)
}
