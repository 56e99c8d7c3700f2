package proofread

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config controls which files Walk reports and which of them must have tests.
type Config struct {
	// Ignore lists doublestar globs, relative to the walked root, of files
	// left out of the report entirely.
	Ignore []string `yaml:"ignore"`

	// Untested lists globs of files that are reported but need no _test.go
	// companion, such as doc.go or build-tag switches.
	Untested []string `yaml:"untested"`

	// Format is the default output format, FormatText or FormatYAML.
	Format string `yaml:"format"`
}

// Defaults is used when no config file is given.
var Defaults = Config{
	Untested: []string{"**/doc.go", "**/main.go"},
	Format:   FormatText,
}

// LoadConfig decodes a YAML config from r. Fields left out keep their
// Defaults values.
//
//	ignore:
//	  - "examples/**"
//	untested:
//	  - "**/doc.go"
//	  - "debug_*.go"
//	format: yaml
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Defaults
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal proofread config")
	}

	switch cfg.Format {
	case FormatText, FormatYAML:
	default:
		return nil, errors.Errorf("unknown format %q", cfg.Format)
	}
	return &cfg, nil
}

// LoadConfigFile reads the config at path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config: %s", path)
	}
	defer f.Close()

	return LoadConfig(f)
}
