package proofread

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/alexshd/assertly"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Entry is one Go source file found by Walk.
type Entry struct {
	// Name is the file name, e.g. "abs_diff.go".
	Name string `yaml:"name"`
	// Stem is Name without its extension, e.g. "abs_diff".
	Stem string `yaml:"stem"`
	// Path is the slash-separated path relative to the walked root.
	Path string `yaml:"path"`
	// HasTest reports whether <stem>_test.go sits next to the file.
	HasTest bool `yaml:"has_test"`
}

// Report is the result of Walk.
type Report struct {
	Entries []Entry `yaml:"entries"`
	// Missing holds the paths of entries that have no test and are not
	// exempted by Config.Untested.
	Missing []string `yaml:"missing_tests,omitempty"`
}

// Walk lists the non-test Go files below root in lexical order.
//
// Directories whose names start with "_" or "." and testdata directories are
// skipped, as the go tool does.
func Walk(root string, cfg *Config) (*Report, error) {
	var (
		report Report
		tests  = make(map[string]bool)
	)

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if !strings.HasSuffix(name, ".go") {
			return nil
		}
		if strings.HasSuffix(name, "_test.go") {
			tests[rel] = true
			return nil
		}

		ignored, err := matchAny(cfg.Ignore, rel)
		if err != nil {
			return err
		}
		if ignored {
			return nil
		}

		report.Entries = append(report.Entries, Entry{
			Name: name,
			Stem: strings.TrimSuffix(name, ".go"),
			Path: rel,
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", root)
	}

	for i := range report.Entries {
		e := &report.Entries[i]
		e.HasTest = tests[path.Join(path.Dir(e.Path), e.Stem+"_test.go")]
		if e.HasTest {
			continue
		}

		exempt, err := matchAny(cfg.Untested, e.Path)
		if err != nil {
			return nil, err
		}
		if !exempt {
			report.Missing = append(report.Missing, e.Path)
		}
	}

	return &report, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata"
}

// matchAny reports whether any of the globs matches rel.
func matchAny(globs []string, rel string) (bool, error) {
	for _, glob := range globs {
		ok, err := assertly.AssureGlobMatch(glob, rel)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Write prints the report to w in the given format. The text format is one
// "name stem" pair per line.
func Write(w io.Writer, report *Report, format string) error {
	switch format {
	case FormatText:
		for _, e := range report.Entries {
			if _, err := fmt.Fprintf(w, "%s %s\n", e.Name, e.Stem); err != nil {
				return errors.Wrap(err, "failed to write report")
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "failed to encode report")
		}
		return errors.Wrap(enc.Close(), "failed to encode report")
	}
	return errors.Errorf("unknown format %q", format)
}
