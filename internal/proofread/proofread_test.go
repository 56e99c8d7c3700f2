package proofread

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("package x\n"), 0o600))
	}
	return root
}

func sampleTree(t *testing.T) string {
	return writeTree(t,
		"abs_diff.go",
		"abs_diff_test.go",
		"doc.go",
		"infix.go",
		"infix_test.go",
		"kind.go",
		"README.md",
		"cmd/tool/main.go",
		"internal/walk/walk.go",
		"internal/walk/walk_test.go",
		"_examples/ref/ref.go",
		".git/hooks/hook.go",
		"testdata/fixture.go",
	)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	cfg := Defaults
	report, err := Walk(sampleTree(t), &cfg)
	require.NoError(t, err)

	require.Equal(t, []Entry{
		{Name: "abs_diff.go", Stem: "abs_diff", Path: "abs_diff.go", HasTest: true},
		{Name: "main.go", Stem: "main", Path: "cmd/tool/main.go"},
		{Name: "doc.go", Stem: "doc", Path: "doc.go"},
		{Name: "infix.go", Stem: "infix", Path: "infix.go", HasTest: true},
		{Name: "walk.go", Stem: "walk", Path: "internal/walk/walk.go", HasTest: true},
		{Name: "kind.go", Stem: "kind", Path: "kind.go"},
	}, report.Entries)
	require.Equal(t, []string{"kind.go"}, report.Missing)
}

func TestWalkIgnore(t *testing.T) {
	t.Parallel()

	cfg := Config{Ignore: []string{"cmd/**", "k*.go"}, Format: FormatText}
	report, err := Walk(sampleTree(t), &cfg)
	require.NoError(t, err)

	var paths []string
	for _, e := range report.Entries {
		paths = append(paths, e.Path)
	}
	require.Equal(t, []string{"abs_diff.go", "doc.go", "infix.go", "internal/walk/walk.go"}, paths)
	require.Equal(t, []string{"doc.go"}, report.Missing)
}

func TestWalkBadGlob(t *testing.T) {
	t.Parallel()

	cfg := Config{Ignore: []string{"["}}
	_, err := Walk(sampleTree(t), &cfg)
	require.ErrorIs(t, err, doublestar.ErrBadPattern)
}

func TestWalkMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := Walk(filepath.Join(t.TempDir(), "nope"), &Defaults)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to walk directory")
}

func TestWrite(t *testing.T) {
	t.Parallel()

	report := &Report{
		Entries: []Entry{
			{Name: "abs_diff.go", Stem: "abs_diff", Path: "abs_diff.go", HasTest: true},
			{Name: "kind.go", Stem: "kind", Path: "kind.go"},
		},
		Missing: []string{"kind.go"},
	}

	var text bytes.Buffer
	require.NoError(t, Write(&text, report, FormatText))
	require.Equal(t, "abs_diff.go abs_diff\nkind.go kind\n", text.String())

	var out bytes.Buffer
	require.NoError(t, Write(&out, report, FormatYAML))
	golden.Assert(t, out.String(), "report.golden.yaml")

	require.EqualError(t, Write(&out, report, "json"), `unknown format "json"`)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(`
ignore:
  - "examples/**"
untested:
  - "debug_*.go"
format: yaml
`))
		require.NoError(t, err)
		require.Equal(t, &Config{
			Ignore:   []string{"examples/**"},
			Untested: []string{"debug_*.go"},
			Format:   FormatYAML,
		}, cfg)
	})

	t.Run("empty keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Defaults, *cfg)
	})

	t.Run("partial keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader("ignore: [\"x.go\"]\n"))
		require.NoError(t, err)
		require.Equal(t, []string{"x.go"}, cfg.Ignore)
		require.Equal(t, Defaults.Untested, cfg.Untested)
		require.Equal(t, FormatText, cfg.Format)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("format: xml\n"))
		require.EqualError(t, err, `unknown format "xml"`)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("ignore: {\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to unmarshal proofread config")
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := filepath.Join(dir, "proofread.yaml")
	require.NoError(t, os.WriteFile(p, []byte("format: yaml\n"), 0o600))

	cfg, err := LoadConfigFile(p)
	require.NoError(t, err)
	require.Equal(t, FormatYAML, cfg.Format)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
