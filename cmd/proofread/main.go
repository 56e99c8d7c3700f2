// Command proofread lists the Go source files of a tree as "name stem" pairs
// and reports the ones that have no _test.go companion.
//
//	proofread                      # text report of the current directory
//	proofread -f yaml ./internal   # YAML report of one subtree
//	proofread --strict             # exit 1 when a file has no test
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alexshd/assertly/internal/proofread"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("proofread failed", "err", err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "proofread",
		Usage:     "List Go source files and check that each one is tested",
		ArgsUsage: "[root]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the proofread config file",
				Sources: cli.EnvVars("PROOFREAD_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format, text or yaml (overrides the config file)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail when a source file has no _test.go companion",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.Bool("verbose"))
			return ctx, nil
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return errors.New("at most one root argument is allowed")
	}
	root := "."
	if cmd.Args().Len() == 1 {
		root = cmd.Args().First()
	}

	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	format := cfg.Format
	if f := cmd.String("format"); f != "" {
		format = f
	}

	slog.Debug("walking", "root", root, "ignore", cfg.Ignore, "untested", cfg.Untested)
	report, err := proofread.Walk(root, cfg)
	if err != nil {
		return err
	}
	slog.Debug("walked", "files", len(report.Entries), "missing_tests", len(report.Missing))

	if err := proofread.Write(cmd.Writer, report, format); err != nil {
		return err
	}

	for _, p := range report.Missing {
		slog.Warn("no test file", "path", p)
	}
	if cmd.Bool("strict") && len(report.Missing) > 0 {
		return errors.Errorf("%d files have no test", len(report.Missing))
	}
	return nil
}

func loadConfig(path string) (*proofread.Config, error) {
	if path == "" {
		cfg := proofread.Defaults
		return &cfg, nil
	}
	return proofread.LoadConfigFile(path)
}
