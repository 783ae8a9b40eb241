// Command idpctl loads a vocabulary and, optionally, a structure from
// YAML (see package persist), derives the sorts of a formula written in
// a tiny s-expression surface syntax, and prints the resulting
// diagnostics.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/persist"
	"github.com/KULeuven-KRR/idp-core/registry"
	"github.com/KULeuven-KRR/idp-core/syntax"
)

func main() {
	app := &cli.Command{
		Name:  "idpctl",
		Usage: "inspect vocabularies, structures and formulas",
		Commands: []*cli.Command{
			checkCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "idpctl: %v\n", err)
		os.Exit(1)
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "derive sorts for a formula against a vocabulary",
		ArgsUsage: "<formula>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "vocab", Usage: "path to a vocabulary YAML file", Required: true},
			&cli.StringFlag{Name: "structure", Usage: "path to a structure YAML file (optional)"},
			&cli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := buildLogger(cmd.Bool("verbose"))
			defer logger.Sync()

			if cmd.Args().Len() < 1 {
				return fmt.Errorf("usage: idpctl check --vocab <file> <formula>")
			}
			src := cmd.Args().Get(0)

			voc, err := persist.LoadVocabulary(cmd.String("vocab"))
			if err != nil {
				return fmt.Errorf("loading vocabulary: %w", err)
			}
			logger.Debug("loaded vocabulary", zap.String("name", voc.Name))

			if path := cmd.String("structure"); path != "" {
				if _, err := persist.LoadStructure(path, voc); err != nil {
					return fmt.Errorf("loading structure: %w", err)
				}
				logger.Debug("loaded structure", zap.String("path", path))
			}

			home := registry.NewNamespace("", nil)
			scope := registry.NewScope(home)
			scope.UseVocabulary(voc)

			elems := element.NewFactory()
			f, err := newSexprParser(src, scope, elems).ParseFormula()
			if err != nil {
				return fmt.Errorf("parsing formula: %w", err)
			}

			sink := &diag.Sink{}
			syntax.DeriveSorts(voc, f, sink)
			syntax.CheckSorts(voc, f, sink)

			printDiagnostics(os.Stderr, sink)
			if sink.HasErrors() {
				return fmt.Errorf("%d diagnostic(s) reported", sink.Count())
			}
			fmt.Fprintln(os.Stdout, "ok")
			return nil
		},
	}
}

// buildLogger mirrors cmd/scaf-lsp's stderr console-encoder setup,
// scaled down to a CLI's verbose/quiet toggle instead of an LSP trace
// level.
func buildLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

func colorEnabled() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func printDiagnostics(w *os.File, sink *diag.Sink) {
	color := colorEnabled()
	for _, e := range sink.Entries() {
		if color {
			fmt.Fprintf(w, "\x1b[31m%s\x1b[0m: %s", e.Kind, e.Message)
		} else {
			fmt.Fprintf(w, "%s: %s", e.Kind, e.Message)
		}
		if e.Pos.Filename != "" || e.Pos.Line != 0 {
			fmt.Fprintf(w, " (at %s)", e.Pos)
		}
		fmt.Fprintln(w)
	}
}
