// Command minicc is a small driver for the front-end library: it lexes C
// source files and reports diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minicc/minicc/lexer"
	"github.com/minicc/minicc/reporter"
	"github.com/minicc/minicc/token"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "minicc",
		Short:         "minicc is a C front end: lexer, AST, diagnostics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(newLexCmd(), newCheckCmd())
	return root
}

func newLexCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "lex [flags] file.c",
		Short: "print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			engine := reporter.NewEngine(reporter.NewWriter(cmd.ErrOrStderr()).WithColors(!color.NoColor))
			lex, err := lexer.NewFromFile(args[0], engine)
			if err != nil {
				return err
			}
			for _, tok := range lex.Tokenize() {
				fmt.Fprintln(out, tok)
			}
			if engine.HasErrors() {
				return fmt.Errorf("%d error(s)", engine.ErrorCount())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write tokens to a file instead of stdout")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check file.c",
		Short: "lex a source file and report diagnostics with source excerpts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading source file: %w", err)
			}

			writer := reporter.NewWriter(cmd.ErrOrStderr()).WithColors(!color.NoColor)
			snippets := reporter.NewSnippets(writer, cmd.ErrOrStderr())
			snippets.AddSource(path, src)
			engine := reporter.NewEngine(snippets)

			lex := lexer.New(src, path, engine)
			toks := lex.Tokenize()

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tokens, %d error(s), %d warning(s)\n",
				path, countNonEOF(toks), engine.ErrorCount(), engine.WarningCount())
			if engine.HasErrors() {
				return reporter.Errorf(token.Location{File: path, Line: 1, Column: 1},
					"%d error(s) found", engine.ErrorCount())
			}
			return nil
		},
	}
}

func countNonEOF(toks []token.Token) int {
	n := 0
	for _, t := range toks {
		if t.Kind != token.EOF {
			n++
		}
	}
	return n
}
