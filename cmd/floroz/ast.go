package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"floroz/pkg/ast"
	"floroz/pkg/config"
	"floroz/pkg/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file|-]",
	Short: "Print the syntax tree of a source file",
	Long: `Parses a source file (or stdin) and prints the program tree.

The text format prints the program in a normalized, fully parenthesized
form. The json and yaml formats print ESTree-style nodes.

Examples:
  floroz ast main.fz
  floroz ast -o yaml main.fz`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAST,
}

func runAST(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	program, err := parseSource(cmd.ErrOrStderr(), name, source, cfg)
	if err != nil {
		return err
	}

	return renderProgram(cmd.OutOrStdout(), program, cfg.Output)
}

func parseSource(errw io.Writer, name, source string, cfg *config.Config) (*ast.Program, error) {
	start := time.Now()
	program, err := parser.Parse(source, cfg.ParserOptions()...)
	if err != nil {
		return nil, sourceError(errw, name, source, err)
	}
	pterm.Debug.Printfln("parsed %s: %d statements in %s", name, len(program.Body), time.Since(start))
	return program, nil
}

func renderProgram(w io.Writer, program *ast.Program, format string) error {
	switch format {
	case config.OutputJSON, config.OutputYAML:
		return encode(w, ast.ToMap(program), format)
	}

	_, err := fmt.Fprintln(w, program.String())
	return err
}
