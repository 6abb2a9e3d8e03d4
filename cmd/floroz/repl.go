package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"floroz/pkg/config"
	"floroz/pkg/parser"
	"floroz/pkg/version"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse lines interactively and print their syntax tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startREPL(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
	},
}

func startREPL(in io.Reader, out io.Writer, cfg *config.Config) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, version.String())
	fmt.Fprintln(out, "Type a statement and press Enter, 'exit' to quit")

	for {
		fmt.Fprint(out, cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit":
			return nil
		}

		program, err := parser.Parse(line, cfg.ParserOptions()...)
		if err != nil {
			pterm.Error.Println(sourceError(out, "repl", line, err))
			continue
		}

		if err := renderProgram(out, program, cfg.Output); err != nil {
			return err
		}
	}
}

