package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"floroz/pkg/config"
	"floroz/pkg/lexer"
	"floroz/pkg/parser"
	"floroz/pkg/token"
)

func setupLogging(cfg *config.Config, verbose bool) {
	if verbose {
		pterm.EnableDebugMessages()
	}
	if !cfg.Color {
		pterm.DisableColor()
	}
}

// readSource returns the name and contents of the input named by args: a
// file path, or stdin for "-" or no argument.
func readSource(in io.Reader, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return args[0], string(data), nil
}

// sourceError prints the offending source line of a lexical or syntax error
// to w and returns err prefixed with the input name. Other errors are
// returned unchanged.
func sourceError(w io.Writer, name, source string, err error) error {
	var (
		pos  token.Pos
		kind string
		lerr *lexer.Error
		serr *parser.SyntaxError
	)
	switch {
	case errors.As(err, &lerr):
		pos, kind = lerr.Pos, "Token"
	case errors.As(err, &serr):
		pos, kind = serr.Pos, "Syntax"
	default:
		return err
	}

	pterm.Debug.Printfln("%s error in %s at %s", kind, name, pos)
	displayCodeSelection(w, source, pos)

	return fmt.Errorf("%s:%w", name, err)
}

// displayCodeSelection writes the line containing pos with a caret under the
// column.
func displayCodeSelection(w io.Writer, source string, pos token.Pos) {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return
	}

	line := strings.TrimRight(lines[pos.Line-1], "\r")
	gutter := fmt.Sprintf("%4d | ", pos.Line)

	fmt.Fprintln(w)
	fmt.Fprintln(w, gutter+line)

	// Tabs are kept so the caret lines up with the source.
	pad := make([]byte, 0, pos.Column)
	for i := 0; i < pos.Column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			pad = append(pad, '\t')
		} else {
			pad = append(pad, ' ')
		}
	}
	fmt.Fprintln(w, strings.Repeat(" ", len(gutter))+string(pad)+"^")
	fmt.Fprintln(w)
}
