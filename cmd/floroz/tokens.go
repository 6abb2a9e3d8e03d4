package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"floroz/pkg/config"
	"floroz/pkg/lexer"
	"floroz/pkg/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Print the token stream of a source file",
	Long: `Tokenizes a source file (or stdin) and prints every token with its
kind, text and position.

Examples:
  floroz tokens main.fz
  floroz tokens -o json main.fz
  echo 'let x = 1' | floroz tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	start := time.Now()
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return sourceError(cmd.ErrOrStderr(), name, source, err)
	}
	pterm.Debug.Printfln("tokenized %s: %d tokens in %s", name, len(tokens), time.Since(start))

	return renderTokens(cmd.OutOrStdout(), tokens, cfg.Output)
}

// tokenRecord is the serialized form of a token.
type tokenRecord struct {
	Kind       string `json:"kind" yaml:"kind"`
	Text       string `json:"text" yaml:"text"`
	Line       int    `json:"line" yaml:"line"`
	Column     int    `json:"column" yaml:"column"`
	AfterBreak bool   `json:"afterBreak,omitempty" yaml:"afterBreak,omitempty"`
}

func renderTokens(w io.Writer, tokens []token.Token, format string) error {
	switch format {
	case config.OutputJSON, config.OutputYAML:
		records := make([]tokenRecord, 0, len(tokens))
		for _, tok := range tokens {
			records = append(records, tokenRecord{
				Kind:       tok.Kind.String(),
				Text:       tok.Text,
				Line:       tok.Pos.Line,
				Column:     tok.Pos.Column,
				AfterBreak: tok.AfterBreak,
			})
		}
		return encode(w, records, format)
	}

	data := pterm.TableData{{"Kind", "Text", "Position", "Break"}}
	for _, tok := range tokens {
		brk := ""
		if tok.AfterBreak {
			brk = "yes"
		}
		data = append(data, []string{tok.Kind.String(), strconv.Quote(tok.Text), tok.Pos.String(), brk})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

// encode writes v as indented JSON or as YAML.
func encode(w io.Writer, v interface{}, format string) error {
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
