package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"floroz/pkg/ast"
	"floroz/pkg/config"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file|-]",
	Short: "Summarize declared functions and variables",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

type ProgramInsights struct {
	Functions []FunctionInfo `json:"functions" yaml:"functions"`
	Variables []VariableInfo `json:"variables" yaml:"variables"`
	Calls     int            `json:"calls" yaml:"calls"`
}

type FunctionInfo struct {
	Name       string   `json:"name" yaml:"name"`
	Parameters []string `json:"parameters" yaml:"parameters"`
	Line       int      `json:"line" yaml:"line"`
}

type VariableInfo struct {
	Kind        string `json:"kind" yaml:"kind"`
	Name        string `json:"name" yaml:"name"`
	Initialized bool   `json:"initialized" yaml:"initialized"`
	Line        int    `json:"line" yaml:"line"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	program, err := parseSource(cmd.ErrOrStderr(), name, source, cfg)
	if err != nil {
		return err
	}

	insights := analyzeProgram(program)
	if cfg.Output != config.OutputText {
		return encode(cmd.OutOrStdout(), insights, cfg.Output)
	}

	printFunctionInsights(cmd.OutOrStdout(), insights.Functions)
	printVariableInsights(cmd.OutOrStdout(), insights.Variables)
	fmt.Fprintf(cmd.OutOrStdout(), "Calls (%d)\n", insights.Calls)
	return nil
}

func analyzeProgram(program *ast.Program) ProgramInsights {
	insights := ProgramInsights{
		Functions: []FunctionInfo{},
		Variables: []VariableInfo{},
	}

	ast.Walk(program, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.FunctionDeclaration:
			params := make([]string, 0, len(n.Params))
			for _, p := range n.Params {
				params = append(params, p.Name)
			}
			insights.Functions = append(insights.Functions, FunctionInfo{
				Name:       n.ID.Name,
				Parameters: params,
				Line:       n.Pos().Line,
			})
		case *ast.VariableDeclaration:
			insights.Variables = append(insights.Variables, VariableInfo{
				Kind:        n.Kind.String(),
				Name:        n.ID.Name,
				Initialized: n.Init != nil,
				Line:        n.Pos().Line,
			})
		case *ast.CallExpression:
			insights.Calls++
		}
		return true
	})

	return insights
}

func printFunctionInsights(w io.Writer, functions []FunctionInfo) {
	fmt.Fprintf(w, "Functions (%d)\n", len(functions))
	if len(functions) == 0 {
		fmt.Fprintln(w, "  · No function declarations found.")
		return
	}

	for _, fn := range functions {
		fmt.Fprintf(w, "  · function %s(%s)  line %d\n", fn.Name, strings.Join(fn.Parameters, ", "), fn.Line)
	}
}

func printVariableInsights(w io.Writer, variables []VariableInfo) {
	fmt.Fprintf(w, "Variables (%d)\n", len(variables))
	if len(variables) == 0 {
		fmt.Fprintln(w, "  · No variable declarations found.")
		return
	}

	for _, v := range variables {
		suffix := ""
		if !v.Initialized {
			suffix = " (uninitialized)"
		}
		fmt.Fprintf(w, "  · %s %s%s  line %d\n", v.Kind, v.Name, suffix, v.Line)
	}
}
