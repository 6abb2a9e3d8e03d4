package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"floroz/pkg/config"
	"floroz/pkg/lexer"
	"floroz/pkg/parser"
)

const sample = `function area(w, h) {
	return w * h
}
let size = area(2, 3)
var later
`

func TestAnalyzeProgram(t *testing.T) {
	program, err := parser.Parse(sample)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	insights := analyzeProgram(program)

	if len(insights.Functions) != 1 {
		t.Fatalf("functions count wrong. got=%d", len(insights.Functions))
	}
	fn := insights.Functions[0]
	if fn.Name != "area" || strings.Join(fn.Parameters, ",") != "w,h" || fn.Line != 1 {
		t.Errorf("function info wrong. got=%+v", fn)
	}

	if len(insights.Variables) != 2 {
		t.Fatalf("variables count wrong. got=%d", len(insights.Variables))
	}
	if v := insights.Variables[0]; v.Kind != "let" || v.Name != "size" || !v.Initialized || v.Line != 4 {
		t.Errorf("variables[0] wrong. got=%+v", v)
	}
	if v := insights.Variables[1]; v.Kind != "var" || v.Name != "later" || v.Initialized {
		t.Errorf("variables[1] wrong. got=%+v", v)
	}

	if insights.Calls != 1 {
		t.Errorf("calls wrong. expected=1, got=%d", insights.Calls)
	}
}

func TestRenderProgram(t *testing.T) {
	program, err := parser.Parse("let x = 1 + 2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var text bytes.Buffer
	if err := renderProgram(&text, program, config.OutputText); err != nil {
		t.Fatalf("text render failed: %v", err)
	}
	if text.String() != "let x = (1 + 2)\n" {
		t.Errorf("text output wrong. got=%q", text.String())
	}

	var js bytes.Buffer
	if err := renderProgram(&js, program, config.OutputJSON); err != nil {
		t.Fatalf("json render failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("json output does not decode: %v", err)
	}
	if decoded["type"] != "Program" {
		t.Errorf("json root type wrong. got=%v", decoded["type"])
	}

	var yml bytes.Buffer
	if err := renderProgram(&yml, program, config.OutputYAML); err != nil {
		t.Fatalf("yaml render failed: %v", err)
	}
	for _, want := range []string{"type: Program", "type: VariableDeclaration", "kind: let", "name: x"} {
		if !strings.Contains(yml.String(), want) {
			t.Errorf("yaml output missing %q. got:\n%s", want, yml.String())
		}
	}
}

func TestRenderTokens(t *testing.T) {
	tokens, err := lexer.Tokenize("x\n1")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var out bytes.Buffer
	if err := renderTokens(&out, tokens, config.OutputJSON); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var records []tokenRecord
	if err := json.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("json output does not decode: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count wrong. expected=3, got=%d", len(records))
	}
	if records[1].Kind != "NumericLiteral" || records[1].Line != 2 || !records[1].AfterBreak {
		t.Errorf("records[1] wrong. got=%+v", records[1])
	}
	if records[2].Kind != "EndOfInput" {
		t.Errorf("last record should be EndOfInput. got=%+v", records[2])
	}
}

func TestStartREPL(t *testing.T) {
	cfg := config.Default()
	cfg.Prompt = "> "

	in := strings.NewReader("1 + 2\n\nlet = 3\nexit\nnever parsed\n")
	var out bytes.Buffer

	if err := startREPL(in, &out, cfg); err != nil {
		t.Fatalf("repl returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "> (1 + 2)\n") {
		t.Errorf("missing parsed output. got:\n%s", got)
	}
	if !strings.Contains(got, "let = 3\n") || !strings.Contains(got, "^") {
		t.Errorf("missing error excerpt. got:\n%s", got)
	}
	if strings.Contains(got, "never") {
		t.Errorf("repl kept reading after exit. got:\n%s", got)
	}
}

func TestSourceError(t *testing.T) {
	source := "let a = 1\n\tlet b = @"
	_, err := parser.Parse(source)

	var out bytes.Buffer
	wrapped := sourceError(&out, "main.fz", source, err)

	if !errors.Is(wrapped, lexer.ErrUnrecognizedToken) {
		t.Fatalf("wrapped error lost its kind. got=%v", wrapped)
	}
	if wrapped.Error() != "main.fz:2:10: unrecognized token: @" {
		t.Errorf("wrapped message wrong. got=%q", wrapped.Error())
	}

	expected := "\n   2 | \tlet b = @\n       \t        ^\n\n"
	if out.String() != expected {
		t.Errorf("code selection wrong.\nexpected=%q\ngot=     %q", expected, out.String())
	}

	other := errors.New("boom")
	if sourceError(&out, "x", "", other) != other {
		t.Errorf("non-source errors should pass through")
	}
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fz")
	if err := os.WriteFile(path, []byte("let x = 1"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	name, source, err := readSource(strings.NewReader("unused"), []string{path})
	if err != nil || name != path || source != "let x = 1" {
		t.Errorf("file read wrong. got=%q, %q, %v", name, source, err)
	}

	name, source, err = readSource(strings.NewReader("from stdin"), []string{"-"})
	if err != nil || name != "<stdin>" || source != "from stdin" {
		t.Errorf("stdin read wrong. got=%q, %q, %v", name, source, err)
	}

	if _, _, err := readSource(nil, []string{filepath.Join(t.TempDir(), "missing.fz")}); err == nil {
		t.Errorf("expected error for missing file")
	}
}
