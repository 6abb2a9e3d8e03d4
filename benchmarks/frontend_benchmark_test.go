package benchmarks

import (
	"strings"
	"testing"

	"floroz/pkg/ast"
	"floroz/pkg/lexer"
	"floroz/pkg/parser"
	"floroz/pkg/token"
)

var (
	tokensResult  []token.Token
	programResult *ast.Program
)

const unit = `// area of a rectangle
function area(w, h) {
	let result = w * h
	return result
}
const box = { width: 2, height: 3, label: 'box' }
let total = area(2, 3) + 123_456.5e-2 /* trailing */
total += -1
`

var source = strings.Repeat(unit, 200)

func BenchmarkTokenize(b *testing.B) {
	b.SetBytes(int64(len(source)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tokens, err := lexer.Tokenize(source)
		if err != nil {
			b.Fatal(err)
		}
		tokensResult = tokens
	}
}

func BenchmarkParseTokens(b *testing.B) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		program, err := parser.ParseTokens(tokens)
		if err != nil {
			b.Fatal(err)
		}
		programResult = program
	}
}

func BenchmarkParse(b *testing.B) {
	b.SetBytes(int64(len(source)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		program, err := parser.Parse(source)
		if err != nil {
			b.Fatal(err)
		}
		programResult = program
	}
}

func BenchmarkDeepNesting(b *testing.B) {
	nested := strings.Repeat("(", 400) + "1" + strings.Repeat(")", 400)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		program, err := parser.Parse(nested)
		if err != nil {
			b.Fatal(err)
		}
		programResult = program
	}
}

func BenchmarkToMap(b *testing.B) {
	program, err := parser.Parse(source)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ast.ToMap(program)
	}
}
