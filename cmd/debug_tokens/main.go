package main

import (
	"fmt"
	"os"

	"floroz/pkg/lexer"
	"floroz/pkg/token"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/debug_tokens '<code>'")
		os.Exit(1)
	}

	input := os.Args[1]
	l := lexer.New(input)

	fmt.Printf("Input: %s\n\n", input)
	fmt.Println("Tokens:")
	fmt.Println("-------")

	for {
		tok, err := l.NextToken()
		if err != nil {
			fmt.Printf("Lexer error: %s\n", err)
			os.Exit(1)
		}

		brk := ""
		if tok.AfterBreak {
			brk = " [break]"
		}
		fmt.Printf("%-20s %-20s (line %d, col %d)%s\n", tok.Kind, fmt.Sprintf("'%s'", tok.Text), tok.Pos.Line, tok.Pos.Column, brk)

		if tok.Kind == token.EOF {
			break
		}
	}
}
