package main

import (
	"errors"
	"fmt"
	"os"

	"floroz/pkg/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/debug_parser '<code>'")
		os.Exit(1)
	}

	input := os.Args[1]
	program, err := parser.Parse(input)

	if err != nil {
		fmt.Println("Parser error:")
		fmt.Printf("  %s\n", err)

		var serr *parser.SyntaxError
		if errors.As(err, &serr) {
			fmt.Printf("  got %s %q\n", serr.Got.Kind, serr.Got.Text)
		}
		fmt.Println()
		os.Exit(1)
	}

	fmt.Printf("AST:\n%s\n", program.String())
}
