package token

import "fmt"

// Kind classifies a token. The set of kinds is closed.
type Kind int

const (
	// Special
	ILLEGAL Kind = iota
	EOF

	// Literals
	NUMBER
	STRING
	BOOLEAN
	NULL
	UNDEFINED

	IDENT

	// Operators
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	PERCENT  // %
	ARROW    // =>

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	COLON     // :
	SEMICOLON // ;

	keywordBeg
	// Keywords
	ABSTRACT
	AS
	ASYNC
	AWAIT
	BREAK
	CASE
	CATCH
	CLASS
	CONSOLE
	CONST
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	DOCUMENT
	ELSE
	ENUM
	EXPORT
	EXTENDS
	FALSE
	FINAL
	FINALLY
	FOR
	FROM
	FUNCTION
	GLOBAL
	HISTORY
	IF
	IMPLEMENTS
	IMPORT
	IN
	INSTANCEOF
	INTERFACE
	IS
	LET
	LOCATION
	MODULE
	NAMESPACE
	NAVIGATOR
	NEW
	PRIVATE
	PROCESS
	PROTECTED
	PUBLIC
	READONLY
	REQUIRE
	RETURN
	SCREEN
	STATIC
	SUPER
	SWITCH
	THIS
	THROW
	TRUE
	TRY
	TYPE
	TYPEOF
	VAR
	VOID
	WHILE
	WINDOW
	WITH
	YIELD
	keywordEnd
)

var kindNames = [...]string{
	ILLEGAL: "Illegal",
	EOF:     "EndOfInput",

	NUMBER:    "NumericLiteral",
	STRING:    "StringLiteral",
	BOOLEAN:   "BooleanLiteral",
	NULL:      "Null",
	UNDEFINED: "Undefined",

	IDENT: "Identifier",

	ASSIGN:   "Equals",
	PLUS:     "Adds",
	MINUS:    "Subtracts",
	ASTERISK: "Multiplies",
	SLASH:    "Divides",
	PERCENT:  "Modulus",
	ARROW:    "ArrowFunction",

	LPAREN:    "OpenParen",
	RPAREN:    "CloseParen",
	LBRACE:    "OpenBrace",
	RBRACE:    "CloseBrace",
	LBRACKET:  "OpenSquareBracket",
	RBRACKET:  "CloseSquareBracket",
	COMMA:     "Comma",
	COLON:     "Colon",
	SEMICOLON: "Semicolon",

	ABSTRACT:   "Abstract",
	AS:         "As",
	ASYNC:      "Async",
	AWAIT:      "Await",
	BREAK:      "Break",
	CASE:       "Case",
	CATCH:      "Catch",
	CLASS:      "Class",
	CONSOLE:    "Console",
	CONST:      "Const",
	CONTINUE:   "Continue",
	DEBUGGER:   "Debugger",
	DEFAULT:    "Default",
	DELETE:     "Delete",
	DO:         "Do",
	DOCUMENT:   "Document",
	ELSE:       "Else",
	ENUM:       "Enum",
	EXPORT:     "Export",
	EXTENDS:    "Extends",
	FALSE:      "False",
	FINAL:      "Final",
	FINALLY:    "Finally",
	FOR:        "For",
	FROM:       "From",
	FUNCTION:   "Function",
	GLOBAL:     "Global",
	HISTORY:    "History",
	IF:         "If",
	IMPLEMENTS: "Implements",
	IMPORT:     "Import",
	IN:         "In",
	INSTANCEOF: "Instanceof",
	INTERFACE:  "Interface",
	IS:         "Is",
	LET:        "Let",
	LOCATION:   "Location",
	MODULE:     "Module",
	NAMESPACE:  "Namespace",
	NAVIGATOR:  "Navigator",
	NEW:        "New",
	PRIVATE:    "Private",
	PROCESS:    "Process",
	PROTECTED:  "Protected",
	PUBLIC:     "Public",
	READONLY:   "Readonly",
	REQUIRE:    "Require",
	RETURN:     "Return",
	SCREEN:     "Screen",
	STATIC:     "Static",
	SUPER:      "Super",
	SWITCH:     "Switch",
	THIS:       "This",
	THROW:      "Throw",
	TRUE:       "True",
	TRY:        "Try",
	TYPE:       "Type",
	TYPEOF:     "Typeof",
	VAR:        "Var",
	VOID:       "Void",
	WHILE:      "While",
	WINDOW:     "Window",
	WITH:       "With",
	YIELD:      "Yield",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved keyword kinds.
func (k Kind) IsKeyword() bool {
	return keywordBeg < k && k < keywordEnd
}

// Pos is a location in the source text. Line and Column are 1-based.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Kind Kind
	Text string
	Pos  Pos

	// AfterBreak is set when a newline or ';' was skipped between the
	// previous token and this one.
	AfterBreak bool
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %s)", t.Kind, t.Text, t.Pos)
}

// Is reports whether the token is of the given kind.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}
