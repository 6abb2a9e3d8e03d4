package lexer

import (
	"floroz/pkg/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int

	// sawBreak is set once a newline or ';' has been skipped since the
	// last emitted token.
	sawBreak bool
}

func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// Tokenize scans the whole input and returns its tokens, terminated by
// exactly one EOF token. Any lexical error aborts the scan and no tokens
// are returned.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	// Rough guess: one token every four bytes.
	tokens := make([]token.Token, 0, len(input)/4+1)

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column += 1
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) pos() token.Pos {
	return token.Pos{Offset: l.position, Line: l.line, Column: l.column}
}

// NextToken returns the next token. After the EOF token has been returned
// every further call returns EOF again.
func (l *Lexer) NextToken() (token.Token, error) {
	for !l.atEnd() {
		start := l.pos()

		switch {
		case l.ch == '/' && l.peekChar() == '/':
			l.skipLineComment()
		case l.ch == '/' && l.peekChar() == '*':
			if err := l.skipBlockComment(start); err != nil {
				return token.Token{}, err
			}
		case l.ch == '=':
			if l.peekChar() == '>' {
				l.readChar()
				l.readChar()
				return l.emit(token.ARROW, "=>", start), nil
			}
			l.readChar()
			return l.emit(token.ASSIGN, "=", start), nil
		case isSkippable(l.ch):
			if l.ch == '\n' || l.ch == ';' {
				l.sawBreak = true
			}
			l.readChar()
		case isDigit(l.ch):
			return l.emit(token.NUMBER, l.readNumber(), start), nil
		case isLetter(l.ch):
			word := l.readIdentifier()
			return l.emit(token.LookupIdent(word), word, start), nil
		case l.ch == '"' || l.ch == '\'':
			text, err := l.readString(start)
			if err != nil {
				return token.Token{}, err
			}
			return l.emit(token.STRING, text, start), nil
		default:
			if kind, ok := token.LookupSymbol(l.ch); ok {
				ch := l.ch
				l.readChar()
				return l.emit(kind, string(ch), start), nil
			}
			return token.Token{}, newError(start, ErrUnrecognizedToken, "unrecognized token: %c", l.ch)
		}
	}

	return l.emit(token.EOF, "", l.pos()), nil
}

func (l *Lexer) emit(kind token.Kind, text string, pos token.Pos) token.Token {
	tok := token.Token{Kind: kind, Text: text, Pos: pos, AfterBreak: l.sawBreak}
	l.sawBreak = false
	return tok
}

func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.ch != '\n' {
		l.readChar()
	}
}

func (l *Lexer) skipBlockComment(start token.Pos) error {
	l.readChar() // '/'
	l.readChar() // '*'

	for !l.atEnd() {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return nil
		}
		// A comment spanning lines separates statements like a newline does.
		if l.ch == '\n' {
			l.sawBreak = true
		}
		l.readChar()
	}

	return newError(start, ErrUnterminatedComment, "unterminated block comment")
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber absorbs a raw numeric run without validating its shape.
func (l *Lexer) readNumber() string {
	position := l.position
	for !l.atEnd() {
		switch {
		case isDigit(l.ch), l.ch == '.', l.ch == '_':
			l.readChar()
		case l.ch == 'e' || l.ch == 'E':
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
		default:
			return l.input[position:l.position]
		}
	}
	return l.input[position:l.position]
}

// readString returns the verbatim text between the quotes. A backslash keeps
// the character after it, so an escaped quote does not close the literal.
func (l *Lexer) readString(start token.Pos) (string, error) {
	quote := l.ch
	l.readChar() // opening quote
	position := l.position

	for {
		if l.atEnd() {
			return "", newError(start, ErrUnterminatedString, "unterminated string literal")
		}
		switch l.ch {
		case quote:
			text := l.input[position:l.position]
			l.readChar()
			return text, nil
		case '\\':
			l.readChar()
			if l.atEnd() {
				return "", newError(start, ErrUnterminatedString, "unterminated string literal")
			}
			l.readChar()
		default:
			l.readChar()
		}
	}
}

func isSkippable(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == ';'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
