package parser

import (
	"errors"
	"fmt"
	"strings"

	"floroz/pkg/token"
)

var (
	ErrUnexpectedToken        = errors.New("unexpected token")
	ErrMissingIdentifier      = errors.New("missing identifier")
	ErrConstWithoutValue      = errors.New("constant without value")
	ErrUnclosedDelimiter      = errors.New("unclosed delimiter")
	ErrMalformedNumber        = errors.New("malformed numeric literal")
	ErrReturnOutsideStatement = errors.New("return outside statement position")
	ErrMaxDepth               = errors.New("maximum nesting depth exceeded")
)

// SyntaxError reports the first malformed construct found by the parser.
// Expected lists the token kinds that would have been accepted, if the error
// is about a specific missing token.
type SyntaxError struct {
	Pos      token.Pos
	Expected []token.Kind
	Got      token.Token
	Msg      string
	Err      error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// fail aborts the parse. ParseProgram recovers the panic and returns it as
// an error.
func (p *Parser) fail(tok token.Token, sentinel error, format string, args ...interface{}) {
	panic(&SyntaxError{
		Pos: tok.Pos,
		Got: tok,
		Msg: fmt.Sprintf(format, args...),
		Err: sentinel,
	})
}

// failExpected aborts the parse because the current token is not one of the
// expected kinds.
func (p *Parser) failExpected(sentinel error, expected ...token.Kind) {
	tok := p.cur()
	names := make([]string, 0, len(expected))
	for _, k := range expected {
		names = append(names, k.String())
	}
	panic(&SyntaxError{
		Pos:      tok.Pos,
		Expected: expected,
		Got:      tok,
		Msg:      fmt.Sprintf("expected %s but got %s", strings.Join(names, " or "), tok.Kind),
		Err:      sentinel,
	})
}
