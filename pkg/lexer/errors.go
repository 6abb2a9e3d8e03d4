package lexer

import (
	"errors"
	"fmt"

	"floroz/pkg/token"
)

var (
	ErrUnrecognizedToken   = errors.New("unrecognized token")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrUnterminatedString  = errors.New("unterminated string literal")
)

// Error is a fatal lexical error. Err is one of the sentinel errors above.
type Error struct {
	Pos token.Pos
	Msg string
	Err error
}

func newError(pos token.Pos, sentinel error, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}
