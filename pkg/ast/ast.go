package ast

import (
	"bytes"
	"strconv"
	"strings"

	"floroz/pkg/token"
)

type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Pos
}

// Statement is implemented by every statement and expression node. The
// grammar does not distinguish the two, so neither does the tree.
type Statement interface {
	Node
	statementNode()
}

type Program struct {
	Body []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Body) > 0 {
		return p.Body[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Pos {
	if len(p.Body) > 0 {
		return p.Body[0].Pos()
	}
	return token.Pos{Line: 1, Column: 1}
}

func (p *Program) String() string {
	stmts := make([]string, 0, len(p.Body))
	for _, s := range p.Body {
		stmts = append(stmts, s.String())
	}
	return strings.Join(stmts, "\n")
}

// Literals

type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BooleanLiteral
	NullLiteral
	UndefinedLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLiteral:
		return "number"
	case StringLiteral:
		return "string"
	case BooleanLiteral:
		return "boolean"
	case NullLiteral:
		return "null"
	case UndefinedLiteral:
		return "undefined"
	}
	return "unknown"
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the value of an undefined literal, distinct from nil (null).
var Undefined = undefined{}

type Literal struct {
	Token  token.Token
	Kind   LiteralKind
	Number float64
	Str    string
	Bool   bool
	Raw    string
}

func (l *Literal) statementNode()       {}
func (l *Literal) TokenLiteral() string { return l.Token.Text }
func (l *Literal) Pos() token.Pos       { return l.Token.Pos }
func (l *Literal) String() string {
	if l.Kind == StringLiteral {
		return strconv.Quote(l.Str)
	}
	return l.Raw
}

// Value returns the literal as a Go value: float64, string, bool, nil for
// null, or Undefined.
func (l *Literal) Value() interface{} {
	switch l.Kind {
	case NumberLiteral:
		return l.Number
	case StringLiteral:
		return l.Str
	case BooleanLiteral:
		return l.Bool
	case UndefinedLiteral:
		return Undefined
	}
	return nil
}

type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) statementNode()       {}
func (i *Identifier) TokenLiteral() string { return i.Token.Text }
func (i *Identifier) Pos() token.Pos       { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Name }

// Expressions

type BinaryExpression struct {
	Token    token.Token // the operator token
	Operator string
	Left     Statement
	Right    Statement
}

func (be *BinaryExpression) statementNode()       {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Text }
func (be *BinaryExpression) Pos() token.Pos       { return be.Left.Pos() }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

type UnaryExpression struct {
	Token    token.Token // the prefix operator
	Operator string
	Argument Statement
}

func (ue *UnaryExpression) statementNode()       {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Text }
func (ue *UnaryExpression) Pos() token.Pos       { return ue.Token.Pos }
func (ue *UnaryExpression) String() string {
	return "(" + ue.Operator + ue.Argument.String() + ")"
}

type AssignmentExpression struct {
	Token    token.Token // first token of the operator
	Operator string
	Left     Statement
	Right    Statement
}

func (ae *AssignmentExpression) statementNode()       {}
func (ae *AssignmentExpression) TokenLiteral() string { return ae.Token.Text }
func (ae *AssignmentExpression) Pos() token.Pos       { return ae.Left.Pos() }
func (ae *AssignmentExpression) String() string {
	return ae.Left.String() + " " + ae.Operator + " " + ae.Right.String()
}

type CallExpression struct {
	Token     token.Token // '('
	Callee    Statement
	Arguments []Statement
}

func (ce *CallExpression) statementNode()       {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Text }
func (ce *CallExpression) Pos() token.Pos       { return ce.Callee.Pos() }
func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return ce.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

type ObjectExpression struct {
	Token      token.Token // '{'
	Properties []*Property
}

func (oe *ObjectExpression) statementNode()       {}
func (oe *ObjectExpression) TokenLiteral() string { return oe.Token.Text }
func (oe *ObjectExpression) Pos() token.Pos       { return oe.Token.Pos }
func (oe *ObjectExpression) String() string {
	if len(oe.Properties) == 0 {
		return "{}"
	}
	props := make([]string, 0, len(oe.Properties))
	for _, p := range oe.Properties {
		props = append(props, p.String())
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

// Property is a key/value pair of an object expression. It only appears
// inside ObjectExpression and is therefore not a Statement.
type Property struct {
	Key   *Identifier
	Value Statement
}

func (p *Property) TokenLiteral() string { return p.Key.TokenLiteral() }
func (p *Property) Pos() token.Pos       { return p.Key.Pos() }
func (p *Property) String() string       { return p.Key.String() + ": " + p.Value.String() }

// Statements

type DeclKind int

const (
	Let DeclKind = iota
	Const
	Var
)

func (k DeclKind) String() string {
	switch k {
	case Let:
		return "let"
	case Const:
		return "const"
	case Var:
		return "var"
	}
	return "unknown"
}

type VariableDeclaration struct {
	Token token.Token // 'let', 'const' or 'var'
	Kind  DeclKind
	ID    *Identifier
	Init  Statement // nil when the declaration has no initializer
}

func (vd *VariableDeclaration) statementNode()       {}
func (vd *VariableDeclaration) TokenLiteral() string { return vd.Token.Text }
func (vd *VariableDeclaration) Pos() token.Pos       { return vd.Token.Pos }
func (vd *VariableDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString(vd.Kind.String() + " " + vd.ID.String())
	if vd.Init != nil {
		out.WriteString(" = ")
		out.WriteString(vd.Init.String())
	}
	return out.String()
}

type FunctionDeclaration struct {
	Token  token.Token // 'function'
	ID     *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

func (fd *FunctionDeclaration) statementNode()       {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Text }
func (fd *FunctionDeclaration) Pos() token.Pos       { return fd.Token.Pos }
func (fd *FunctionDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("function ")
	out.WriteString(fd.ID.String())
	out.WriteString("(")
	params := make([]string, 0, len(fd.Params))
	for _, p := range fd.Params {
		params = append(params, p.String())
	}
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(fd.Body.String())
	return out.String()
}

type ReturnStatement struct {
	Token    token.Token // 'return'
	Argument Statement
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Text }
func (rs *ReturnStatement) Pos() token.Pos       { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	return "return " + rs.Argument.String()
}

type BlockStatement struct {
	Token token.Token // '{'
	Body  []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Text }
func (bs *BlockStatement) Pos() token.Pos       { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	if len(bs.Body) == 0 {
		return "{}"
	}
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range bs.Body {
		out.WriteString("\t" + strings.ReplaceAll(s.String(), "\n", "\n\t") + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// The control-flow nodes below are part of the tree model but the grammar
// does not produce them yet.

type IfStatement struct {
	Token      token.Token // 'if'
	Test       Statement
	Consequent Statement
	Alternate  Statement // may be nil
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Text }
func (is *IfStatement) Pos() token.Pos       { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (" + is.Test.String() + ") ")
	out.WriteString(is.Consequent.String())
	if is.Alternate != nil {
		out.WriteString(" else ")
		out.WriteString(is.Alternate.String())
	}
	return out.String()
}

type WhileStatement struct {
	Token token.Token // 'while'
	Test  Statement
	Body  Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Text }
func (ws *WhileStatement) Pos() token.Pos       { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Test.String() + ") " + ws.Body.String()
}

type ForStatement struct {
	Token  token.Token // 'for'
	Init   Statement
	Test   Statement
	Update Statement
	Body   Statement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Text }
func (fs *ForStatement) Pos() token.Pos       { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	part := func(s Statement) string {
		if s == nil {
			return ""
		}
		return s.String()
	}
	return "for (" + part(fs.Init) + "; " + part(fs.Test) + "; " + part(fs.Update) + ") " + part(fs.Body)
}
