package parser

import (
	"errors"
	"strconv"
	"strings"

	"floroz/pkg/ast"
	"floroz/pkg/lexer"
	"floroz/pkg/token"
)

// NOTE: every parse function starts on the first token of its production and
// leaves the parser on the token following it.

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth of statements and expressions.
// Deeper input fails with ErrMaxDepth instead of growing the stack.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// Parser turns a complete token slice into a Program. A Parser is meant to be
// used once.
type Parser struct {
	tokens  []token.Token
	current int

	depth    int
	maxDepth int
}

// Parse tokenizes and parses input. The error is a *lexer.Error or a
// *SyntaxError; on error no program is returned.
func Parse(input string, opts ...Option) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, opts...)
}

// ParseTokens parses an already tokenized input.
func ParseTokens(tokens []token.Token, opts ...Option) (*ast.Program, error) {
	return New(tokens, opts...).ParseProgram()
}

// New creates a parser over tokens. A missing trailing EOF token is added.
func New(tokens []token.Token, opts ...Option) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		var pos token.Pos
		if n > 0 {
			pos = tokens[n-1].Pos
		}
		terminated := make([]token.Token, n, n+1)
		copy(terminated, tokens)
		tokens = append(terminated, token.Token{Kind: token.EOF, Pos: pos})
	}

	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) ParseProgram() (program *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			serr, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			program, err = nil, serr
		}
	}()

	program = &ast.Program{Body: []ast.Statement{}}
	for !p.curTokenIs(token.EOF) {
		program.Body = append(program.Body, p.parseStatement())
	}

	return program, nil
}

// -----------------------------------------------------------------------------

func (p *Parser) cur() token.Token {
	return p.tokens[p.current]
}

// peek looks offset tokens ahead of the current one. Looking past the end
// yields the final EOF token.
func (p *Parser) peek(offset int) token.Token {
	i := p.current + offset
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i]
}

// next moves forward one token. The parser never moves past EOF.
func (p *Parser) next() {
	if p.current < len(p.tokens)-1 {
		p.current++
	}
}

func (p *Parser) curTokenIs(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) peekTokenIs(offset int, k token.Kind) bool {
	return p.peek(offset).Kind == k
}

// expect consumes a token of kind k or aborts the parse. Running into EOF
// while looking for a closing delimiter is reported as an unclosed delimiter.
func (p *Parser) expect(k token.Kind) token.Token {
	tok := p.cur()
	if tok.Kind == k {
		p.next()
		return tok
	}

	if tok.Kind == token.EOF && isCloser(k) {
		p.failExpected(ErrUnclosedDelimiter, k)
	}
	p.failExpected(ErrUnexpectedToken, k)
	return tok
}

// atSeparator reports whether the current token ends a statement: the end
// of input, the end of a block, or a token on a new line or after ';'.
func (p *Parser) atSeparator() bool {
	tok := p.cur()
	return tok.Kind == token.EOF || tok.Kind == token.RBRACE || tok.AfterBreak
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > p.maxDepth {
		p.fail(p.cur(), ErrMaxDepth, "maximum nesting depth %d exceeded", p.maxDepth)
	}
}

func (p *Parser) leave() {
	p.depth--
}

func isCloser(k token.Kind) bool {
	return k == token.RPAREN || k == token.RBRACE || k == token.RBRACKET
}

// -----------------------------------------------------------------------------

// statement = variable_decl | function_decl | return_stmt | expression
func (p *Parser) parseStatement() ast.Statement {
	p.enter()
	defer p.leave()

	switch p.cur().Kind {
	case token.LET, token.CONST, token.VAR:
		return p.parseVariableDeclaration()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpression()
	}
}

var declKinds = map[token.Kind]ast.DeclKind{
	token.LET:   ast.Let,
	token.CONST: ast.Const,
	token.VAR:   ast.Var,
}

// variable_decl = ('let' | 'const' | 'var') IDENT [ '=' expression ]
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	decl := &ast.VariableDeclaration{Token: p.cur(), Kind: declKinds[p.cur().Kind]}
	p.next()

	if !p.curTokenIs(token.IDENT) {
		p.fail(p.cur(), ErrMissingIdentifier, "cannot declare a variable without an identifier")
	}
	decl.ID = p.parseIdentifier()

	if p.atSeparator() {
		if decl.Kind == ast.Const {
			p.fail(decl.Token, ErrConstWithoutValue, "cannot declare a constant without a value")
		}
		return decl
	}

	p.expect(token.ASSIGN)
	decl.Init = p.parseExpression()

	return decl
}

// function_decl = 'function' IDENT '(' [ IDENT { ',' IDENT } ] ')' block
func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	fn := &ast.FunctionDeclaration{Token: p.cur()}
	p.next()

	if !p.curTokenIs(token.IDENT) {
		p.failExpected(ErrMissingIdentifier, token.IDENT)
	}
	fn.ID = p.parseIdentifier()

	p.expect(token.LPAREN)
	fn.Params = p.parseParameters()
	fn.Body = p.parseBlockStatement()

	return fn
}

func (p *Parser) parseParameters() []*ast.Identifier {
	params := []*ast.Identifier{}

	for !p.curTokenIs(token.RPAREN) {
		switch {
		case p.curTokenIs(token.EOF):
			p.failExpected(ErrUnclosedDelimiter, token.RPAREN)
		case !p.curTokenIs(token.IDENT):
			p.fail(p.cur(), ErrUnexpectedToken, "invalid parameter syntax: expected Identifier but got %s", p.cur().Kind)
		}
		params = append(params, p.parseIdentifier())

		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.next()
	}

	p.expect(token.RPAREN)
	return params
}

// block = '{' { statement } '}'
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.expect(token.LBRACE), Body: []ast.Statement{}}

	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.failExpected(ErrUnclosedDelimiter, token.RBRACE)
		}
		block.Body = append(block.Body, p.parseStatement())
	}
	p.next()

	return block
}

// return_stmt = 'return' expression
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.cur()}
	p.next()
	stmt.Argument = p.parseExpression()
	return stmt
}

// -----------------------------------------------------------------------------

// expression = assignment
func (p *Parser) parseExpression() ast.Statement {
	p.enter()
	defer p.leave()

	return p.parseAssignment()
}

// isCompoundOperator reports whether the current token is the first half of
// a compound assignment such as "+=".
func (p *Parser) isCompoundOperator() bool {
	switch p.cur().Kind {
	case token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT:
		return p.peekTokenIs(1, token.ASSIGN)
	}
	return false
}

// assignment = additive [ ('=' | '+=' | '-=' | '*=' | '/=') expression ]
func (p *Parser) parseAssignment() ast.Statement {
	left := p.parseAdditive()

	if p.curTokenIs(token.ASSIGN) {
		expr := &ast.AssignmentExpression{Token: p.cur(), Operator: "=", Left: left}
		p.next()
		expr.Right = p.parseExpression()
		return expr
	}

	if p.isCompoundOperator() {
		opTok := p.cur()
		if opTok.Kind == token.PERCENT {
			p.fail(opTok, ErrUnexpectedToken, "unsupported compound operator %%=")
		}
		expr := &ast.AssignmentExpression{Token: opTok, Operator: opTok.Text + "=", Left: left}
		p.next()
		p.next()
		expr.Right = p.parseExpression()
		return expr
	}

	return left
}

// additive = multiplicative { ('+' | '-') multiplicative }
func (p *Parser) parseAdditive() ast.Statement {
	left := p.parseMultiplicative()

	for (p.curTokenIs(token.PLUS) || p.curTokenIs(token.MINUS)) && !p.isCompoundOperator() {
		expr := &ast.BinaryExpression{Token: p.cur(), Operator: p.cur().Text, Left: left}
		p.next()
		expr.Right = p.parseMultiplicative()
		left = expr
	}

	return left
}

// multiplicative = unary { ('*' | '/' | '%') unary }
func (p *Parser) parseMultiplicative() ast.Statement {
	left := p.parseUnary()

	for (p.curTokenIs(token.ASTERISK) || p.curTokenIs(token.SLASH) || p.curTokenIs(token.PERCENT)) && !p.isCompoundOperator() {
		expr := &ast.BinaryExpression{Token: p.cur(), Operator: p.cur().Text, Left: left}
		p.next()
		expr.Right = p.parseUnary()
		left = expr
	}

	return left
}

// unary = ('-' | '+') unary | call
func (p *Parser) parseUnary() ast.Statement {
	if p.curTokenIs(token.MINUS) || p.curTokenIs(token.PLUS) {
		p.enter()
		defer p.leave()

		expr := &ast.UnaryExpression{Token: p.cur(), Operator: p.cur().Text}
		p.next()
		expr.Argument = p.parseUnary()
		return expr
	}

	return p.parseCall()
}

// call = primary { '(' [ expression { ',' expression } ] ')' }
//
// The '(' must be on the same line as the callee, otherwise it starts a new
// statement.
func (p *Parser) parseCall() ast.Statement {
	expr := p.parsePrimary()

	for p.curTokenIs(token.LPAREN) && !p.cur().AfterBreak {
		call := &ast.CallExpression{Token: p.cur(), Callee: expr}
		p.next()
		call.Arguments = p.parseArguments()
		expr = call
	}

	return expr
}

func (p *Parser) parseArguments() []ast.Statement {
	args := []ast.Statement{}

	for !p.curTokenIs(token.RPAREN) {
		if p.curTokenIs(token.EOF) {
			p.failExpected(ErrUnclosedDelimiter, token.RPAREN)
		}
		args = append(args, p.parseExpression())

		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.next()
	}

	p.expect(token.RPAREN)
	return args
}

// primary = NUMBER | STRING | BOOLEAN | 'null' | 'undefined' | IDENT
//         | '(' expression ')' | object
func (p *Parser) parsePrimary() ast.Statement {
	tok := p.cur()

	switch tok.Kind {
	case token.NUMBER:
		return p.parseNumericLiteral()
	case token.STRING:
		p.next()
		return &ast.Literal{Token: tok, Kind: ast.StringLiteral, Str: tok.Text, Raw: tok.Text}
	case token.BOOLEAN:
		p.next()
		return &ast.Literal{Token: tok, Kind: ast.BooleanLiteral, Bool: tok.Text == "true", Raw: tok.Text}
	case token.NULL:
		p.next()
		return &ast.Literal{Token: tok, Kind: ast.NullLiteral, Raw: tok.Text}
	case token.UNDEFINED:
		p.next()
		return &ast.Literal{Token: tok, Kind: ast.UndefinedLiteral, Raw: tok.Text}
	case token.IDENT:
		return p.parseIdentifier()
	case token.LPAREN:
		return p.parseGroupedExpression()
	case token.LBRACE:
		return p.parseObjectExpression()
	case token.RETURN:
		p.fail(tok, ErrReturnOutsideStatement, "return is only allowed at the start of a statement")
	case token.EOF:
		p.fail(tok, ErrUnexpectedToken, "unexpected end of input")
	}

	p.fail(tok, ErrUnexpectedToken, "unexpected token: %s", tok.Kind)
	return nil
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	tok := p.cur()
	p.next()
	return &ast.Identifier{Token: tok, Name: tok.Text}
}

// parseNumericLiteral decodes the raw text kept by the lexer. Digit
// separators are dropped before conversion.
func (p *Parser) parseNumericLiteral() *ast.Literal {
	tok := p.cur()

	value, err := strconv.ParseFloat(strings.ReplaceAll(tok.Text, "_", ""), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.fail(tok, ErrMalformedNumber, "malformed numeric literal %q", tok.Text)
	}

	p.next()
	return &ast.Literal{Token: tok, Kind: ast.NumberLiteral, Number: value, Raw: tok.Text}
}

// grouped = '(' expression ')'
func (p *Parser) parseGroupedExpression() ast.Statement {
	p.next()
	expr := p.parseExpression()
	if !p.curTokenIs(token.RPAREN) {
		p.failExpected(ErrUnclosedDelimiter, token.RPAREN)
	}
	p.next()
	return expr
}

// object = '{' [ property { ',' property } [ ',' ] ] '}'
// property = IDENT ':' expression
func (p *Parser) parseObjectExpression() *ast.ObjectExpression {
	obj := &ast.ObjectExpression{Token: p.cur(), Properties: []*ast.Property{}}
	p.next()

	for !p.curTokenIs(token.RBRACE) {
		switch {
		case p.curTokenIs(token.EOF):
			p.failExpected(ErrUnclosedDelimiter, token.RBRACE)
		case !p.curTokenIs(token.IDENT):
			p.failExpected(ErrUnexpectedToken, token.IDENT)
		}

		prop := &ast.Property{Key: p.parseIdentifier()}
		p.expect(token.COLON)
		prop.Value = p.parseExpression()
		obj.Properties = append(obj.Properties, prop)

		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.next()
	}

	if !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.failExpected(ErrUnclosedDelimiter, token.RBRACE)
		}
		p.failExpected(ErrUnexpectedToken, token.COMMA, token.RBRACE)
	}
	p.next()

	return obj
}
