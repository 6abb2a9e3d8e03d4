package token

// symbols maps single-character punctuation and operators to their kind.
// '=' is absent: the lexer handles it together with "=>".
var symbols = map[byte]Kind{
	'(': LPAREN,
	')': RPAREN,
	'+': PLUS,
	'-': MINUS,
	'*': ASTERISK,
	'/': SLASH,
	'%': PERCENT,
	'{': LBRACE,
	'}': RBRACE,
	'[': LBRACKET,
	']': RBRACKET,
	',': COMMA,
	':': COLON,
}

var keywords = map[string]Kind{
	"abstract":   ABSTRACT,
	"as":         AS,
	"async":      ASYNC,
	"await":      AWAIT,
	"break":      BREAK,
	"case":       CASE,
	"catch":      CATCH,
	"class":      CLASS,
	"console":    CONSOLE,
	"const":      CONST,
	"continue":   CONTINUE,
	"debugger":   DEBUGGER,
	"default":    DEFAULT,
	"delete":     DELETE,
	"do":         DO,
	"document":   DOCUMENT,
	"else":       ELSE,
	"enum":       ENUM,
	"export":     EXPORT,
	"extends":    EXTENDS,
	"false":      FALSE,
	"final":      FINAL,
	"finally":    FINALLY,
	"for":        FOR,
	"from":       FROM,
	"function":   FUNCTION,
	"global":     GLOBAL,
	"history":    HISTORY,
	"if":         IF,
	"implements": IMPLEMENTS,
	"import":     IMPORT,
	"in":         IN,
	"instanceof": INSTANCEOF,
	"interface":  INTERFACE,
	"is":         IS,
	"let":        LET,
	"location":   LOCATION,
	"module":     MODULE,
	"namespace":  NAMESPACE,
	"navigator":  NAVIGATOR,
	"new":        NEW,
	"null":       NULL,
	"private":    PRIVATE,
	"process":    PROCESS,
	"protected":  PROTECTED,
	"public":     PUBLIC,
	"readonly":   READONLY,
	"require":    REQUIRE,
	"return":     RETURN,
	"screen":     SCREEN,
	"static":     STATIC,
	"super":      SUPER,
	"switch":     SWITCH,
	"this":       THIS,
	"throw":      THROW,
	"true":       TRUE,
	"try":        TRY,
	"type":       TYPE,
	"typeof":     TYPEOF,
	"undefined":  UNDEFINED,
	"var":        VAR,
	"void":       VOID,
	"while":      WHILE,
	"window":     WINDOW,
	"with":       WITH,
	"yield":      YIELD,
}

// LookupIdent classifies an identifier-shaped word. Boolean literals win
// over the keyword table, so "true" and "false" never yield TRUE/FALSE.
func LookupIdent(ident string) Kind {
	if ident == "true" || ident == "false" {
		return BOOLEAN
	}
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// LookupSymbol returns the kind of a single-character symbol.
func LookupSymbol(ch byte) (Kind, bool) {
	kind, ok := symbols[ch]
	return kind, ok
}

// Keywords returns the reserved words in no particular order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	return words
}
