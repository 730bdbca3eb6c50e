package syntax

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// Lexeme is the literal substring of source text the token was scanned
	// from.  For error tokens it instead carries the diagnostic message.
	Lexeme string

	// The 1-based line and column the token begins on.
	Line, Col int
}

// Enumeration of token kinds.
const (
	TOK_INT = iota
	TOK_CHAR
	TOK_FLOAT
	TOK_DOUBLE
	TOK_VOID

	TOK_IF
	TOK_ELSE
	TOK_WHILE
	TOK_FOR
	TOK_DO
	TOK_RETURN
	TOK_BREAK
	TOK_CONTINUE
	TOK_STRUCT
	TOK_UNION
	TOK_TYPEDEF
	TOK_SIZEOF
	TOK_CONST
	TOK_STATIC
	TOK_EXTERN
	TOK_SWITCH
	TOK_CASE
	TOK_DEFAULT
	TOK_ENUM
	TOK_GOTO
	TOK_SIGNED
	TOK_UNSIGNED
	TOK_LONG
	TOK_SHORT

	TOK_IDENT
	TOK_NUMBER
	TOK_STRING
	TOK_CHARLIT

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH
	TOK_PERCENT

	TOK_ASSIGN
	TOK_PLUS_ASSIGN
	TOK_MINUS_ASSIGN
	TOK_STAR_ASSIGN
	TOK_SLASH_ASSIGN
	TOK_PERCENT_ASSIGN
	TOK_AND_ASSIGN
	TOK_OR_ASSIGN
	TOK_XOR_ASSIGN
	TOK_SHL_ASSIGN
	TOK_SHR_ASSIGN

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_LEQ
	TOK_GT
	TOK_GEQ

	TOK_LAND
	TOK_LOR
	TOK_NOT

	TOK_AMP
	TOK_PIPE
	TOK_CARET
	TOK_TILDE
	TOK_SHL
	TOK_SHR

	TOK_INC
	TOK_DEC
	TOK_ARROW
	TOK_DOT
	TOK_QUESTION
	TOK_COLON

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_SEMICOLON
	TOK_COMMA

	TOK_EOF
	TOK_ERROR
)

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
var keywordPatterns = map[string]int{
	"int":      TOK_INT,
	"char":     TOK_CHAR,
	"float":    TOK_FLOAT,
	"double":   TOK_DOUBLE,
	"void":     TOK_VOID,
	"if":       TOK_IF,
	"else":     TOK_ELSE,
	"while":    TOK_WHILE,
	"for":      TOK_FOR,
	"do":       TOK_DO,
	"return":   TOK_RETURN,
	"break":    TOK_BREAK,
	"continue": TOK_CONTINUE,
	"struct":   TOK_STRUCT,
	"union":    TOK_UNION,
	"typedef":  TOK_TYPEDEF,
	"sizeof":   TOK_SIZEOF,
	"const":    TOK_CONST,
	"static":   TOK_STATIC,
	"extern":   TOK_EXTERN,
	"switch":   TOK_SWITCH,
	"case":     TOK_CASE,
	"default":  TOK_DEFAULT,
	"enum":     TOK_ENUM,
	"goto":     TOK_GOTO,
	"signed":   TOK_SIGNED,
	"unsigned": TOK_UNSIGNED,
	"long":     TOK_LONG,
	"short":    TOK_SHORT,
}

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.  Lexing is maximal munch: the longest matching pattern wins.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	"/": TOK_SLASH,
	"%": TOK_PERCENT,

	"=":   TOK_ASSIGN,
	"+=":  TOK_PLUS_ASSIGN,
	"-=":  TOK_MINUS_ASSIGN,
	"*=":  TOK_STAR_ASSIGN,
	"/=":  TOK_SLASH_ASSIGN,
	"%=":  TOK_PERCENT_ASSIGN,
	"&=":  TOK_AND_ASSIGN,
	"|=":  TOK_OR_ASSIGN,
	"^=":  TOK_XOR_ASSIGN,
	"<<=": TOK_SHL_ASSIGN,
	">>=": TOK_SHR_ASSIGN,

	"==": TOK_EQ,
	"!=": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LEQ,
	">":  TOK_GT,
	">=": TOK_GEQ,

	"&&": TOK_LAND,
	"||": TOK_LOR,
	"!":  TOK_NOT,

	"&":  TOK_AMP,
	"|":  TOK_PIPE,
	"^":  TOK_CARET,
	"~":  TOK_TILDE,
	"<<": TOK_SHL,
	">>": TOK_SHR,

	"++": TOK_INC,
	"--": TOK_DEC,
	"->": TOK_ARROW,
	".":  TOK_DOT,
	"?":  TOK_QUESTION,
	":":  TOK_COLON,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
	"[": TOK_LBRACKET,
	"]": TOK_RBRACKET,
	";": TOK_SEMICOLON,
	",": TOK_COMMA,
}

// kindNames maps token kinds without a fixed lexeme to a display name.  Kinds
// with a fixed lexeme display as the lexeme itself.
var kindNames = map[int]string{
	TOK_IDENT:   "IDENTIFIER",
	TOK_NUMBER:  "NUMBER",
	TOK_STRING:  "STRING",
	TOK_CHARLIT: "CHAR",
	TOK_EOF:     "EOF",
	TOK_ERROR:   "ERROR",
}

// KindString returns a human-readable name for a token kind.  It is used by
// the driver's --show-tokens output.
func KindString(kind int) string {
	if name, ok := kindNames[kind]; ok {
		return name
	}

	for pattern, patternKind := range keywordPatterns {
		if patternKind == kind {
			return pattern
		}
	}

	for pattern, patternKind := range symbolPatterns {
		if patternKind == kind {
			return pattern
		}
	}

	return "UNKNOWN"
}

// IsTypeKind returns whether a token kind begins a primitive type.
func IsTypeKind(kind int) bool {
	switch kind {
	case TOK_INT, TOK_CHAR, TOK_FLOAT, TOK_DOUBLE, TOK_VOID:
		return true
	default:
		return false
	}
}
