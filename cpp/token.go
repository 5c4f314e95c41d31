package cpp

import (
	"fmt"
	"sort"
)

// The list of tokens.
const (

	// Single char tokens are themselves.
	LSS       = '<'
	GTR       = '>'
	ASSIGN    = '='
	LPAREN    = '('
	LBRACE    = '{'
	COMMA     = ','
	RPAREN    = ')'
	RBRACE    = '}'
	SEMICOLON = ';'

	ERROR = 10000 + iota
	EOF
	IDENT // switchThread

	// Primitive types
	VOID
	BOOL
	INT8
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
	DOUBLE
	STRING
	JSON

	// Container types, always followed by '<'.
	VECTOR
	OPTIONAL
	TUPLE
)

var tokenKindToStr = [...]string{
	ERROR:     "error",
	EOF:       "EOF",
	IDENT:     "ident",
	VOID:      "void",
	BOOL:      "bool",
	INT8:      "int8_t",
	INT16:     "int16_t",
	INT32:     "int32_t",
	INT64:     "int64_t",
	UINT8:     "uint8_t",
	UINT16:    "uint16_t",
	UINT32:    "uint32_t",
	UINT64:    "uint64_t",
	DOUBLE:    "double",
	STRING:    "std::string",
	JSON:      "json",
	VECTOR:    "std::vector",
	OPTIONAL:  "std::optional",
	TUPLE:     "std::tuple",
	LSS:       "'<'",
	GTR:       "'>'",
	ASSIGN:    "'='",
	LPAREN:    "'('",
	LBRACE:    "'{'",
	COMMA:     "','",
	RPAREN:    "')'",
	RBRACE:    "'}'",
	SEMICOLON: "';'",
}

type keyword struct {
	Lexeme string
	Kind   TokenKind
}

// keywords is tried in order, so it must stay sorted longest lexeme first.
// A shorter entry that is a prefix of a longer one would otherwise win.
var keywords = []keyword{
	{"std::optional", OPTIONAL},
	{"std::vector", VECTOR},
	{"std::string", STRING},
	{"std::tuple", TUPLE},
	{"uint16_t", UINT16},
	{"uint32_t", UINT32},
	{"uint64_t", UINT64},
	{"int16_t", INT16},
	{"int32_t", INT32},
	{"int64_t", INT64},
	{"uint8_t", UINT8},
	{"double", DOUBLE},
	{"int8_t", INT8},
	{"bool", BOOL},
	{"json", JSON},
	{"void", VOID},
}

func init() {
	sort.SliceStable(keywords, func(i, j int) bool {
		return len(keywords[i].Lexeme) > len(keywords[j].Lexeme)
	})
}

type TokenKind uint32

func (tk TokenKind) String() string {
	if uint32(tk) >= uint32(len(tokenKindToStr)) {
		return "Unknown"
	}
	ret := tokenKindToStr[tk]
	if ret == "" {
		return "Unknown"
	}
	return ret
}

// IsPrimitive reports whether tk names a scalar type with no parameters.
func (tk TokenKind) IsPrimitive() bool {
	return tk >= VOID && tk <= JSON
}

// IsContainer reports whether tk names a type that takes '<' parameters '>'.
func (tk TokenKind) IsContainer() bool {
	return tk >= VECTOR && tk <= TUPLE
}

type FilePos struct {
	File string
	Line int
	Col  int
}

func (pos FilePos) String() string {
	return fmt.Sprintf("%s:%d:%d", pos.File, pos.Line, pos.Col)
}

//Token represents a grouping of characters
//that provide semantic meaning in a header.
type Token struct {
	Kind TokenKind
	Val  string
	Pos  FilePos
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("EOF at %s", t.Pos)
	}
	return fmt.Sprintf("%s at %s", t.Val, t.Pos)
}
